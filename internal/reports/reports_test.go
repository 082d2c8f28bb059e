package reports_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/reports"
	"github.com/sudeys05/police-system/internal/testutil"
	"github.com/sudeys05/police-system/internal/utils"
)

var testServer *httptest.Server

type stubFetcher struct{}

func (stubFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return utils.SessionData{UserID: "officer-4", Role: "user", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func TestMain(m *testing.M) {
	db.DB = testutil.MustOpenDB(&reports.Report{})

	r := chi.NewRouter()
	r.Mount("/reports", reports.SetupRoutes(stubFetcher{}))
	testServer = httptest.NewServer(r)

	code := m.Run()
	testServer.Close()
	os.Exit(code)
}

func doJSON(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, testServer.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "stub"})
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, raw
}

func TestReport_EnumRejection(t *testing.T) {
	base := map[string]string{"title": "Weekly summary", "type": "Incident"}

	bad := []map[string]string{
		{"title": "t", "type": "Gossip"},
		{"title": "t", "type": "Incident", "status": "Drafted"},
		{"title": "t", "type": "Incident", "priority": "Extreme"},
	}
	for _, body := range bad {
		resp, raw := doJSON(t, http.MethodPost, "/reports", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %v: expected 400, got %d: %s", body, resp.StatusCode, raw)
		}
	}

	resp, raw := doJSON(t, http.MethodPost, "/reports", base)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("valid report: expected 201, got %d: %s", resp.StatusCode, raw)
	}
	var created reports.Report
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatal(err)
	}
	if created.Status != "Pending" || created.Priority != "Medium" {
		t.Errorf("defaults: status=%q priority=%q", created.Status, created.Priority)
	}
	if created.RequestedByID != "officer-4" {
		t.Errorf("requestedById = %q", created.RequestedByID)
	}
}

func TestReport_AllDeclaredEnumValuesAccepted(t *testing.T) {
	for _, typ := range []string{"Incident", "Case Summary", "Evidence", "Warranty", "Investigation"} {
		resp, raw := doJSON(t, http.MethodPost, "/reports", map[string]string{
			"title": "typed " + typ,
			"type":  typ,
		})
		if resp.StatusCode != http.StatusCreated {
			t.Errorf("type %q: expected 201, got %d: %s", typ, resp.StatusCode, raw)
		}
	}
}

func TestReport_UpdateAndAdvisoryRefs(t *testing.T) {
	resp, raw := doJSON(t, http.MethodPost, "/reports", map[string]string{
		"title":  "Evidence audit",
		"type":   "Evidence",
		"caseId": "dangling-case-ref",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatal("create failed")
	}
	var created reports.Report
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatal(err)
	}
	if created.CaseID != "dangling-case-ref" {
		t.Errorf("advisory ref not stored: %q", created.CaseID)
	}

	resp, raw = doJSON(t, http.MethodPut, "/reports/"+created.ID, map[string]string{
		"status":   "Completed",
		"priority": "High",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var updated reports.Report
	if err := json.Unmarshal(raw, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Status != "Completed" || updated.Priority != "High" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Title != created.Title || updated.Type != created.Type {
		t.Error("unsubmitted fields changed")
	}

	resp, _ = doJSON(t, http.MethodPut, "/reports/"+created.ID, map[string]string{
		"status": "Shelved",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad status on update: expected 400, got %d", resp.StatusCode)
	}
}

func TestReport_ListStatusFilter(t *testing.T) {
	resp, raw := doJSON(t, http.MethodGet, "/reports?status=Completed", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}
	var records []reports.Report
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatal(err)
	}
	for _, rec := range records {
		if rec.Status != "Completed" {
			t.Errorf("filter leaked status %q", rec.Status)
		}
	}
}
