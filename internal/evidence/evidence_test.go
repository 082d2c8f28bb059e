package evidence_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/evidence"
	"github.com/sudeys05/police-system/internal/testutil"
	"github.com/sudeys05/police-system/internal/utils"
)

var testServer *httptest.Server

type stubFetcher struct{}

func (stubFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return utils.SessionData{UserID: "officer-3", Role: "user", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func TestMain(m *testing.M) {
	db.DB = testutil.MustOpenDB(&evidence.Evidence{})

	r := chi.NewRouter()
	r.Mount("/evidence", evidence.SetupRoutes(stubFetcher{}))
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

func TestEvidence_CreateWithAdvisoryRefs(t *testing.T) {
	// The case reference is stored verbatim; nothing checks it exists.
	resp, raw := doJSON(t, http.MethodPost, "/evidence", map[string]string{
		"description": "Kitchen knife recovered from scene",
		"type":        "physical",
		"caseId":      "no-such-case-anywhere",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
	}
	var created evidence.Evidence
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatal(err)
	}
	if created.CaseID != "no-such-case-anywhere" {
		t.Errorf("advisory caseId not stored verbatim: %q", created.CaseID)
	}
	if !strings.HasPrefix(created.EvidenceNumber, "EVD-") {
		t.Errorf("evidenceNumber = %q", created.EvidenceNumber)
	}
	if created.Status != "collected" {
		t.Errorf("default status = %q", created.Status)
	}
	if created.CollectedByID != "officer-3" {
		t.Errorf("collectedById = %q", created.CollectedByID)
	}
}

func TestEvidence_ListFilteredByCase(t *testing.T) {
	for _, caseID := range []string{"case-A", "case-A", "case-B"} {
		resp, _ := doJSON(t, http.MethodPost, "/evidence", map[string]string{
			"description": "item for " + caseID,
			"caseId":      caseID,
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatal("seed create failed")
		}
	}

	resp, raw := doJSON(t, http.MethodGet, "/evidence?caseId=case-A", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}
	var records []evidence.Evidence
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 case-A items, got %d", len(records))
	}
	for _, rec := range records {
		if rec.CaseID != "case-A" {
			t.Errorf("filter leaked caseId %q", rec.CaseID)
		}
	}
}

func TestEvidence_StatusEnumAndLifecycle(t *testing.T) {
	resp, raw := doJSON(t, http.MethodPost, "/evidence", map[string]string{
		"description": "Shell casing",
		"status":      "misplaced",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad status: expected 400, got %d: %s", resp.StatusCode, raw)
	}

	resp, raw = doJSON(t, http.MethodPost, "/evidence", map[string]string{
		"description": "Shell casing",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatal("create failed")
	}
	var created evidence.Evidence
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatal(err)
	}

	resp, raw = doJSON(t, http.MethodPut, "/evidence/"+created.ID, map[string]string{
		"status":         "in_analysis",
		"chainOfCustody": "Transferred to ballistics lab",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var updated evidence.Evidence
	if err := json.Unmarshal(raw, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Status != "in_analysis" {
		t.Errorf("status = %q", updated.Status)
	}
	if updated.Description != created.Description {
		t.Error("unsubmitted description changed")
	}

	resp, _ = doJSON(t, http.MethodDelete, "/evidence/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete failed: %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, "/evidence/"+created.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", resp.StatusCode)
	}
}
