package geofiles_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/geofiles"
	"github.com/sudeys05/police-system/internal/testutil"
	"github.com/sudeys05/police-system/internal/utils"
)

var testServer *httptest.Server

type stubFetcher struct{}

func (stubFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return utils.SessionData{UserID: "officer-7", Role: "user", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func TestMain(m *testing.M) {
	db.DB = testutil.MustOpenDB(&geofiles.Geofile{})

	r := chi.NewRouter()
	r.Mount("/geofiles", geofiles.SetupRoutes(stubFetcher{}))
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

func createGeofile(t *testing.T, body map[string]interface{}) geofiles.Geofile {
	t.Helper()
	resp, raw := doJSON(t, http.MethodPost, "/geofiles", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create geofile: expected 201, got %d: %s", resp.StatusCode, raw)
	}
	var created geofiles.Geofile
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatal(err)
	}
	return created
}

func TestGeofile_FileTypeCanonicalized(t *testing.T) {
	created := createGeofile(t, map[string]interface{}{
		"filename": "patrol-zones.kml",
		"fileType": "KML",
		"filePath": "/files/patrol-zones.kml",
		"fileSize": 4096,
		"tags":     []string{"patrol", "zones"},
	})
	if created.FileType != "kml" {
		t.Errorf("fileType = %q, want canonical %q", created.FileType, "kml")
	}
	if created.AccessLevel != "internal" {
		t.Errorf("default accessLevel = %q", created.AccessLevel)
	}
	if created.UploadedByID != "officer-7" {
		t.Errorf("uploadedById = %q", created.UploadedByID)
	}
	if len(created.Tags) != 2 {
		t.Errorf("tags = %v", created.Tags)
	}

	// Canonical form persists through a plain read too.
	resp, raw := doJSON(t, http.MethodGet, "/geofiles/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: %d %s", resp.StatusCode, raw)
	}
	var fetched geofiles.Geofile
	if err := json.Unmarshal(raw, &fetched); err != nil {
		t.Fatal(err)
	}
	if fetched.FileType != "kml" {
		t.Errorf("stored fileType = %q", fetched.FileType)
	}
}

func TestGeofile_RejectsUnknownFileType(t *testing.T) {
	resp, _ := doJSON(t, http.MethodPost, "/geofiles", map[string]interface{}{
		"filename": "mystery.xyz",
		"fileType": "xyz",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown fileType, got %d", resp.StatusCode)
	}
}

func TestGeofile_RequiredFields(t *testing.T) {
	resp, _ := doJSON(t, http.MethodPost, "/geofiles", map[string]interface{}{"fileType": "gpx"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing filename: expected 400, got %d", resp.StatusCode)
	}
}

func TestGeofile_DownloadIncrementsCounter(t *testing.T) {
	created := createGeofile(t, map[string]interface{}{
		"filename": "river-survey.gpx",
		"fileType": "gpx",
		"filePath": "/files/river-survey.gpx",
	})
	if created.DownloadCount != 0 {
		t.Fatalf("fresh downloadCount = %d", created.DownloadCount)
	}

	for i := 1; i <= 2; i++ {
		resp, raw := doJSON(t, http.MethodGet, "/geofiles/"+created.ID+"/download", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("download %d: %d %s", i, resp.StatusCode, raw)
		}
		var out struct {
			FilePath string           `json:"filePath"`
			Filename string           `json:"filename"`
			Geofile  geofiles.Geofile `json:"geofile"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatal(err)
		}
		if out.FilePath != "/files/river-survey.gpx" {
			t.Errorf("download %d filePath = %q", i, out.FilePath)
		}
		if out.Geofile.DownloadCount != i {
			t.Errorf("download %d count = %d", i, out.Geofile.DownloadCount)
		}
	}

	resp, raw := doJSON(t, http.MethodGet, "/geofiles/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get after downloads: %d %s", resp.StatusCode, raw)
	}
	var fetched geofiles.Geofile
	if err := json.Unmarshal(raw, &fetched); err != nil {
		t.Fatal(err)
	}
	if fetched.DownloadCount != 2 {
		t.Errorf("downloadCount = %d, want 2", fetched.DownloadCount)
	}
	if fetched.LastAccessedAt == nil {
		t.Error("lastAccessedAt not set")
	}
}

func TestGeofile_ListFilters(t *testing.T) {
	createGeofile(t, map[string]interface{}{
		"filename":    "border-fence.geojson",
		"fileType":    "geojson",
		"description": "Northern border fence line",
		"tags":        []string{"Border", "fence"},
		"accessLevel": "restricted",
	})
	createGeofile(t, map[string]interface{}{
		"filename":    "market-stalls.shp",
		"fileType":    "shp",
		"description": "Licensed market stalls",
		"tags":        []string{"market"},
		"accessLevel": "public",
	})

	listIDs := func(path string) []geofiles.Geofile {
		resp, raw := doJSON(t, http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: %d %s", path, resp.StatusCode, raw)
		}
		var out []geofiles.Geofile
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatal(err)
		}
		return out
	}

	// Type filter matches case-insensitively against the canonical form.
	for _, f := range listIDs("/geofiles?type=GEOJSON") {
		if f.FileType != "geojson" {
			t.Errorf("type filter leaked %q", f.FileType)
		}
	}
	if got := listIDs("/geofiles?type=GEOJSON"); len(got) == 0 {
		t.Error("type filter returned nothing")
	}

	// Tag overlap ignores case.
	tagged := listIDs("/geofiles?tags=BORDER")
	if len(tagged) != 1 || tagged[0].Filename != "border-fence.geojson" {
		t.Errorf("tags filter = %v", tagged)
	}

	// Search scans filename and description.
	search := listIDs("/geofiles?search=market")
	if len(search) != 1 || search[0].Filename != "market-stalls.shp" {
		t.Errorf("search filter = %v", search)
	}

	for _, f := range listIDs("/geofiles?accessLevel=restricted") {
		if f.AccessLevel != "restricted" {
			t.Errorf("accessLevel filter leaked %q", f.AccessLevel)
		}
	}

	if resp, _ := doJSON(t, http.MethodGet, "/geofiles?type=xyz", nil); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad type filter: expected 400, got %d", resp.StatusCode)
	}
	if resp, _ := doJSON(t, http.MethodGet, "/geofiles?dateFrom=March+1st", nil); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad dateFrom: expected 400, got %d", resp.StatusCode)
	}
}

func TestGeofile_SearchByLocation(t *testing.T) {
	near := createGeofile(t, map[string]interface{}{
		"filename":  "station-perimeter.kml",
		"fileType":  "kml",
		"latitude":  -1.2921,
		"longitude": 36.8219,
	})
	createGeofile(t, map[string]interface{}{
		"filename":  "coast-patrol.gpx",
		"fileType":  "gpx",
		"latitude":  -4.0435,
		"longitude": 39.6682,
	})
	createGeofile(t, map[string]interface{}{
		"filename": "no-coordinates.kmz",
		"fileType": "kmz",
	})

	// 500m around the first file's own coordinates.
	path := fmt.Sprintf("/geofiles/search/by-location?lat=%f&lng=%f&radius=500", -1.2921, 36.8219)
	resp, raw := doJSON(t, http.MethodGet, path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("by-location: %d %s", resp.StatusCode, raw)
	}
	var out []geofiles.Geofile
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != near.ID {
		t.Errorf("by-location = %v", out)
	}

	if resp, _ := doJSON(t, http.MethodGet, "/geofiles/search/by-location?lat=abc&lng=36.8", nil); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad lat: expected 400, got %d", resp.StatusCode)
	}
	if resp, _ := doJSON(t, http.MethodGet, "/geofiles/search/by-location?lat=-1.29&lng=36.82&radius=-5", nil); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("negative radius: expected 400, got %d", resp.StatusCode)
	}
}

func TestGeofile_LinkCaseIdempotent(t *testing.T) {
	created := createGeofile(t, map[string]interface{}{
		"filename": "crime-scene.kmz",
		"fileType": "kmz",
	})

	for i := 0; i < 2; i++ {
		resp, raw := doJSON(t, http.MethodPost, "/geofiles/"+created.ID+"/link-case/case-42", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("link attempt %d: %d %s", i, resp.StatusCode, raw)
		}
		var out geofiles.Geofile
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatal(err)
		}
		if len(out.LinkedCaseIDs) != 1 || out.LinkedCaseIDs[0] != "case-42" {
			t.Errorf("link attempt %d linkedCaseIds = %v", i, out.LinkedCaseIDs)
		}
	}
}

func TestGeofile_AddTagsMergesCaseInsensitively(t *testing.T) {
	created := createGeofile(t, map[string]interface{}{
		"filename": "tagged.gml",
		"fileType": "gml",
		"tags":     []string{"Survey"},
	})

	resp, raw := doJSON(t, http.MethodPost, "/geofiles/"+created.ID+"/add-tags", map[string]interface{}{
		"tags": []string{"survey", "drainage", " "},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add-tags: %d %s", resp.StatusCode, raw)
	}
	var out geofiles.Geofile
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Tags) != 2 || out.Tags[0] != "Survey" || out.Tags[1] != "drainage" {
		t.Errorf("tags = %v", out.Tags)
	}

	if resp, _ := doJSON(t, http.MethodPost, "/geofiles/"+created.ID+"/add-tags", map[string]interface{}{"tags": []string{}}); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty tags: expected 400, got %d", resp.StatusCode)
	}
}

func TestGeofile_UpdateAndDelete(t *testing.T) {
	created := createGeofile(t, map[string]interface{}{
		"filename": "old-name.kml",
		"fileType": "kml",
	})

	resp, raw := doJSON(t, http.MethodPut, "/geofiles/"+created.ID, map[string]interface{}{
		"filename": "new-name.kml",
		"fileType": "GeoJSON",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: %d %s", resp.StatusCode, raw)
	}
	var updated geofiles.Geofile
	if err := json.Unmarshal(raw, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Filename != "new-name.kml" || updated.FileType != "geojson" {
		t.Errorf("update result = %q %q", updated.Filename, updated.FileType)
	}

	if resp, _ := doJSON(t, http.MethodPut, "/geofiles/"+created.ID, map[string]interface{}{"accessLevel": "secret"}); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad accessLevel: expected 400, got %d", resp.StatusCode)
	}

	if resp, _ := doJSON(t, http.MethodDelete, "/geofiles/"+created.ID, nil); resp.StatusCode != http.StatusOK {
		t.Errorf("delete: expected 200, got %d", resp.StatusCode)
	}
	if resp, _ := doJSON(t, http.MethodGet, "/geofiles/"+created.ID, nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("deleted geofile still readable: %d", resp.StatusCode)
	}
}

func TestGeofile_RequiresSession(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, testServer.URL+"/geofiles", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no cookie: expected 401, got %d", resp.StatusCode)
	}
}
