package geofiles

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
	"github.com/sudeys05/police-system/internal/validate"
	"gorm.io/gorm"
)

func parseListFilter(r *http.Request) (listFilter, error) {
	q := r.URL.Query()
	f := listFilter{
		Search:      q.Get("search"),
		AccessLevel: q.Get("accessLevel"),
	}

	if t := q.Get("type"); t != "" {
		canonical, ok := validate.EnumFold(t, fileTypes)
		if !ok {
			return f, errBadFileType
		}
		f.FileType = canonical
	}
	if tags := q.Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}
	if from := q.Get("dateFrom"); from != "" {
		ts, err := time.Parse("2006-01-02", from)
		if err != nil {
			return f, errBadDate
		}
		f.DateFrom = &ts
	}
	if to := q.Get("dateTo"); to != "" {
		ts, err := time.Parse("2006-01-02", to)
		if err != nil {
			return f, errBadDate
		}
		// Inclusive through the end of the named day.
		end := ts.Add(24*time.Hour - time.Nanosecond)
		f.DateTo = &end
	}
	return f, nil
}

var (
	errBadFileType = &filterError{"type must be one of " + strings.Join(fileTypes, ", ")}
	errBadDate     = &filterError{"dateFrom and dateTo must be YYYY-MM-DD"}
)

type filterError struct{ msg string }

func (e *filterError) Error() string { return e.msg }

func ListGeofiles(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var records []Geofile
	if err := applyFilter(db.DB.Order("created_at asc"), filter).Find(&records).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch geofiles")
		return
	}

	out := make([]Geofile, 0, len(records))
	for _, rec := range records {
		if matchesTags(rec, filter.Tags) {
			out = append(out, rec)
		}
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

func GetGeofile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Geofile
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Geofile not found")
		return
	}

	// Reads touch the access timestamp, best-effort.
	now := time.Now()
	db.DB.Model(&Geofile{}).Where("id = ?", id).UpdateColumn("last_accessed_at", now)
	record.LastAccessedAt = &now

	utils.RespondJSON(w, http.StatusOK, record)
}

// DownloadGeofile hands back the stored reference and bumps the counter.
// The increment runs as a single SQL expression: concurrent downloads
// both land, per-row atomicity is all this needs.
func DownloadGeofile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Geofile
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Geofile not found")
		return
	}

	now := time.Now()
	if err := db.DB.Model(&Geofile{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
		"download_count":   gorm.Expr("download_count + 1"),
		"last_accessed_at": now,
	}).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to record download")
		return
	}

	record.DownloadCount++
	record.LastAccessedAt = &now
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"filePath": record.FilePath,
		"filename": record.Filename,
		"geofile":  record,
	})
}

func SearchByLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.RespondError(w, http.StatusBadRequest, "lat and lng are required numbers")
		return
	}

	radius := 1000.0 // meters
	if rs := q.Get("radius"); rs != "" {
		parsed, err := strconv.ParseFloat(rs, 64)
		if err != nil || parsed <= 0 {
			utils.RespondError(w, http.StatusBadRequest, "radius must be a positive number of meters")
			return
		}
		radius = parsed
	}

	var records []Geofile
	if err := db.DB.Where("latitude IS NOT NULL AND longitude IS NOT NULL").Find(&records).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to search geofiles")
		return
	}

	out := make([]Geofile, 0)
	for _, rec := range records {
		if withinRadius(rec, lat, lng, radius) {
			out = append(out, rec)
		}
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

func CreateGeofile(w http.ResponseWriter, r *http.Request) {
	var record Geofile
	if err := utils.DecodeJSON(r, &record); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("filename", record.Filename)
	errs.Required("fileType", record.FileType)
	errs.Enum("accessLevel", record.AccessLevel, accessLevels)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	// File types match case-insensitively and store canonical lowercase.
	canonical, ok := validate.EnumFold(record.FileType, fileTypes)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "fileType must be one of "+strings.Join(fileTypes, ", "))
		return
	}
	record.FileType = canonical

	record.ID = uuid.NewString()
	record.AccessLevel = validate.Default(record.AccessLevel, "internal")
	record.DownloadCount = 0
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if record.LinkedCaseIDs == nil {
		record.LinkedCaseIDs = []string{}
	}
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok && record.UploadedByID == "" {
		record.UploadedByID = userID
	}

	if err := db.DB.Create(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create geofile")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, record)
}

func UpdateGeofile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Geofile
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Geofile not found")
		return
	}

	var input updateGeofileInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	updates := map[string]interface{}{}
	if input.Filename != nil {
		errs.Required("filename", *input.Filename)
		updates["filename"] = *input.Filename
	}
	if input.FileType != nil {
		canonical, ok := validate.EnumFold(*input.FileType, fileTypes)
		if !ok {
			utils.RespondError(w, http.StatusBadRequest, "fileType must be one of "+strings.Join(fileTypes, ", "))
			return
		}
		updates["file_type"] = canonical
	}
	if input.FilePath != nil {
		updates["file_path"] = *input.FilePath
	}
	if input.FileSize != nil {
		updates["file_size"] = *input.FileSize
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Tags != nil {
		updates["tags"] = pq.StringArray(input.Tags)
	}
	if input.AccessLevel != nil {
		errs.Required("accessLevel", *input.AccessLevel)
		errs.Enum("accessLevel", *input.AccessLevel, accessLevels)
		updates["access_level"] = *input.AccessLevel
	}
	if input.Latitude != nil {
		updates["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		updates["longitude"] = *input.Longitude
	}
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&record).Updates(updates).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update geofile")
			return
		}
	}

	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update geofile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

// LinkCase attaches an advisory case reference; the case is not checked
// to exist, matching every other cross-resource reference here.
func LinkCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	caseID := chi.URLParam(r, "caseId")

	var record Geofile
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Geofile not found")
		return
	}

	for _, linked := range record.LinkedCaseIDs {
		if linked == caseID {
			utils.RespondJSON(w, http.StatusOK, record)
			return
		}
	}

	record.LinkedCaseIDs = append(record.LinkedCaseIDs, caseID)
	if err := db.DB.Model(&record).Update("linked_case_ids", record.LinkedCaseIDs).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to link case")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func AddTags(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Geofile
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Geofile not found")
		return
	}

	var input struct {
		Tags []string `json:"tags"`
	}
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if len(input.Tags) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "tags is required")
		return
	}

	record.Tags = mergeTags(record.Tags, input.Tags)
	if err := db.DB.Model(&record).Update("tags", record.Tags).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to add tags")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func DeleteGeofile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Geofile
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Geofile not found")
		return
	}

	if err := db.DB.Delete(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete geofile")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Geofile deleted")
}
