package reports

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
	"github.com/sudeys05/police-system/internal/validate"
)

func ListReports(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Order("created_at asc")

	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if reportType := r.URL.Query().Get("type"); reportType != "" {
		query = query.Where("type = ?", reportType)
	}

	var records []Report
	if err := query.Find(&records).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

func GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Report
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Report not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func CreateReport(w http.ResponseWriter, r *http.Request) {
	var record Report
	if err := utils.DecodeJSON(r, &record); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("title", record.Title)
	errs.Required("type", record.Type)
	errs.Enum("type", record.Type, reportTypes)
	errs.Enum("status", record.Status, reportStatuses)
	errs.Enum("priority", record.Priority, reportPriorities)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	record.ID = uuid.NewString()
	record.Status = validate.Default(record.Status, "Pending")
	record.Priority = validate.Default(record.Priority, "Medium")
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok && record.RequestedByID == "" {
		record.RequestedByID = userID
	}

	if err := db.DB.Create(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create report")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, record)
}

func UpdateReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Report
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Report not found")
		return
	}

	var input updateReportInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	updates := map[string]interface{}{}
	if input.Title != nil {
		errs.Required("title", *input.Title)
		updates["title"] = *input.Title
	}
	if input.Type != nil {
		errs.Required("type", *input.Type)
		errs.Enum("type", *input.Type, reportTypes)
		updates["type"] = *input.Type
	}
	if input.Status != nil {
		errs.Required("status", *input.Status)
		errs.Enum("status", *input.Status, reportStatuses)
		updates["status"] = *input.Status
	}
	if input.Priority != nil {
		errs.Required("priority", *input.Priority)
		errs.Enum("priority", *input.Priority, reportPriorities)
		updates["priority"] = *input.Priority
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.CaseID != nil {
		updates["case_id"] = *input.CaseID
	}
	if input.OBID != nil {
		updates["ob_id"] = *input.OBID
	}
	if input.EvidenceID != nil {
		updates["evidence_id"] = *input.EvidenceID
	}
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&record).Updates(updates).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update report")
			return
		}
	}

	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update report")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Report
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Report not found")
		return
	}

	if err := db.DB.Delete(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete report")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Report deleted")
}
