package cases

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
	"github.com/sudeys05/police-system/internal/validate"
)

func ListCases(w http.ResponseWriter, r *http.Request) {
	var records []Case
	if err := db.DB.Order("created_at asc").Find(&records).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch cases")
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

func GetCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Case
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Case not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func CreateCase(w http.ResponseWriter, r *http.Request) {
	var record Case
	if err := utils.DecodeJSON(r, &record); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("title", record.Title)
	errs.Enum("status", record.Status, caseStatuses)
	errs.Enum("priority", record.Priority, casePriorities)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	record.ID = uuid.NewString()
	record.CaseNumber = validate.Default(record.CaseNumber, generateCaseNumber())
	record.Status = validate.Default(record.Status, "Open")
	record.Priority = validate.Default(record.Priority, "Medium")
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok && record.CreatedByID == "" {
		record.CreatedByID = userID
	}

	if err := db.DB.Create(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create case")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, record)
}

func UpdateCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Case
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Case not found")
		return
	}

	var input updateCaseInput
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
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Status != nil {
		errs.Required("status", *input.Status)
		errs.Enum("status", *input.Status, caseStatuses)
		updates["status"] = *input.Status
	}
	if input.Priority != nil {
		errs.Required("priority", *input.Priority)
		errs.Enum("priority", *input.Priority, casePriorities)
		updates["priority"] = *input.Priority
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.AssignedOfficer != nil {
		updates["assigned_officer"] = *input.AssignedOfficer
	}
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&record).Updates(updates).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update case")
			return
		}
	}

	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update case")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func DeleteCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Case
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Case not found")
		return
	}

	if err := db.DB.Delete(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete case")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Case deleted")
}
