package evidence

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
	"github.com/sudeys05/police-system/internal/validate"
)

func ListEvidence(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Order("created_at asc")

	// Evidence is usually pulled per case.
	if caseID := r.URL.Query().Get("caseId"); caseID != "" {
		query = query.Where("case_id = ?", caseID)
	}

	var records []Evidence
	if err := query.Find(&records).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch evidence")
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

func GetEvidence(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Evidence
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Evidence not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func CreateEvidence(w http.ResponseWriter, r *http.Request) {
	var record Evidence
	if err := utils.DecodeJSON(r, &record); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("description", record.Description)
	errs.Enum("status", record.Status, evidenceStatuses)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	record.ID = uuid.NewString()
	record.EvidenceNumber = validate.Default(record.EvidenceNumber, generateEvidenceNumber())
	record.Status = validate.Default(record.Status, "collected")
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok && record.CollectedByID == "" {
		record.CollectedByID = userID
	}

	if err := db.DB.Create(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create evidence")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, record)
}

func UpdateEvidence(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Evidence
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Evidence not found")
		return
	}

	var input updateEvidenceInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	updates := map[string]interface{}{}
	if input.CaseID != nil {
		updates["case_id"] = *input.CaseID
	}
	if input.OBID != nil {
		updates["ob_id"] = *input.OBID
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Description != nil {
		errs.Required("description", *input.Description)
		updates["description"] = *input.Description
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Status != nil {
		errs.Required("status", *input.Status)
		errs.Enum("status", *input.Status, evidenceStatuses)
		updates["status"] = *input.Status
	}
	if input.ChainOfCustody != nil {
		updates["chain_of_custody"] = *input.ChainOfCustody
	}
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&record).Updates(updates).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update evidence")
			return
		}
	}

	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update evidence")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func DeleteEvidence(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record Evidence
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Evidence not found")
		return
	}

	if err := db.DB.Delete(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete evidence")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Evidence deleted")
}
