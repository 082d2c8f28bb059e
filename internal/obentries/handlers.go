package obentries

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
	"github.com/sudeys05/police-system/internal/validate"
)

func ListOBEntries(w http.ResponseWriter, r *http.Request) {
	var entries []OBEntry
	if err := db.DB.Order("created_at asc").Find(&entries).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch OB entries")
		return
	}

	out := make([]OBEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toResponse(e)
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

func GetOBEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var entry OBEntry
	if err := db.DB.First(&entry, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "OB entry not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, toResponse(entry))
}

func CreateOBEntry(w http.ResponseWriter, r *http.Request) {
	var input createOBInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("type", input.Type)
	errs.Required("description", input.Description)
	errs.Enum("status", input.Status, obStatuses)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	occurredAt := time.Now()
	if input.DateTime != nil {
		occurredAt = *input.DateTime
	}

	entry := OBEntry{
		ID:                 uuid.NewString(),
		OBNumber:           validate.Default(input.OBNumber, generateOBNumber()),
		Type:               input.Type,
		Description:        input.Description,
		OccurredAt:         occurredAt,
		Status:             validate.Default(input.Status, "Pending"),
		Officer:            input.Officer,
		RecordingOfficerID: input.RecordingOfficerID,
	}
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok && entry.RecordingOfficerID == "" {
		entry.RecordingOfficerID = userID
	}

	if err := db.DB.Create(&entry).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create OB entry")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, toResponse(entry))
}

func UpdateOBEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var entry OBEntry
	if err := db.DB.First(&entry, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "OB entry not found")
		return
	}

	var input updateOBInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	updates := map[string]interface{}{}
	if input.Type != nil {
		errs.Required("type", *input.Type)
		updates["type"] = *input.Type
	}
	if input.Description != nil {
		errs.Required("description", *input.Description)
		updates["description"] = *input.Description
	}
	if input.DateTime != nil {
		updates["occurred_at"] = *input.DateTime
	}
	if input.Status != nil {
		errs.Required("status", *input.Status)
		errs.Enum("status", *input.Status, obStatuses)
		updates["status"] = *input.Status
	}
	if input.Officer != nil {
		updates["officer"] = *input.Officer
	}
	if input.RecordingOfficerID != nil {
		updates["recording_officer_id"] = *input.RecordingOfficerID
	}
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&entry).Updates(updates).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update OB entry")
			return
		}
	}

	if err := db.DB.First(&entry, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update OB entry")
		return
	}
	utils.RespondJSON(w, http.StatusOK, toResponse(entry))
}

func DeleteOBEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var entry OBEntry
	if err := db.DB.First(&entry, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "OB entry not found")
		return
	}

	if err := db.DB.Delete(&entry).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete OB entry")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "OB entry deleted")
}
