package plates

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
	"github.com/sudeys05/police-system/internal/validate"
)

func ListPlates(w http.ResponseWriter, r *http.Request) {
	var records []LicensePlate
	if err := db.DB.Order("created_at asc").Find(&records).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch license plates")
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

func GetPlate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record LicensePlate
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "License plate not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

// SearchPlate does an exact lookup by plate number. Plates are stored
// uppercased so the match is effectively case-insensitive.
func SearchPlate(w http.ResponseWriter, r *http.Request) {
	plateNumber := strings.ToUpper(chi.URLParam(r, "plateNumber"))

	var record LicensePlate
	if err := db.DB.First(&record, "plate_number = ?", plateNumber).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "License plate not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func CreatePlate(w http.ResponseWriter, r *http.Request) {
	var record LicensePlate
	if err := utils.DecodeJSON(r, &record); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("plateNumber", record.PlateNumber)
	errs.Enum("status", record.Status, plateStatuses)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	record.PlateNumber = strings.ToUpper(strings.TrimSpace(record.PlateNumber))

	var existing LicensePlate
	if err := db.DB.First(&existing, "plate_number = ?", record.PlateNumber).Error; err == nil {
		utils.RespondError(w, http.StatusConflict, "Plate number already registered")
		return
	}

	record.ID = uuid.NewString()
	record.Status = validate.Default(record.Status, "active")
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok && record.AddedByID == "" {
		record.AddedByID = userID
	}

	if err := db.DB.Create(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create license plate")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, record)
}

func UpdatePlate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record LicensePlate
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "License plate not found")
		return
	}

	var input updatePlateInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	updates := map[string]interface{}{}
	if input.OwnerName != nil {
		updates["owner_name"] = *input.OwnerName
	}
	if input.OwnerAddress != nil {
		updates["owner_address"] = *input.OwnerAddress
	}
	if input.VehicleMake != nil {
		updates["vehicle_make"] = *input.VehicleMake
	}
	if input.VehicleModel != nil {
		updates["vehicle_model"] = *input.VehicleModel
	}
	if input.VehicleColor != nil {
		updates["vehicle_color"] = *input.VehicleColor
	}
	if input.VehicleYear != nil {
		updates["vehicle_year"] = *input.VehicleYear
	}
	if input.Status != nil {
		errs.Required("status", *input.Status)
		errs.Enum("status", *input.Status, plateStatuses)
		updates["status"] = *input.Status
	}
	if input.ExpiryDate != nil {
		updates["expiry_date"] = *input.ExpiryDate
	}
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&record).Updates(updates).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update license plate")
			return
		}
	}

	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update license plate")
		return
	}
	utils.RespondJSON(w, http.StatusOK, record)
}

func DeletePlate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record LicensePlate
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "License plate not found")
		return
	}

	if err := db.DB.Delete(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete license plate")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "License plate deleted")
}
