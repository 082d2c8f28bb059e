package vehicles

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sudeys05/police-system/internal/db"
	"github.com/sudeys05/police-system/internal/utils"
	"github.com/sudeys05/police-system/internal/validate"
)

func ListVehicles(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Order("created_at asc")

	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var records []PoliceVehicle
	if err := query.Find(&records).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch vehicles")
		return
	}

	out := make([]VehicleResponse, len(records))
	for i, v := range records {
		out[i] = toResponse(v)
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

func GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record PoliceVehicle
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, toResponse(record))
}

func CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var input createVehicleInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("vehicleNumber", input.VehicleNumber)
	errs.Enum("status", input.Status, vehicleStatuses)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}
	if input.Location != nil && len(input.Location) != 2 {
		utils.RespondError(w, http.StatusBadRequest, "location must be [longitude, latitude]")
		return
	}

	record := PoliceVehicle{
		ID:                uuid.NewString(),
		VehicleNumber:     input.VehicleNumber,
		Make:              input.Make,
		Model:             input.Model,
		Year:              input.Year,
		LicensePlate:      input.LicensePlate,
		Type:              input.Type,
		Status:            validate.Default(input.Status, "available"),
		AssignedOfficerID: input.AssignedOfficerID,
		LastServiceDate:   input.LastServiceDate,
		Mileage:           input.Mileage,
	}
	if len(input.Location) == 2 {
		record.Longitude = &input.Location[0]
		record.Latitude = &input.Location[1]
	}

	var existing PoliceVehicle
	if err := db.DB.First(&existing, "vehicle_number = ?", record.VehicleNumber).Error; err == nil {
		utils.RespondError(w, http.StatusConflict, "Vehicle number already registered")
		return
	}

	if err := db.DB.Create(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, toResponse(record))
}

func UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record PoliceVehicle
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	var input updateVehicleInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	updates := map[string]interface{}{}
	if input.Make != nil {
		updates["make"] = *input.Make
	}
	if input.Model != nil {
		updates["model"] = *input.Model
	}
	if input.Year != nil {
		updates["year"] = *input.Year
	}
	if input.LicensePlate != nil {
		updates["license_plate"] = *input.LicensePlate
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Status != nil {
		errs.Required("status", *input.Status)
		errs.Enum("status", *input.Status, vehicleStatuses)
		updates["status"] = *input.Status
	}
	if input.Location != nil {
		if len(input.Location) != 2 {
			utils.RespondError(w, http.StatusBadRequest, "location must be [longitude, latitude]")
			return
		}
		updates["longitude"] = input.Location[0]
		updates["latitude"] = input.Location[1]
	}
	if input.AssignedOfficerID != nil {
		updates["assigned_officer_id"] = *input.AssignedOfficerID
	}
	if input.LastServiceDate != nil {
		updates["last_service_date"] = *input.LastServiceDate
	}
	if input.Mileage != nil {
		updates["mileage"] = *input.Mileage
	}
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&record).Updates(updates).Error; err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Failed to update vehicle")
			return
		}
	}

	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update vehicle")
		return
	}
	utils.RespondJSON(w, http.StatusOK, toResponse(record))
}

// PatchLocation moves a vehicle without a full update round trip; patrol
// apps ping this frequently.
func PatchLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record PoliceVehicle
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	var input struct {
		Location []float64 `json:"location"`
	}
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if len(input.Location) != 2 {
		utils.RespondError(w, http.StatusBadRequest, "location must be [longitude, latitude]")
		return
	}

	updates := map[string]interface{}{
		"longitude": input.Location[0],
		"latitude":  input.Location[1],
	}
	if err := db.DB.Model(&record).Updates(updates).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update location")
		return
	}

	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update location")
		return
	}
	utils.RespondJSON(w, http.StatusOK, toResponse(record))
}

func PatchStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record PoliceVehicle
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var errs validate.FieldErrors
	errs.Required("status", input.Status)
	errs.Enum("status", input.Status, vehicleStatuses)
	if !errs.Ok() {
		utils.RespondError(w, http.StatusBadRequest, errs.Error())
		return
	}

	if err := db.DB.Model(&record).Update("status", input.Status).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, toResponse(record))
}

func DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record PoliceVehicle
	if err := db.DB.First(&record, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	if err := db.DB.Delete(&record).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Vehicle deleted")
}
