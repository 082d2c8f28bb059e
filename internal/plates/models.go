package plates

import "time"

type LicensePlate struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	PlateNumber  string    `gorm:"uniqueIndex;not null" json:"plateNumber"`
	OwnerName    string    `json:"ownerName"`
	OwnerAddress string    `json:"ownerAddress"`
	VehicleMake  string    `json:"vehicleMake"`
	VehicleModel string    `json:"vehicleModel"`
	VehicleColor string    `json:"vehicleColor"`
	VehicleYear  int       `json:"vehicleYear"`
	Status       string    `gorm:"default:'active'" json:"status"`
	ExpiryDate   string    `json:"expiryDate"`
	AddedByID    string    `json:"addedById"` // advisory reference
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (LicensePlate) TableName() string { return "license_plates" }

var plateStatuses = []string{"active", "stolen", "expired", "suspended"}

type updatePlateInput struct {
	OwnerName    *string `json:"ownerName"`
	OwnerAddress *string `json:"ownerAddress"`
	VehicleMake  *string `json:"vehicleMake"`
	VehicleModel *string `json:"vehicleModel"`
	VehicleColor *string `json:"vehicleColor"`
	VehicleYear  *int    `json:"vehicleYear"`
	Status       *string `json:"status"`
	ExpiryDate   *string `json:"expiryDate"`
}
