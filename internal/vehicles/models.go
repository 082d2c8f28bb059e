package vehicles

import "time"

// PoliceVehicle stores its position as two columns; the external shape is
// a GeoJSON-style [longitude, latitude] pair assembled at the boundary.
type PoliceVehicle struct {
	ID                string     `gorm:"primaryKey" json:"id"`
	VehicleNumber     string     `gorm:"uniqueIndex;not null" json:"vehicleNumber"`
	Make              string     `json:"make"`
	Model             string     `json:"model"`
	Year              int        `json:"year"`
	LicensePlate      string     `json:"licensePlate"`
	Type              string     `json:"type"`
	Status            string     `gorm:"default:'available'" json:"status"`
	Longitude         *float64   `json:"-"`
	Latitude          *float64   `json:"-"`
	AssignedOfficerID string     `json:"assignedOfficerId"` // advisory reference
	LastServiceDate   *time.Time `json:"lastServiceDate"`
	Mileage           int        `json:"mileage"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func (PoliceVehicle) TableName() string { return "police_vehicles" }

var vehicleStatuses = []string{"available", "on_patrol", "responding", "out_of_service"}

type VehicleResponse struct {
	PoliceVehicle
	Location []float64 `json:"location,omitempty"`
}

func toResponse(v PoliceVehicle) VehicleResponse {
	out := VehicleResponse{PoliceVehicle: v}
	if v.Longitude != nil && v.Latitude != nil {
		out.Location = []float64{*v.Longitude, *v.Latitude}
	}
	return out
}

type createVehicleInput struct {
	VehicleNumber     string     `json:"vehicleNumber"`
	Make              string     `json:"make"`
	Model             string     `json:"model"`
	Year              int        `json:"year"`
	LicensePlate      string     `json:"licensePlate"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	Location          []float64  `json:"location"`
	AssignedOfficerID string     `json:"assignedOfficerId"`
	LastServiceDate   *time.Time `json:"lastServiceDate"`
	Mileage           int        `json:"mileage"`
}

type updateVehicleInput struct {
	Make              *string    `json:"make"`
	Model             *string    `json:"model"`
	Year              *int       `json:"year"`
	LicensePlate      *string    `json:"licensePlate"`
	Type              *string    `json:"type"`
	Status            *string    `json:"status"`
	Location          []float64  `json:"location"`
	AssignedOfficerID *string    `json:"assignedOfficerId"`
	LastServiceDate   *time.Time `json:"lastServiceDate"`
	Mileage           *int       `json:"mileage"`
}
