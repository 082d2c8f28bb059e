package geofiles

import (
	"time"

	"github.com/lib/pq"
)

// Geofile is a reference to a geographic data file plus metadata; the
// bytes themselves live elsewhere and only FilePath points at them.
type Geofile struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	Filename       string         `gorm:"not null" json:"filename"`
	FileType       string         `gorm:"not null" json:"fileType"`
	FilePath       string         `json:"filePath"`
	FileSize       int64          `json:"fileSize"`
	Description    string         `json:"description"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	AccessLevel    string         `gorm:"default:'internal'" json:"accessLevel"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	LinkedCaseIDs  pq.StringArray `gorm:"type:text[]" json:"linkedCaseIds"` // advisory references
	DownloadCount  int            `gorm:"default:0" json:"downloadCount"`
	LastAccessedAt *time.Time     `json:"lastAccessedAt"`
	UploadedByID   string         `json:"uploadedById"` // advisory reference
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (Geofile) TableName() string { return "geofiles" }

var (
	fileTypes    = []string{"kml", "gpx", "shp", "geojson", "kmz", "gml", "other"}
	accessLevels = []string{"public", "internal", "restricted"}
)

type updateGeofileInput struct {
	Filename    *string   `json:"filename"`
	FileType    *string   `json:"fileType"`
	FilePath    *string   `json:"filePath"`
	FileSize    *int64    `json:"fileSize"`
	Description *string   `json:"description"`
	Tags        []string  `json:"tags"`
	AccessLevel *string   `json:"accessLevel"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
}
