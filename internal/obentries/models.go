package obentries

import (
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OBEntry stores one canonical OccurredAt timestamp. The legacy
// dateTime/date/time triple exists only in the response shape, derived on
// the way out, so the three copies can never drift apart.
type OBEntry struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	OBNumber           string    `gorm:"uniqueIndex" json:"obNumber"`
	Type               string    `gorm:"not null" json:"type"`
	Description        string    `gorm:"not null" json:"description"`
	OccurredAt         time.Time `json:"-"`
	Status             string    `gorm:"default:'Pending'" json:"status"`
	Officer            string    `json:"officer"`
	RecordingOfficerID string    `json:"recordingOfficerId"` // advisory reference
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (OBEntry) TableName() string { return "ob_entries" }

var obStatuses = []string{"Pending", "Approved", "Completed", "Rejected"}

const defaultOfficer = "Unknown Officer"

var officerCaser = cases.Title(language.English)

func generateOBNumber() string {
	return fmt.Sprintf("OB-%d-%06d", time.Now().Year(), rand.IntN(1000000))
}

// OBEntryResponse is the external shape: canonical timestamp plus the
// display-formatted date and time variants clients render directly.
type OBEntryResponse struct {
	ID                 string    `json:"id"`
	OBNumber           string    `json:"obNumber"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	DateTime           time.Time `json:"dateTime"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	Status             string    `json:"status"`
	Officer            string    `json:"officer"`
	RecordingOfficerID string    `json:"recordingOfficerId"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toResponse(e OBEntry) OBEntryResponse {
	officer := e.Officer
	if officer == "" {
		officer = defaultOfficer
	}
	return OBEntryResponse{
		ID:                 e.ID,
		OBNumber:           e.OBNumber,
		Type:               e.Type,
		Description:        e.Description,
		DateTime:           e.OccurredAt,
		Date:               e.OccurredAt.Format("2006-01-02"),
		Time:               e.OccurredAt.Format("15:04"),
		Status:             statusOrDefault(e.Status),
		Officer:            officerCaser.String(officer),
		RecordingOfficerID: e.RecordingOfficerID,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// statusOrDefault backfills documents written before status existed.
func statusOrDefault(s string) string {
	if s == "" {
		return "Pending"
	}
	return s
}

type createOBInput struct {
	OBNumber           string     `json:"obNumber"`
	Type               string     `json:"type"`
	Description        string     `json:"description"`
	DateTime           *time.Time `json:"dateTime"`
	Status             string     `json:"status"`
	Officer            string     `json:"officer"`
	RecordingOfficerID string     `json:"recordingOfficerId"`
}

type updateOBInput struct {
	Type               *string    `json:"type"`
	Description        *string    `json:"description"`
	DateTime           *time.Time `json:"dateTime"`
	Status             *string    `json:"status"`
	Officer            *string    `json:"officer"`
	RecordingOfficerID *string    `json:"recordingOfficerId"`
}
