package evidence

import (
	"fmt"
	"math/rand/v2"
	"time"
)

type Evidence struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	EvidenceNumber string    `gorm:"uniqueIndex" json:"evidenceNumber"`
	CaseID         string    `json:"caseId"` // advisory reference
	OBID           string    `json:"obId"`   // advisory reference
	Type           string    `json:"type"`
	Description    string    `gorm:"not null" json:"description"`
	Location       string    `json:"location"`
	Status         string    `gorm:"default:'collected'" json:"status"`
	ChainOfCustody string    `json:"chainOfCustody"`
	CollectedByID  string    `json:"collectedById"` // advisory reference
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Evidence) TableName() string { return "evidence" }

var evidenceStatuses = []string{"collected", "in_analysis", "analyzed", "released", "destroyed"}

func generateEvidenceNumber() string {
	return fmt.Sprintf("EVD-%d-%06d", time.Now().Year(), rand.IntN(1000000))
}

type updateEvidenceInput struct {
	CaseID         *string `json:"caseId"`
	OBID           *string `json:"obId"`
	Type           *string `json:"type"`
	Description    *string `json:"description"`
	Location       *string `json:"location"`
	Status         *string `json:"status"`
	ChainOfCustody *string `json:"chainOfCustody"`
}
