package cases

import (
	"fmt"
	"math/rand/v2"
	"time"
)

type Case struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	CaseNumber      string    `gorm:"uniqueIndex" json:"caseNumber"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Status          string    `gorm:"default:'Open'" json:"status"`
	Priority        string    `gorm:"default:'Medium'" json:"priority"`
	Location        string    `json:"location"`
	AssignedOfficer string    `json:"assignedOfficer"`
	CreatedByID     string    `json:"createdById"` // advisory reference, never existence-checked
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Case) TableName() string { return "cases" }

var (
	caseStatuses   = []string{"Open", "Under Investigation", "Closed", "Archived"}
	casePriorities = []string{"Low", "Medium", "High", "Urgent"}
)

func generateCaseNumber() string {
	return fmt.Sprintf("CASE-%d-%06d", time.Now().Year(), rand.IntN(1000000))
}

// updateCaseInput uses pointers so an absent field and an explicit empty
// string are distinguishable: only submitted fields are touched.
type updateCaseInput struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Type            *string `json:"type"`
	Status          *string `json:"status"`
	Priority        *string `json:"priority"`
	Location        *string `json:"location"`
	AssignedOfficer *string `json:"assignedOfficer"`
}
