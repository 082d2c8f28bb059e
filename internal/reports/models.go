package reports

import "time"

type Report struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Type          string    `gorm:"not null" json:"type"`
	Status        string    `gorm:"default:'Pending'" json:"status"`
	Priority      string    `gorm:"default:'Medium'" json:"priority"`
	Content       string    `json:"content"`
	CaseID        string    `json:"caseId"`     // advisory reference
	OBID          string    `json:"obId"`       // advisory reference
	EvidenceID    string    `json:"evidenceId"` // advisory reference
	RequestedByID string    `json:"requestedById"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Report) TableName() string { return "reports" }

var (
	reportTypes      = []string{"Incident", "Case Summary", "Evidence", "Warranty", "Investigation"}
	reportStatuses   = []string{"Pending", "Approved", "Completed", "Rejected"}
	reportPriorities = []string{"Low", "Medium", "High", "Urgent"}
)

type updateReportInput struct {
	Title      *string `json:"title"`
	Type       *string `json:"type"`
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	Content    *string `json:"content"`
	CaseID     *string `json:"caseId"`
	OBID       *string `json:"obId"`
	EvidenceID *string `json:"evidenceId"`
}
