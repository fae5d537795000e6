package history

import (
	"encoding/json"
	"time"
)

// Run is one finished reconciliation.
type Run struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RunID       string    `gorm:"size:36;index" json:"run_id"`
	Account     string    `gorm:"size:64" json:"account"`
	Kind        string    `gorm:"size:32" json:"kind"`
	ResourceKey string    `gorm:"size:255;index" json:"resource_key"`
	Action      string    `gorm:"size:16" json:"action"`
	Changed     bool      `json:"changed"`
	DryRun      bool      `json:"dry_run"`
	Before      string    `gorm:"column:before_state;type:text" json:"before,omitempty"`
	After       string    `gorm:"column:after_state;type:text" json:"after,omitempty"`
	Error       string    `gorm:"type:text" json:"error,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// TableName pins the table name across dialects.
func (Run) TableName() string { return "runs" }

// Columns returns the column names Run maps to.
func Columns() []string {
	return []string{
		"id", "run_id", "account", "kind", "resource_key", "action", "changed",
		"dry_run", "before_state", "after_state", "error", "started_at", "finished_at",
	}
}

// EncodeState renders a projection for the Before and After columns.
func EncodeState(state map[string]any) string {
	if state == nil {
		return ""
	}
	data, err := json.Marshal(state)
	if err != nil {
		return ""
	}
	return string(data)
}
