package models

import "time"

// Run status values. A run is Running from creation until the walk finishes;
// only catastrophic failures (feed unavailable, inability to stream the
// catalog) end in Failed. Per-variant mutation errors do not.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// SyncRun is the persisted record of one reconciliation run against a shop.
// The orchestrator owns it exclusively: created at run start, mutated
// throughout, finalized at run end.
type SyncRun struct {
	ID   string `gorm:"column:id;primaryKey;size:36" json:"id"`
	Shop string `gorm:"column:shop;index" json:"shop"`

	TotalProducts int `gorm:"column:total_products" json:"total_products"`
	TotalVariants int `gorm:"column:total_variants" json:"total_variants"`

	Synced  int `gorm:"column:synced" json:"synced"`
	Skipped int `gorm:"column:skipped" json:"skipped"`
	Errors  int `gorm:"column:errors" json:"errors"`

	// SuccessRate is synced / (synced + skipped), computed at completion.
	SuccessRate float64 `gorm:"column:success_rate" json:"success_rate"`

	// Pricing-strategy counters: which tier priced each matched variant.
	MapMatched    int `gorm:"column:map_matched" json:"map_matched"`
	MapUsedJobber int `gorm:"column:map_used_jobber" json:"map_used_jobber"`
	MapUsedRetail int `gorm:"column:map_used_retail" json:"map_used_retail"`
	MapSkipped    int `gorm:"column:map_skipped" json:"map_skipped"`

	Status string `gorm:"column:status;index" json:"status"`

	// ErrorMessage holds the fatal error for failed runs, or a capped sample
	// of per-variant errors for completed ones.
	ErrorMessage string `gorm:"column:error_message;type:text" json:"error_message"`

	StartedAt   time.Time  `gorm:"column:started_at" json:"started_at"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`
}

// TableName overrides the table name.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// Processed returns how many variants the run has handled so far.
func (r *SyncRun) Processed() int {
	return r.Synced + r.Skipped
}

// ProgressView is the read-only progress projection served to clients.
type ProgressView struct {
	Status          string  `json:"status"`
	Processed       int     `json:"processed"`
	Total           int     `json:"total"`
	ProgressPercent float64 `json:"progress_percent"`
	Synced          int     `json:"synced"`
	Skipped         int     `json:"skipped"`
	Errors          int     `json:"errors"`
}

// Progress projects a run onto its progress view.
func Progress(run *SyncRun) ProgressView {
	view := ProgressView{
		Status:    run.Status,
		Processed: run.Processed(),
		Total:     run.TotalVariants,
		Synced:    run.Synced,
		Skipped:   run.Skipped,
		Errors:    run.Errors,
	}
	if view.Total > 0 {
		view.ProgressPercent = float64(view.Processed) / float64(view.Total) * 100
	}
	return view
}
