package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessed(t *testing.T) {
	run := &SyncRun{Synced: 40, Skipped: 10}
	assert.Equal(t, 50, run.Processed())
}

func TestProgress(t *testing.T) {
	t.Run("mid run", func(t *testing.T) {
		run := &SyncRun{
			Status:        RunStatusRunning,
			Synced:        40,
			Skipped:       10,
			Errors:        2,
			TotalVariants: 200,
		}
		view := Progress(run)
		assert.Equal(t, RunStatusRunning, view.Status)
		assert.Equal(t, 50, view.Processed)
		assert.Equal(t, 200, view.Total)
		assert.Equal(t, 25.0, view.ProgressPercent)
		assert.Equal(t, 2, view.Errors)
	})

	t.Run("zero total", func(t *testing.T) {
		view := Progress(&SyncRun{Status: RunStatusRunning})
		assert.Equal(t, 0.0, view.ProgressPercent)
	})
}
