package sync

// Cadence decides whether progress should be persisted after processing the
// Nth variant. Writes thin out as the run grows: every 100 variants for the
// first thousand, every 500 up to ten thousand, every 1000 beyond. This
// bounds write amplification on the run store while keeping the progress
// signal responsive early, when runs are most often watched.
func Cadence(processed int) bool {
	if processed <= 0 {
		return false
	}
	switch {
	case processed <= 1_000:
		return processed%100 == 0
	case processed <= 10_000:
		return processed%500 == 0
	default:
		return processed%1_000 == 0
	}
}
