package sync

// Config holds the sync run tunables.
type Config struct {
	// PageSize bounds how many products a catalog page request returns.
	PageSize int `mapstructure:"page_size" default:"250"`
	// PageDelayMs is the minimum spacing between page requests.
	PageDelayMs int `mapstructure:"page_delay_ms" default:"500"`
	// ErrorCap bounds how many per-variant errors a run record retains.
	ErrorCap int `mapstructure:"error_cap" default:"50"`
}

// Options selects the behavior of a single run.
type Options struct {
	// RunID fixes the run record's id so callers can hand out the id before
	// the run finishes. Empty generates one.
	RunID string
	// DryRun walks, matches and resolves but issues no mutations.
	DryRun bool
	// Incremental skips the mutation calls for variants whose current price
	// and on-hand quantity already equal the resolved values. Such variants
	// count as synced so match statistics stay comparable with full runs.
	Incremental bool
}
