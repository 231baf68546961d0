package cycle

// State is the phase a cycle is in.
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching"
	StateParsing    State = "parsing"
	StateDiffing    State = "diffing"
	StateNotifying  State = "notifying"
	StatePersisting State = "persisting"
)

// Outcome labels a finished cycle for metrics.
type Outcome string

const (
	OutcomeOK           Outcome = "ok"
	OutcomeFetchError   Outcome = "fetch_error"
	OutcomeParseFailure Outcome = "parse_failure"
	OutcomeStoreError   Outcome = "store_error"
	OutcomeSkipped      Outcome = "skipped"
)
