package pipeline

// state is where a single Execute call is in its credential lifecycle.
//
//	Valid ──401, not yet refreshed──▶ Refreshing
//	Expired ─────────────────────────▶ Refreshing
//	Refreshing ──ok──▶ Valid
//	Refreshing ──fail─▶ Failed
//
// Refreshing is entered at most once per call, which bounds each call to one
// refresh and one retried operation.
type state int

const (
	stateValid state = iota
	stateExpired
	stateRefreshing
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateValid:
		return "valid"
	case stateExpired:
		return "expired"
	case stateRefreshing:
		return "refreshing"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}
