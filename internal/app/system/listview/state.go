// internal/app/system/listview/state.go
package listview

// FetchState is the lifecycle of one collection fetch.
//
//	Idle -> Loading -> {Success, Error}
//	Success -> Loading, Error -> Loading
type FetchState int

const (
	Idle FetchState = iota
	Loading
	Success
	Error
)

func (s FetchState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// RenderState selects which branch a list template shows.
type RenderState string

const (
	RenderLoading RenderState = "loading"
	RenderError   RenderState = "error"
	RenderEmpty   RenderState = "empty"
	RenderReady   RenderState = "ready"
)

// RenderStateOf maps a fetch state and the number of visible rows to the
// branch to render. Idle counts as loading: nothing has been fetched yet.
func RenderStateOf(s FetchState, visible int) RenderState {
	switch s {
	case Idle, Loading:
		return RenderLoading
	case Error:
		return RenderError
	}
	if visible == 0 {
		return RenderEmpty
	}
	return RenderReady
}
