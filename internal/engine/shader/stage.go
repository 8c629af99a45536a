package shader

// Stage identifies a pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// State is the lifecycle state of a Program.
//
// Construction moves a program from StateUninitialized through
// StateCompiling to either StateLinked or StateFailed. Both end states are
// terminal; reloading shaders means building a new Program.
type State int

const (
	StateUninitialized State = iota
	StateCompiling
	StateFailed
	StateLinked
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCompiling:
		return "compiling"
	case StateFailed:
		return "failed"
	case StateLinked:
		return "linked"
	default:
		return "unknown"
	}
}
