package codegen

// State is the generator's position in the block structure, derived from the
// innermost open frame.
type State int

const (
	StateTop State = iota
	StateInStep
	StateInIfChain
	StateInSelectCase
	StateInArguments
	StateInLengthLoop
)

var stateNames = [...]string{
	StateTop:          "TOP",
	StateInStep:       "IN_STEP",
	StateInIfChain:    "IN_IF_CHAIN",
	StateInSelectCase: "IN_SELECT_CASE",
	StateInArguments:  "IN_ARGUMENTS",
	StateInLengthLoop: "IN_LENGTH_LOOP",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN_STATE"
	}
	return stateNames[s]
}

type frameKind int

const (
	frameProcedure frameKind = iota
	frameStep
	frameIf
	frameSelect
	frameArgs
	frameLength
)

// frame is one open block. Only the fields relevant to its kind are set.
type frame struct {
	kind frameKind
	row  int

	// step: false for the procedure-wide step opened by the preamble
	section bool

	// select: branches written so far
	cases int

	// args: continuation token, whether "with arguments" was written, and
	// whether a send wait follows the block
	token  string
	opened bool
	wait   bool

	// length: last row emitted ahead of the cursor
	lastRow int
}

func (f frame) state() State {
	switch f.kind {
	case frameStep:
		return StateInStep
	case frameIf:
		return StateInIfChain
	case frameSelect:
		return StateInSelectCase
	case frameArgs:
		return StateInArguments
	case frameLength:
		return StateInLengthLoop
	default:
		return StateTop
	}
}

func (f frame) describe() string {
	switch f.kind {
	case frameStep:
		return "step"
	case frameIf:
		return "IF"
	case frameSelect:
		return "SELECT CASE"
	case frameArgs:
		return "argument block"
	case frameLength:
		return "length-prefixed group"
	default:
		return "procedure"
	}
}
