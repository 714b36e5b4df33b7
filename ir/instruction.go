package ir

// Op identifies the operation an Instruction performs. Since Go has no
// union type, Instruction is a single flattened struct and each field's
// meaning depends on Op - mirroring how a small tagged-sum IR is usually
// represented in Go.
type Op int

const (
	OpSet Op = iota
	OpLoad
	OpStore
	OpAdd
	OpCall
	OpCallResult
	OpReturn
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	case OpAdd:
		return "add"
	case OpCall:
		return "call"
	case OpCallResult:
		return "call_result"
	case OpReturn:
		return "return"
	default:
		return "op?"
	}
}

// Instruction is one step of a Procedure's straight-line instruction
// stream. Exactly one of the field groups below is meaningful, selected by
// Op:
//
//	OpSet        dest, value
//	OpLoad       dest, slot (src)
//	OpStore      slot (dest), src
//	OpAdd        dest, src, src2
//	OpCall       sym, args
//	OpCallResult dest
//	OpReturn     src, hasSrc
type Instruction struct {
	op Op

	dest Temporary
	src  Temporary
	src2 Temporary
	slot StackSlot

	value Value

	sym  string
	args []Temporary

	hasSrc bool
}

// Op returns the instruction's operation.
func (i Instruction) Op() Op { return i.op }

// Dest returns the defined temporary for OpSet, OpLoad, OpAdd and
// OpCallResult.
func (i Instruction) Dest() Temporary { return i.dest }

// Value returns the constant operand of OpSet.
func (i Instruction) Value() Value { return i.value }

// Slot returns the stack slot operand: the source of OpLoad, the
// destination of OpStore.
func (i Instruction) Slot() StackSlot { return i.slot }

// Src returns the source temporary of OpStore and OpAdd's first operand.
func (i Instruction) Src() Temporary { return i.src }

// Src2 returns OpAdd's second operand.
func (i Instruction) Src2() Temporary { return i.src2 }

// Func returns the callee symbol of OpCall.
func (i Instruction) Func() string { return i.sym }

// Args returns the argument temporaries of OpCall, in call order.
func (i Instruction) Args() []Temporary { return i.args }

// ReturnSrc returns OpReturn's operand and whether one was supplied; a
// bare `return` with no value reports ok == false.
func (i Instruction) ReturnSrc() (t Temporary, ok bool) { return i.src, i.hasSrc }
