package ir

// TempID identifies a Temporary uniquely within the Procedure that minted
// it. It carries no meaning across procedures.
type TempID uint32

// Temporary is a virtual register: defined exactly once, used zero or more
// times, with a size and signedness fixed forever at creation. Temporaries
// are the nodes of the interference graph built by the liveness pass.
type Temporary struct {
	id     TempID
	size   Size
	signed bool
}

// ID returns the temporary's identity within its owning procedure.
func (t Temporary) ID() TempID { return t.id }

// Size returns the temporary's width in bytes.
func (t Temporary) Size() Size { return t.size }

// Signed reports whether the temporary holds a signed integer.
func (t Temporary) Signed() bool { return t.signed }

// SlotID identifies a StackSlot uniquely within its owning Procedure.
type SlotID uint32

// StackSlot is a named frame location. It is created either implicitly,
// one per declared procedure argument, or explicitly by storing a
// Temporary. Its size and signedness, like a Temporary's, are fixed at
// creation.
type StackSlot struct {
	id     SlotID
	size   Size
	signed bool
}

// ID returns the slot's identity within its owning procedure.
func (s StackSlot) ID() SlotID { return s.id }

// Size returns the slot's width in bytes.
func (s StackSlot) Size() Size { return s.size }

// Signed reports whether the slot holds a signed integer.
func (s StackSlot) Signed() bool { return s.signed }

// LabelID identifies a Label uniquely within the Module that minted it.
type LabelID uint32

// Label is a module-unique symbolic address. Every procedure mints exactly
// one, its return label, at lowering time.
type Label struct {
	id LabelID
}

// ID returns the label's module-wide identity.
func (l Label) ID() LabelID { return l.id }
