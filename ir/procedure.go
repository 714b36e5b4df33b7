package ir

// Procedure is a named, optionally public, straight-line routine: a fresh
// temporary-id counter, a fresh slot-id counter, the ordered argument and
// stack slots it owns, its instruction stream, and a leaf flag that flips
// to false the moment a Call is appended.
type Procedure struct {
	name   string
	public bool

	temps idMinter
	slots idMinter

	args     []StackSlot
	allSlots []StackSlot
	instrs   []Instruction
	isLeaf   bool
}

// NewProcedure starts a new, private, empty procedure named name.
func NewProcedure(name string) *Procedure {
	return &Procedure{name: name, isLeaf: true}
}

// Name returns the procedure's symbol name, used verbatim in emitted
// assembly.
func (p *Procedure) Name() string { return p.name }

// MakePublic marks the procedure as externally visible, causing a
// `.global` directive to be emitted ahead of it.
func (p *Procedure) MakePublic() { p.public = true }

// Public reports whether the procedure was marked public.
func (p *Procedure) Public() bool { return p.public }

// IsLeaf reports whether the procedure contains no Call instruction. A
// leaf procedure never needs to save the frame/link register pair.
func (p *Procedure) IsLeaf() bool { return p.isLeaf }

// Args returns the procedure's argument slots in declaration order.
func (p *Procedure) Args() []StackSlot { return p.args }

// Slots returns every stack slot the procedure owns - arguments first,
// then explicit stores - in creation order.
func (p *Procedure) Slots() []StackSlot { return p.allSlots }

// Instructions returns the procedure's instruction stream in program
// order.
func (p *Procedure) Instructions() []Instruction { return p.instrs }

func (p *Procedure) newTemp(size Size, signed bool) Temporary {
	return Temporary{id: TempID(p.temps.mint()), size: size, signed: signed}
}

func (p *Procedure) newSlot(size Size, signed bool) StackSlot {
	s := StackSlot{id: SlotID(p.slots.mint()), size: size, signed: signed}
	p.allSlots = append(p.allSlots, s)
	return s
}

// AddArg declares the next positional argument, implicitly allocating a
// stack slot to hold it once the prologue spills it off the ABI argument
// registers (or, past the eighth argument, off the caller's stack).
func (p *Procedure) AddArg(size Size, signed bool) StackSlot {
	slot := p.newSlot(size, signed)
	p.args = append(p.args, slot)
	return slot
}

// AddInstSet appends a Set, materializing value into a freshly minted
// temporary of value's own size and signedness.
func (p *Procedure) AddInstSet(value Value) Temporary {
	dest := p.newTemp(value.Size(), value.Signed())
	p.instrs = append(p.instrs, Instruction{op: OpSet, dest: dest, value: value})
	return dest
}

// AddInstLoad appends a Load of slot into a freshly minted temporary
// inheriting slot's size and signedness.
func (p *Procedure) AddInstLoad(slot StackSlot) Temporary {
	dest := p.newTemp(slot.Size(), slot.Signed())
	p.instrs = append(p.instrs, Instruction{op: OpLoad, dest: dest, slot: slot})
	return dest
}

// AddInstStore appends a Store of temp into a freshly allocated stack slot
// of temp's size and signedness, returning that slot.
func (p *Procedure) AddInstStore(temp Temporary) StackSlot {
	slot := p.newSlot(temp.Size(), temp.Signed())
	p.instrs = append(p.instrs, Instruction{op: OpStore, slot: slot, src: temp})
	return slot
}

// AddInstAdd appends a + b into a freshly minted temporary. a and b must
// have identical sizes; the result inherits that size, and is signed if
// either operand is signed. Mismatched operand sizes are builder misuse
// and panic immediately rather than propagate a malformed instruction.
func (p *Procedure) AddInstAdd(a, b Temporary) Temporary {
	if a.Size() != b.Size() {
		panic("ir: Add operands must have matching sizes")
	}
	dest := p.newTemp(a.Size(), a.Signed() || b.Signed())
	p.instrs = append(p.instrs, Instruction{op: OpAdd, dest: dest, src: a, src2: b})
	return dest
}

// AddInstCall appends a call to the symbol name, passing args in order.
// Any procedure that appends at least one Call is no longer a leaf.
func (p *Procedure) AddInstCall(name string, args []Temporary) {
	p.isLeaf = false
	p.instrs = append(p.instrs, Instruction{op: OpCall, sym: name, args: args})
}

// AddInstCallResult appends an instruction that consumes the return value
// of the most recently appended Call into a freshly minted temporary of
// the given size and signedness. The builder does not verify that a Call
// immediately precedes it, nor that nothing in between clobbers the
// return register; that discipline is the caller's responsibility.
func (p *Procedure) AddInstCallResult(size Size, signed bool) Temporary {
	dest := p.newTemp(size, signed)
	p.instrs = append(p.instrs, Instruction{op: OpCallResult, dest: dest})
	return dest
}

// AddInstReturn appends a Return. src may be nil for a procedure that
// returns no value.
func (p *Procedure) AddInstReturn(src *Temporary) {
	inst := Instruction{op: OpReturn}
	if src != nil {
		inst.src = *src
		inst.hasSrc = true
	}
	p.instrs = append(p.instrs, inst)
}

// StackSize returns the procedure's local frame size in bytes: the sum of
// every slot's size, each padded to its own natural alignment in creation
// order, then rounded up to a 16-byte boundary as AAPCS64 requires at
// function boundaries. It does not include the 16-byte frame/link-register
// save area a non-leaf procedure additionally reserves during prologue.
func (p *Procedure) StackSize() int {
	off := 0
	for _, s := range p.allSlots {
		off = s.Size().Align(off)
		off += int(s.Size())
	}
	return alignUp16(off)
}

// SlotOffsets computes each slot's byte offset from SP within the
// procedure's local frame (i.e. within [0, StackSize())). Slots are laid
// out from the top of the frame down: the cursor starts at StackSize() and,
// for each slot in creation order, steps down by the slot's size and then
// rounds down to a multiple of that size, so earlier-created slots sit at
// higher addresses. Every returned offset is non-negative, aligned to its
// slot's size, below StackSize(), and no two slots overlap.
func (p *Procedure) SlotOffsets() map[SlotID]int {
	offsets := make(map[SlotID]int, len(p.allSlots))
	cursor := p.StackSize()
	for _, s := range p.allSlots {
		size := int(s.Size())
		cursor -= size
		cursor &^= size - 1
		offsets[s.ID()] = cursor
	}
	return offsets
}

func alignUp16(off int) int {
	return (off + 15) &^ 15
}
