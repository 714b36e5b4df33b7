package ir

// Value is an immediate constant tagged with a concrete integer type drawn
// from the cross product of {signed, unsigned} x {8, 16, 32, 64} bits. It
// carries its own size and signedness so that later stages never need to
// consult the producing expression to know how to materialize it.
type Value struct {
	size   Size
	signed bool
	// bits holds the constant's raw bit pattern, always stored
	// zero-extended to 64 bits regardless of size or signedness. Bits64
	// hands this back out after mixing in the correct extension.
	bits uint64
}

// I8 constructs a signed 8-bit constant.
func I8(v int8) Value { return Value{size: Byte, signed: true, bits: uint64(uint8(v))} }

// U8 constructs an unsigned 8-bit constant.
func U8(v uint8) Value { return Value{size: Byte, signed: false, bits: uint64(v)} }

// I16 constructs a signed 16-bit constant.
func I16(v int16) Value { return Value{size: Word, signed: true, bits: uint64(uint16(v))} }

// U16 constructs an unsigned 16-bit constant.
func U16(v uint16) Value { return Value{size: Word, signed: false, bits: uint64(v)} }

// I32 constructs a signed 32-bit constant.
func I32(v int32) Value { return Value{size: DoubleWord, signed: true, bits: uint64(uint32(v))} }

// U32 constructs an unsigned 32-bit constant.
func U32(v uint32) Value { return Value{size: DoubleWord, signed: false, bits: uint64(v)} }

// I64 constructs a signed 64-bit constant.
func I64(v int64) Value { return Value{size: QuadWord, signed: true, bits: uint64(v)} }

// U64 constructs an unsigned 64-bit constant.
func U64(v uint64) Value { return Value{size: QuadWord, signed: false, bits: v} }

// Size returns the value's declared width.
func (v Value) Size() Size { return v.size }

// Signed reports whether the value is a signed integer type.
func (v Value) Signed() bool { return v.signed }

// Bits64 returns the value's canonical 64-bit reinterpretation: the stored
// bit pattern zero-extended, or sign-extended when the value is signed and
// its high bit is set. Code generation uses this to synthesize the
// mov/movk chain for wide immediates uniformly regardless of the value's
// original width.
func (v Value) Bits64() uint64 {
	if !v.signed || v.size == QuadWord {
		return v.bits
	}
	shift := uint(64 - 8*v.size)
	return uint64(int64(v.bits<<shift) >> shift)
}
