package main

import "github.com/saumitralohokare/lubec/ir"

// demos maps a sample name, as accepted by `lubec build --demo`, to a
// builder for the module it exercises. Each one mirrors one of the
// reference scenarios this backend is expected to handle correctly.
var demos = map[string]func() *ir.Module{
	"const-return":         constReturnDemo,
	"two-arg-add":          twoArgAddDemo,
	"ten-arg-sink":         tenArgSinkDemo,
	"mixed-width":          mixedWidthDemo,
	"call":                 callDemo,
	"signed-add-roundtrip": signedAddRoundtripDemo,
}

// constReturnDemo builds a public procedure that sets and returns a
// 32-bit constant, never touching the stack.
func constReturnDemo() *ir.Module {
	m := ir.NewModule()
	p := ir.NewProcedure("_deepThink")
	p.MakePublic()
	t := p.AddInstSet(ir.I32(42))
	p.AddInstReturn(&t)
	m.AddProc(p)
	return m
}

// twoArgAddDemo builds `_add(a, b) -> a + b` over two 32-bit arguments.
func twoArgAddDemo() *ir.Module {
	m := ir.NewModule()
	p := ir.NewProcedure("_add")
	p.MakePublic()
	a := p.AddArg(ir.DoubleWord, true)
	b := p.AddArg(ir.DoubleWord, true)
	ta := p.AddInstLoad(a)
	tb := p.AddInstLoad(b)
	sum := p.AddInstAdd(ta, tb)
	p.AddInstReturn(&sum)
	m.AddProc(p)
	return m
}

// tenArgSinkDemo builds a private procedure taking ten 32-bit arguments
// and returning none, to exercise overflow-argument spilling past the
// eighth.
func tenArgSinkDemo() *ir.Module {
	m := ir.NewModule()
	p := ir.NewProcedure("_why_would_you_do_this")
	for i := 0; i < 10; i++ {
		p.AddArg(ir.DoubleWord, true)
	}
	p.AddInstReturn(nil)
	m.AddProc(p)
	return m
}

// mixedWidthDemo sets and stores a constant of each width, then reloads
// and returns only the 64-bit one, to exercise every narrow store form
// and the wide-immediate mov/movk chain.
func mixedWidthDemo() *ir.Module {
	m := ir.NewModule()
	p := ir.NewProcedure("_mixed_locals")
	p.MakePublic()

	i8 := p.AddInstSet(ir.I8(-1))
	p.AddInstStore(i8)

	u16 := p.AddInstSet(ir.U16(0xbeef))
	p.AddInstStore(u16)

	i32 := p.AddInstSet(ir.I32(-123456))
	p.AddInstStore(i32)

	u64 := p.AddInstSet(ir.U64(9876543210))
	slot := p.AddInstStore(u64)

	result := p.AddInstLoad(slot)
	p.AddInstReturn(&result)
	m.AddProc(p)
	return m
}

// callDemo builds `_main`, which stores two 32-bit constants, reloads
// them, calls `_add` with both, and returns the call's result - exercising
// the non-leaf prologue and the Call/CallResult lowering together.
func callDemo() *ir.Module {
	m := ir.NewModule()

	add := ir.NewProcedure("_add")
	add.MakePublic()
	a := add.AddArg(ir.DoubleWord, true)
	b := add.AddArg(ir.DoubleWord, true)
	ta := add.AddInstLoad(a)
	tb := add.AddInstLoad(b)
	sum := add.AddInstAdd(ta, tb)
	add.AddInstReturn(&sum)
	m.AddProc(add)

	main := ir.NewProcedure("_main")
	main.MakePublic()
	c1 := main.AddInstSet(ir.I32(2))
	s1 := main.AddInstStore(c1)
	c2 := main.AddInstSet(ir.I32(-2))
	s2 := main.AddInstStore(c2)
	l1 := main.AddInstLoad(s1)
	l2 := main.AddInstLoad(s2)
	main.AddInstCall("_add", []ir.Temporary{l1, l2})
	result := main.AddInstCallResult(ir.DoubleWord, true)
	main.AddInstReturn(&result)
	m.AddProc(main)

	return m
}

// signedAddRoundtripDemo builds `_signed_add(I16, I16)`, storing the sum
// into a local before reloading and returning it, to exercise the
// sign-extending ldrsh form on the reload.
func signedAddRoundtripDemo() *ir.Module {
	m := ir.NewModule()
	p := ir.NewProcedure("_signed_add")
	p.MakePublic()
	a := p.AddArg(ir.Word, true)
	b := p.AddArg(ir.Word, true)
	ta := p.AddInstLoad(a)
	tb := p.AddInstLoad(b)
	sum := p.AddInstAdd(ta, tb)
	slot := p.AddInstStore(sum)
	result := p.AddInstLoad(slot)
	p.AddInstReturn(&result)
	m.AddProc(p)
	return m
}
