package arm64

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Asm is a fully lowered assembly file, held as one line per instruction
// plus the blank-line separators between procedures. It is produced once,
// by Generate, and is otherwise inert text until SaveTo writes it out.
type Asm struct {
	lines []string
}

// AssembleText renders each procedure's already-lowered instruction list
// to text and joins them with a single blank line between procedures,
// matching the source order the module's driver added them in.
func AssembleText(procs [][]Instruction) *Asm {
	asm := &Asm{}
	for i, instrs := range procs {
		if i > 0 {
			asm.lines = append(asm.lines, "")
		}
		for _, inst := range instrs {
			asm.lines = append(asm.lines, inst.String())
		}
	}
	return asm
}

// String renders the full file as a single string, lines joined by "\n"
// with a trailing newline - what SaveTo writes verbatim.
func (a *Asm) String() string {
	var b strings.Builder
	for _, l := range a.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// SaveTo writes the assembly text to path, creating or truncating it. The
// file handle's lifetime is scoped to this call and is closed on every
// exit path, including early returns on a write error. I/O failure is the
// only error this package's code generation surfaces to its caller; there
// is no retry.
func (a *Asm) SaveTo(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "arm64: creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "arm64: closing %s", path)
		}
	}()

	w := bufio.NewWriter(f)
	for _, l := range a.lines {
		if _, err = w.WriteString(l); err != nil {
			return errors.Wrapf(err, "arm64: writing %s", path)
		}
		if err = w.WriteByte('\n'); err != nil {
			return errors.Wrapf(err, "arm64: writing %s", path)
		}
	}
	if err = w.Flush(); err != nil {
		return errors.Wrapf(err, "arm64: flushing %s", path)
	}
	return nil
}
