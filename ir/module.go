package ir

// Module is an ordered collection of Procedures sharing a single
// module-scoped label minter. The label minter is the only piece of state
// shared across procedures: code generation draws exactly one label from
// it per procedure, for that procedure's return label.
type Module struct {
	procs  []*Procedure
	labels idMinter
}

// NewModule creates an empty module.
func NewModule() *Module {
	return &Module{}
}

// AddProc appends p to the module.
func (m *Module) AddProc(p *Procedure) {
	m.procs = append(m.procs, p)
}

// Procedures returns the module's procedures in the order they were added.
func (m *Module) Procedures() []*Procedure {
	return m.procs
}

// NewLabel mints a fresh, module-unique label. Code generation calls this
// once per procedure to mint that procedure's return label; nothing else
// in the module competes for this counter.
func (m *Module) NewLabel() Label {
	return Label{id: LabelID(m.labels.mint())}
}
