package ir

// idMinter hands out a monotonically increasing sequence of identifiers
// starting at zero. Every namespace that needs unique identity -
// temporaries and stack slots within a Procedure, labels within a
// Module - owns its own minter, so ids are only unique within their
// namespace, never globally.
type idMinter struct {
	next uint32
}

// mint returns the current counter value and advances it.
func (m *idMinter) mint() uint32 {
	id := m.next
	m.next++
	return id
}
