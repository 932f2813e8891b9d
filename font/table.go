package font

import (
	"github.com/tzface/tzface/errors"
)

// Handle is an opaque reference to a loaded face. Handle 0 is reserved and
// always invalid.
type Handle uint32

type entry struct {
	face  Face
	valid bool
}

// Table tracks loaded faces by handle. Released handles are recycled by
// later loads through a free list. Not safe for concurrent use.
type Table struct {
	entries  []entry
	freeList []Handle
}

// NewTable creates an empty font table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 4),
		freeList: make([]Handle, 0, 2),
	}
}

// Load stores a face and returns its handle. A nil face yields handle 0.
func (t *Table) Load(face Face) Handle {
	if face == nil {
		return 0
	}

	e := entry{face: face, valid: true}
	if n := len(t.freeList); n > 0 {
		handle := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[handle-1] = e
		return handle
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

// Get retrieves the face behind a handle.
func (t *Table) Get(handle Handle) (Face, bool) {
	if handle == 0 || int(handle) > len(t.entries) {
		return nil, false
	}
	e := t.entries[handle-1]
	if !e.valid {
		return nil, false
	}
	return e.face, true
}

// Render rasterizes s with the face behind handle.
func (t *Table) Render(handle Handle, s string) ([]string, error) {
	f, ok := t.Get(handle)
	if !ok {
		return nil, errors.NotFound(errors.PhaseFont, "font handle", handle)
	}
	return f.Render(s), nil
}

// Unload releases a handle's face and reports whether it was loaded. The
// handle is invalid afterwards and may be handed out again.
func (t *Table) Unload(handle Handle) bool {
	if handle == 0 || int(handle) > len(t.entries) {
		return false
	}
	if !t.entries[handle-1].valid {
		return false
	}
	t.entries[handle-1] = entry{}
	t.freeList = append(t.freeList, handle)
	return true
}

// Len reports the number of loaded faces.
func (t *Table) Len() int {
	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Close releases every loaded face. The table is empty and reusable
// afterwards.
func (t *Table) Close() {
	t.entries = t.entries[:0]
	t.freeList = t.freeList[:0]
}
