package gatt

import (
	"encoding/binary"

	"github.com/juju/errors"
)

// An Attr is one row of the flattened attribute table: a typed,
// handle-addressed value. Attrs are derived from the service list and
// are immutable apart from WriteValue; they are rebuilt from scratch
// whenever the service list changes.
type Attr struct {
	Handle uint16
	// EndingHandle is the last handle of the group this attribute
	// starts. For service declarations it spans the whole service;
	// for every other attribute it equals Handle.
	EndingHandle uint16
	Type         UUID
	Value        []byte
	Perms        Permission
}

// An attrRange is a contiguous range of attributes.
type attrRange struct {
	aa   []Attr
	base uint16 // handle number for first attr in aa
}

const (
	tooSmall = -1
	tooLarge = -2
)

// idx returns the index into aa corresponding to handle h.
// If h is too small, idx returns tooSmall (-1).
// If h is too large, idx returns tooLarge (-2).
func (r *attrRange) idx(h int) int {
	if h < int(r.base) {
		return tooSmall
	}
	if int(h) >= int(r.base)+len(r.aa) {
		return tooLarge
	}
	return h - int(r.base)
}

// At returns the attribute with handle h.
func (r *attrRange) At(h uint16) (a Attr, ok bool) {
	i := r.idx(int(h))
	if i < 0 {
		return Attr{}, false
	}
	return r.aa[i], true
}

// Subrange returns attributes in range [start, end]; it may
// return an empty slice. Subrange does not panic for
// out-of-range start or end.
func (r *attrRange) Subrange(start, end uint16) []Attr {
	startidx := r.idx(int(start))
	switch startidx {
	case tooSmall:
		startidx = 0
	case tooLarge:
		return []Attr{}
	}

	endidx := r.idx(int(end) + 1) // [start, end] includes its upper bound!
	switch endidx {
	case tooSmall:
		return []Attr{}
	case tooLarge:
		endidx = len(r.aa)
	}
	return r.aa[startidx:endidx]
}

// lastHandle returns the highest handle in the range, or base-1 if the
// range is empty.
func (r *attrRange) lastHandle() uint16 {
	return r.base + uint16(len(r.aa)) - 1
}

// generateAttrs flattens svcs into an attribute table whose first
// handle is base. Handles are assigned densely in declaration order:
// for each service, the service declaration, then any include
// declarations, then per characteristic the declaration, the value, and
// the descriptors. The assignment is a pure function of svcs; building
// the same list twice yields identical tables.
func generateAttrs(svcs []*Service, base uint16) (*attrRange, error) {
	// Precompute every service's handle span so include declarations
	// can reference services appearing later in the list.
	spans := make(map[*Service]handleSpan, len(svcs))
	n := base
	for _, svc := range svcs {
		cnt := uint16(svc.attrCount())
		spans[svc] = handleSpan{start: n, end: n + cnt - 1}
		n += cnt
	}

	var aa []Attr
	n = base
	for _, svc := range svcs {
		sa, err := svc.generateAttrs(n, spans)
		if err != nil {
			return nil, errors.Trace(err)
		}
		aa = append(aa, sa...)
		n += uint16(len(sa))
	}

	r := &attrRange{aa: aa, base: base}
	dumpAttrs(r)
	return r, nil
}

// A handleSpan is the [start, end] handle range a service occupies.
type handleSpan struct {
	start, end uint16
}

// leUint16 encodes v as 2 little-endian bytes, the ATT wire order for
// handles embedded in attribute values.
func leUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}
