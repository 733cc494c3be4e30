package gatt

import (
	"sync"

	"github.com/juju/errors"
)

// A DB is the server-side attribute database: the current service list
// and the attribute table flattened from it. All reads operate on the
// table built by the most recent SetServices; there is no incremental
// update. A DB is safe for concurrent use by multiple goroutines.
type DB struct {
	mu    sync.RWMutex
	base  uint16
	svcs  []*Service
	attrs *attrRange
}

// An Option configures a DB. It returns an option to restore the
// previous value.
// See http://commandcenter.blogspot.com.au/2014/01/self-referential-functions-and-design.html for more discussion.
type Option func(*DB) Option

// BaseHandle sets the handle assigned to the first attribute.
// The default is 1, the lowest valid ATT handle.
func BaseHandle(h uint16) Option {
	return func(db *DB) Option {
		prev := db.base
		db.base = h
		return BaseHandle(prev)
	}
}

// NewDB creates an attribute database holding svcs, which may be empty.
// It fails if an option is invalid or the flattened table would not fit
// in the 16-bit handle space.
func NewDB(svcs []*Service, opts ...Option) (*DB, error) {
	db := &DB{base: 1}
	for _, opt := range opts {
		opt(db)
	}
	if db.base == 0 {
		return nil, errors.NotValidf("base handle 0")
	}
	if err := db.SetServices(svcs); err != nil {
		return nil, errors.Trace(err)
	}
	return db, nil
}

// SetServices atomically replaces the service list and rebuilds the
// whole attribute table before returning. Service order is preserved;
// it determines handle assignment. Concurrent readers observe either
// the old table or the new one, never a partial rebuild.
func (db *DB) SetServices(svcs []*Service) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	total := 0
	for _, svc := range svcs {
		total += svc.attrCount()
	}
	if total > 0xFFFF-int(db.base)+1 {
		return errors.NotValidf("%d attributes from base handle %d", total, db.base)
	}

	attrs, err := generateAttrs(svcs, db.base)
	if err != nil {
		return errors.Trace(err)
	}
	db.svcs = append([]*Service(nil), svcs...)
	db.attrs = attrs
	logger.WithField("attrs", total).Debug("attribute table rebuilt")
	return nil
}

// Clear removes all services, leaving an empty table.
func (db *DB) Clear() {
	// A nil service list cannot fail validation.
	_ = db.SetServices(nil)
}

// Empty reports whether the database holds no services.
func (db *DB) Empty() bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.svcs) == 0
}

// Len returns the number of attributes in the current table.
func (db *DB) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.attrs.aa)
}

// LastHandle returns the highest assigned handle, or base-1 if the
// table is empty.
func (db *DB) LastHandle() uint16 {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.attrs.lastHandle()
}

// AttributeAt returns the attribute with handle h. Handles are dense,
// so the only failure is a handle outside the table; it satisfies
// errors.IsNotFound. Remote peers supply arbitrary handles, so this is
// an expected occurrence, not a programming error.
func (db *DB) AttributeAt(h uint16) (Attr, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	a, ok := db.attrs.At(h)
	if !ok {
		return Attr{}, errors.NotFoundf("attribute 0x%04X", h)
	}
	return a, nil
}

// Subrange returns the attributes with handles in [start, end]. It may
// return an empty slice, and never panics for out-of-range bounds.
func (db *DB) Subrange(start, end uint16) []Attr {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.attrs.Subrange(start, end)
}

// ServiceStartHandle returns the handle of the declaration attribute of
// the i-th service in the current list. It fails, satisfying
// errors.IsNotValid, if i is not a valid index.
func (db *DB) ServiceStartHandle(i int) (uint16, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if i < 0 || i >= len(db.svcs) {
		return 0, errors.NotValidf("service index %d", i)
	}
	n := db.base
	for _, svc := range db.svcs[:i] {
		n += uint16(svc.attrCount())
	}
	return n, nil
}

// ServiceEndHandle returns the last handle belonging to the i-th
// service in the current list. Same failure mode as ServiceStartHandle.
func (db *DB) ServiceEndHandle(i int) (uint16, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if i < 0 || i >= len(db.svcs) {
		return 0, errors.NotValidf("service index %d", i)
	}
	n := db.base
	for _, svc := range db.svcs[:i] {
		n += uint16(svc.attrCount())
	}
	return n + uint16(db.svcs[i].attrCount()) - 1, nil
}

// ServiceContaining returns the service whose handle range contains h.
// The service ranges partition the table, so the only failure is a
// handle outside it; it satisfies errors.IsNotFound.
func (db *DB) ServiceContaining(h uint16) (*Service, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	n := db.base
	for _, svc := range db.svcs {
		end := n + uint16(svc.attrCount()) - 1
		if h >= n && h <= end {
			return svc, nil
		}
		n = end + 1
	}
	return nil, errors.NotFoundf("service containing handle 0x%04X", h)
}

// WriteValue replaces the value of the attribute with handle h. No
// handle is resequenced: the table's shape depends only on the service
// list, never on attribute values. Permission checking, notification
// fan-out, and persistence are the ATT request handler's concern.
func (db *DB) WriteValue(h uint16, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	i := db.attrs.idx(int(h))
	if i < 0 {
		return errors.NotFoundf("attribute 0x%04X", h)
	}
	db.attrs.aa[i].Value = append([]byte(nil), value...)
	return nil
}
