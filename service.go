package gatt

import "github.com/juju/errors"

// A Service is a BLE service: a group of characteristics under one
// UUID. Services are plain descriptions; they carry no handles of their
// own. Calls to AddCharacteristic and AddIncludedService must occur
// before the service is installed in a DB.
type Service struct {
	uuid     UUID
	primary  bool
	chars    []*Characteristic
	includes []*Service
}

// NewService returns a new primary service with the given UUID.
func NewService(u UUID) *Service {
	return &Service{uuid: u, primary: true}
}

// NewSecondaryService returns a new secondary service with the given
// UUID. Secondary services are only referenced through include
// declarations of other services.
func NewSecondaryService(u UUID) *Service {
	return &Service{uuid: u}
}

// AddCharacteristic appends a characteristic to the service and returns
// it for configuration. Characteristic order is significant: it
// determines handle assignment. Duplicate UUIDs are permitted; the
// database performs no semantic validation.
func (s *Service) AddCharacteristic(u UUID) *Characteristic {
	c := &Characteristic{service: s, uuid: u}
	s.chars = append(s.chars, c)
	return c
}

// AddIncludedService records that s includes svc. The included service
// must itself be present in the service list given to the database;
// its handle range is resolved at build time.
func (s *Service) AddIncludedService(svc *Service) {
	s.includes = append(s.includes, svc)
}

// UUID returns the service's UUID.
func (s *Service) UUID() UUID { return s.uuid }

// Primary reports whether the service is a primary service.
func (s *Service) Primary() bool { return s.primary }

// Characteristics returns the service's characteristics in declaration
// order.
func (s *Service) Characteristics() []*Characteristic { return s.chars }

// Includes returns the services s includes, in declaration order.
func (s *Service) Includes() []*Service { return s.includes }

// attrCount returns the number of attributes the service contributes to
// the table: its declaration, one include declaration per inclusion,
// and each characteristic's attributes.
func (s *Service) attrCount() int {
	n := 1 + len(s.includes)
	for _, c := range s.chars {
		n += c.attrCount()
	}
	return n
}

// generateAttrs emits the service's attributes starting at handle n.
// spans resolves included services to their handle ranges.
func (s *Service) generateAttrs(n uint16, spans map[*Service]handleSpan) ([]Attr, error) {
	typ := attrPrimaryServiceUUID
	if !s.primary {
		typ = attrSecondaryServiceUUID
	}
	decl := Attr{
		Handle: n,
		Type:   typ,
		Value:  s.uuid.wireBytes(),
		Perms:  AttrRead,
		// EndingHandle set below
	}
	aa := []Attr{decl}
	n++

	for _, inc := range s.includes {
		sp, ok := spans[inc]
		if !ok {
			return nil, errors.NotValidf("service %s: included service %s absent from service list", s.uuid, inc.uuid)
		}
		aa = append(aa, Attr{
			Handle:       n,
			EndingHandle: n,
			Type:         attrIncludeUUID,
			Value:        includeValue(sp, inc.uuid),
			Perms:        AttrRead,
		})
		n++
	}

	for _, c := range s.chars {
		ca := c.generateAttrs(n)
		aa = append(aa, ca...)
		n += uint16(len(ca))
	}

	aa[0].EndingHandle = n - 1
	return aa, nil
}

// includeValue encodes an include declaration value: the included
// service's start and end handles, followed by its UUID when the UUID
// has a 16-bit form. Full 128-bit UUIDs are omitted per the BLE spec;
// clients fetch them from the included service's declaration.
func includeValue(sp handleSpan, u UUID) []byte {
	v := append(leUint16(sp.start), leUint16(sp.end)...)
	if s, ok := u.ShortForm(); ok {
		v = append(v, leUint16(s)...)
	}
	return v
}
