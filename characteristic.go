package gatt

// A Characteristic is a BLE characteristic: a typed value with
// properties, permissions, and optional descriptors. Configure it
// before its service is installed in a DB; later changes require
// replacing the database's service list.
type Characteristic struct {
	uuid    UUID
	props   Property
	perms   Permission
	value   []byte
	descs   []*Descriptor
	service *Service
}

// UUID returns the characteristic's UUID.
func (c *Characteristic) UUID() UUID { return c.uuid }

// Properties returns the characteristic's property flags.
func (c *Characteristic) Properties() Property { return c.props }

// Permissions returns the permissions of the characteristic's value
// attribute.
func (c *Characteristic) Permissions() Permission { return c.perms }

// Value returns the characteristic's value bytes.
func (c *Characteristic) Value() []byte { return c.value }

// Descriptors returns the characteristic's descriptors in declaration
// order.
func (c *Characteristic) Descriptors() []*Descriptor { return c.descs }

// Service returns the service owning the characteristic.
func (c *Characteristic) Service() *Service { return c.service }

// SetProperties sets the characteristic's property flags, encoded into
// its declaration attribute.
func (c *Characteristic) SetProperties(p Property) { c.props = p }

// SetPermissions sets the permissions of the characteristic's value
// attribute.
func (c *Characteristic) SetPermissions(p Permission) { c.perms = p }

// SetValue sets the characteristic's value bytes.
func (c *Characteristic) SetValue(b []byte) { c.value = b }

// AddDescriptor appends a descriptor to the characteristic and returns
// it for configuration. Descriptor order is significant: it determines
// handle assignment.
func (c *Characteristic) AddDescriptor(u UUID) *Descriptor {
	d := &Descriptor{uuid: u, char: c}
	c.descs = append(c.descs, d)
	return d
}

// attrCount returns the number of attributes the characteristic
// contributes: declaration, value, and one per descriptor.
func (c *Characteristic) attrCount() int {
	return 2 + len(c.descs)
}

// generateAttrs emits the characteristic's attributes starting at
// handle n. The declaration's value embeds the handle of the value
// attribute, which by construction is n+1.
func (c *Characteristic) generateAttrs(n uint16) []Attr {
	valuen := n + 1
	declv := append([]byte{byte(c.props)}, leUint16(valuen)...)
	declv = append(declv, c.uuid.wireBytes()...)

	aa := []Attr{
		{
			Handle: n,
			Type:   attrCharacteristicUUID,
			Value:  declv,
			Perms:  AttrRead,
		},
		{
			Handle:       valuen,
			EndingHandle: valuen,
			Type:         c.uuid,
			Value:        c.value,
			Perms:        c.perms,
		},
	}
	n += 2

	for _, d := range c.descs {
		aa = append(aa, d.generateAttr(n))
		n++
	}

	aa[0].EndingHandle = n - 1
	return aa
}
