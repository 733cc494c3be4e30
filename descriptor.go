package gatt

// A Descriptor is metadata attached to a characteristic.
type Descriptor struct {
	uuid  UUID
	value []byte
	perms Permission
	char  *Characteristic
}

// UUID returns the descriptor's UUID.
func (d *Descriptor) UUID() UUID { return d.uuid }

// Value returns the descriptor's value bytes.
func (d *Descriptor) Value() []byte { return d.value }

// Permissions returns the descriptor's permissions.
func (d *Descriptor) Permissions() Permission { return d.perms }

// Characteristic returns the characteristic owning the descriptor.
func (d *Descriptor) Characteristic() *Characteristic { return d.char }

// SetValue sets the descriptor's value bytes.
func (d *Descriptor) SetValue(b []byte) { d.value = b }

// SetPermissions sets the descriptor's permissions.
func (d *Descriptor) SetPermissions(p Permission) { d.perms = p }

func (d *Descriptor) generateAttr(n uint16) Attr {
	return Attr{
		Handle:       n,
		EndingHandle: n,
		Type:         d.uuid,
		Value:        d.value,
		Perms:        d.perms,
	}
}
