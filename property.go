package gatt

// A Property is a characteristic property, describing the operations a
// characteristic supports. It is encoded as one byte in the
// characteristic declaration attribute.
type Property byte

// Characteristic property flags.
// Do not re-order the bit flags below;
// they are organized to match the BLE spec.
const (
	CharBroadcast   Property = 1 << iota // may be broadcast
	CharRead                             // may be read
	CharWriteNR                          // may be written to, with no reply
	CharWrite                            // may be written to, with a reply
	CharNotify                           // supports notifications
	CharIndicate                         // supports indications
	CharSignedWrite                      // supports signed writes
	CharExtended                         // supports extended properties
)

func (p Property) String() string {
	var s string
	if p&CharBroadcast != 0 {
		s += "broadcast "
	}
	if p&CharRead != 0 {
		s += "read "
	}
	if p&CharWriteNR != 0 {
		s += "writeWithoutResponse "
	}
	if p&CharWrite != 0 {
		s += "write "
	}
	if p&CharNotify != 0 {
		s += "notify "
	}
	if p&CharIndicate != 0 {
		s += "indicate "
	}
	if p&CharSignedWrite != 0 {
		s += "authenticateSignedWrites "
	}
	if p&CharExtended != 0 {
		s += "extendedProperties "
	}
	if len(s) > 0 {
		s = s[:len(s)-1]
	}
	return s
}

// A Permission is a set of access flags stored per attribute. The
// database records permissions but does not enforce them; enforcement
// belongs to the ATT request handler.
type Permission uint16

// Attribute permission flags.
const (
	AttrRead         Permission = 1 << iota // value may be read
	AttrWrite                               // value may be written, with a reply
	AttrWriteNR                             // value may be written, with no reply
	AttrNotify                              // value changes may be notified
	AttrIndicate                            // value changes may be indicated
	AttrEncrypt                             // access requires an encrypted link
	AttrAuthenticate                        // access requires an authenticated link
	AttrAuthorize                           // access requires authorization
)

func (p Permission) String() string {
	var s string
	if p&AttrRead != 0 {
		s += "read "
	}
	if p&AttrWrite != 0 {
		s += "write "
	}
	if p&AttrWriteNR != 0 {
		s += "writeWithoutResponse "
	}
	if p&AttrNotify != 0 {
		s += "notify "
	}
	if p&AttrIndicate != 0 {
		s += "indicate "
	}
	if p&AttrEncrypt != 0 {
		s += "encrypt "
	}
	if p&AttrAuthenticate != 0 {
		s += "authenticate "
	}
	if p&AttrAuthorize != 0 {
		s += "authorize "
	}
	if len(s) > 0 {
		s = s[:len(s)-1]
	}
	return s
}
