// Package gatt maintains the server-side attribute database for a
// Bluetooth Low Energy GATT peripheral.
//
// Gatt (Generic Attribute Profile) organizes a peripheral as a list of
// services, each containing characteristics, each optionally carrying
// descriptors. The ATT protocol underneath addresses everything through
// a flat table of attributes, identified by dense 16-bit handles.
//
// This package owns the mapping between the two views: callers describe
// services, characteristics, and descriptors; the package flattens them
// into the attribute table, assigning handles deterministically, and
// answers the lookups an ATT request handler needs (attribute by handle,
// service handle ranges, service containing a handle).
//
// It deliberately does not touch the radio. Transport (HCI, L2CAP),
// advertising, connection management, and ATT request/response framing
// belong to the surrounding stack; this package only supplies the data
// those layers act upon.
//
// USAGE
//
// Describe services, then hand them to a database:
//
//	svc := gatt.NewService(gatt.UUID16(0x180D))
//	c := svc.AddCharacteristic(gatt.UUID16(0x2A37))
//	c.SetProperties(gatt.CharNotify)
//	c.SetValue([]byte{0x00})
//
//	db, err := gatt.NewDB([]*gatt.Service{svc})
//
// Replacing the service list rebuilds the whole table; handles are never
// patched incrementally. An ATT handler then resolves incoming requests:
//
//	a, err := db.AttributeAt(h)
//	if err != nil {
//		// respond with gatt.AttErrorCode(err), e.g. invalid handle
//	}
package gatt
