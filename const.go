package gatt

// This file includes constants from the BLE spec.
// The tables are read-only; they are initialized once and never written.

// Declaration attribute types.
var (
	attrPrimaryServiceUUID   = UUID16(0x2800)
	attrSecondaryServiceUUID = UUID16(0x2801)
	attrIncludeUUID          = UUID16(0x2802)
	attrCharacteristicUUID   = UUID16(0x2803)
)

// Well-known descriptor types, for callers attaching standard descriptors.
var (
	CharExtendedPropsUUID = UUID16(0x2900)
	CharUserDescUUID      = UUID16(0x2901)
	ClientCharConfigUUID  = UUID16(0x2902)
	ServerCharConfigUUID  = UUID16(0x2903)
	CharFormatUUID        = UUID16(0x2904)
	CharAggregateUUID     = UUID16(0x2905)
)

// Well-known GAP/GATT service and characteristic numbers.
var (
	GAPServiceUUID  = UUID16(0x1800)
	GATTServiceUUID = UUID16(0x1801)

	DeviceNameUUID = UUID16(0x2A00)
	AppearanceUUID = UUID16(0x2A01)
)
