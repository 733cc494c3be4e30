package gatt

import "github.com/juju/errors"

// ATT protocol error codes, from the BLE spec.
const (
	attEcodeSuccess           = 0x00
	attEcodeInvalidHandle     = 0x01
	attEcodeReadNotPerm       = 0x02
	attEcodeWriteNotPerm      = 0x03
	attEcodeInvalidPDU        = 0x04
	attEcodeAuthentication    = 0x05
	attEcodeReqNotSupp        = 0x06
	attEcodeInvalidOffset     = 0x07
	attEcodeAuthorization     = 0x08
	attEcodePrepQueueFull     = 0x09
	attEcodeAttrNotFound      = 0x0a
	attEcodeAttrNotLong       = 0x0b
	attEcodeInsuffEncrKeySize = 0x0c
	attEcodeInvalAttrValueLen = 0x0d
	attEcodeUnlikely          = 0x0e
	attEcodeInsuffEnc         = 0x0f
	attEcodeUnsuppGrpType     = 0x10
	attEcodeInsuffResources   = 0x11
)

// Statuses an ATT request handler reports back to a remote client.
const (
	StatusSuccess         byte = attEcodeSuccess
	StatusInvalidHandle   byte = attEcodeInvalidHandle
	StatusAttrNotFound    byte = attEcodeAttrNotFound
	StatusInvalidOffset   byte = attEcodeInvalidOffset
	StatusUnexpectedError byte = attEcodeUnlikely
)

// AttErrorCode translates a database error into the ATT error code a
// request handler should put on the wire. A handle that resolved to no
// attribute becomes Invalid Handle; anything else unexpected becomes
// Unlikely Error.
func AttErrorCode(err error) byte {
	switch {
	case err == nil:
		return attEcodeSuccess
	case errors.IsNotFound(err):
		return attEcodeInvalidHandle
	default:
		return attEcodeUnlikely
	}
}
