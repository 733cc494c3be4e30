package gatt

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// logger is the package logger. Output is discarded until SetLogger
// installs a real one.
var logger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(ioutil.Discard)
	return l
}

// SetLogger routes the package's logging, notably the debug dump of
// each generated attribute table, to l. Call it before any database is
// created; it is not synchronized with concurrent database use.
func SetLogger(l *logrus.Logger) {
	logger = l
}

// dumpAttrs logs the generated attribute table.
func dumpAttrs(r *attrRange) {
	if !logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	logger.Debug("generated attribute table:")
	logger.Debug("handle\tend\ttype\tvalue")
	for _, a := range r.aa {
		if a.Value != nil {
			logger.Debugf("0x%04X\t0x%04X\t0x%s\t[ % X ]", a.Handle, a.EndingHandle, a.Type, a.Value)
			continue
		}
		logger.Debugf("0x%04X\t0x%04X\t0x%s", a.Handle, a.EndingHandle, a.Type)
	}
}
