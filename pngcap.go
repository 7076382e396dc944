/*
Package pngcap is a library for exporting in-memory capture frames as PNG
files and maintaining a catalog of previous exports.
*/
package pngcap

import "log"

type Exporter struct {
	db     *CaptureDB
	logger *log.Logger
}

// New returns an Exporter. db may be nil, in which case exports are not
// catalogued.
func New(db *CaptureDB, logger *log.Logger) *Exporter {
	return &Exporter{
		db:     db,
		logger: logger,
	}
}
