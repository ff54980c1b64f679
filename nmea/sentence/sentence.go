// Package sentence decodes the tokenized body of an NMEA sentence into the
// typed records defined in package nmea. Each Decode<Type> function takes
// the already-tokenized field list (see package fields) and returns a
// populated nmea.<Type>Data or an error - it never sees the raw "$TTSSS,"
// header or the trailing checksum, which the framer has already stripped.
//
// Field counts and indices below are reproduced from the GPS receiver
// documentation embedded in the reference parser this package was ported
// from; see each decoder's comment for the field layout it expects.
package sentence

import (
	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/fields"
)

func parseStatusValid(f []byte) bool {
	return !fields.Empty(f) && f[0] == 'A'
}

func parseFAAModeField(f []byte) nmea.FAAMode {
	if fields.Empty(f) {
		return nmea.FAAModeNone
	}
	return nmea.ParseFAAMode(f[0])
}

func parseNavStatusField(f []byte) nmea.NavStatus {
	if fields.Empty(f) {
		return nmea.NavStatusNone
	}
	return nmea.ParseNavStatus(f[0])
}

func parseGSAFixField(f []byte) nmea.GSAFix {
	if fields.Empty(f) {
		return nmea.GSAFixNone
	}
	return nmea.ParseGSAFix(f[0])
}

// optUint parses f as an unsigned integer, returning 0 if f is empty or
// malformed - used throughout for fields the reference parser treats as
// "leave the zero value" rather than an error.
func optUint(f []byte) uint32 {
	v, err := fields.ParseUint(f)
	if err != nil {
		return 0
	}
	return v
}

func optInt(f []byte) int32 {
	v, err := fields.ParseInt(f)
	if err != nil {
		return 0
	}
	return v
}

func optFixed(f []byte) nmea.FixedPoint {
	v, err := fields.ParseFixedPoint(f)
	if err != nil {
		return nmea.FixedPoint{}
	}
	return v
}

func optChar(f []byte) byte {
	v, err := fields.ParseChar(f)
	if err != nil {
		return 0
	}
	return v
}

func optTime(f []byte) nmea.Time {
	v, err := fields.ParseTime(f)
	if err != nil {
		return nmea.Time{}
	}
	return v
}

func optDate(f []byte) nmea.Date {
	v, err := fields.ParseDate(f)
	if err != nil {
		return nmea.Date{}
	}
	return v
}

func optLatitude(value, hemi []byte) nmea.Coord {
	v, err := fields.ParseLatitude(value, hemi)
	if err != nil {
		return nmea.Coord{}
	}
	return v
}

func optLongitude(value, hemi []byte) nmea.Coord {
	v, err := fields.ParseLongitude(value, hemi)
	if err != nil {
		return nmea.Coord{}
	}
	return v
}
