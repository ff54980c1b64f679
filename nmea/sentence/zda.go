package sentence

import (
	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/fields"
)

// ZDA field layout ($xxZDA,time,day,month,year,ltzh,ltzn):
//
//	0 time   1 day (01-31)   2 month (01-12)   3 year (4 digits)
//	4 local zone hours, optional   5 local zone minutes, optional
//
// Unlike every other decoder in this package, ZDA returns a hard error if
// its time field fails to parse or its day or month is missing or out of
// range - the rest of the parser relies on ZDA to supply the century, so a
// malformed ZDA must not look like a valid one with zeroed-out fields. The
// year field is not checked: an empty or malformed year decodes as zero,
// and the framer takes no century from a zero year.
const (
	zdaMinFields = 6
	zdaMaxFields = 7
)

// DecodeZDA decodes a Time and Date sentence.
func DecodeZDA(fs [][]byte) (*nmea.ZDAData, error) {
	if len(fs) < zdaMinFields {
		return nil, nmea.ErrTooFewFields
	}

	t, err := fields.ParseTime(fs[0])
	if err != nil {
		return nil, nmea.ErrInvalidTime
	}

	day := uint8(optUint(fs[1]))
	month := uint8(optUint(fs[2]))
	year := uint16(optUint(fs[3]))
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return nil, nmea.ErrInvalidDate
	}

	d := &nmea.ZDAData{
		Time: t,
		Date: nmea.Date{Day: day, Month: month, Year: year, Valid: true},
	}
	d.TZHours = int8(optInt(fields.Field(fs, 4)))
	d.TZMinutes = uint8(optInt(fields.Field(fs, 5)))
	return d, nil
}
