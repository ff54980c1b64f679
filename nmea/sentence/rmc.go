package sentence

import (
	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/fields"
)

// RMC field layout ($xxRMC,time,status,lat,ns,lon,ew,spd,cog,date,magvar,
// magdir[,mode[,navstatus]]):
//
//	0  time (hhmmss.ss)
//	1  status (A=valid, V=warning)
//	2  latitude                  3  N/S
//	4  longitude                 5  E/W
//	6  speed over ground, knots
//	7  course over ground, degrees true
//	8  date (ddmmyy)
//	9  magnetic variation       10  E/W
//	11 FAA mode (NMEA 2.3+, optional)
//	12 nav status (NMEA 4.1+, optional)
const (
	rmcMinFields = 11
	rmcMaxFields = 13
)

// DecodeRMC decodes a Recommended Minimum Navigation Information sentence.
func DecodeRMC(fs [][]byte) (*nmea.RMCData, error) {
	if len(fs) < rmcMinFields {
		return nil, nmea.ErrTooFewFields
	}

	d := &nmea.RMCData{
		Time:         optTime(fs[0]),
		StatusValid:  parseStatusValid(fs[1]),
		Latitude:     optLatitude(fs[2], fs[3]),
		Longitude:    optLongitude(fs[4], fs[5]),
		SpeedKnots:   optFixed(fs[6]),
		CourseDeg:    optFixed(fs[7]),
		Date:         optDate(fs[8]),
		MagVariation: optFixed(fs[9]),
		MagVarDir:    optChar(fields.Field(fs, 10)),
	}
	if len(fs) > 11 {
		d.FAAMode = parseFAAModeField(fs[11])
	}
	if len(fs) > 12 {
		d.NavStatus = parseNavStatusField(fs[12])
	}
	return d, nil
}
