package sentence

import "github.com/goblimey/go-nmea/nmea"

// GLL field layout ($xxGLL,lat,ns,lon,ew,time,status[,mode]):
//
//	0 lat   1 N/S   2 lon   3 E/W
//	4 time   5 status (A=valid, V=warning)
//	6 FAA mode (NMEA 2.3+), optional
const (
	gllMinFields = 6
	gllMaxFields = 8
)

// DecodeGLL decodes a Geographic Position (lat/lon) sentence.
func DecodeGLL(fs [][]byte) (*nmea.GLLData, error) {
	if len(fs) < gllMinFields {
		return nil, nmea.ErrTooFewFields
	}

	d := &nmea.GLLData{
		Latitude:    optLatitude(fs[0], fs[1]),
		Longitude:   optLongitude(fs[2], fs[3]),
		Time:        optTime(fs[4]),
		StatusValid: parseStatusValid(fs[5]),
	}
	if len(fs) > 6 {
		d.FAAMode = parseFAAModeField(fs[6])
	}
	return d, nil
}
