package sentence

import "github.com/goblimey/go-nmea/nmea"

// GNS field layout ($xxGNS,time,lat,ns,lon,ew,mode,numsv,hdop,alt,sep,age,
// stnid[,navstatus]):
//
//	0  time         1  lat   2  N/S   3  lon   4  E/W
//	5  mode indicators, one char per constellation
//	6  satellites used
//	7  HDOP  8  altitude (m)  9  geoid sep (m)
//	10 DGPS age (s), optional  11  DGPS station id, optional
//	12 nav status (NMEA 4.1+), optional
const (
	gnsMinFields = 12
	gnsMaxFields = 14
)

// DecodeGNS decodes a GNSS Fix Data sentence (NMEA 3.0+), the
// multi-constellation replacement for GGA.
func DecodeGNS(fs [][]byte) (*nmea.GNSData, error) {
	if len(fs) < gnsMinFields {
		return nil, nmea.ErrTooFewFields
	}

	d := &nmea.GNSData{
		Time:           optTime(fs[0]),
		Latitude:       optLatitude(fs[1], fs[2]),
		Longitude:      optLongitude(fs[3], fs[4]),
		SatellitesUsed: uint8(optUint(fs[6])),
		HDOP:           optFixed(fs[7]),
		AltitudeM:      optFixed(fs[8]),
		GeoidSepM:      optFixed(fs[9]),
		DGPSAgeSec:     optFixed(fs[10]),
		DGPSStationID:  uint16(optUint(fs[11])),
	}

	mode := fs[5]
	if len(mode) > 0 {
		modeLen := len(mode)
		if modeLen > int(nmea.ConstellationCount) {
			modeLen = int(nmea.ConstellationCount)
		}
		d.Modes = make([]nmea.FAAMode, modeLen)
		for i := 0; i < modeLen; i++ {
			d.Modes[i] = nmea.ParseFAAMode(mode[i])
		}
	}

	if len(fs) > 12 {
		d.NavStatus = parseNavStatusField(fs[12])
	}
	return d, nil
}
