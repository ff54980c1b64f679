package sentence

import "github.com/goblimey/go-nmea/nmea"

// GGA field layout ($xxGGA,time,lat,ns,lon,ew,qual,numsv,hdop,alt,M,sep,M,
// age,stnid):
//
//	0  time         1  lat   2  N/S   3  lon   4  E/W
//	5  fix quality  6  satellites used
//	7  HDOP
//	8  altitude (m)   9  units 'M'
//	10 geoid sep (m) 11  units 'M'
//	12 DGPS age (s), optional
//	13 DGPS station id, optional
const (
	ggaMinFields = 14
	ggaMaxFields = 15
)

// DecodeGGA decodes a Global Positioning System Fix Data sentence.
func DecodeGGA(fs [][]byte) (*nmea.GGAData, error) {
	if len(fs) < ggaMinFields {
		return nil, nmea.ErrTooFewFields
	}

	return &nmea.GGAData{
		Time:           optTime(fs[0]),
		Latitude:       optLatitude(fs[1], fs[2]),
		Longitude:      optLongitude(fs[3], fs[4]),
		FixQuality:     nmea.FixQuality(optUint(fs[5])),
		SatellitesUsed: uint8(optUint(fs[6])),
		HDOP:           optFixed(fs[7]),
		AltitudeM:      optFixed(fs[8]),
		GeoidSepM:      optFixed(fs[10]),
		DGPSAgeSec:     optFixed(fs[12]),
		DGPSStationID:  uint16(optUint(fs[13])),
	}, nil
}
