package sentence

import "github.com/goblimey/go-nmea/nmea"

// VTG field layout ($xxVTG,cogt,T,cogm,M,sog,N,sokph,K[,mode]):
//
//	0 course true (deg)   1 'T'
//	2 course magnetic (deg)   3 'M'
//	4 speed (knots)   5 'N'
//	6 speed (km/h)    7 'K'
//	8 FAA mode (NMEA 2.3+), optional
const (
	vtgMinFields = 8
	vtgMaxFields = 10
)

// DecodeVTG decodes a Track Made Good and Ground Speed sentence.
func DecodeVTG(fs [][]byte) (*nmea.VTGData, error) {
	if len(fs) < vtgMinFields {
		return nil, nmea.ErrTooFewFields
	}

	d := &nmea.VTGData{
		CourseTrueDeg: optFixed(fs[0]),
		CourseMagDeg:  optFixed(fs[2]),
		SpeedKnots:    optFixed(fs[4]),
		SpeedKPH:      optFixed(fs[6]),
	}
	if len(fs) > 8 {
		d.FAAMode = parseFAAModeField(fs[8])
	}
	return d, nil
}
