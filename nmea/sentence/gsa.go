package sentence

import (
	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/fields"
)

// GSA field layout ($xxGSA,mode,fix,sv1..sv12,pdop,hdop,vdop[,sysid]):
//
//	0    mode selection (M=manual, A=auto)
//	1    fix type (1=none, 2=2D, 3=3D)
//	2-13 up to 12 satellite PRNs (empty slots skipped)
//	14   PDOP  15  HDOP  16  VDOP
//	17   system id (NMEA 4.11+), optional
const (
	gsaMinFields  = 17
	gsaMaxFields  = 18
	gsaMaxSats    = 12
	gsaPRNsOffset = 2
)

// DecodeGSA decodes a GSA (DOP and Active Satellites) sentence.
func DecodeGSA(fs [][]byte) (*nmea.GSAData, error) {
	if len(fs) < gsaMinFields {
		return nil, nmea.ErrTooFewFields
	}

	d := &nmea.GSAData{
		ModeSelection: optChar(fs[0]),
		FixType:       parseGSAFixField(fs[1]),
		PDOP:          optFixed(fs[14]),
		HDOP:          optFixed(fs[15]),
		VDOP:          optFixed(fs[16]),
	}

	for i := 0; i < gsaMaxSats; i++ {
		f := fs[gsaPRNsOffset+i]
		if fields.Empty(f) {
			continue
		}
		v, err := fields.ParseUint(f)
		if err != nil {
			continue
		}
		d.SatellitePRNs = append(d.SatellitePRNs, uint16(v))
	}

	if len(fs) > 17 {
		d.SystemID = uint8(optUint(fs[17]))
	}
	return d, nil
}
