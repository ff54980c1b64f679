package sentence

import (
	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/fields"
)

// GSV field layout ($xxGSV,total,msgnum,numsv[,prn,elev,az,snr]...[,sigid]):
//
//	0  total messages   1  this message number   2  total satellites in view
//	3..  4-field blocks of (PRN, elevation, azimuth, SNR), up to
//	     maxSatsPerMessage blocks
//	after the last block: signal id (NMEA 4.11+), optional
//
// A block is read only when all four of its fields are present, so a
// single field left after the last complete block is the signal id. PRN
// is required for a block to count; elevation/azimuth/SNR default to
// -128/-1/-1 respectively when absent.
const (
	gsvMinFields      = 3
	gsvMaxFields      = 20
	gsvMaxSatsPerMsg  = 4
	gsvFieldsPerSat   = 4
	gsvSatBlockOffset = 3
)

// DecodeGSV decodes one Satellites in View sentence (a single message
// within a numbered GSV sequence; see package tracker for sequence
// accumulation across messages).
func DecodeGSV(fs [][]byte) (*nmea.GSVData, error) {
	if len(fs) < gsvMinFields {
		return nil, nmea.ErrTooFewFields
	}

	d := &nmea.GSVData{
		TotalMsgs: uint8(optUint(fs[0])),
		MsgNumber: uint8(optUint(fs[1])),
		TotalSats: uint8(optUint(fs[2])),
	}

	blocksSeen := 0
	for i := 0; i < gsvMaxSatsPerMsg; i++ {
		base := gsvSatBlockOffset + i*gsvFieldsPerSat
		if base+gsvFieldsPerSat > len(fs) {
			break
		}
		blocksSeen++
		prnField := fs[base]
		if fields.Empty(prnField) {
			continue
		}

		sat := nmea.SatInfo{Elevation: -128, Azimuth: -1, SNR: -1}

		prn, err := fields.ParseUint(prnField)
		if err != nil {
			continue
		}
		sat.PRN = uint16(prn)

		if base+1 < len(fs) {
			if v, err := fields.ParseInt(fs[base+1]); err == nil {
				sat.Elevation = int8(v)
			}
		}
		if base+2 < len(fs) {
			if v, err := fields.ParseUint(fs[base+2]); err == nil {
				sat.Azimuth = int16(v)
			}
		}
		if base+3 < len(fs) {
			if v, err := fields.ParseInt(fs[base+3]); err == nil {
				sat.SNR = int8(v)
			}
		}

		d.Satellites = append(d.Satellites, sat)
	}

	// sigIdx is based on the number of 4-field blocks consumed, not
	// len(d.Satellites) - a block with an empty PRN is skipped but still
	// occupies its 4 token positions.
	sigIdx := gsvSatBlockOffset + blocksSeen*gsvFieldsPerSat
	if sigIdx < len(fs) {
		d.SignalID = uint8(optUint(fs[sigIdx]))
	}

	return d, nil
}
