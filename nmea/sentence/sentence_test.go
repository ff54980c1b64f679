package sentence

import (
	"bytes"
	"testing"

	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/fields"
)

func tokenize(body string) [][]byte {
	out := make([][]byte, MaxFields)
	n := fields.Tokenize([]byte(body), out, MaxFields)
	return out[:n]
}

func TestDecodeRMC(t *testing.T) {
	fs := tokenize("123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W")
	d, err := DecodeRMC(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.StatusValid {
		t.Errorf("StatusValid: got false, want true")
	}
	if d.Latitude.Hemisphere != 'N' || !d.Latitude.Valid() {
		t.Errorf("Latitude: got %+v", d.Latitude)
	}
	if d.Date.Day != 23 || d.Date.Month != 3 || d.Date.YearYY != 94 {
		t.Errorf("Date: got %+v", d.Date)
	}
	if d.MagVarDir != 'W' {
		t.Errorf("MagVarDir: got %q, want W", d.MagVarDir)
	}
}

func TestDecodeRMCTooFewFields(t *testing.T) {
	fs := tokenize("123519,A,4807.038,N")
	if _, err := DecodeRMC(fs); err != nmea.ErrTooFewFields {
		t.Fatalf("got %v, want ErrTooFewFields", err)
	}
}

func TestDecodeRMCWithModeAndNavStatus(t *testing.T) {
	fs := tokenize("123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W,D,S")
	d, err := DecodeRMC(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.FAAMode != nmea.FAAModeDifferential {
		t.Errorf("FAAMode: got %v, want Differential", d.FAAMode)
	}
	if d.NavStatus != nmea.NavStatusSafe {
		t.Errorf("NavStatus: got %v, want Safe", d.NavStatus)
	}
}

func TestDecodeGGA(t *testing.T) {
	fs := tokenize("123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,")
	d, err := DecodeGGA(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.FixQuality != nmea.FixQualityGPS {
		t.Errorf("FixQuality: got %v, want GPS", d.FixQuality)
	}
	if d.SatellitesUsed != 8 {
		t.Errorf("SatellitesUsed: got %d, want 8", d.SatellitesUsed)
	}
	if d.AltitudeM.Value != 5454 || d.AltitudeM.Scale != 10 {
		t.Errorf("AltitudeM: got %+v", d.AltitudeM)
	}
}

func TestDecodeGSAAccumulatesPRNs(t *testing.T) {
	fs := tokenize("A,3,04,05,,09,12,,,,24,,,,2.5,1.3,2.1")
	d, err := DecodeGSA(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint16{4, 5, 9, 12, 24}
	if len(d.SatellitePRNs) != len(want) {
		t.Fatalf("got %v, want %v", d.SatellitePRNs, want)
	}
	for i, w := range want {
		if d.SatellitePRNs[i] != w {
			t.Errorf("PRN %d: got %d, want %d", i, d.SatellitePRNs[i], w)
		}
	}
	if d.FixType != nmea.GSAFix3D {
		t.Errorf("FixType: got %v, want 3D", d.FixType)
	}
}

func TestDecodeGSVSatelliteBlocks(t *testing.T) {
	fs := tokenize("2,1,08,01,40,083,46,02,17,308,41,12,07,344,39,14,22,228,")
	d, err := DecodeGSV(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Satellites) != 4 {
		t.Fatalf("got %d satellites, want 4", len(d.Satellites))
	}
	last := d.Satellites[3]
	if last.PRN != 14 || last.SNR != -1 {
		t.Errorf("last satellite: got %+v, want PRN 14 SNR -1 (empty field)", last)
	}
}

func TestDecodeGSVSkipsEmptyPRNBlock(t *testing.T) {
	fs := tokenize("1,1,03,01,40,083,46,,,,,12,07,344,39")
	d, err := DecodeGSV(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Satellites) != 2 {
		t.Fatalf("got %d satellites, want 2 (middle block skipped)", len(d.Satellites))
	}
}

func TestDecodeGSVSignalIDAfterSkippedBlock(t *testing.T) {
	// Two real satellite blocks with an empty one between them, followed by
	// a trailing signal-id field. The signal id must be read from the
	// position after all three 4-field blocks, not after the two decoded
	// satellites.
	fs := tokenize("1,1,03,01,40,083,46,,,,,12,07,344,39,1")
	d, err := DecodeGSV(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Satellites) != 2 {
		t.Fatalf("got %d satellites, want 2 (middle block skipped)", len(d.Satellites))
	}
	if d.SignalID != 1 {
		t.Errorf("SignalID: got %d, want 1", d.SignalID)
	}
}

func TestDecodeZDARejectsInvalidTime(t *testing.T) {
	fs := tokenize("999999,01,02,2024,00,00")
	if _, err := DecodeZDA(fs); err != nmea.ErrInvalidTime {
		t.Fatalf("got %v, want ErrInvalidTime", err)
	}
}

func TestDecodeZDARejectsInvalidDate(t *testing.T) {
	fs := tokenize("123519,32,13,2024,00,00")
	if _, err := DecodeZDA(fs); err != nmea.ErrInvalidDate {
		t.Fatalf("got %v, want ErrInvalidDate", err)
	}
}

func TestDecodeZDAOK(t *testing.T) {
	fs := tokenize("123519,23,03,1994,-1,30")
	d, err := DecodeZDA(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Date.Year != 1994 || d.Date.Day != 23 || d.Date.Month != 3 {
		t.Errorf("Date: got %+v", d.Date)
	}
	if d.TZHours != -1 || d.TZMinutes != 30 {
		t.Errorf("TZ: got %d %d, want -1 30", d.TZHours, d.TZMinutes)
	}
}

func TestDecodeAISPayload(t *testing.T) {
	fs := tokenize("1,1,,A,15M67FC000G?ufbE`FepT4070@00,0")
	d, err := DecodeAIS(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.SequentialID != 0 {
		t.Errorf("SequentialID: got %d, want 0 for empty field", d.SequentialID)
	}
	if d.Channel != 'A' {
		t.Errorf("Channel: got %q, want A", d.Channel)
	}
	if !bytes.Equal(d.Payload, []byte("15M67FC000G?ufbE`FepT4070@00")) {
		t.Errorf("Payload: got %q", d.Payload)
	}
}

func TestDecodeGLLWithMode(t *testing.T) {
	fs := tokenize("4807.038,N,01131.000,E,225444,A,A")
	d, err := DecodeGLL(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.StatusValid {
		t.Errorf("StatusValid: got false, want true")
	}
	if d.FAAMode != nmea.FAAModeAutonomous {
		t.Errorf("FAAMode: got %v, want Autonomous", d.FAAMode)
	}
}

func TestDecodeVTG(t *testing.T) {
	fs := tokenize("054.7,T,034.4,M,005.5,N,010.2,K")
	d, err := DecodeVTG(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.SpeedKnots.Float64() != 5.5 {
		t.Errorf("SpeedKnots: got %v, want 5.5", d.SpeedKnots.Float64())
	}
}

func TestDecodeGNS(t *testing.T) {
	fs := tokenize("092751.000,4717.11437,N,00833.91522,E,AA,09,1.0,499.6,M,48.0,M,,")
	d, err := DecodeGNS(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Latitude.Hemisphere != 'N' || !d.Latitude.Valid() {
		t.Errorf("Latitude: got %+v", d.Latitude)
	}
	if d.SatellitesUsed != 9 {
		t.Errorf("SatellitesUsed: got %d, want 9", d.SatellitesUsed)
	}
	if len(d.Modes) != 2 || d.Modes[0] != nmea.FAAModeAutonomous || d.Modes[1] != nmea.FAAModeAutonomous {
		t.Errorf("Modes: got %v, want [A A]", d.Modes)
	}
	if d.AltitudeM.Float64() != 499.6 {
		t.Errorf("AltitudeM: got %v, want 499.6", d.AltitudeM.Float64())
	}
}

func TestDecodeGNSTooFewFields(t *testing.T) {
	fs := tokenize("092751.000,4717.11437,N")
	if _, err := DecodeGNS(fs); err != nmea.ErrTooFewFields {
		t.Fatalf("got %v, want ErrTooFewFields", err)
	}
}

func TestDecodeGBS(t *testing.T) {
	fs := tokenize("123519,1.4,1.3,3.1,03,0.0,-21.4,26.2")
	d, err := DecodeGBS(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.FailedSatID != 3 {
		t.Errorf("FailedSatID: got %d, want 3", d.FailedSatID)
	}
	if d.ErrLatM.Float64() != 1.4 {
		t.Errorf("ErrLatM: got %v, want 1.4", d.ErrLatM.Float64())
	}
	if d.BiasM.Float64() != -21.4 {
		t.Errorf("BiasM: got %v, want -21.4", d.BiasM.Float64())
	}
}

func TestDecodeGBSTooFewFields(t *testing.T) {
	fs := tokenize("123519,1.4,1.3")
	if _, err := DecodeGBS(fs); err != nmea.ErrTooFewFields {
		t.Fatalf("got %v, want ErrTooFewFields", err)
	}
}

func TestDecodeGST(t *testing.T) {
	fs := tokenize("082356.00,1.8,0.6,0.4,78.3,0.6,0.5,1.2")
	d, err := DecodeGST(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.RMSRange.Float64() != 1.8 {
		t.Errorf("RMSRange: got %v, want 1.8", d.RMSRange.Float64())
	}
	if d.StdAltM.Float64() != 1.2 {
		t.Errorf("StdAltM: got %v, want 1.2", d.StdAltM.Float64())
	}
}

func TestDecodeGSTTooFewFields(t *testing.T) {
	fs := tokenize("082356.00,1.8,0.6")
	if _, err := DecodeGST(fs); err != nmea.ErrTooFewFields {
		t.Fatalf("got %v, want ErrTooFewFields", err)
	}
}

func TestDispatchUnsupported(t *testing.T) {
	if _, err := Decode(nmea.SentenceUnknown, nmea.TalkerGP, nil); err != nmea.ErrUnsupported {
		t.Fatalf("got %v, want ErrUnsupported", err)
	}
}
