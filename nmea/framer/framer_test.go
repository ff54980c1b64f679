package framer

import (
	"strings"
	"testing"

	"github.com/goblimey/go-nmea/nmea"
)

func newTestParser() *Parser {
	return New(Config{RingBufferSize: 512})
}

func TestFeedAndWorkDecodesOneSentence(t *testing.T) {
	p := newTestParser()
	var got *nmea.Record
	p.OnRecord = func(r *nmea.Record) { got = r }

	sentence := "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A\r\n"
	if _, err := p.Feed([]byte(sentence)); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	p.Work()

	if got == nil {
		t.Fatal("OnRecord was not called")
	}
	if got.Type != nmea.SentenceRMC || got.Talker != nmea.TalkerGP {
		t.Errorf("got Type=%v Talker=%v", got.Type, got.Talker)
	}
	if p.Stats.SentencesComplete != 1 {
		t.Errorf("SentencesComplete: got %d, want 1", p.Stats.SentencesComplete)
	}
}

func TestFeedByteAtATime(t *testing.T) {
	p := newTestParser()
	count := 0
	p.OnRecord = func(r *nmea.Record) { count++ }

	sentence := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n"
	for i := 0; i < len(sentence); i++ {
		if _, err := p.Feed([]byte{sentence[i]}); err != nil {
			t.Fatalf("Feed byte %d: %v", i, err)
		}
		p.Work()
	}

	if count != 1 {
		t.Fatalf("got %d records, want 1", count)
	}
}

func TestChecksumMismatchIsCountedNotDelivered(t *testing.T) {
	p := newTestParser()
	called := false
	p.OnRecord = func(r *nmea.Record) { called = true }

	sentence := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*00\r\n"
	p.Feed([]byte(sentence))
	p.Work()

	if called {
		t.Fatal("OnRecord called for a sentence with a bad checksum")
	}
	if p.Stats.ChecksumErrors != 1 {
		t.Errorf("ChecksumErrors: got %d, want 1", p.Stats.ChecksumErrors)
	}
}

func TestGarbagePrecedingStartIsDiscarded(t *testing.T) {
	p := newTestParser()
	var got *nmea.Record
	p.OnRecord = func(r *nmea.Record) { got = r }

	input := "garbage before a sentence $GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A\r\n"
	p.Feed([]byte(input))
	p.Work()

	if got == nil {
		t.Fatal("OnRecord was not called")
	}
	if p.Stats.BytesDiscarded == 0 {
		t.Error("expected leading garbage to be counted as discarded")
	}
}

func TestTwoSentencesBackToBack(t *testing.T) {
	p := newTestParser()
	var types []nmea.SentenceType
	p.OnRecord = func(r *nmea.Record) { types = append(types, r.Type) }

	input := "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A\r\n" +
		"$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n"
	p.Feed([]byte(input))
	p.Work()

	if len(types) != 2 {
		t.Fatalf("got %d records, want 2: %v", len(types), types)
	}
	if types[0] != nmea.SentenceRMC || types[1] != nmea.SentenceGGA {
		t.Errorf("got %v, want [RMC GGA]", types)
	}
}

func TestZDABackfillsRMCCentury(t *testing.T) {
	p := newTestParser()
	var rmc *nmea.RMCData

	p.OnRecord = func(r *nmea.Record) {
		if r.Type == nmea.SentenceRMC {
			rmc = r.RMC
		}
	}

	input := "$GPZDA,123519,23,03,1994,-1,30*5D\r\n" +
		"$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A\r\n"
	p.Feed([]byte(input))
	p.Work()

	if rmc == nil {
		t.Fatal("RMC record not decoded")
	}
	if rmc.Date.Year != 1994 {
		t.Errorf("Date.Year: got %d, want 1994", rmc.Date.Year)
	}
}

func TestOversizedSentenceCountsAsBufferOverflowNotFramingError(t *testing.T) {
	p := newTestParser()
	called := false
	p.OnRecord = func(r *nmea.Record) { called = true }

	// A well-formed prefix followed by data that never produces a '*' or a
	// line ending, long enough to fill the working buffer to MaxSentenceLen.
	sentence := "$GPRMC," + strings.Repeat("A", 100)
	p.Feed([]byte(sentence))
	p.Work()

	if called {
		t.Fatal("OnRecord called for an oversized, unterminated sentence")
	}
	if p.Stats.BufferOverflows != 1 {
		t.Errorf("BufferOverflows: got %d, want 1", p.Stats.BufferOverflows)
	}
	if p.Stats.FramingErrors != 0 {
		t.Errorf("FramingErrors: got %d, want 0 - buffer overflows must not be conflated with framing errors", p.Stats.FramingErrors)
	}
}

func TestUnknownSentenceTypeIsSkippedAndResyncs(t *testing.T) {
	p := newTestParser()
	var got *nmea.Record
	p.OnRecord = func(r *nmea.Record) { got = r }

	input := "$GPXYZ,1,2,3*7F\r\n" +
		"$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n"
	p.Feed([]byte(input))
	p.Work()

	if got == nil {
		t.Fatal("parser failed to resync after an unknown sentence type")
	}
	if got.Type != nmea.SentenceGGA {
		t.Errorf("got %v, want GGA", got.Type)
	}
	if p.Stats.FramingErrors == 0 {
		t.Error("expected the unrecognised sentence type to be counted as a framing error")
	}
}
