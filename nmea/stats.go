package nmea

// Stats holds running counters for a Parser's lifetime. All fields are
// plain counters rather than atomics - a Parser is not expected to be
// driven from more than one goroutine at a time, matching the framing
// state machine's single-threaded contract.
type Stats struct {
	SentencesComplete  uint64
	FramingErrors      uint64
	ChecksumErrors     uint64
	DecoderErrors      uint64
	BytesDiscarded     uint64
	RingBufferOverruns uint64

	// BufferOverflows counts sentences abandoned because they grew past
	// MaxSentenceLen without finding a terminator - a distinct failure
	// mode from FramingErrors (bad talker/type, bad checksum hex digits),
	// tracked separately to mirror the reference parser's buffer_overflows
	// counter.
	BufferOverflows uint64
}

// Add accumulates other into s, used when combining per-parser stats
// gathered by a periodic reporting job.
func (s *Stats) Add(other Stats) {
	s.SentencesComplete += other.SentencesComplete
	s.FramingErrors += other.FramingErrors
	s.ChecksumErrors += other.ChecksumErrors
	s.DecoderErrors += other.DecoderErrors
	s.BytesDiscarded += other.BytesDiscarded
	s.RingBufferOverruns += other.RingBufferOverruns
	s.BufferOverflows += other.BufferOverflows
}
