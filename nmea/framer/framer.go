// Package framer implements the byte-stream framing state machine that
// turns a raw NMEA 0183 byte stream into decoded nmea.Record values.
//
//	p := framer.New(framer.Config{RingBufferSize: 4096})
//	p.OnRecord = func(r *nmea.Record) { ... }
//	p.OnError = func(err error, typ nmea.SentenceType) { ... }
//	n, err := p.Feed(data)   // producer side: push bytes into the ring buffer
//	p.Work()                // consumer side: drain and decode what's buffered
//
// Feed and Work follow the ring buffer's single-producer/single-consumer
// contract: Feed may be called concurrently with Work from one other
// goroutine, but Work itself is not safe to call from more than one
// goroutine at a time, and nor is Feed.
package framer

import (
	"log"

	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/ringbuffer"
	"github.com/goblimey/go-nmea/nmea/sentence"
)

type state int

const (
	stateFindStart state = iota
	stateFindTalkerAndType
	stateFindDataEnd
	stateFindEnd
	stateComplete
)

// Defaults matching the reference parser's TINY_NMEA_MAX_SENTENCE_LEN and
// TINY_NMEA_WORKING_BUF_LEN - the NMEA 0183 spec maximum sentence length is
// 82 bytes including '$' and CRLF, and the working buffer is kept larger
// than that so a maximum-length sentence can always be assembled in one
// piece even while more bytes are being topped up from the ring buffer.
const (
	DefaultMaxSentenceLen = 82
	DefaultWorkBufLen     = 128
	DefaultRingBufferSize = 1024
)

// Config configures a new Parser.
type Config struct {
	// RingBufferSize is the byte capacity of the internal ring buffer
	// (actual usable capacity is one less). Defaults to
	// DefaultRingBufferSize.
	RingBufferSize int
	// MaxSentenceLen is the threshold at which the working buffer is
	// considered "full enough to try a parse"; data is topped up from the
	// ring buffer up to this many bytes before the state machine inspects
	// it again. Defaults to DefaultMaxSentenceLen.
	MaxSentenceLen int
	// WorkBufLen is the capacity of the linear scratch buffer sentences
	// are assembled in. Must be greater than MaxSentenceLen. Defaults to
	// DefaultWorkBufLen, or MaxSentenceLen+1 if DefaultWorkBufLen is not
	// greater than MaxSentenceLen.
	WorkBufLen int
	// Logger receives diagnostic messages. A nil Logger sends them to the
	// standard library's default logger instead, matching the teacher's
	// handler.RTCM.logger convention.
	Logger *log.Logger
}

// Parser runs the framing state machine over a byte stream, assembling
// complete sentences, verifying their checksum and handing them off to
// package sentence for decoding.
type Parser struct {
	ring    *ringbuffer.RingBuffer
	ringBuf []byte

	workBuf        []byte
	workBufLen     int
	parsePos       int
	maxSentenceLen int

	state          state
	waitingForData bool

	hasChecksum bool
	dataEndIdx  int // index into workBuf of '*' or the line ending
	lineEndIdx  int // -1 if not yet found

	currentTalker nmea.Talker
	currentType   nmea.SentenceType
	receivedCS    byte

	zdaCentury uint8

	fieldBuf [][]byte

	logger *log.Logger

	Stats nmea.Stats

	// OnRecord is called for every successfully decoded sentence.
	OnRecord func(*nmea.Record)
	// OnError is called for every sentence that reached decoding but
	// failed (framing and checksum failures are silent except via Stats,
	// matching the reference parser, which has no callback for them).
	OnError func(err error, typ nmea.SentenceType)
}

// New creates a Parser. Zero-valued Config fields fall back to the
// package defaults.
func New(cfg Config) *Parser {
	if cfg.RingBufferSize <= 0 {
		cfg.RingBufferSize = DefaultRingBufferSize
	}
	if cfg.MaxSentenceLen <= 0 {
		cfg.MaxSentenceLen = DefaultMaxSentenceLen
	}
	if cfg.WorkBufLen <= cfg.MaxSentenceLen {
		cfg.WorkBufLen = DefaultWorkBufLen
		if cfg.WorkBufLen <= cfg.MaxSentenceLen {
			cfg.WorkBufLen = cfg.MaxSentenceLen + 1
		}
	}

	p := &Parser{
		ringBuf:        make([]byte, cfg.RingBufferSize),
		workBuf:        make([]byte, cfg.WorkBufLen),
		maxSentenceLen: cfg.MaxSentenceLen,
		lineEndIdx:     -1,
		fieldBuf:       make([][]byte, sentence.MaxFields),
		logger:         cfg.Logger,
	}
	p.ring = ringbuffer.New(p.ringBuf)
	return p
}

// makeLogEntry writes a message to the Parser's logger, or to the default
// system log if none was configured.
func (p *Parser) makeLogEntry(format string, args ...interface{}) {
	if p.logger == nil {
		log.Printf(format, args...)
		return
	}
	p.logger.Printf(format, args...)
}

// Feed pushes data into the parser's ring buffer for later processing by
// Work. It returns nmea.ErrBufferFull if the ring buffer does not have
// room for all of data.
func (p *Parser) Feed(data []byte) (int, error) {
	n := p.ring.Push(data, ringbuffer.PushAtomic)
	if n < len(data) {
		p.Stats.RingBufferOverruns++
		return n, nmea.ErrBufferFull
	}
	return n, nil
}

func (p *Parser) resetWorkBuf(remaining int) {
	p.workBufLen = remaining
	p.parsePos = 0
	p.state = stateFindStart
}

func (p *Parser) resetToStart() {
	p.resetWorkBuf(0)
}

func (p *Parser) discard(amount int) {
	if amount >= p.workBufLen {
		p.workBufLen = 0
		return
	}
	copy(p.workBuf, p.workBuf[amount:p.workBufLen])
	p.workBufLen -= amount
}

// Work drains the ring buffer, running the framing state machine over
// whatever bytes are available and decoding every complete sentence it
// finds. It returns once the ring buffer is empty and the working buffer
// holds either no unprocessed bytes or only the start of a sentence that
// is waiting for more data; those bytes stay buffered for the next call.
func (p *Parser) Work() {
	for !p.ring.Empty() || p.workBufLen > p.parsePos {
		bytesAvail := p.ring.Len()

		if p.waitingForData && bytesAvail == 0 {
			break
		}

		spaceInWorkBuf := p.maxSentenceLen - p.workBufLen
		if spaceInWorkBuf < 0 {
			spaceInWorkBuf = 0
		}
		toPop := min(spaceInWorkBuf, bytesAvail)
		if toPop > 0 {
			n := p.ring.Pop(p.workBuf[p.workBufLen : p.workBufLen+toPop])
			p.workBufLen += n
		} else if spaceInWorkBuf == 0 && p.waitingForData {
			p.Stats.BytesDiscarded += uint64(p.workBufLen)
			p.Stats.BufferOverflows++
			p.resetToStart()
		}

		p.waitingForData = false

		if p.workBufLen-p.parsePos == 0 {
			if p.ring.Empty() {
				break
			}
			continue
		}

		switch p.state {
		case stateFindStart:
			p.doFindStart()
		case stateFindTalkerAndType:
			p.doFindTalkerAndType()
		case stateFindDataEnd:
			p.doFindDataEnd()
		case stateFindEnd:
			p.doFindEnd()
		case stateComplete:
			p.doComplete()
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
