package framer

import (
	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/fields"
	"github.com/goblimey/go-nmea/nmea/sentence"
)

// prefixLen is the number of bytes from the start character up to and
// including the comma that follows the sentence type: '$'/'!' + 2 talker
// chars + 3 type chars + ','.
const prefixLen = 7

func (p *Parser) discardGarbage(n int) {
	p.Stats.BytesDiscarded += uint64(n)
	p.Stats.FramingErrors++
	p.discard(n)
	p.resetToStart()
}

// doFindStart scans for the earliest '$' or '!' in the buffer, discarding
// anything before it as noise. Bytes that arrived between sentences (stray
// line endings, partial garbage after a dropped sentence) are silently
// dropped here rather than counted as framing errors, matching the
// reference parser, which only counts a framing error once a sentence has
// actually started.
func (p *Parser) doFindStart() {
	buf := p.workBuf[:p.workBufLen]

	idx := -1
	for i := p.parsePos; i < len(buf); i++ {
		if buf[i] == '$' || buf[i] == '!' {
			idx = i
			break
		}
	}

	if idx < 0 {
		p.Stats.BytesDiscarded += uint64(len(buf) - p.parsePos)
		p.workBufLen = 0
		p.parsePos = 0
		p.waitingForData = true
		return
	}

	if idx > 0 {
		p.Stats.BytesDiscarded += uint64(idx)
		p.discard(idx)
	}
	p.parsePos = 1
	p.state = stateFindTalkerAndType
}

// doFindTalkerAndType reads the two-character talker ID and three-character
// sentence type that must immediately follow the start character, and the
// comma that must follow those. Anything that doesn't parse drops just the
// start character and resumes the search for a new one - a single stray '$'
// shouldn't cost the rest of the buffer.
func (p *Parser) doFindTalkerAndType() {
	buf := p.workBuf[:p.workBufLen]
	need := p.parsePos + 6
	if len(buf) < need {
		p.waitingForData = true
		return
	}

	talker := nmea.ParseTalker(buf[1], buf[2])
	typ := nmea.ParseSentenceType(buf[3], buf[4], buf[5])
	if talker == nmea.TalkerUnknown || typ == nmea.SentenceUnknown || buf[6] != ',' {
		p.Stats.FramingErrors++
		p.Stats.BytesDiscarded++
		p.discard(1)
		p.parsePos = 0
		p.state = stateFindStart
		return
	}

	p.currentTalker = talker
	p.currentType = typ
	p.parsePos = prefixLen
	p.dataEndIdx = -1
	p.lineEndIdx = -1
	p.state = stateFindDataEnd
}

// doFindDataEnd looks for the end of the sentence's data field: either a
// '*' introducing a checksum, or a line ending with no checksum at all. If
// neither has appeared yet and the sentence has already grown past the
// configured maximum length, that's treated as a malformed sentence rather
// than waiting forever for a line ending that will never come. In practice
// Work never tops workBufLen up past maxSentenceLen, so this branch is a
// belt-and-braces guard; Work's own spaceInWorkBuf==0 overflow check
// (counted as Stats.BufferOverflows, not FramingErrors) is what actually
// fires first for an oversized sentence.
func (p *Parser) doFindDataEnd() {
	buf := p.workBuf[:p.workBufLen]

	astIdx, crIdx, lfIdx := -1, -1, -1
	for i := p.parsePos; i < len(buf); i++ {
		switch buf[i] {
		case '*':
			if astIdx < 0 {
				astIdx = i
			}
		case '\r':
			if crIdx < 0 {
				crIdx = i
			}
		case '\n':
			if lfIdx < 0 {
				lfIdx = i
			}
		}
	}

	lineEnd := -1
	switch {
	case crIdx >= 0 && lfIdx >= 0:
		lineEnd = min(crIdx, lfIdx)
	case crIdx >= 0:
		lineEnd = crIdx
	case lfIdx >= 0:
		lineEnd = lfIdx
	}

	hasChecksum := astIdx >= 0 && (lineEnd < 0 || astIdx < lineEnd)

	switch {
	case hasChecksum:
		p.dataEndIdx = astIdx
		p.lineEndIdx = lineEnd
		p.hasChecksum = true
		p.parsePos = astIdx + 1
		p.state = stateFindEnd

	case lineEnd >= 0:
		p.dataEndIdx = lineEnd
		p.lineEndIdx = lineEnd
		p.hasChecksum = false
		p.parsePos = lineEnd
		p.state = stateComplete

	default:
		if len(buf) > p.maxSentenceLen {
			p.discardGarbage(len(buf))
			return
		}
		p.waitingForData = true
	}
}

// doFindEnd validates and consumes the two hex checksum digits that follow
// a '*', then verifies them against the XOR of every byte between the
// start character and the '*'.
func (p *Parser) doFindEnd() {
	buf := p.workBuf[:p.workBufLen]

	lineEnd := p.lineEndIdx
	if lineEnd < 0 {
		for i := p.parsePos; i < len(buf); i++ {
			if buf[i] == '\r' || buf[i] == '\n' {
				lineEnd = i
				break
			}
		}
		if lineEnd < 0 {
			if len(buf) > p.maxSentenceLen {
				p.discardGarbage(len(buf))
				return
			}
			p.waitingForData = true
			return
		}
		p.lineEndIdx = lineEnd
	}

	if lineEnd-(p.dataEndIdx+1) != 2 {
		p.discardGarbage(len(buf))
		return
	}

	want, ok := parseHexByte(buf[p.dataEndIdx+1], buf[p.dataEndIdx+2])
	if !ok {
		p.discardGarbage(len(buf))
		return
	}

	var got byte
	for i := 1; i < p.dataEndIdx; i++ {
		got ^= buf[i]
	}
	if got != want {
		p.makeLogEntry("nmea: checksum mismatch for %s%s sentence: got %02X, want %02X",
			p.currentTalker, p.currentType, got, want)
		p.Stats.ChecksumErrors++
		p.Stats.BytesDiscarded += uint64(len(buf))
		p.discard(len(buf))
		p.resetToStart()
		return
	}

	p.receivedCS = want
	p.parsePos = lineEnd
	p.state = stateComplete
}

// doComplete tokenizes the sentence body, decodes it, reports the result,
// then skips every trailing line-ending byte (not just one CRLF pair -
// some talkers emit extras) before resetting to look for the next
// sentence.
func (p *Parser) doComplete() {
	buf := p.workBuf[:p.workBufLen]
	body := buf[prefixLen:p.dataEndIdx]

	n := fields.Tokenize(body, p.fieldBuf, len(p.fieldBuf))
	rec, err := sentence.Decode(p.currentType, p.currentTalker, p.fieldBuf[:n])
	if err != nil {
		p.makeLogEntry("nmea: failed to decode %s%s sentence: %v", p.currentTalker, p.currentType, err)
		p.Stats.DecoderErrors++
		if p.OnError != nil {
			p.OnError(err, p.currentType)
		}
	} else {
		p.applyPostProcess(rec)
		p.Stats.SentencesComplete++
		if p.OnRecord != nil {
			p.OnRecord(rec)
		}
	}

	end := p.lineEndIdx
	if end < 0 {
		end = p.dataEndIdx
	}
	for end < len(buf) && (buf[end] == '\r' || buf[end] == '\n' || buf[end] == 0) {
		end++
	}
	p.discard(end)
	p.parsePos = 0
	p.state = stateFindStart
}

// applyPostProcess backfills the century onto a date that only carries a
// two-digit year. ZDA is the only sentence that transmits a full year, so
// it sets the century for every RMC (the only other sentence carrying a
// date) seen afterwards.
func (p *Parser) applyPostProcess(rec *nmea.Record) {
	switch rec.Type {
	case nmea.SentenceZDA:
		if rec.ZDA != nil && rec.ZDA.Date.Year > 0 {
			p.zdaCentury = uint8(rec.ZDA.Date.Year / 100)
		}
	case nmea.SentenceRMC:
		if rec.RMC != nil && p.zdaCentury > 0 {
			rec.RMC.Date.Year = uint16(p.zdaCentury)*100 + uint16(rec.RMC.Date.YearYY)
		}
	}
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

func parseHexByte(hi, lo byte) (byte, bool) {
	h, ok := hexDigit(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexDigit(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}
