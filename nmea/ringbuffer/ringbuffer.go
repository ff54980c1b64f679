// Package ringbuffer implements a lock-free single-producer/single-consumer
// byte ring buffer. One slot is always kept empty so that the head and
// tail indices never collide, which is what lets Empty and Full be told
// apart without a separate counter.
//
// RingBuffer is safe for exactly one producer goroutine calling Push*
// concurrently with exactly one consumer goroutine calling Pop/Discard.
// Peek/PeekByte/Len/Free/Empty/Full may be called by either side. PushWrap
// is the one exception: it mutates the tail index as well as the head, so
// it is not SPSC-safe and must only be used with exclusive access to the
// buffer (e.g. before a consumer goroutine has been started).
package ringbuffer

import "sync/atomic"

// PushMode selects what Push does when there isn't enough free space for
// the incoming data.
type PushMode int

const (
	// PushAtomic pushes nothing and returns 0 if the data would not
	// entirely fit.
	PushAtomic PushMode = iota
	// PushDrop pushes as much of the leading data as fits and discards
	// the rest.
	PushDrop
	// PushWrap discards the oldest buffered data to make room, keeping
	// the newest bytes. NOT SPSC-safe - see the package doc comment.
	PushWrap
)

// RingBuffer is a fixed-capacity byte ring buffer over a caller-supplied
// backing array. The usable capacity is len(buf)-1.
type RingBuffer struct {
	buf  []byte
	head uint64 // next write position, producer-owned
	tail uint64 // next read position, consumer-owned
}

// New creates a RingBuffer backed by buf. The buffer is used in place, so
// its capacity is fixed at len(buf) for the RingBuffer's lifetime and no
// further allocation occurs on the push/pop paths.
func New(buf []byte) *RingBuffer {
	return &RingBuffer{buf: buf}
}

func (r *RingBuffer) size() uint64 { return uint64(len(r.buf)) }

func computeLength(head, tail, size uint64) uint64 {
	if head >= tail {
		return head - tail
	}
	return size - tail + head
}

func computeFreeSpace(head, tail, size uint64) uint64 {
	return size - computeLength(head, tail, size) - 1
}

// Len returns the number of bytes currently buffered.
func (r *RingBuffer) Len() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	return int(computeLength(head, tail, r.size()))
}

// Free returns the number of bytes that can still be pushed before the
// buffer is full.
func (r *RingBuffer) Free() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	return int(computeFreeSpace(head, tail, r.size()))
}

// Empty reports whether the buffer holds no data.
func (r *RingBuffer) Empty() bool {
	return atomic.LoadUint64(&r.head) == atomic.LoadUint64(&r.tail)
}

// Full reports whether the buffer has no free space left.
func (r *RingBuffer) Full() bool {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	return (head+1)%r.size() == tail
}

// Clear resets the buffer to empty. It is not safe to call concurrently
// with Push or Pop from other goroutines.
func (r *RingBuffer) Clear() {
	tail := atomic.LoadUint64(&r.tail)
	atomic.StoreUint64(&r.head, tail)
}

// Push copies data into the buffer according to mode, returning the number
// of bytes actually written. Only one goroutine may call Push at a time.
func (r *RingBuffer) Push(data []byte, mode PushMode) int {
	size := r.size()
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	freeSpace := computeFreeSpace(head, tail, size)

	length := uint64(len(data))
	if length > freeSpace {
		switch mode {
		case PushAtomic:
			return 0
		case PushDrop:
			length = freeSpace
		case PushWrap:
			if length >= size {
				data = data[length-(size-1):]
				length = size - 1
				atomic.StoreUint64(&r.tail, 0)
				atomic.StoreUint64(&r.head, 0)
				head, tail = 0, 0
			} else {
				r.Discard(int(length - freeSpace))
				tail = atomic.LoadUint64(&r.tail)
			}
		}
	}

	if length == 0 {
		return 0
	}
	data = data[:length]

	toEnd := size - head
	if toEnd >= length {
		copy(r.buf[head:], data)
	} else {
		copy(r.buf[head:], data[:toEnd])
		copy(r.buf, data[toEnd:])
	}

	atomic.StoreUint64(&r.head, (head+length)%size)
	return int(length)
}

// Pop copies up to len(data) buffered bytes into data, returning the
// number of bytes copied. A nil or empty data pops nothing; Discard drops
// bytes without copying them.
func (r *RingBuffer) Pop(data []byte) int {
	size := r.size()
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	avail := computeLength(head, tail, size)

	length := uint64(len(data))
	if length > avail {
		length = avail
	}
	if length == 0 {
		return 0
	}

	if data != nil {
		toEnd := size - tail
		if toEnd >= length {
			copy(data, r.buf[tail:tail+length])
		} else {
			copy(data, r.buf[tail:])
			copy(data[toEnd:], r.buf[:length-toEnd])
		}
	}

	atomic.StoreUint64(&r.tail, (tail+length)%size)
	return int(length)
}

// Peek copies up to len(data) buffered bytes starting offset bytes from
// the oldest unread byte, without consuming them. It returns the number of
// bytes copied.
func (r *RingBuffer) Peek(data []byte, offset int) int {
	size := r.size()
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	avail := computeLength(head, tail, size)

	off := uint64(offset)
	if off >= avail {
		return 0
	}

	length := uint64(len(data))
	if length > avail-off {
		length = avail - off
	}
	if length == 0 {
		return 0
	}

	start := (tail + off) % size
	toEnd := size - start
	if toEnd >= length {
		copy(data, r.buf[start:start+length])
	} else {
		copy(data, r.buf[start:])
		copy(data[toEnd:], r.buf[:length-toEnd])
	}
	return int(length)
}

// PeekByte returns the byte offset positions from the oldest unread byte
// without consuming it. ok is false if offset is beyond the buffered data.
func (r *RingBuffer) PeekByte(offset int) (b byte, ok bool) {
	size := r.size()
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	length := computeLength(head, tail, size)

	off := uint64(offset)
	if off >= length {
		return 0, false
	}
	return r.buf[(tail+off)%size], true
}

// Discard consumes up to n buffered bytes without copying them anywhere,
// returning the number of bytes actually discarded.
func (r *RingBuffer) Discard(n int) int {
	size := r.size()
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	avail := computeLength(head, tail, size)

	length := uint64(n)
	if length > avail {
		length = avail
	}
	atomic.StoreUint64(&r.tail, (tail+length)%size)
	return int(length)
}
