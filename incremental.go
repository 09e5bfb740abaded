package lzs

// decodeState identifies the automaton node the incremental decoder resumes
// at. Transitions are written out explicitly; no ordering tricks.
type decodeState uint8

const (
	stateGetTokenType decodeState = iota
	stateGetLiteral
	stateGetOffsetType
	stateGetOffsetShort
	stateGetOffsetLong
	stateGetLength
	stateCopyData
	stateCopyExtendedData
	stateGetExtendedLength

	numDecodeStates
)

// stateMinBits is the queue occupancy a state needs before it may execute.
// stateGetLength is 0 because its requirement depends on the table entry and
// is re-checked inside the state.
var stateMinBits = [numDecodeStates]int{
	stateGetTokenType:      1,
	stateGetLiteral:        8,
	stateGetOffsetType:     1,
	stateGetOffsetShort:    shortOffsetBits,
	stateGetOffsetLong:     longOffsetBits,
	stateGetLength:         0,
	stateCopyData:          0,
	stateCopyExtendedData:  0,
	stateGetExtendedLength: lengthMaxBitWidth,
}

// Decoder is a resumable LZS decompressor. It consumes input fragments of
// any size and produces output fragments of any size, suspending whenever
// the bit queue cannot satisfy the current state or the output buffer fills.
// No partial token is lost across calls.
//
// The history ring is caller-owned and must be at least MinHistorySize
// bytes; the Decoder itself never allocates. A Decoder must not be shared
// between goroutines.
type Decoder struct {
	q      bitQueue
	state  decodeState
	offset int // Pending back-reference offset, 1..MaxLongOffset.
	length int // Bytes remaining in the pending copy.

	history  []byte
	writeIdx int // Next ring slot to write.
	readIdx  int // Read cursor of the copy in progress.
	written  int // Bytes appended since Reset, saturating at len(history).
}

// NewDecoder returns a Decoder using history as its ring buffer. history
// must be at least MinHistorySize bytes (DefaultHistorySize recommended);
// its prior contents are irrelevant.
func NewDecoder(history []byte) (*Decoder, error) {
	if history == nil {
		return nil, ErrNilHistory
	}
	if len(history) < MinHistorySize {
		return nil, ErrHistoryTooSmall
	}

	d := &Decoder{history: history}
	d.Reset()

	return d, nil
}

// Reset returns the Decoder to its initial state so it can decode a new
// stream with the same history buffer.
func (d *Decoder) Reset() {
	d.q = bitQueue{}
	d.state = stateGetTokenType
	d.offset = 0
	d.length = 0
	d.writeIdx = 0
	d.readIdx = 0
	d.written = 0
}

// push appends one decoded byte to the history ring.
func (d *Decoder) push(b byte) {
	d.history[d.writeIdx] = b
	d.writeIdx++
	if d.writeIdx >= len(d.history) {
		d.writeIdx = 0
	}
	if d.written < len(d.history) {
		d.written++
	}
}

// Decompress decodes from src into dst until a status condition stops it.
// It returns the bytes written to dst, the bytes consumed from src, and the
// status explaining the return. The caller re-slices: unconsumed input is
// src[nSrc:], and decoding resumes exactly where it suspended.
func (d *Decoder) Decompress(dst, src []byte) (nDst, nSrc int, status Status) {
	for {
		nSrc += d.q.refill(src[nSrc:])
		if d.q.n <= 0 {
			status |= StatusInputFinished | StatusInputStarved
		}
		if d.q.n < stateMinBits[d.state] {
			status |= StatusInputStarved
		}
		if status != StatusNone {
			return nDst, nSrc, status
		}

		switch d.state {
		case stateGetTokenType:
			if d.q.take(1) == 0 {
				d.state = stateGetLiteral
			} else {
				d.state = stateGetOffsetType
			}

		case stateGetLiteral:
			if nDst >= len(dst) {
				status |= StatusNoOutputSpace
			} else {
				b := byte(d.q.take(8))
				dst[nDst] = b
				nDst++
				d.push(b)
				d.state = stateGetTokenType
			}

		case stateGetOffsetType:
			if d.q.take(1) == 1 {
				d.state = stateGetOffsetShort
			} else {
				d.state = stateGetOffsetLong
			}

		case stateGetOffsetShort:
			offset := int(d.q.take(shortOffsetBits))
			if offset == 0 {
				// End marker: drop the bits that are fractions of a byte so
				// the stream terminates on a byte boundary.
				d.q.alignToByte()
				status |= StatusEndMarker
				d.state = stateGetTokenType
			} else {
				d.offset = offset
				d.state = stateGetLength
			}

		case stateGetOffsetLong:
			d.offset = int(d.q.take(longOffsetBits))
			d.state = stateGetLength

		case stateGetLength:
			// The table entry's width may exceed the occupancy; suspend and
			// re-peek once more bits arrive (no bits consumed yet).
			entry := lengthDecodeTable[d.q.peek(lengthMaxBitWidth)]
			width := int(entry & 0xF)
			if d.q.n < width {
				status |= StatusInputStarved
			} else {
				d.q.drop(width)
				d.length = int(entry >> 4)
				if d.length == maxInitialLength {
					d.state = stateCopyExtendedData
				} else {
					d.state = stateCopyData
				}
				d.readIdx = d.writeIdx + len(d.history) - d.offset
				if d.readIdx >= len(d.history) {
					d.readIdx -= len(d.history)
				}
			}

		case stateCopyData, stateCopyExtendedData:
			for {
				if d.length == 0 {
					if d.state == stateCopyExtendedData {
						d.state = stateGetExtendedLength
					} else {
						d.state = stateGetTokenType
					}

					break
				}
				if nDst >= len(dst) {
					status |= StatusNoOutputSpace

					break
				}

				// Ring slots that have never been written since Reset read
				// as zero, so short history cannot leak buffer contents.
				var b byte
				if d.offset <= d.written {
					b = d.history[d.readIdx]
				}
				d.readIdx++
				if d.readIdx >= len(d.history) {
					d.readIdx = 0
				}

				dst[nDst] = b
				nDst++
				d.length--
				d.push(b)
			}

		case stateGetExtendedLength:
			d.length = int(d.q.take(lengthMaxBitWidth))
			if d.length == maxExtendedLength {
				// More nibbles follow after this copy.
				d.state = stateCopyExtendedData
			} else {
				d.state = stateCopyData
			}

		default:
			panic("lzs: invalid decoder state")
		}
	}
}
