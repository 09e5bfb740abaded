package lzs

import "io"

// readerChunkSize is the compressed input buffer size for Reader.
const readerChunkSize = 4096

// Reader decompresses an LZS stream from an underlying io.Reader. It owns
// its history ring and input buffer; use Decoder directly to control
// buffering. Read returns io.EOF after the stream's end marker, or once the
// source is exhausted with only byte-padding bits left.
type Reader struct {
	src io.Reader
	dec *Decoder
	buf []byte // Compressed input chunk buffer.
	in  []byte // Unconsumed tail of buf.
	err error  // Sticky result error.
}

// NewReader returns a Reader decompressing from r. Options nil means
// DefaultDecoderOptions.
func NewReader(r io.Reader, opts *DecoderOptions) (*Reader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if opts == nil {
		opts = DefaultDecoderOptions()
	}

	dec, err := NewDecoder(make([]byte, opts.HistorySize))
	if err != nil {
		return nil, err
	}

	return &Reader{
		src: r,
		dec: dec,
		buf: make([]byte, readerChunkSize),
	}, nil
}

// Read decompresses into p. It may return n > 0 together with io.EOF on the
// read that consumes the end marker.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	total := 0
	for {
		nDst, nSrc, status := r.dec.Decompress(p[total:], r.in)
		r.in = r.in[nSrc:]
		total += nDst

		if status.Has(StatusEndMarker) {
			// Trailing bytes after the marker are not ours to interpret.
			r.err = io.EOF

			return total, io.EOF
		}
		if status.Has(StatusNoOutputSpace) || total == len(p) {
			return total, nil
		}

		// Starved: pull the next compressed chunk.
		if len(r.in) == 0 && r.err == nil {
			n, err := r.src.Read(r.buf)
			r.in = r.buf[:n]
			if err != nil {
				if err != io.EOF {
					r.err = err

					return total, err
				}
				r.err = io.EOF
			}
		}
		if len(r.in) > 0 {
			r.err = nil

			continue
		}
		if r.err == nil {
			// Source returned (0, nil); try again.
			continue
		}

		// Source exhausted. Fewer than 8 queued bits is byte padding; a
		// whole byte or more means the stream was cut mid-token.
		if r.dec.q.n >= 8 {
			r.err = io.ErrUnexpectedEOF
		}

		return total, r.err
	}
}
