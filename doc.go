/*
Package lzs implements LZS (Lempel-Ziv-Stac, ANSI X3.241-1994) decompression,
as used by RFC 1967, RFC 1974, RFC 2395 and RFC 3943.

LZS is an LZ77-derived code with a sliding history window of up to 2047 bytes.
The stream is a raw MSB-first bit sequence with no framing: each token is
either a literal (0 + 8 bits) or a back-reference (1 + offset + length).
Offsets are 7-bit (1..127, short form) or 11-bit (1..2047, long form); a short
offset of 0 is the end marker, after which the stream re-aligns to a byte
boundary. Lengths use a prefix code for 2..7, and 8-and-up continues with
4-bit extended nibbles summed until one is below 15. Back-references may
overlap their own output (offset < length) for run expansion; offsets that
reach before the start of output produce zero bytes.

Use Decompress(src, outLen) or DecompressInto(dst, src) to decode a complete
buffer in one call. Use Decoder for incremental decoding with caller-supplied
input and output fragments of any size and a caller-owned history ring of at
least MinHistorySize bytes. Use NewReader(r, opts)
for an io.Reader over a compressed stream.

# Examples

One-shot decode into a new buffer:

	out := lzs.Decompress(encoded, expectedLen)

Incremental decode with a caller-owned 2 KiB ring:

	dec, err := lzs.NewDecoder(make([]byte, lzs.DefaultHistorySize))
	if err != nil {
		return err
	}
	for {
		nDst, nSrc, status := dec.Decompress(out, in)
		in = in[nSrc:]
		use(out[:nDst])
		if status.Has(lzs.StatusEndMarker) {
			break
		}
		if status.Has(lzs.StatusInputStarved) {
			in = nextInputChunk()
		}
	}

Streaming decode:

	r, err := lzs.NewReader(compressedStream, nil)
	if err != nil {
		return err
	}
	plain, err := io.ReadAll(r)
*/
package lzs
