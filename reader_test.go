package lzs

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestNewReaderValidation(t *testing.T) {
	_, err := NewReader(nil, nil)
	require.ErrorIs(t, err, ErrNilReader)

	_, err = NewReader(bytes.NewReader(nil), &DecoderOptions{HistorySize: 16})
	require.ErrorIs(t, err, ErrHistoryTooSmall)
}

func TestReaderWholeStream(t *testing.T) {
	enc := encodeTokens([]byte("hello "), [2]int{6, 6}, [2]int{1, 4})

	r, err := NewReader(bytes.NewReader(enc), nil)
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("hello hello     "), out)

	// After EOF, Read keeps returning EOF.
	n, err := r.Read(make([]byte, 4))
	require.Zero(t, n)
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderOneBytePerRead(t *testing.T) {
	enc := encodeTokens([]byte("fragmented"), [2]int{10, 10})

	r, err := NewReader(iotest.OneByteReader(bytes.NewReader(enc)), nil)
	require.NoError(t, err)

	var out []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.Equal(t, []byte("fragmentedfragmented"), out)
}

func TestReaderNoEndMarker(t *testing.T) {
	// A stream that simply runs out of bytes (no end marker) ends cleanly;
	// leftover sub-byte padding is not an error.
	var w bitWriter
	for _, b := range []byte("abc") {
		w.literal(b)
	}

	r, err := NewReader(bytes.NewReader(w.bytes()), nil)
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)
}

func TestReaderTruncatedMidToken(t *testing.T) {
	// Cut inside the long-offset field so a byte or more of the token is
	// pending, which cannot be padding.
	lit := make([]byte, 300)
	enc := encodeTokens(lit, [2]int{200, 7})

	r, err := NewReader(bytes.NewReader(enc[:len(enc)-2]), nil)
	require.NoError(t, err)

	_, err = io.ReadAll(r)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReaderStopsAtEndMarker(t *testing.T) {
	// Bytes after the end marker belong to the next layer and are not decoded.
	enc := append(encodeTokens([]byte("A")), 0xDE, 0xAD)

	r, err := NewReader(bytes.NewReader(enc), nil)
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("A"), out)
}

func TestReaderLargeStreamSmallBuffers(t *testing.T) {
	enc := encodeTokens([]byte("z"), [2]int{1, 4000})

	r, err := NewReader(iotest.HalfReader(bytes.NewReader(enc)), &DecoderOptions{HistorySize: MinHistorySize})
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = io.CopyBuffer(&out, r, make([]byte, 13))
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte("z"), 4001), out.Bytes())
}
