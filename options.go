package lzs

// DecoderOptions configures history sizing for surfaces that own their ring
// buffer (Reader). The incremental Decoder itself takes a caller-owned ring
// and has no options.
type DecoderOptions struct {
	// HistorySize is the size of the history ring buffer in bytes.
	// Values below MinHistorySize cannot address the full LZS window.
	HistorySize int
}

// DefaultDecoderOptions returns options with the recommended 2048-byte ring.
func DefaultDecoderOptions() *DecoderOptions {
	return &DecoderOptions{
		HistorySize: DefaultHistorySize,
	}
}
