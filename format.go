package lzs

// LZS (ANSI X3.241-1994) format constants.
const (
	WindowSize         = 2047 // Sliding window: maximum back-reference offset.
	MinHistorySize     = 2047 // Smallest usable history ring (must cover WindowSize).
	DefaultHistorySize = 2048 // Recommended history ring size (power of two).
	MaxShortOffset     = 127  // Largest offset encodable in the 7-bit short form.
	MaxLongOffset      = 2047 // Largest offset encodable in the 11-bit long form.
	MinMatchLength     = 2    // Smallest back-reference length the code can express.
)

const (
	shortOffsetBits = 7
	longOffsetBits  = 11
	bitQueueBits    = 32

	lengthMaxBitWidth = 4  // Widest length symbol, also the extended-nibble width.
	maxInitialLength  = 8  // Length value that switches to extended-length mode.
	maxExtendedLength = 15 // Extended nibble value meaning "more nibbles follow".
)

// lengthDecodeTable maps the top 4 queue bits to a decoded length symbol.
// High nibble is the length value, low nibble is the symbol width in bits:
//
//	0b00   -> 2
//	0b01   -> 3
//	0b10   -> 4
//	0b1100 -> 5
//	0b1101 -> 6
//	0b1110 -> 7
//	0b1111 -> 8, extended nibbles follow
var lengthDecodeTable = [1 << lengthMaxBitWidth]uint8{
	0x22, 0x22, 0x22, 0x22, // 0b00xx -> 2
	0x32, 0x32, 0x32, 0x32, // 0b01xx -> 3
	0x42, 0x42, 0x42, 0x42, // 0b10xx -> 4
	0x54, 0x64, 0x74, 0x84, // 0b11xy -> 5, 6, 7, 8
}
