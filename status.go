package lzs

import "strings"

// Status reports why an incremental decode call returned. Flags are an
// inclusive OR; StatusInputFinished|StatusInputStarved is the normal
// steady-state response once all input has been fed and consumed.
type Status uint8

// Status flags.
const (
	// StatusInputStarved: the bit queue holds fewer bits than the current
	// state needs; supply more input.
	StatusInputStarved Status = 1 << iota
	// StatusInputFinished: the bit queue is empty and no input remains.
	StatusInputFinished
	// StatusNoOutputSpace: the output buffer filled up mid-token; drain it
	// and call again.
	StatusNoOutputSpace
	// StatusEndMarker: the end marker was consumed; the stream terminates at
	// the next byte boundary.
	StatusEndMarker

	// StatusNone is the zero value: no condition raised.
	StatusNone Status = 0
)

// Has reports whether all flags in mask are set.
func (s Status) Has(mask Status) bool {
	return s&mask == mask
}

var statusNames = []struct {
	flag Status
	name string
}{
	{StatusInputStarved, "InputStarved"},
	{StatusInputFinished, "InputFinished"},
	{StatusNoOutputSpace, "NoOutputSpace"},
	{StatusEndMarker, "EndMarker"},
}

// String returns the set flags joined by "|", or "None".
func (s Status) String() string {
	if s == StatusNone {
		return "None"
	}

	var parts []string
	for _, sn := range statusNames {
		if s.Has(sn.flag) {
			parts = append(parts, sn.name)
		}
	}

	return strings.Join(parts, "|")
}
