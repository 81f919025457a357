package runlength

import "errors"

// Sentinel errors for decompression.
var (
	// ErrMalformedMarker indicates a marker missing ')' or 'x', or with
	// non-numeric or negative fields.
	ErrMalformedMarker = errors.New("runlength: malformed marker")

	// ErrTruncated indicates a marker whose span runs past the end of input.
	ErrTruncated = errors.New("runlength: marker span exceeds input")

	// ErrOverflow indicates a decompressed length beyond int64.
	ErrOverflow = errors.New("runlength: decompressed length overflows int64")

	// ErrTooLarge indicates Decompress output beyond MaxDecompressed.
	ErrTooLarge = errors.New("runlength: decompressed output too large")
)

// MaxDecompressed caps the bytes Decompress will materialize.
const MaxDecompressed = 1 << 28

// Version selects how markers inside a marker's span are treated.
type Version int

const (
	// Flat copies spans verbatim (markers inside are literal text).
	Flat Version = iota + 1
	// Recursive decompresses spans before repeating them.
	Recursive
)

// marker is a parsed (length x times) marker.
// end is the index just past the closing ')'.
type marker struct {
	length int
	times  int
	end    int
}
