package runlength

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DecompressedLen returns the length of input once decompressed under v.
// Whitespace in input is ignored.
func DecompressedLen(input string, v Version) (int64, error) {
	return decodedLen(compact(input), v == Recursive)
}

// Decompress expands input with flat (v1) semantics and returns the result.
// Whitespace in input is ignored. Output longer than MaxDecompressed bytes
// is refused with ErrTooLarge before anything is written.
func Decompress(input string) (string, error) {
	data := compact(input)
	n, err := decodedLen(data, false)
	if err != nil {
		return "", err
	}
	if n > MaxDecompressed {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, n)
	}
	var out strings.Builder
	out.Grow(int(n))
	for i := 0; i < len(data); {
		if data[i] != '(' {
			out.WriteByte(data[i])
			i++
			continue
		}
		m, err := parseMarker(data, i)
		if err != nil {
			return "", err
		}
		span := data[m.end : m.end+m.length]
		for r := 0; r < m.times; r++ {
			out.Write(span)
		}
		i = m.end + m.length
	}
	return out.String(), nil
}

// decodedLen walks data once, descending into marker spans when recursive.
func decodedLen(data []byte, recursive bool) (int64, error) {
	var n int64
	for i := 0; i < len(data); {
		if data[i] != '(' {
			n++
			i++
			continue
		}
		m, err := parseMarker(data, i)
		if err != nil {
			return 0, err
		}
		inner := int64(m.length)
		if recursive {
			inner, err = decodedLen(data[m.end:m.end+m.length], true)
			if err != nil {
				return 0, err
			}
		}
		if inner != 0 && int64(m.times) > (math.MaxInt64-n)/inner {
			return 0, fmt.Errorf("%w: at offset %d", ErrOverflow, i)
		}
		n += inner * int64(m.times)
		i = m.end + m.length
	}
	return n, nil
}

// parseMarker reads the marker opening at data[at] and checks its span fits.
func parseMarker(data []byte, at int) (marker, error) {
	closing := bytes.IndexByte(data[at:], ')')
	if closing < 0 {
		return marker{}, fmt.Errorf("%w: unterminated at offset %d", ErrMalformedMarker, at)
	}
	body := string(data[at+1 : at+closing])
	l, t, ok := strings.Cut(body, "x")
	if !ok {
		return marker{}, fmt.Errorf("%w: %q at offset %d", ErrMalformedMarker, body, at)
	}
	length, err1 := strconv.Atoi(l)
	times, err2 := strconv.Atoi(t)
	if err1 != nil || err2 != nil || length < 0 || times < 0 {
		return marker{}, fmt.Errorf("%w: %q at offset %d", ErrMalformedMarker, body, at)
	}
	m := marker{length: length, times: times, end: at + closing + 1}
	if m.length > len(data)-m.end {
		return marker{}, fmt.Errorf("%w: (%s) at offset %d needs %d characters, %d remain",
			ErrTruncated, body, at, m.length, len(data)-m.end)
	}
	return m, nil
}

// compact drops all whitespace.
func compact(s string) []byte {
	return []byte(strings.Join(strings.Fields(s), ""))
}
