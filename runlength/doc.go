// Package runlength measures and expands text compressed with parenthesised
// repeat markers.
//
// Format:
//
//	A marker (AxB) says: take the next A characters after the marker and
//	repeat them B times. The marker itself produces no output. Whitespace
//	anywhere in the input is ignored.
//
//	  ADVENT              → ADVENT
//	  A(1x5)BC            → ABBBBBC
//	  (6x1)(1x3)A         → (1x3)A
//
// Versions:
//
//   - Flat (v1): characters covered by a marker are copied verbatim, so a
//     marker inside another marker's span is plain text.
//   - Recursive (v2): covered characters are themselves decompressed before
//     being repeated. Only the length is computed; the output of real inputs
//     runs to billions of characters.
//
// Complexity:
//
//   - DecompressedLen: O(n) time for v1; O(n·depth) for v2 where depth is the
//     marker nesting depth. Memory O(depth).
//   - Decompress:      O(output) time and memory, capped at MaxDecompressed.
//
// Errors:
//
//   - ErrMalformedMarker: a '(' that does not start a well-formed (AxB) marker.
//   - ErrTruncated:       a marker covering more characters than remain.
//   - ErrOverflow:        the decompressed length does not fit in int64.
//   - ErrTooLarge:        Decompress output would exceed MaxDecompressed.
package runlength
