// Package chunked implements the chunked transfer-coding state machine
// (RFC 7230 §4.1): chunk-size / chunk-data / trailer framing, as a resumable
// byte-at-a-time scanner so a caller's outer refill loop can feed it
// arbitrary slices without losing progress across reads.
package chunked

import "fmt"

// mode is the decoder's current phase.
type mode uint8

const (
	// modeMetadata accumulates the hex digits of the next chunk's size.
	modeMetadata mode = iota
	// modeRead copies chunk bytes into the output buffer.
	modeRead
)

// InvalidBoundaryDigitError reports a byte in chunk-size position that is
// neither a hex digit nor a CRLF boundary byte.
type InvalidBoundaryDigitError struct {
	Char byte
}

func (e *InvalidBoundaryDigitError) Error() string {
	return fmt.Sprintf("Could not parse boundary character %c in chunked encoding", e.Char)
}

// Decoder is a resumable chunked-body scanner. Zero value is ready to use.
type Decoder struct {
	Mode              mode
	ChunkSize         uint64
	BytesOfChunkRead  uint64
	TotalBytesWritten uint64
	Finished          bool
	// StartOfTrailers is the index, relative to the start of the slice
	// passed to the call of Decode that observed the terminating
	// zero-size chunk, at which trailer bytes (if any) begin.
	StartOfTrailers int
}

func isDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexValue(b byte) uint64 {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0')
	case b >= 'a' && b <= 'f':
		return uint64(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return uint64(b-'A') + 10
	}
	return 0
}

// Decode consumes as much of in as forms complete chunk framing, appending
// decoded chunk payload bytes to out, and returns the updated out slice.
// It is safe to call repeatedly with successive slices of the same byte
// stream: d carries (mode, partial chunk size, bytes-into-chunk, totals,
// finished flag, trailer offset) across calls.
//
// Chunk sizes are parsed as hex, matching this engine's writer. A size
// written in decimal by a peer is also read as hex (e.g. "10" means 16
// bytes); decimal sizes are not detected or converted.
func (d *Decoder) Decode(in []byte, out []byte) ([]byte, error) {
	for i := 0; i < len(in); i++ {
		if d.Finished {
			d.StartOfTrailers = i
			return out, nil
		}

		octet := in[i]
		onBoundary := octet == '\n' || octet == '\r'

		switch d.Mode {
		case modeMetadata:
			if octet == '\n' {
				d.Mode = modeRead
				if d.ChunkSize == 0 {
					d.Finished = true
					d.StartOfTrailers = i + 1
				}
				continue
			}
			if octet == '\r' {
				continue
			}
			if !isDigit(octet) {
				return out, &InvalidBoundaryDigitError{Char: octet}
			}
			d.ChunkSize = d.ChunkSize*16 + hexValue(octet)

		case modeRead:
			remaining := d.ChunkSize - d.BytesOfChunkRead
			if remaining > 0 {
				out = append(out, octet)
				d.BytesOfChunkRead++
				d.TotalBytesWritten++
				continue
			}
			// We've consumed the full chunk; now expect the
			// trailing CRLF before the next chunk-size line.
			if onBoundary {
				if octet == '\n' {
					d.Mode = modeMetadata
					d.ChunkSize = 0
					d.BytesOfChunkRead = 0
				}
				continue
			}
			return out, &InvalidBoundaryDigitError{Char: octet}
		}
	}
	return out, nil
}
