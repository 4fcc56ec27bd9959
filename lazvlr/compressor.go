package lazvlr

import (
	"fmt"
)

// CompressorType classifies the overall shape of the compressed stream.
type CompressorType uint16

const (
	// CompressorNone means the point records are stored uncompressed.
	CompressorNone CompressorType = iota

	// CompressorPointWise compresses all points point by point, as a single
	// block without chunking.
	CompressorPointWise

	// CompressorPointWiseChunked compresses points point by point into chunks
	// of chunk_size points each. Used by the item versions 1 and 2.
	CompressorPointWiseChunked

	// CompressorLayeredChunked compresses points into chunks and additionally
	// separates the point fields into layers. Used by the item versions 3 and 4,
	// which encode the extended point formats 6 to 10.
	CompressorLayeredChunked
)

func compressorTypeFromCode(code uint16) (CompressorType, error) {
	if code > uint16(CompressorLayeredChunked) {
		return CompressorNone, fmt.Errorf("%w: %d", ErrUnknownCompressorType, code)
	}

	return CompressorType(code), nil
}

// CompressorTypeForItemVersion returns the compressor type implied by an
// item's algorithm version: versions 1 and 2 are compressed point-wise into
// chunks, versions 3 and 4 into layered chunks.
// Returns ErrUnknownItemVersion for any other version.
func CompressorTypeForItemVersion(itemVersion uint16) (CompressorType, error) {
	switch itemVersion {
	case 1, 2:
		return CompressorPointWiseChunked, nil
	case 3, 4:
		return CompressorLayeredChunked, nil
	default:
		return CompressorNone, fmt.Errorf("%w: %d", ErrUnknownItemVersion, itemVersion)
	}
}

// String provides a string representation of CompressorType for logging and debugging.
func (c CompressorType) String() string {
	switch c {
	case CompressorNone:
		return "none"
	case CompressorPointWise:
		return "point-wise"
	case CompressorPointWiseChunked:
		return "point-wise chunked"
	case CompressorLayeredChunked:
		return "layered chunked"
	default:
		return "unknown"
	}
}
