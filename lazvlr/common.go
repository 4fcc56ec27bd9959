package lazvlr

import (
	"errors"
)

var (
	// ErrUnknownCompressorType is returned when a compressor type code outside
	// the known set {0,1,2,3} is decoded.
	ErrUnknownCompressorType = errors.New("unknown compressor type")

	// ErrUnknownItemType is returned when an item type code outside the known
	// set {0,6,7,8,10,11,12,14} is decoded.
	ErrUnknownItemType = errors.New("unknown laz item type")

	// ErrUnknownItemVersion is returned when an item carries an algorithm
	// version outside the known set {1,2,3,4}.
	ErrUnknownItemVersion = errors.New("unknown laz item version")

	// ErrNoItems is returned when a header is built from an empty item list.
	ErrNoItems = errors.New("at least one laz item is required")

	// ErrUnsupportedPointFormat is returned when a point format id outside the
	// known set {0,1,2,3,6,7,8} is used to derive an item record.
	ErrUnsupportedPointFormat = errors.New("unsupported point format")
)
