package lazvlr

import (
	"fmt"
	"io"

	"github.com/lidarkit/laszip-vlr-go/las"
)

// Wire codes of the item type kinds. The gaps (9, 13) are the wave packet
// kinds, which no known compressor implements.
const (
	byteCode     uint16 = 0
	point10Code  uint16 = 6
	gpsTimeCode  uint16 = 7
	rgb12Code    uint16 = 8
	point14Code  uint16 = 10
	rgb14Code    uint16 = 11
	rgbNIR14Code uint16 = 12
	byte14Code   uint16 = 14
)

// ItemType is the kind of field a point record is decomposed into for
// compression. The set of kinds is closed; values are obtained from the
// package-level variables (Point10, GpsTime, ...) and the Byte / Byte14
// constructors, which are the only two kinds carrying a caller-supplied size.
type ItemType struct {
	code uint16

	// only meaningful for the Byte and Byte14 kinds
	extraByteCount uint16
}

var (
	// Point10 is the core geometry of the legacy point formats 0 to 5.
	Point10 = ItemType{code: point10Code}

	// GpsTime is the GPS time field of the legacy point formats.
	GpsTime = ItemType{code: gpsTimeCode}

	// RGB12 is the color of the legacy point formats.
	RGB12 = ItemType{code: rgb12Code}

	// Point14 is the core geometry of the extended point formats 6 to 10.
	Point14 = ItemType{code: point14Code}

	// RGB14 is the color of the extended point formats.
	RGB14 = ItemType{code: rgb14Code}

	// RGBNIR14 is the color plus near-infrared of the extended point formats.
	RGBNIR14 = ItemType{code: rgbNIR14Code}
)

// Byte describes count application-defined extra bytes appended to a legacy
// point record.
func Byte(count uint16) ItemType {
	return ItemType{code: byteCode, extraByteCount: count}
}

// Byte14 describes count application-defined extra bytes appended to an
// extended point record.
func Byte14(count uint16) ItemType {
	return ItemType{code: byte14Code, extraByteCount: count}
}

func itemTypeFromCode(code uint16, size uint16) (ItemType, error) {
	switch code {
	case byteCode:
		return Byte(size), nil
	case point10Code:
		return Point10, nil
	case gpsTimeCode:
		return GpsTime, nil
	case rgb12Code:
		return RGB12, nil
	case point14Code:
		return Point14, nil
	case rgb14Code:
		return RGB14, nil
	case rgbNIR14Code:
		return RGBNIR14, nil
	case byte14Code:
		return Byte14(size), nil
	default:
		return ItemType{}, fmt.Errorf("%w: %d", ErrUnknownItemType, code)
	}
}

// Code returns the wire code of the item type.
func (t ItemType) Code() uint16 {
	return t.code
}

// Size returns the inherent byte width of the item type, or the stored
// extra-byte count for the Byte and Byte14 kinds.
func (t ItemType) Size() uint16 {
	switch t.code {
	case byteCode, byte14Code:
		return t.extraByteCount
	case point10Code:
		return las.Point0Size
	case gpsTimeCode:
		return las.GpsTimeSize
	case rgb12Code, rgb14Code:
		return las.RGBSize
	case point14Code:
		return las.Point6Size
	case rgbNIR14Code:
		return las.RGBSize + las.NirSize
	default:
		return 0
	}
}

// DefaultVersion returns the algorithm version used for this item type when
// no explicit choice is made: 2 for the legacy kinds, 3 for the extended kinds.
func (t ItemType) DefaultVersion() uint16 {
	switch t.code {
	case point14Code, rgb14Code, rgbNIR14Code, byte14Code:
		return 3
	default:
		return 2
	}
}

// String provides a string representation of ItemType for logging and debugging.
func (t ItemType) String() string {
	switch t.code {
	case byteCode:
		return "Byte"
	case point10Code:
		return "Point10"
	case gpsTimeCode:
		return "GpsTime"
	case rgb12Code:
		return "RGB12"
	case point14Code:
		return "Point14"
	case rgb14Code:
		return "RGB14"
	case rgbNIR14Code:
		return "RGBNIR14"
	case byte14Code:
		return "Byte14"
	default:
		return "unknown"
	}
}

// Items is an alias type for a slice of Item.
type Items = []Item

// Item is one concrete field descriptor of the header: an item type paired
// with its byte width and the algorithm version that encodes it.
//
// Items are produced by the item record builders or decoded from a header;
// they are immutable values.
type Item struct {
	itemType ItemType
	size     uint16
	version  uint16
}

func newItem(itemType ItemType, version uint16) Item {
	return Item{
		itemType: itemType,
		size:     itemType.Size(),
		version:  version,
	}
}

// Type returns the item type.
func (i Item) Type() ItemType {
	return i.itemType
}

// Size returns the byte width the item occupies in one uncompressed point record.
func (i Item) Size() uint16 {
	return i.size
}

// Version returns the algorithm version that encodes the item.
func (i Item) Version() uint16 {
	return i.version
}

func readItemFrom(src io.Reader) (Item, error) {
	code, err := readU16(src)
	if err != nil {
		return Item{}, err
	}

	size, err := readU16(src)
	if err != nil {
		return Item{}, err
	}

	itemType, err := itemTypeFromCode(code, size)
	if err != nil {
		return Item{}, err
	}

	version, err := readU16(src)
	if err != nil {
		return Item{}, err
	}

	return Item{itemType: itemType, size: size, version: version}, nil
}

func (i Item) appendRecordData(dst []byte) []byte {
	dst = appendU16(dst, i.itemType.Code())
	dst = appendU16(dst, i.size)

	return appendU16(dst, i.version)
}
