package las

// Byte widths of the field groups a LAS point record is composed of.
const (
	// Point0Size is the width of the core geometry fields of the legacy
	// point formats 0 to 5.
	Point0Size uint16 = 20

	// Point6Size is the width of the core geometry fields of the extended
	// point formats 6 to 10 introduced with LAS 1.4.
	Point6Size uint16 = 30

	// GpsTimeSize is the width of the GPS time field, an IEEE-754 double.
	GpsTimeSize uint16 = 8

	// RGBSize is the combined width of the red, green and blue color fields.
	RGBSize uint16 = 6

	// NirSize is the width of the near-infrared field.
	NirSize uint16 = 2
)

// PointRecordLength returns the byte length of one uncompressed point record
// for the given point format id, without any extra bytes.
// The second return value is false for point format ids this library does not know.
func PointRecordLength(pointFormatID uint8) (uint16, bool) {
	switch pointFormatID {
	case 0:
		return Point0Size, true
	case 1:
		return Point0Size + GpsTimeSize, true
	case 2:
		return Point0Size + RGBSize, true
	case 3:
		return Point0Size + GpsTimeSize + RGBSize, true
	case 6:
		return Point6Size, true
	case 7:
		return Point6Size + RGBSize, true
	case 8:
		return Point6Size + RGBSize + NirSize, true
	default:
		return 0, false
	}
}

// IsExtendedFormat reports whether the point format id belongs to the
// extended point formats introduced with LAS 1.4.
func IsExtendedFormat(pointFormatID uint8) bool {
	return pointFormatID >= 6
}
