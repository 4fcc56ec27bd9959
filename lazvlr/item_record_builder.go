package lazvlr

import (
	"fmt"
)

// Not every point format supports every algorithm version: the legacy
// point-wise versions 1 and 2 only encode the legacy point formats 0 to 3,
// while the layered version 3 is required for the extended point formats
// 6 to 8 and invalid for the legacy ones.
//
// The capability relationship is expressed through one interface per version
// family, implemented only by the point format descriptors that support that
// family. The item record entry points below each accept only the matching
// interface, so an unsupported (point format, version family) pairing does
// not compile.

// DefaultVersionFormat is a point format that defines a default item record.
// All known point formats implement it.
type DefaultVersionFormat interface {
	defaultVersionItems(numExtraBytes uint16) Items
}

// Version1Format is a point format that the point-wise version 1 can encode.
// Only the legacy point formats 0 to 3 implement it.
type Version1Format interface {
	version1Items(numExtraBytes uint16) Items
}

// Version2Format is a point format that the point-wise version 2 can encode.
// Only the legacy point formats 0 to 3 implement it.
type Version2Format interface {
	version2Items(numExtraBytes uint16) Items
}

// Version3Format is a point format that the layered version 3 can encode.
// Only the extended point formats 6 to 8 implement it.
type Version3Format interface {
	version3Items(numExtraBytes uint16) Items
}

// PointFormat0 describes the LAS point format 0: core geometry only.
type PointFormat0 struct{}

// PointFormat1 describes the LAS point format 1: core geometry and GPS time.
type PointFormat1 struct{}

// PointFormat2 describes the LAS point format 2: core geometry and color.
type PointFormat2 struct{}

// PointFormat3 describes the LAS point format 3: core geometry, GPS time and color.
type PointFormat3 struct{}

// PointFormat6 describes the LAS point format 6: extended core geometry only.
type PointFormat6 struct{}

// PointFormat7 describes the LAS point format 7: extended core geometry and color.
type PointFormat7 struct{}

// PointFormat8 describes the LAS point format 8: extended core geometry,
// color and near-infrared.
type PointFormat8 struct{}

func (f PointFormat0) defaultVersionItems(numExtraBytes uint16) Items {
	return f.version2Items(numExtraBytes)
}

func (f PointFormat0) version1Items(numExtraBytes uint16) Items {
	return legacyItemRecord(1, numExtraBytes, Point10)
}

func (f PointFormat0) version2Items(numExtraBytes uint16) Items {
	return legacyItemRecord(2, numExtraBytes, Point10)
}

func (f PointFormat1) defaultVersionItems(numExtraBytes uint16) Items {
	return f.version2Items(numExtraBytes)
}

func (f PointFormat1) version1Items(numExtraBytes uint16) Items {
	return legacyItemRecord(1, numExtraBytes, Point10, GpsTime)
}

func (f PointFormat1) version2Items(numExtraBytes uint16) Items {
	return legacyItemRecord(2, numExtraBytes, Point10, GpsTime)
}

func (f PointFormat2) defaultVersionItems(numExtraBytes uint16) Items {
	return f.version2Items(numExtraBytes)
}

func (f PointFormat2) version1Items(numExtraBytes uint16) Items {
	return legacyItemRecord(1, numExtraBytes, Point10, RGB12)
}

func (f PointFormat2) version2Items(numExtraBytes uint16) Items {
	return legacyItemRecord(2, numExtraBytes, Point10, RGB12)
}

func (f PointFormat3) defaultVersionItems(numExtraBytes uint16) Items {
	return f.version2Items(numExtraBytes)
}

func (f PointFormat3) version1Items(numExtraBytes uint16) Items {
	return legacyItemRecord(1, numExtraBytes, Point10, GpsTime, RGB12)
}

func (f PointFormat3) version2Items(numExtraBytes uint16) Items {
	return legacyItemRecord(2, numExtraBytes, Point10, GpsTime, RGB12)
}

func (f PointFormat6) defaultVersionItems(numExtraBytes uint16) Items {
	return f.version3Items(numExtraBytes)
}

func (f PointFormat6) version3Items(numExtraBytes uint16) Items {
	return extendedItemRecord(3, numExtraBytes, Point14)
}

func (f PointFormat7) defaultVersionItems(numExtraBytes uint16) Items {
	return f.version3Items(numExtraBytes)
}

func (f PointFormat7) version3Items(numExtraBytes uint16) Items {
	return extendedItemRecord(3, numExtraBytes, Point14, RGB14)
}

func (f PointFormat8) defaultVersionItems(numExtraBytes uint16) Items {
	return f.version3Items(numExtraBytes)
}

func (f PointFormat8) version3Items(numExtraBytes uint16) Items {
	return extendedItemRecord(3, numExtraBytes, Point14, RGBNIR14)
}

func legacyItemRecord(version uint16, numExtraBytes uint16, itemTypes ...ItemType) Items {
	items := make(Items, 0, len(itemTypes)+1)
	for _, itemType := range itemTypes {
		items = append(items, newItem(itemType, version))
	}

	if numExtraBytes > 0 {
		items = append(items, newItem(Byte(numExtraBytes), version))
	}

	return items
}

func extendedItemRecord(version uint16, numExtraBytes uint16, itemTypes ...ItemType) Items {
	items := make(Items, 0, len(itemTypes)+1)
	for _, itemType := range itemTypes {
		items = append(items, newItem(itemType, version))
	}

	if numExtraBytes > 0 {
		items = append(items, newItem(Byte14(numExtraBytes), version))
	}

	return items
}

// DefaultVersionItemsOf returns the item record encoding the given point
// format with the algorithm version its author intends by default, plus
// numExtraBytes application-defined extra bytes.
func DefaultVersionItemsOf(format DefaultVersionFormat, numExtraBytes uint16) Items {
	return format.defaultVersionItems(numExtraBytes)
}

// Version1ItemsOf returns the item record encoding the given legacy point
// format with the point-wise version 1.
func Version1ItemsOf(format Version1Format, numExtraBytes uint16) Items {
	return format.version1Items(numExtraBytes)
}

// Version2ItemsOf returns the item record encoding the given legacy point
// format with the point-wise version 2.
func Version2ItemsOf(format Version2Format, numExtraBytes uint16) Items {
	return format.version2Items(numExtraBytes)
}

// Version3ItemsOf returns the item record encoding the given extended point
// format with the layered version 3.
func Version3ItemsOf(format Version3Format, numExtraBytes uint16) Items {
	return format.version3Items(numExtraBytes)
}

// DefaultItemsForPointFormatID returns the default item record for a numeric
// LAS point format id, one of {0,1,2,3,6,7,8}.
// Returns ErrUnsupportedPointFormat for any other id.
func DefaultItemsForPointFormatID(pointFormatID uint8, numExtraBytes uint16) (Items, error) {
	switch pointFormatID {
	case 0:
		return DefaultVersionItemsOf(PointFormat0{}, numExtraBytes), nil
	case 1:
		return DefaultVersionItemsOf(PointFormat1{}, numExtraBytes), nil
	case 2:
		return DefaultVersionItemsOf(PointFormat2{}, numExtraBytes), nil
	case 3:
		return DefaultVersionItemsOf(PointFormat3{}, numExtraBytes), nil
	case 6:
		return DefaultVersionItemsOf(PointFormat6{}, numExtraBytes), nil
	case 7:
		return DefaultVersionItemsOf(PointFormat7{}, numExtraBytes), nil
	case 8:
		return DefaultVersionItemsOf(PointFormat8{}, numExtraBytes), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPointFormat, pointFormatID)
	}
}

// ItemRecordBuilder assembles an item record from arbitrary item types,
// stamping each with its inherent size and default algorithm version.
//
// No cross-item version-consistency check is performed; mixing legacy and
// extended item types produces an item record mixing version families.
type ItemRecordBuilder struct {
	itemTypes []ItemType
}

// BuildItemRecord creates an ItemRecordBuilder which must eventually be
// finalized with Build().
func BuildItemRecord() *ItemRecordBuilder {
	return &ItemRecordBuilder{}
}

// AddItem appends an item type to the record being built.
func (b *ItemRecordBuilder) AddItem(itemType ItemType) *ItemRecordBuilder {
	b.itemTypes = append(b.itemTypes, itemType)

	return b
}

// Build returns the item record, each item carrying its item type's inherent
// size and default algorithm version.
func (b *ItemRecordBuilder) Build() Items {
	items := make(Items, 0, len(b.itemTypes))
	for _, itemType := range b.itemTypes {
		items = append(items, newItem(itemType, itemType.DefaultVersion()))
	}

	return items
}
