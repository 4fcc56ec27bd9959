package testutil

import (
	"testing"

	"github.com/lidarkit/laszip-vlr-go/lazvlr"
)

// canonicalRecordData is the encoded header for point format 3: the items
// Point10 (size 20), GpsTime (size 8) and RGB12 (size 6), all algorithm
// version 2, compressed point-wise into fixed chunks of 50,000 points.
var canonicalRecordData = []byte{
	0x02, 0x00, // compressor: point-wise chunked
	0x00, 0x00, // coder: arithmetic
	0x02, 0x02, 0x00, 0x00, // version 2.2.0
	0x00, 0x00, 0x00, 0x00, // options
	0x50, 0xC3, 0x00, 0x00, // chunk size 50,000
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // number of special evlrs: -1
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // offset to special evlrs: -1
	0x03, 0x00, // num items
	0x06, 0x00, 0x14, 0x00, 0x02, 0x00, // Point10, size 20, version 2
	0x07, 0x00, 0x08, 0x00, 0x02, 0x00, // GpsTime, size 8, version 2
	0x08, 0x00, 0x06, 0x00, 0x02, 0x00, // RGB12, size 6, version 2
}

// canonicalExtendedRecordData is the encoded header for point format 7: the
// items Point14 (size 30) and RGB14 (size 6), both algorithm version 3,
// compressed into layered chunks of variable size.
var canonicalExtendedRecordData = []byte{
	0x03, 0x00, // compressor: layered chunked
	0x00, 0x00, // coder: arithmetic
	0x02, 0x02, 0x00, 0x00, // version 2.2.0
	0x00, 0x00, 0x00, 0x00, // options
	0xFF, 0xFF, 0xFF, 0xFF, // chunk size: variable
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // number of special evlrs: -1
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // offset to special evlrs: -1
	0x02, 0x00, // num items
	0x0A, 0x00, 0x1E, 0x00, 0x03, 0x00, // Point14, size 30, version 3
	0x0B, 0x00, 0x06, 0x00, 0x03, 0x00, // RGB14, size 6, version 3
}

// CanonicalRecordData returns hand-computed header bytes for point format 3
// with fixed 50,000-point chunks, as a fresh copy.
func CanonicalRecordData() []byte {
	return append([]byte(nil), canonicalRecordData...)
}

// CanonicalExtendedRecordData returns hand-computed header bytes for point
// format 7 with variable-size chunks, as a fresh copy.
func CanonicalExtendedRecordData() []byte {
	return append([]byte(nil), canonicalExtendedRecordData...)
}

// GivenItemsForPointFormat returns the default item record for the given
// point format id, failing the test for an unsupported id.
func GivenItemsForPointFormat(t testing.TB, pointFormatID uint8, numExtraBytes uint16) lazvlr.Items {
	t.Helper()

	items, err := lazvlr.DefaultItemsForPointFormatID(pointFormatID, numExtraBytes)
	if err != nil {
		t.Fatalf("building default items for point format %d failed: %v", pointFormatID, err)
	}

	return items
}

// GivenVlrForPointFormat returns a header built for the given point format id
// with default chunk sizing, failing the test for an unsupported id.
func GivenVlrForPointFormat(t testing.TB, pointFormatID uint8) lazvlr.Vlr {
	t.Helper()

	vlr, err := lazvlr.BuildVlr().WithPointFormat(pointFormatID, 0).Build()
	if err != nil {
		t.Fatalf("building vlr for point format %d failed: %v", pointFormatID, err)
	}

	return vlr
}

// GivenDecodedVlr returns the header decoded from recordData, failing the
// test if decoding fails.
func GivenDecodedVlr(t testing.TB, recordData []byte) lazvlr.Vlr {
	t.Helper()

	vlr, err := lazvlr.VlrFromBuffer(recordData)
	if err != nil {
		t.Fatalf("decoding vlr record data failed: %v", err)
	}

	return vlr
}
