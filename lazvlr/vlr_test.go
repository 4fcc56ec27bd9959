package lazvlr_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lidarkit/laszip-vlr-go/las"
	"github.com/lidarkit/laszip-vlr-go/lazvlr"
	"github.com/lidarkit/laszip-vlr-go/testutil"
)

func Test_ReadVlrFrom_CanonicalRecordData(t *testing.T) {
	vlr, err := lazvlr.ReadVlrFrom(bytes.NewReader(testutil.CanonicalRecordData()))
	assert.NoError(t, err)

	assert.Equal(t, lazvlr.CompressorPointWiseChunked, vlr.Compressor())
	assert.Equal(t, uint16(0), vlr.Coder())
	assert.Equal(t, lazvlr.DefaultVersion(), vlr.Version())
	assert.Equal(t, lazvlr.DefaultChunkSize, vlr.ChunkSize())
	assert.False(t, vlr.UsesVariableSizeChunks())
	assert.Equal(t, int64(-1), vlr.NumberOfSpecialEvlrs())
	assert.Equal(t, int64(-1), vlr.OffsetToSpecialEvlrs())

	items := vlr.Items()
	assert.Len(t, items, 3)
	assert.Equal(t, lazvlr.Point10, items[0].Type())
	assert.Equal(t, lazvlr.GpsTime, items[1].Type())
	assert.Equal(t, lazvlr.RGB12, items[2].Type())
	for _, item := range items {
		assert.Equal(t, uint16(2), item.Version())
	}

	expectedRecordLength, _ := las.PointRecordLength(3)
	assert.Equal(t, uint64(expectedRecordLength), vlr.ItemsSize())
}

func Test_ReadVlrFrom_CanonicalExtendedRecordData(t *testing.T) {
	vlr, err := lazvlr.ReadVlrFrom(bytes.NewReader(testutil.CanonicalExtendedRecordData()))
	assert.NoError(t, err)

	assert.Equal(t, lazvlr.CompressorLayeredChunked, vlr.Compressor())
	assert.True(t, vlr.UsesVariableSizeChunks())

	items := vlr.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, lazvlr.Point14, items[0].Type())
	assert.Equal(t, lazvlr.RGB14, items[1].Type())
	for _, item := range items {
		assert.Equal(t, uint16(3), item.Version())
	}

	expectedRecordLength, _ := las.PointRecordLength(7)
	assert.Equal(t, uint64(expectedRecordLength), vlr.ItemsSize())
}

func Test_Vlr_RoundTrip_BytesToVlrToBytes(t *testing.T) {
	tests := []struct {
		name       string
		recordData []byte
	}{
		{name: "point format 3 with fixed chunks", recordData: testutil.CanonicalRecordData()},
		{name: "point format 7 with variable chunks", recordData: testutil.CanonicalExtendedRecordData()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vlr := testutil.GivenDecodedVlr(t, tt.recordData)

			var buf bytes.Buffer
			written, err := vlr.WriteTo(&buf)
			assert.NoError(t, err)
			assert.Equal(t, int64(len(tt.recordData)), written)
			assert.Equal(t, tt.recordData, buf.Bytes())
		})
	}
}

func Test_Vlr_RoundTrip_VlrToBytesToVlr(t *testing.T) {
	for _, pointFormatID := range []uint8{0, 1, 2, 3, 6, 7, 8} {
		original := testutil.GivenVlrForPointFormat(t, pointFormatID)

		decoded := testutil.GivenDecodedVlr(t, original.RecordData())
		assert.Equal(t, original, decoded)
	}
}

func Test_Vlr_RoundTrip_WithExtraBytesAndVariableChunks(t *testing.T) {
	original, err := lazvlr.BuildVlr().
		WithPointFormat(6, 12).
		WithVariableChunkSize().
		Build()
	assert.NoError(t, err)

	decoded := testutil.GivenDecodedVlr(t, original.RecordData())
	assert.Equal(t, original, decoded)
	assert.True(t, decoded.UsesVariableSizeChunks())

	items := decoded.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, lazvlr.Byte14(12), items[1].Type())
	assert.Equal(t, uint16(12), items[1].Size())
}

func Test_ReadVlrFrom_UnknownCompressorType(t *testing.T) {
	for _, code := range []byte{4, 5, 255} {
		recordData := testutil.CanonicalRecordData()
		recordData[0] = code
		recordData[1] = 0

		_, err := lazvlr.VlrFromBuffer(recordData)
		assert.ErrorIs(t, err, lazvlr.ErrUnknownCompressorType)
	}
}

func Test_ReadVlrFrom_UnknownItemType(t *testing.T) {
	// the item type code of the first item lives right behind the fixed part
	// and the item count
	const firstItemCodeOffset = 34

	for _, code := range []byte{1, 2, 9, 13, 15} {
		recordData := testutil.CanonicalRecordData()
		recordData[firstItemCodeOffset] = code

		_, err := lazvlr.VlrFromBuffer(recordData)
		assert.ErrorIs(t, err, lazvlr.ErrUnknownItemType)
	}
}

func Test_ReadVlrFrom_TruncatedRecordData(t *testing.T) {
	_, err := lazvlr.VlrFromBuffer(nil)
	assert.ErrorIs(t, err, io.EOF)

	recordData := testutil.CanonicalRecordData()
	for _, length := range []int{1, 8, 31, 33, 36, len(recordData) - 1} {
		_, err = lazvlr.VlrFromBuffer(recordData[:length])
		assert.Error(t, err)
	}
}

func Test_ReadVlrFrom_AcceptsItemVersionsAsIs(t *testing.T) {
	// the decoder validates the item type codes but takes the version fields
	// as it finds them
	const firstItemVersionOffset = 38

	recordData := testutil.CanonicalRecordData()
	recordData[firstItemVersionOffset] = 5

	vlr, err := lazvlr.VlrFromBuffer(recordData)
	assert.NoError(t, err)
	assert.Equal(t, uint16(5), vlr.Items()[0].Version())
}

func Test_BuildVlrFromItems_EmptyItems(t *testing.T) {
	_, err := lazvlr.BuildVlrFromItems(nil)
	assert.ErrorIs(t, err, lazvlr.ErrNoItems)

	_, err = lazvlr.BuildVlrFromItems(lazvlr.Items{})
	assert.ErrorIs(t, err, lazvlr.ErrNoItems)
}

func Test_BuildVlrFromItems_UnknownFirstItemVersion(t *testing.T) {
	const firstItemVersionOffset = 38

	recordData := testutil.CanonicalRecordData()
	recordData[firstItemVersionOffset] = 7
	vlr := testutil.GivenDecodedVlr(t, recordData)

	_, err := lazvlr.BuildVlrFromItems(vlr.Items())
	assert.ErrorIs(t, err, lazvlr.ErrUnknownItemVersion)
}

// Only the first item's version decides the compressor type; a list mixing
// version families is accepted unchecked. Callers are expected to only build
// self-consistent lists via the builders.
func Test_BuildVlrFromItems_UsesOnlyFirstItemVersion(t *testing.T) {
	mixed := append(
		testutil.GivenItemsForPointFormat(t, 0, 0),
		testutil.GivenItemsForPointFormat(t, 6, 0)...,
	)

	vlr, err := lazvlr.BuildVlrFromItems(mixed)
	assert.NoError(t, err)
	assert.Equal(t, lazvlr.CompressorPointWiseChunked, vlr.Compressor())
}

func Test_BuildVlrFromItems_Defaults(t *testing.T) {
	vlr, err := lazvlr.BuildVlrFromItems(testutil.GivenItemsForPointFormat(t, 1, 0))
	assert.NoError(t, err)

	assert.Equal(t, uint16(0), vlr.Coder())
	assert.Equal(t, lazvlr.DefaultVersion(), vlr.Version())
	assert.Equal(t, lazvlr.DefaultChunkSize, vlr.ChunkSize())
	assert.Equal(t, int64(-1), vlr.NumberOfSpecialEvlrs())
	assert.Equal(t, int64(-1), vlr.OffsetToSpecialEvlrs())
}

func Test_Vlr_ItemsSize_MatchesDeclaredPointRecordLength(t *testing.T) {
	for _, pointFormatID := range []uint8{0, 1, 2, 3, 6, 7, 8} {
		vlr := testutil.GivenVlrForPointFormat(t, pointFormatID)

		expectedRecordLength, known := las.PointRecordLength(pointFormatID)
		assert.True(t, known)
		assert.Equal(t, uint64(expectedRecordLength), vlr.ItemsSize())
	}
}

func Test_Vlr_UsesVariableSizeChunks_OnlyForSentinelValue(t *testing.T) {
	for _, chunkSize := range []uint32{0, 1, 50_000, 0xFFFFFFFE} {
		vlr, err := lazvlr.BuildVlr().
			WithPointFormat(0, 0).
			WithFixedChunkSize(chunkSize).
			Build()
		assert.NoError(t, err)
		assert.False(t, vlr.UsesVariableSizeChunks())
		assert.Equal(t, chunkSize, vlr.ChunkSize())
	}

	vlr, err := lazvlr.BuildVlr().
		WithPointFormat(0, 0).
		WithVariableChunkSize().
		Build()
	assert.NoError(t, err)
	assert.True(t, vlr.UsesVariableSizeChunks())
	assert.Equal(t, uint32(0xFFFFFFFF), vlr.ChunkSize())
}

func Test_Vlr_IdentificationConstants(t *testing.T) {
	assert.Equal(t, "laszip encoded", lazvlr.UserID)
	assert.Equal(t, uint16(22204), lazvlr.RecordID)
	assert.Equal(t, "https://laszip.org", lazvlr.Description)
}

func Test_Vlr_WriteTo_PropagatesIOError(t *testing.T) {
	vlr := testutil.GivenVlrForPointFormat(t, 0)

	written, err := vlr.WriteTo(failingWriter{})
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Equal(t, int64(0), written)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}
