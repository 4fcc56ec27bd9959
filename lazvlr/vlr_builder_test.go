package lazvlr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lidarkit/laszip-vlr-go/lazvlr"
)

//nolint:funlen
func Test_VlrBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (lazvlr.Vlr, error)
		validate func(t *testing.T, vlr lazvlr.Vlr)
	}{
		{
			name: "point_format_with_default_chunk_size",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithPointFormat(1, 0).
					Build()
			},
			validate: func(t *testing.T, vlr lazvlr.Vlr) {
				assert.Equal(t, lazvlr.DefaultChunkSize, vlr.ChunkSize())
				assert.False(t, vlr.UsesVariableSizeChunks())
				assert.Equal(t, lazvlr.CompressorPointWiseChunked, vlr.Compressor())
				assert.Len(t, vlr.Items(), 2)
			},
		},
		{
			name: "point_format_with_fixed_chunk_size",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithPointFormat(0, 0).
					WithFixedChunkSize(60_000).
					Build()
			},
			validate: func(t *testing.T, vlr lazvlr.Vlr) {
				assert.Equal(t, uint32(60_000), vlr.ChunkSize())
				assert.False(t, vlr.UsesVariableSizeChunks())
				assert.Equal(t, uint64(20), vlr.ItemsSize())
			},
		},
		{
			name: "point_format_with_variable_chunk_size",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithPointFormat(6, 0).
					WithVariableChunkSize().
					Build()
			},
			validate: func(t *testing.T, vlr lazvlr.Vlr) {
				assert.True(t, vlr.UsesVariableSizeChunks())
				assert.Equal(t, uint32(0xFFFFFFFF), vlr.ChunkSize())
				assert.Equal(t, lazvlr.CompressorLayeredChunked, vlr.Compressor())
			},
		},
		{
			name: "explicit_items",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithItems(lazvlr.Version2ItemsOf(lazvlr.PointFormat3{}, 0)).
					Build()
			},
			validate: func(t *testing.T, vlr lazvlr.Vlr) {
				assert.Equal(t, lazvlr.CompressorPointWiseChunked, vlr.Compressor())
				assert.Len(t, vlr.Items(), 3)
				assert.Equal(t, uint64(34), vlr.ItemsSize())
			},
		},
		{
			name: "explicit_items_with_version_1",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithItems(lazvlr.Version1ItemsOf(lazvlr.PointFormat1{}, 0)).
					WithFixedChunkSize(1000).
					Build()
			},
			validate: func(t *testing.T, vlr lazvlr.Vlr) {
				assert.Equal(t, lazvlr.CompressorPointWiseChunked, vlr.Compressor())
				assert.Equal(t, uint32(1000), vlr.ChunkSize())
			},
		},
		{
			name: "last_chunk_size_choice_wins",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithPointFormat(0, 0).
					WithVariableChunkSize().
					WithFixedChunkSize(25_000).
					Build()
			},
			validate: func(t *testing.T, vlr lazvlr.Vlr) {
				assert.False(t, vlr.UsesVariableSizeChunks())
				assert.Equal(t, uint32(25_000), vlr.ChunkSize())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vlr, err := tt.build()
			assert.NoError(t, err)
			tt.validate(t, vlr)
		})
	}
}

func Test_VlrBuilder_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		build       func() (lazvlr.Vlr, error)
		expectedErr error
	}{
		{
			name: "unsupported point format id surfaces at build",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithPointFormat(4, 0).
					Build()
			},
			expectedErr: lazvlr.ErrUnsupportedPointFormat,
		},
		{
			name: "unsupported point format id with chunk size chosen",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithPointFormat(255, 0).
					WithVariableChunkSize().
					Build()
			},
			expectedErr: lazvlr.ErrUnsupportedPointFormat,
		},
		{
			name: "empty explicit items",
			build: func() (lazvlr.Vlr, error) {
				return lazvlr.BuildVlr().
					WithItems(nil).
					Build()
			},
			expectedErr: lazvlr.ErrNoItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vlr, err := tt.build()
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, lazvlr.Vlr{}, vlr)
		})
	}
}
