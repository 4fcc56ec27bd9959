package lazvlr

// VlrBuilder builds a Vlr fluently, starting from either an explicit item
// list or a numeric LAS point format id. It is designed so that a chunk
// sizing policy can only be chosen once the items are settled:
//
//	vlr, err := lazvlr.BuildVlr().
//		WithPointFormat(0, 0).
//		WithFixedChunkSize(60_000).
//		Build()
type VlrBuilder interface {
	// WithItems uses the given explicit item list.
	WithItems(items Items) CompletedVlrBuilder

	// WithPointFormat uses the default item record of the given LAS point
	// format id, one of {0,1,2,3,6,7,8}, with numExtraBytes application-defined
	// extra bytes. An unsupported id surfaces as an error from Build.
	WithPointFormat(pointFormatID uint8, numExtraBytes uint16) CompletedVlrBuilder
}

// CompletedVlrBuilder optionally adjusts the chunk sizing policy and
// finalizes the Vlr. Without an explicit choice, chunks hold
// DefaultChunkSize points each.
type CompletedVlrBuilder interface {
	// WithFixedChunkSize sets a fixed number of points per chunk.
	WithFixedChunkSize(numberOfPoints uint32) CompletedVlrBuilder

	// WithVariableChunkSize marks the chunks as variable-sized.
	WithVariableChunkSize() CompletedVlrBuilder

	// Build returns the Vlr once the items and the chunk sizing policy are settled.
	Build() (Vlr, error)
}

// vlrBuilder implements all the interfaces of VlrBuilder
type vlrBuilder struct {
	items     Items
	chunkSize uint32
	err       error
}

// BuildVlr creates a VlrBuilder which must eventually be finalized with Build().
func BuildVlr() VlrBuilder {
	return vlrBuilder{chunkSize: DefaultChunkSize}
}

// WithItems uses the given explicit item list.
func (vb vlrBuilder) WithItems(items Items) CompletedVlrBuilder {
	vb.items = items

	return vb
}

// WithPointFormat uses the default item record of the given LAS point format id.
func (vb vlrBuilder) WithPointFormat(pointFormatID uint8, numExtraBytes uint16) CompletedVlrBuilder {
	vb.items, vb.err = DefaultItemsForPointFormatID(pointFormatID, numExtraBytes)

	return vb
}

// WithFixedChunkSize sets a fixed number of points per chunk.
func (vb vlrBuilder) WithFixedChunkSize(numberOfPoints uint32) CompletedVlrBuilder {
	vb.chunkSize = numberOfPoints

	return vb
}

// WithVariableChunkSize marks the chunks as variable-sized.
func (vb vlrBuilder) WithVariableChunkSize() CompletedVlrBuilder {
	vb.chunkSize = variableChunkSize

	return vb
}

// Build returns the Vlr once the items and the chunk sizing policy are settled.
func (vb vlrBuilder) Build() (Vlr, error) {
	if vb.err != nil {
		return Vlr{}, vb.err
	}

	vlr, err := BuildVlrFromItems(vb.items)
	if err != nil {
		return Vlr{}, err
	}

	vlr.chunkSize = vb.chunkSize

	return vlr, nil
}
