package lazvlr

import (
	"bytes"
	"io"
	"math"
)

// Identification of the LasZip VLR in the container's record directory.
const (
	// UserID is the user id the LasZip VLR is registered under.
	UserID = "laszip encoded"

	// RecordID is the record id the LasZip VLR is registered under.
	RecordID uint16 = 22204

	// Description is the human-readable description of the LasZip VLR.
	Description = "https://laszip.org"
)

// DefaultChunkSize is the number of points per chunk used by the builders
// when no explicit chunk size is chosen.
const DefaultChunkSize uint32 = 50_000

// variableChunkSize marks the chunks as variable-sized.
const variableChunkSize uint32 = math.MaxUint32

const (
	vlrFixedRecordDataSize = 32
	itemRecordDataSize     = 6
)

// Vlr is the record data of the LasZip VLR: the compressor type, the chunk
// sizing policy, pointers to the optional special EVLRs and the ordered list
// of items the compression engine encodes one point record with.
//
// While a Vlr can only be obtained from validated constructors
// (BuildVlrFromItems, ReadVlrFrom, VlrFromBuffer or the builders), it is
// immutable and safe to share read-only across concurrently operating
// compressor and decompressor instances.
type Vlr struct {
	compressor CompressorType

	// 0 means arithmetic coder, the only defined choice
	coder uint16

	version Version

	// reserved
	options uint32

	chunkSize uint32

	// -1 if unused
	numberOfSpecialEvlrs int64
	// -1 if unused
	offsetToSpecialEvlrs int64

	items Items
}

// BuildVlrFromItems is a factory method for Vlr with fixed-size chunks of
// DefaultChunkSize points.
//
// The compressor type is derived from the first item's algorithm version;
// the remaining items are expected to share a consistent version family and
// are not re-validated here.
// Returns ErrNoItems for an empty item list and ErrUnknownItemVersion if the
// first item's version is not recognized.
func BuildVlrFromItems(items Items) (Vlr, error) {
	if len(items) == 0 {
		return Vlr{}, ErrNoItems
	}

	compressor, err := CompressorTypeForItemVersion(items[0].Version())
	if err != nil {
		return Vlr{}, err
	}

	return Vlr{
		compressor:           compressor,
		coder:                0,
		version:              DefaultVersion(),
		options:              0,
		chunkSize:            DefaultChunkSize,
		numberOfSpecialEvlrs: -1,
		offsetToSpecialEvlrs: -1,
		items:                items,
	}, nil
}

// ReadVlrFrom decodes the record data of a LasZip VLR from src.
//
// It parses the fixed layout eagerly, field by field, and fails on the first
// invalid compressor type code or item type code without returning a partial
// Vlr. I/O errors of src are propagated verbatim.
func ReadVlrFrom(src io.Reader) (Vlr, error) {
	compressorCode, err := readU16(src)
	if err != nil {
		return Vlr{}, err
	}

	compressor, err := compressorTypeFromCode(compressorCode)
	if err != nil {
		return Vlr{}, err
	}

	coder, err := readU16(src)
	if err != nil {
		return Vlr{}, err
	}

	version, err := readVersionFrom(src)
	if err != nil {
		return Vlr{}, err
	}

	options, err := readU32(src)
	if err != nil {
		return Vlr{}, err
	}

	chunkSize, err := readU32(src)
	if err != nil {
		return Vlr{}, err
	}

	numberOfSpecialEvlrs, err := readI64(src)
	if err != nil {
		return Vlr{}, err
	}

	offsetToSpecialEvlrs, err := readI64(src)
	if err != nil {
		return Vlr{}, err
	}

	items, err := readItemsFrom(src)
	if err != nil {
		return Vlr{}, err
	}

	return Vlr{
		compressor:           compressor,
		coder:                coder,
		version:              version,
		options:              options,
		chunkSize:            chunkSize,
		numberOfSpecialEvlrs: numberOfSpecialEvlrs,
		offsetToSpecialEvlrs: offsetToSpecialEvlrs,
		items:                items,
	}, nil
}

// VlrFromBuffer decodes the record data of a LasZip VLR from an in-memory buffer.
func VlrFromBuffer(recordData []byte) (Vlr, error) {
	return ReadVlrFrom(bytes.NewReader(recordData))
}

func readItemsFrom(src io.Reader) (Items, error) {
	numItems, err := readU16(src)
	if err != nil {
		return nil, err
	}

	items := make(Items, 0, numItems)
	for i := 0; i < int(numItems); i++ {
		item, readErr := readItemFrom(src)
		if readErr != nil {
			return nil, readErr
		}

		items = append(items, item)
	}

	return items, nil
}

// RecordData returns the encoded record data of the Vlr, exactly as it is
// stored in the container. Its length is what the container's record
// directory entry must declare.
func (v Vlr) RecordData() []byte {
	dst := make([]byte, 0, vlrFixedRecordDataSize+2+len(v.items)*itemRecordDataSize)

	dst = appendU16(dst, uint16(v.compressor))
	dst = appendU16(dst, v.coder)
	dst = v.version.appendRecordData(dst)
	dst = appendU32(dst, v.options)
	dst = appendU32(dst, v.chunkSize)
	dst = appendI64(dst, v.numberOfSpecialEvlrs)
	dst = appendI64(dst, v.offsetToSpecialEvlrs)

	dst = appendU16(dst, uint16(len(v.items)))
	for _, item := range v.items {
		dst = item.appendRecordData(dst)
	}

	return dst
}

// WriteTo encodes the record data of the Vlr into dst, implementing io.WriterTo.
//
// It fails only on an I/O error of dst, never on validation, because only
// validated constructors produce a Vlr.
func (v Vlr) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(v.RecordData())

	return int64(n), err
}

// Compressor returns the overall shape of the compressed stream.
func (v Vlr) Compressor() CompressorType {
	return v.compressor
}

// Coder returns the entropy coder id; 0 means arithmetic coder, the only
// defined choice.
func (v Vlr) Coder() uint16 {
	return v.coder
}

// Version returns the version of the compression scheme that wrote the header.
func (v Vlr) Version() Version {
	return v.version
}

// ChunkSize returns the number of points in each chunk.
//
// This is only valid if UsesVariableSizeChunks returns false.
func (v Vlr) ChunkSize() uint32 {
	return v.chunkSize
}

// UsesVariableSizeChunks reports whether the chunks have a variable size.
func (v Vlr) UsesVariableSizeChunks() bool {
	return v.chunkSize == variableChunkSize
}

// NumberOfSpecialEvlrs returns the number of special EVLRs, -1 if unused.
func (v Vlr) NumberOfSpecialEvlrs() int64 {
	return v.numberOfSpecialEvlrs
}

// OffsetToSpecialEvlrs returns the byte offset to the special EVLRs, -1 if unused.
func (v Vlr) OffsetToSpecialEvlrs() int64 {
	return v.offsetToSpecialEvlrs
}

// Items returns the items compressed by this Vlr.
func (v Vlr) Items() Items {
	return v.items
}

// ItemsSize returns the sum of the item sizes, which corresponds to the byte
// width of one uncompressed point record. Widened to 64 bits so chunk byte
// counts can be computed from it without overflow.
func (v Vlr) ItemsSize() uint64 {
	var total uint64
	for _, item := range v.items {
		total += uint64(item.Size())
	}

	return total
}
