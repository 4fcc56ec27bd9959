// Package lazvlr implements the LasZip VLR, the self-describing compression
// header that precedes a stream of compressed point records in LAZ files.
//
// The header declares which fields ("items") compose one point record, which
// revision of the compression algorithm encodes each field, how points are
// grouped into chunks, and where optional special EVLRs live. A compression
// or decompression engine reads it to select its decoding strategy before
// touching any compressed byte; this package only describes the shape of the
// compressed data, it never interprets point data itself.
//
// Key types:
//   - Vlr: the immutable header, with exact-layout encoding and decoding
//   - Item / ItemType: one compressed field descriptor and its kind
//   - CompressorType: the overall shape of the compressed stream
//
// Common usage pattern:
//
//	// Describe point format 3 with fixed 60,000-point chunks
//	vlr, err := lazvlr.BuildVlr().
//		WithPointFormat(3, 0).
//		WithFixedChunkSize(60_000).
//		Build()
//	if err != nil {
//		// handle error
//	}
//
//	_, err = vlr.WriteTo(dst)
//
//	// Later, read it back from the container's record directory
//	vlr, err = lazvlr.ReadVlrFrom(src)
//
// The builders reject invalid combinations of point format and algorithm
// version before a single header byte is produced; the version-specific item
// record entry points (Version1ItemsOf and friends) reject them at compile
// time.
package lazvlr
