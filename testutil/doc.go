// Package testutil provides test fixtures and helpers for the lazvlr package.
//
// Byte Fixtures:
//
//	CanonicalRecordData: hand-computed header bytes for point format 3
//	CanonicalExtendedRecordData: hand-computed header bytes for point format 7
//
// Test Data Setup:
//
//	GivenItemsForPointFormat: default item record for a point format id
//	GivenVlrForPointFormat: built header for a point format id
//	GivenDecodedVlr: header decoded from record data bytes
//
// The byte fixtures return a fresh copy on every call so tests can corrupt
// them freely.
package testutil
