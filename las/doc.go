// Package las holds the point-record layout constants of the LAS format
// that the compression header in package lazvlr refers to.
//
// The constants describe the byte widths of the field groups a LAS point
// record is composed of. They are fixed by the LAS specification; this
// package does not read or write point data.
package las
