package lazvlr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Version identifies the revision of the compression scheme that wrote the
// header. It is informational only; compatibility is decided per item via
// the item versions.
type Version struct {
	Major    uint8
	Minor    uint8
	Revision uint16
}

// DefaultVersion returns the version stamped into headers created by the builders.
func DefaultVersion() Version {
	return Version{Major: 2, Minor: 2, Revision: 0}
}

// String provides a string representation of Version for logging and debugging.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

func readVersionFrom(src io.Reader) (Version, error) {
	var buf [4]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return Version{}, err
	}

	return Version{
		Major:    buf[0],
		Minor:    buf[1],
		Revision: binary.LittleEndian.Uint16(buf[2:4]),
	}, nil
}

func (v Version) appendRecordData(dst []byte) []byte {
	dst = append(dst, v.Major, v.Minor)

	return binary.LittleEndian.AppendUint16(dst, v.Revision)
}
