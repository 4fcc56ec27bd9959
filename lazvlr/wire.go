package lazvlr

import (
	"encoding/binary"
	"io"
)

// All integers of the header are little-endian, without padding.

func readU16(src io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(buf[:]), nil
}

func readU32(src io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readI64(src io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func appendU16(dst []byte, val uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, val)
}

func appendU32(dst []byte, val uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, val)
}

func appendI64(dst []byte, val int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(val))
}
