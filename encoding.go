package tap2tzx

import "encoding/binary"

func decodeUint16(_raw []byte) uint16 {
	return binary.LittleEndian.Uint16(_raw)
}

func encodeUint16(value uint16) []byte {
	raw := make([]byte, 2)
	binary.LittleEndian.PutUint16(raw, value)
	return raw
}
