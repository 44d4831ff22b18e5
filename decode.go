package tap2tzx

const lengthOfBlockLengthField = 2

// Decode parses a raw TAP buffer into the records it contains, in tape order.
// A TAP file is a plain sequence of blocks, each a two byte little-endian
// length followed by that many payload bytes. There is no file header.
//
// Decoding is all or nothing. If the buffer ends in the middle of a length
// prefix or a block the returned error is a *DecodeErr wrapping
// TruncatedLengthErr or TruncatedBlockErr and no records are returned.
// Zero-length blocks are valid and decode to a record with an empty payload.
func Decode(_raw []byte) ([]Record, error) {
	records := make([]Record, 0)

	offset := int64(0)
	size := int64(len(_raw))
	for offset < size {
		if size-offset < lengthOfBlockLengthField {
			return nil, &DecodeErr{Offset: offset, Err: TruncatedLengthErr}
		}
		blockLength := int64(decodeUint16(_raw[offset : offset+lengthOfBlockLengthField]))

		if size-offset-lengthOfBlockLengthField < blockLength {
			return nil, &DecodeErr{Offset: offset, Err: TruncatedBlockErr}
		}

		payloadStart := offset + lengthOfBlockLengthField
		record := Record{
			meta:    recordMetadata{offset: offset},
			Payload: _raw[payloadStart : payloadStart+blockLength],
		}
		records = append(records, record)

		offset = payloadStart + blockLength
	}

	return records, nil
}
