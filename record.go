package tap2tzx

// recordMetadata contains positional information for the record.
type recordMetadata struct {
	// offset is not stored in either container but calculated while
	// scanning the source buffer
	offset int64
}

// Record represents one data block of the cassette image. The payload is
// carried verbatim, including the flag byte and the trailing checksum byte the
// block arrived with in the tape file. Records are not modified after decoding.
type Record struct {
	meta    recordMetadata
	Payload []byte
}

// Offset returns the offset of the record's length prefix in the source
// buffer. It is zero for records which were not produced by Decode.
func (r Record) Offset() int64 {
	return r.meta.offset
}

// Size returns the size of the payload in bytes.
func (r Record) Size() int64 {
	return int64(len(r.Payload))
}
