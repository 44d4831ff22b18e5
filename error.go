package tap2tzx

import (
	"fmt"
	"strconv"
)

var (
	// TruncatedLengthErr occurs when fewer than two bytes remain where a
	// length prefix was expected
	TruncatedLengthErr = fmt.Errorf("truncated length prefix")
	// TruncatedBlockErr occurs when a declared block length exceeds the
	// remaining input bytes
	TruncatedBlockErr = fmt.Errorf("truncated block data")
	// PayloadTooLargeErr occurs when a record payload does not fit in the
	// two byte length field of a standard speed data block
	PayloadTooLargeErr = fmt.Errorf("payload too large")
)

// DecodeErr error occurs when a block could not be read from the tape buffer
type DecodeErr struct {
	Offset int64
	Err    error
}

func (e *DecodeErr) Error() string {
	strOffset := strconv.FormatInt(e.Offset, 10)
	return "can't decode block at offset " + strOffset + ": " + e.Err.Error()
}

func (e *DecodeErr) Unwrap() error { return e.Err }

// EncodeErr error occurs when a record could not be written as a standard
// speed data block
type EncodeErr struct {
	Index int
	Err   error
}

func (e *EncodeErr) Error() string {
	strIndex := strconv.Itoa(e.Index)
	return "can't encode record " + strIndex + ": " + e.Err.Error()
}

func (e *EncodeErr) Unwrap() error { return e.Err }
