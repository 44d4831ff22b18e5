package tap2tzx

import (
	"bytes"
	"math"
)

const (
	// standardSpeedBlockID identifies a standard speed data block
	standardSpeedBlockID = 0x10

	// DefaultPause is the pause emitted after each block in milliseconds.
	// TAP files carry no pause information so the value is a fixed policy
	// choice rather than something read from the input.
	DefaultPause = 1000

	maxPayloadSize = math.MaxUint16
)

// tzxSignature is the fixed file header of a TZX container: the magic bytes
// followed by the major and minor format version.
var tzxSignature = []byte{'Z', 'X', 'T', 'a', 'p', 'e', '!', 0x1a, 1, 20}

// Options configures the encoder. The zero value is ready to use.
type Options struct {
	// Pause is the pause after each block in milliseconds. If Pause is
	// zero DefaultPause is used.
	Pause uint16
}

func (o Options) pause() uint16 {
	if o.Pause == 0 {
		return DefaultPause
	}
	return o.Pause
}

// Encode serialises the given records as a TZX container: the fixed signature
// header followed by one standard speed data block per record, in input order.
// Each block is the block id byte, a two byte little-endian pause duration, a
// two byte little-endian payload length and the payload verbatim.
//
// Encode fails with an *EncodeErr wrapping PayloadTooLargeErr if a record
// payload does not fit in the two byte length field. Output is deterministic
// for a fixed set of options.
func Encode(records []Record, opts Options) ([]byte, error) {
	buff := bytes.Buffer{}
	buff.Write(tzxSignature)

	rawPause := encodeUint16(opts.pause())
	for i, record := range records {
		if len(record.Payload) > maxPayloadSize {
			return nil, &EncodeErr{Index: i, Err: PayloadTooLargeErr}
		}

		buff.WriteByte(standardSpeedBlockID)
		buff.Write(rawPause)
		buff.Write(encodeUint16(uint16(len(record.Payload))))
		buff.Write(record.Payload)
	}

	return buff.Bytes(), nil
}
