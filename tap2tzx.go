// Package tap2tzx converts ZX Spectrum TAP cassette images to the TZX
// container format.
//
// The package works on in-memory buffers only. Decode parses a TAP buffer
// into its records, Encode serialises records as a TZX buffer and Convert
// composes the two. Reading and writing tape files is left to the caller, see
// the tapefile package.
//
// Only the standard speed data block kind (0x10) of the TZX format is
// emitted. The extended TZX block kinds (turbo speed, pulse sequences and so
// on) carry information a TAP file does not have and are out of scope.
package tap2tzx

// Convert decodes a raw TAP buffer and encodes the result as a TZX buffer.
// It returns the encoded buffer and the number of converted blocks.
//
// Conversion is all or nothing: on any decode or encode error no output is
// returned.
func Convert(_raw []byte, opts Options) ([]byte, int, error) {
	records, err := Decode(_raw)
	if err != nil {
		return nil, 0, err
	}

	raw, err := Encode(records, opts)
	if err != nil {
		return nil, 0, err
	}

	return raw, len(records), nil
}
