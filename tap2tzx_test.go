package tap2tzx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	raw, count, err := Convert([]byte{0x03, 0x00, 0x41, 0x42, 0x43}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, count, "expected a single converted block")

	expected := append([]byte{}, tzxSignature...)
	expected = append(expected, 0x10, 0xe8, 0x03, 0x03, 0x00, 0x41, 0x42, 0x43)
	assert.Equal(t, expected, raw, "unexpected tzx byte stream")
}

func TestConvertProgramHeader(t *testing.T) {
	// a TAP header block for a program called "ManicMinerE"
	tap := []byte{
		0x13, 0x00, 0x00, 0x00, 0x4d, 0x61, 0x6e, 0x69, 0x63, 0x4d, 0x69,
		0x6e, 0x65, 0x72, 0x45, 0x00, 0x0a, 0x00, 0x45, 0x00, 0x1f,
	}

	raw, count, err := Convert(tap, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, count)

	expected := append([]byte{}, tzxSignature...)
	expected = append(expected, 0x10, 0xe8, 0x03)
	expected = append(expected, tap...)
	assert.Equal(t, expected, raw)
}

func TestConvertEmpty(t *testing.T) {
	raw, count, err := Convert(nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, count)
	assert.Equal(t, tzxSignature, raw)
}

func TestConvertRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{0x00, 0x41},
		{},
		{0xff, 0x01, 0x02, 0x03, 0x99},
	}
	tap := buildTap(payloads...)

	raw, count, err := Convert(tap, Options{})
	require.NoError(t, err)
	require.Equal(t, len(payloads), count)

	// walk the emitted container and compare each block payload
	raw = raw[len(tzxSignature):]
	for _, payload := range payloads {
		require.GreaterOrEqual(t, len(raw), 5)
		assert.Equal(t, byte(standardSpeedBlockID), raw[0])
		length := int(decodeUint16(raw[3:5]))
		require.Equal(t, len(payload), length)
		assert.Equal(t, payload, raw[5:5+length])
		raw = raw[5+length:]
	}
	assert.Empty(t, raw)
}

func TestConvertTruncated(t *testing.T) {
	_, _, err := Convert([]byte{0x05, 0x00, 0x41}, Options{})
	assert.ErrorIs(t, err, TruncatedBlockErr)
}
