package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_MarshalBinary(t *testing.T) {
	m := MustNew(2, 5, 3, 9, -1)
	data, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x4d, 0x58, 0x02,
		0, 0, 0, 5,
		0, 0, 0, 3,
		0, 0, 0, 9,
		0xff, 0xff, 0xff, 0xff,
	}, data)

	var out Matrix
	require.NoError(t, out.UnmarshalBinary(data))
	assert.True(t, m.Equal(&out))
}

func TestMatrix_UnmarshalBinary_Neg(t *testing.T) {
	var m Matrix
	assert.ErrorIs(t, m.UnmarshalBinary(nil), ErrInvalidData)
	assert.ErrorIs(t, m.UnmarshalBinary([]byte{0x12, 0x34, 0x02}), ErrInvalidData)
	assert.ErrorIs(t, m.UnmarshalBinary([]byte{0x4d, 0x58, 0x09}), ErrInvalidSize)
	assert.ErrorIs(t, m.UnmarshalBinary([]byte{0x4d, 0x58, 0x02, 0, 0, 0, 1}), ErrInvalidData)
}

func TestMatrix_MarshalBinary_Neg(t *testing.T) {
	var m *Matrix
	_, err := m.MarshalBinary()
	assert.ErrorIs(t, err, ErrInvalidData)
}
