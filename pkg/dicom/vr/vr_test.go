package vr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVR_RoundTrip(t *testing.T) {
	all := []VR{AE, AS, AT, CS, DA, DS, DT, FL, FD, IS, LO, LT, OB, OD, OF, OL,
		OV, OW, PN, SH, SL, SQ, SS, ST, SV, TM, UC, UI, UL, UN, UR, US, UT, UV}
	require.Len(t, all, 34)

	for _, want := range all {
		b := want.ToBytes()
		got, err := FromBytes(b[0], b[1])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestVR_FromBytes_Invalid(t *testing.T) {
	_, err := FromBytes('Z', 'Z')
	assert.ErrorIs(t, err, ErrInvalidVR)

	_, err = FromBytes(0x01, 0x02)
	assert.ErrorIs(t, err, ErrInvalidVR)
}

func TestVR_UsesLongLengthField(t *testing.T) {
	assert.True(t, OB.UsesLongLengthField())
	assert.True(t, SQ.UsesLongLengthField())
	assert.False(t, US.UsesLongLengthField())
	assert.False(t, PN.UsesLongLengthField())
}

func TestVR_IsString(t *testing.T) {
	assert.True(t, PN.IsString())
	assert.False(t, US.IsString())
}
