package transfersyntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntax_RoundTrip(t *testing.T) {
	all := []Syntax{
		ImplicitVRLittleEndian, ExplicitVRLittleEndian, ExplicitVRBigEndian,
		JPEGBaseline, JPEGLossless, JPEG2000Lossless, JPEG2000, RLELossless,
	}
	for _, want := range all {
		got, err := FromUID(want.ToUID())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSyntax_FromUID_TrimsPadding(t *testing.T) {
	s, err := FromUID("1.2.840.10008.1.2.1 \x00")
	require.NoError(t, err)
	assert.Equal(t, ExplicitVRLittleEndian, s)
}

func TestSyntax_FromUID_Unsupported(t *testing.T) {
	_, err := FromUID("1.2.3.4.5.6")
	assert.ErrorIs(t, err, ErrUnsupportedTransferSyntax)
}

func TestSyntax_DerivedBits(t *testing.T) {
	assert.False(t, ImplicitVRLittleEndian.IsExplicitVR())
	assert.True(t, ExplicitVRLittleEndian.IsExplicitVR())
	assert.False(t, ExplicitVRBigEndian.IsLittleEndian())
	assert.True(t, JPEGLossless.IsEncapsulated())
	assert.False(t, ExplicitVRLittleEndian.IsEncapsulated())
}

func TestSyntax_IsRefused(t *testing.T) {
	assert.True(t, JPEG2000Lossless.IsRefused())
	assert.True(t, RLELossless.IsRefused())
	assert.False(t, JPEGLossless.IsRefused())
}
