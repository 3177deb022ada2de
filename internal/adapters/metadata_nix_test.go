package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNixMetaLicenseShapes(t *testing.T) {
	meta, err := parseNixMeta([]byte(`{"mainProgram":"obs","description":"d","license":{"free":true,"spdxId":"GPL-2.0-or-later"}}`))
	require.NoError(t, err)
	require.Equal(t, "obs", meta.MainProgram)
	require.Len(t, meta.Licenses, 1)
	require.True(t, meta.Free())

	meta, err = parseNixMeta([]byte(`{"license":[{"free":true},{"free":false}]}`))
	require.NoError(t, err)
	require.Len(t, meta.Licenses, 2)
	require.False(t, meta.Free())

	// Bare string licenses carry no free flag.
	meta, err = parseNixMeta([]byte(`{"license":"MIT"}`))
	require.NoError(t, err)
	require.Empty(t, meta.Licenses)
	require.True(t, meta.Free())

	meta, err = parseNixMeta([]byte(`{"description":"no license"}`))
	require.NoError(t, err)
	require.True(t, meta.Free())
}

func TestIsMissingAttribute(t *testing.T) {
	require.True(t, isMissingAttribute([]byte("error: flake 'flake:nixpkgs' does not provide attribute 'nosuch.meta'")))
	require.False(t, isMissingAttribute([]byte("error: network unreachable")))
}
