package core

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"lazyapps/internal/types"
)

type testRepo struct {
	packages map[string]types.PackageMetadata
	lookups  int
}

func (r *testRepo) Lookup(_ context.Context, pname string) (types.PackageMetadata, bool, error) {
	r.lookups++
	meta, ok := r.packages[pname]
	return meta, ok, nil
}

func boolPtr(v bool) *bool { return &v }

func TestResolveExecutablePrefersExplicit(t *testing.T) {
	repo := &testRepo{packages: map[string]types.PackageMetadata{
		"obs-studio": {MainProgram: "obs"},
	}}
	resolver := NewMetadataResolver(repo)

	exe, err := resolver.ResolveExecutable(t.Context(), "obs-studio", "custom")
	require.NoError(t, err)
	require.Equal(t, "custom", exe)
	require.Equal(t, 0, repo.lookups, "explicit exe must skip the lookup")
}

func TestResolveExecutableUsesMainProgram(t *testing.T) {
	repo := &testRepo{packages: map[string]types.PackageMetadata{
		"obs-studio": {MainProgram: "obs"},
		"discord":    {},
	}}
	resolver := NewMetadataResolver(repo)

	exe, err := resolver.ResolveExecutable(t.Context(), "obs-studio", "")
	require.NoError(t, err)
	require.Equal(t, "obs", exe)

	// No mainProgram falls back to the raw pname.
	exe, err = resolver.ResolveExecutable(t.Context(), "discord", "")
	require.NoError(t, err)
	require.Equal(t, "discord", exe)
}

func TestResolveExecutableMissingPackage(t *testing.T) {
	resolver := NewMetadataResolver(&testRepo{packages: map[string]types.PackageMetadata{}})

	_, err := resolver.ResolveExecutable(t.Context(), "nosuch", "")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	require.Contains(t, err.Error(), "nosuch")
}

func TestResolveDescriptionFallbacks(t *testing.T) {
	repo := &testRepo{packages: map[string]types.PackageMetadata{
		"obs-studio": {Description: "Video recording and live streaming"},
		"bare":       {},
	}}
	resolver := NewMetadataResolver(repo)

	desc, err := resolver.ResolveDescription(t.Context(), "obs-studio", "override")
	require.NoError(t, err)
	require.Equal(t, "override", desc)

	desc, err = resolver.ResolveDescription(t.Context(), "obs-studio", "")
	require.NoError(t, err)
	require.Equal(t, "Video recording and live streaming", desc)

	// Present without description and entirely absent both degrade to
	// the default rather than erroring.
	for _, pname := range []string{"bare", "missing"} {
		desc, err = resolver.ResolveDescription(t.Context(), pname, "")
		require.NoError(t, err)
		if diff := cmp.Diff(types.DefaultDescription, desc); diff != "" {
			t.Fatalf("unexpected description for %q (-want +got):\n%s", pname, diff)
		}
	}
}

func TestResolveLicenseFreedom(t *testing.T) {
	repo := &testRepo{packages: map[string]types.PackageMetadata{
		"free-app":   {Licenses: []types.License{{Free: boolPtr(true)}}},
		"unfree-app": {Licenses: []types.License{{Free: boolPtr(false)}}},
		"mixed-app":  {Licenses: []types.License{{Free: boolPtr(true)}, {Free: boolPtr(false)}}},
		"no-flag":    {Licenses: []types.License{{SPDXID: "MIT"}}},
		"no-license": {},
	}}
	resolver := NewMetadataResolver(repo)

	cases := map[string]bool{
		"free-app":   true,
		"unfree-app": false,
		"mixed-app":  false, // any unfree license wins
		"no-flag":    true,  // missing flag defaults to free
		"no-license": true,
		"missing":    true, // absent metadata never blocks generation
	}
	for pname, want := range cases {
		free, err := resolver.ResolveLicenseFreedom(t.Context(), pname)
		require.NoError(t, err, "pname %q", pname)
		require.Equal(t, want, free, "pname %q", pname)
	}
}

func TestResolveDottedIdentifierIsOpaqueKey(t *testing.T) {
	repo := &testRepo{packages: map[string]types.PackageMetadata{
		"python313Packages.numpy": {MainProgram: "f2py"},
	}}
	resolver := NewMetadataResolver(repo)

	exe, err := resolver.ResolveExecutable(t.Context(), "python313Packages.numpy", "")
	require.NoError(t, err)
	require.Equal(t, "f2py", exe)

	// Deeper nesting is just another unknown key, same error shape.
	_, err = resolver.ResolveExecutable(t.Context(), "a.b.c", "")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
