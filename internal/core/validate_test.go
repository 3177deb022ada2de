package core

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func TestValidatePackageNameAcceptsValidNames(t *testing.T) {
	for _, pname := range []string{"obs-studio", "discord", "python313Packages.numpy", "a"} {
		require.NoError(t, ValidatePackageName(pname))
	}
}

func TestValidatePackageNameRejections(t *testing.T) {
	cases := []struct {
		pname   string
		wantMsg string
	}{
		{"", "must not be empty"},
		{"foo/bar", "must not contain '/'"},
		{"foo bar", "must not contain spaces"},
		{".hidden", "must not start with '.'"},
		{"-flag", "must not start with '-'"},
	}
	for _, tc := range cases {
		err := ValidatePackageName(tc.pname)
		require.Error(t, err, "pname %q", tc.pname)
		require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		if !strings.Contains(err.Error(), tc.wantMsg) {
			t.Fatalf("error for %q should mention %q, got: %v", tc.pname, tc.wantMsg, err)
		}
	}
}

func TestValidatePackageNameNamesOffendingValue(t *testing.T) {
	err := ValidatePackageName("foo/bar")
	require.Error(t, err)
	require.Contains(t, err.Error(), "foo/bar")
}
