package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"lazyapps/internal/app"
	"lazyapps/tests/testutil"
)

// buildIconTheme lays out a minimal themed icon tree with one direct
// icon and one reachable only through a symlink.
func buildIconTheme(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteFile(t, root, filepath.Join("64x64", "apps", "obs-studio.svg"), "<svg/>")
	target := testutil.WriteFile(t, root, filepath.Join("scalable", "apps", "discord-real.svg"), "<svg/>")
	link := filepath.Join(root, "scalable", "apps", "discord.svg")
	require.NoError(t, os.Symlink(target, link))
	return root
}

func TestGenerateBatchEndToEnd(t *testing.T) {
	root := testutil.RepoRoot(t)
	binDir := t.TempDir()
	appsDir := t.TempDir()
	theme := buildIconTheme(t)

	service := app.NewService()
	result, err := service.Generate(t.Context(), app.GenerateRequest{
		SpecPath:        filepath.Join(root, "fixtures", "apps-sample.yaml"),
		MetadataIndex:   filepath.Join(root, "fixtures", "metadata-index.yaml"),
		IconTheme:       theme,
		BinDir:          binDir,
		ApplicationsDir: appsDir,
	})
	require.NoError(t, err)
	require.Len(t, result.Apps, 3)

	// obs-studio: mainProgram wins, icon found directly in the theme.
	wrapper, err := os.ReadFile(filepath.Join(binDir, "obs"))
	require.NoError(t, err)
	require.Contains(t, string(wrapper), `exec nix run "nixpkgs#obs-studio" -- "$@"`)

	entry, err := os.ReadFile(filepath.Join(appsDir, "obs.desktop"))
	require.NoError(t, err)
	require.Contains(t, string(entry), "Name=Obs Studio\n")
	require.Contains(t, string(entry), "Comment=Video recording and live streaming\n")
	require.Contains(t, string(entry), "Categories=AudioVideo;Recorder;\n")
	require.Contains(t, string(entry), filepath.Join(theme, "64x64", "apps", "obs-studio.svg"))

	// discord: unfree with opt-in, icon resolved through the symlink
	// to its real target.
	wrapper, err = os.ReadFile(filepath.Join(binDir, "discord"))
	require.NoError(t, err)
	require.Contains(t, string(wrapper), "export NIXPKGS_ALLOW_UNFREE=1")
	require.Contains(t, string(wrapper), "--impure")

	entry, err = os.ReadFile(filepath.Join(appsDir, "discord.desktop"))
	require.NoError(t, err)
	require.Contains(t, string(entry), "discord-real.svg")
	require.Contains(t, string(entry), "StartupWMClass=Discord\n")

	// hello: gc_root pre-builds an out-link before running.
	wrapper, err = os.ReadFile(filepath.Join(binDir, "hello"))
	require.NoError(t, err)
	require.Contains(t, string(wrapper), `nix build "nixpkgs#hello" --out-link`)

	// hello has no icon anywhere in the theme; the desktop entry falls
	// back to the bare name for display-time lookup.
	entry, err = os.ReadFile(filepath.Join(appsDir, "hello.desktop"))
	require.NoError(t, err)
	require.Contains(t, string(entry), "Icon=hello\n")
}

func TestValidateCatchesCollisionAcrossSources(t *testing.T) {
	root := testutil.RepoRoot(t)

	service := app.NewService()
	_, err := service.Validate(t.Context(), app.ValidateRequest{
		// Two different packages share the executable "hello".
		Pnames:        []string{"hello", "hello"},
		MetadataIndex: filepath.Join(root, "fixtures", "metadata-index.yaml"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"hello"`)
}

func TestResolveUnfreeWithoutOptIn(t *testing.T) {
	root := testutil.RepoRoot(t)

	service := app.NewService()
	_, err := service.Validate(t.Context(), app.ValidateRequest{
		Pnames:        []string{"discord"},
		MetadataIndex: filepath.Join(root, "fixtures", "metadata-index.yaml"),
	})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unfree"))
}
