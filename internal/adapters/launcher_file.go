package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lazyapps/internal/ports"
	"lazyapps/internal/types"
)

// LauncherFileAdapter renders the two launcher artifacts: an
// executable wrapper script under BinDir, and a desktop-entry file
// under ApplicationsDir whose Exec line points back at the wrapper.
type LauncherFileAdapter struct {
	BinDir          string
	ApplicationsDir string
}

var _ ports.LauncherWriterPort = LauncherFileAdapter{}

func NewLauncherFileAdapter(binDir string, applicationsDir string) LauncherFileAdapter {
	return LauncherFileAdapter{BinDir: binDir, ApplicationsDir: applicationsDir}
}

func (a LauncherFileAdapter) WriteWrapper(spec types.WrapperSpec, command string) (string, error) {
	path, err := ensurePath(a.BinDir, command)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(renderWrapper(spec)), 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write wrapper script").
			WithCause(err)
	}
	return path, nil
}

func (a LauncherFileAdapter) WriteDesktopEntry(spec types.DesktopEntrySpec) (string, error) {
	path, err := ensurePath(a.ApplicationsDir, spec.ID+".desktop")
	if err != nil {
		return "", err
	}
	exec := filepath.Join(a.BinDir, spec.ID)
	if err := os.WriteFile(path, []byte(renderDesktopEntry(spec, exec)), 0o644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write desktop entry").
			WithCause(err)
	}
	return path, nil
}

func renderWrapper(spec types.WrapperSpec) string {
	attr := fmt.Sprintf("%s#%s", spec.FlakeRef, spec.PackageID)
	var b strings.Builder
	b.WriteString("#!/usr/bin/env bash\n")
	b.WriteString("set -euo pipefail\n")
	if spec.UnsafeMode {
		b.WriteString("export NIXPKGS_ALLOW_UNFREE=1\n")
	}
	if spec.GCRoot {
		b.WriteString(fmt.Sprintf("outlink=\"${XDG_CACHE_HOME:-$HOME/.cache}/lazyapps/gcroots/%s\"\n", spec.PackageID))
		b.WriteString("mkdir -p \"$(dirname \"$outlink\")\"\n")
		b.WriteString(fmt.Sprintf("nix build %s --out-link \"$outlink\"\n", wrapperArgs(spec, attr)))
	}
	b.WriteString(fmt.Sprintf("exec nix run %s -- \"$@\"\n", wrapperArgs(spec, attr)))
	return b.String()
}

func wrapperArgs(spec types.WrapperSpec, attr string) string {
	args := fmt.Sprintf("%q", attr)
	if spec.UnsafeMode {
		args += " --impure"
	}
	return args
}

func renderDesktopEntry(spec types.DesktopEntrySpec, exec string) string {
	var lines []string
	lines = append(lines,
		"[Desktop Entry]",
		"Type=Application",
		"Name="+spec.Name,
		"Comment="+spec.Comment,
		"Exec="+exec,
	)
	if spec.Icon != "" {
		lines = append(lines, "Icon="+spec.Icon)
	}
	if len(spec.Categories) > 0 {
		lines = append(lines, "Categories="+strings.Join(spec.Categories, ";")+";")
	}
	lines = append(lines,
		fmt.Sprintf("Terminal=%t", spec.Terminal),
		fmt.Sprintf("StartupNotify=%t", spec.StartupNotify),
		"StartupWMClass="+spec.StartupWMClass,
	)
	return strings.Join(lines, "\n") + "\n"
}

func ensurePath(dir string, name string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(dir, name), nil
}
