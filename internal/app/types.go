package app

import "lazyapps/internal/types"

type GenerateRequest struct {
	// SpecPath points at a batch spec file.  When empty, Pnames is
	// used instead with defaults applied.
	SpecPath string
	Pnames   []string
	FlakeRef string

	// MetadataIndex selects the file-backed repository; empty means
	// evaluate metadata through the nix CLI.
	MetadataIndex string
	IconTheme     string

	BinDir          string
	ApplicationsDir string
}

type GeneratedApp struct {
	Pname       string
	Command     string
	WrapperPath string
	DesktopPath string
}

type GenerateResult struct {
	Apps []GeneratedApp
}

type ValidateRequest struct {
	SpecPath      string
	Pnames        []string
	FlakeRef      string
	MetadataIndex string
	IconTheme     string
}

type ValidateResult struct {
	AppCount int
}

type ResolveRequest struct {
	Config        types.AppConfig
	MetadataIndex string
	IconTheme     string
}

type ResolveResult struct {
	App types.ResolvedApp
}
