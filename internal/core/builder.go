package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lazyapps/internal/policies"
	"lazyapps/internal/ports"
	"lazyapps/internal/types"
)

// DescriptorBuilder turns one AppConfig into a ResolvedApp.  The
// transformation is single-pass and side-effect free apart from the
// injected repository and icon-theme lookups, so building twice from
// the same inputs yields identical descriptors.
type DescriptorBuilder struct {
	Repo  ports.MetadataRepoPort
	Icons IconResolver
}

func NewDescriptorBuilder(repo ports.MetadataRepoPort, theme ports.IconThemePort) DescriptorBuilder {
	return DescriptorBuilder{
		Repo:  repo,
		Icons: NewIconResolver(theme),
	}
}

// Build resolves every field of the descriptor and applies the unfree
// policy gate last, so error messages from the gate can reference
// fully resolved fields.  Validation runs first; no repository lookup
// happens for an identifier that fails it.  At most one repository
// lookup runs per build: explicit exe and description skip theirs, and
// the license check reuses the memoized result.
func (b DescriptorBuilder) Build(ctx context.Context, cfg types.AppConfig, themeRoot string) (types.ResolvedApp, error) {
	if b.Repo == nil {
		return types.ResolvedApp{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor builder requires a metadata repository port")
	}
	cfg = cfg.ApplyDefaults()

	if err := ValidatePackageName(cfg.Pname); err != nil {
		return types.ResolvedApp{}, err
	}

	resolver := NewMetadataResolver(&memoRepo{inner: b.Repo})

	finalExe, err := resolver.ResolveExecutable(ctx, cfg.Pname, cfg.Exe)
	if err != nil {
		return types.ResolvedApp{}, err
	}
	command := TerminalCommand(finalExe)

	displayName := cfg.DesktopName
	if displayName == "" {
		displayName = DisplayName(cfg.Pname)
	}

	description, err := resolver.ResolveDescription(ctx, cfg.Pname, cfg.Description)
	if err != nil {
		return types.ResolvedApp{}, err
	}

	free, err := resolver.ResolveLicenseFreedom(ctx, cfg.Pname)
	if err != nil {
		return types.ResolvedApp{}, err
	}

	iconRequest := cfg.Icon
	if iconRequest == "" {
		iconRequest = cfg.Pname
	}
	iconPath := b.Icons.Resolve(ctx, []string{iconRequest, finalExe}, themeRoot)

	if err := policies.CheckUnfree(cfg.Pname, free, cfg.AllowUnfree); err != nil {
		return types.ResolvedApp{}, err
	}
	unsafeMode := !free && cfg.AllowUnfree

	// The desktop entry is named after the terminal command so the two
	// artifacts line up; apps without terminal integration fall back
	// to the package identifier to keep entry files distinct.
	entryID := command
	if !cfg.TerminalEnabled() {
		entryID = TerminalCommand(cfg.Pname)
	}

	return types.ResolvedApp{
		Pname:           cfg.Pname,
		FinalExe:        finalExe,
		TerminalCommand: command,
		TerminalEnabled: cfg.TerminalEnabled(),
		DisplayName:     displayName,
		Description:     description,
		IconPath:        iconPath,
		NeedsUnsafeMode: unsafeMode,
		Wrapper: types.WrapperSpec{
			PackageID:  cfg.Pname,
			FlakeRef:   cfg.FlakeRef,
			Executable: finalExe,
			IconPath:   iconPath,
			UnsafeMode: unsafeMode,
			GCRoot:     cfg.GCRoot,
		},
		DesktopEntry: types.DesktopEntrySpec{
			ID:             entryID,
			Name:           displayName,
			Comment:        description,
			Icon:           iconPath,
			Categories:     cfg.Categories,
			Terminal:       false,
			StartupNotify:  true,
			StartupWMClass: finalExe,
		},
	}, nil
}

// memoRepo caches lookups for the duration of one build so the three
// resolution questions share a single repository query.  Pure
// optimization; outcomes are unchanged.
type memoRepo struct {
	inner  ports.MetadataRepoPort
	pname  string
	meta   types.PackageMetadata
	found  bool
	cached bool
}

func (m *memoRepo) Lookup(ctx context.Context, pname string) (types.PackageMetadata, bool, error) {
	if m.cached && m.pname == pname {
		return m.meta, m.found, nil
	}
	meta, found, err := m.inner.Lookup(ctx, pname)
	if err != nil {
		return types.PackageMetadata{}, false, err
	}
	m.pname, m.meta, m.found, m.cached = pname, meta, found, true
	return meta, found, nil
}
