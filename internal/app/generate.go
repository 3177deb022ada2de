package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lazyapps/internal/core"
	"lazyapps/internal/policies"
	"lazyapps/internal/shared"
	"lazyapps/internal/types"
)

// Generate resolves a batch of apps, runs collision detection over the
// complete batch, and only then writes any launcher files.  A failure
// at any point leaves nothing written.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	configs, themeRoot, err := s.collectConfigs(req.SpecPath, req.Pnames, req.FlakeRef, req.IconTheme)
	if err != nil {
		return GenerateResult{}, err
	}
	resolved, err := s.resolveBatch(ctx, configs, req.MetadataIndex, req.FlakeRef, themeRoot)
	if err != nil {
		return GenerateResult{}, err
	}

	writer := s.NewWriter(req.BinDir, req.ApplicationsDir)
	result := GenerateResult{}
	for _, app := range resolved {
		generated := GeneratedApp{Pname: app.Pname, Command: app.TerminalCommand}
		// The wrapper is always written under the desktop entry's name
		// so the entry's Exec target exists; terminal_command only
		// controls whether the command name is claimed for collision
		// purposes.
		generated.WrapperPath, err = writer.WriteWrapper(app.Wrapper, app.DesktopEntry.ID)
		if err != nil {
			return GenerateResult{}, err
		}
		generated.DesktopPath, err = writer.WriteDesktopEntry(app.DesktopEntry)
		if err != nil {
			return GenerateResult{}, err
		}
		log.Ctx(ctx).Info().
			Str("pname", app.Pname).
			Str("command", app.TerminalCommand).
			Msg("launcher generated")
		result.Apps = append(result.Apps, generated)
	}
	return result, nil
}

// collectConfigs merges the two configuration sources into one batch:
// the apps from a batch spec file, followed by the flat list of
// package names with defaults.  Collision detection runs over the
// union, so an app named on the command line conflicts with one from
// the spec file the same way two spec-file apps do.
func (s Service) collectConfigs(specPath string, pnames []string, flakeRef string, iconTheme string) ([]types.AppConfig, string, error) {
	var configs []types.AppConfig
	if specPath != "" {
		spec, err := s.SpecLoader.Load(specPath)
		if err != nil {
			return nil, "", err
		}
		configs = spec.Apps
		iconTheme = shared.FirstNonEmpty(iconTheme, spec.IconTheme)
	}
	for _, pname := range pnames {
		configs = append(configs, types.AppConfig{Pname: pname, FlakeRef: flakeRef})
	}
	if len(configs) == 0 {
		return nil, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no apps to generate; pass package names or a batch spec file")
	}
	return configs, iconTheme, nil
}

// resolveBatch builds every descriptor, then checks the whole batch
// for terminal command collisions.  The first per-app failure aborts;
// collision detection always sees the complete batch first.
func (s Service) resolveBatch(ctx context.Context, configs []types.AppConfig, metadataIndex string, flakeRef string, themeRoot string) ([]types.ResolvedApp, error) {
	repo := s.NewRepo(metadataIndex, flakeRef)
	builder := core.NewDescriptorBuilder(repo, s.Theme)

	resolved := make([]types.ResolvedApp, 0, len(configs))
	claims := make([]types.CommandClaim, 0, len(configs))
	for _, cfg := range configs {
		app, err := builder.Build(ctx, cfg, themeRoot)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, app)
		claims = append(claims, types.CommandClaim{
			PackageID: app.Pname,
			Command:   app.TerminalCommand,
			Enabled:   app.TerminalEnabled,
		})
	}
	if _, err := policies.DetectCollisions(claims); err != nil {
		return nil, err
	}
	return resolved, nil
}
