package app

import (
	"context"
)

// Validate performs a dry run of batch generation: every app is fully
// resolved and collision detection covers the complete batch, but no
// launcher file is written.  Intended as a CI check for spec files.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	configs, themeRoot, err := s.collectConfigs(req.SpecPath, req.Pnames, req.FlakeRef, req.IconTheme)
	if err != nil {
		return ValidateResult{}, err
	}
	resolved, err := s.resolveBatch(ctx, configs, req.MetadataIndex, req.FlakeRef, themeRoot)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{AppCount: len(resolved)}, nil
}
