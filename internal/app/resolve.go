package app

import (
	"context"

	"lazyapps/internal/core"
)

// Resolve builds a single app descriptor without writing anything,
// for inspecting what generation would produce.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	cfg := req.Config.ApplyDefaults()
	repo := s.NewRepo(req.MetadataIndex, cfg.FlakeRef)
	builder := core.NewDescriptorBuilder(repo, s.Theme)
	app, err := builder.Build(ctx, cfg, req.IconTheme)
	if err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{App: app}, nil
}
