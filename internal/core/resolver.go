package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lazyapps/internal/ports"
	"lazyapps/internal/types"
)

// MetadataResolver answers executable, description, and license
// questions for a package identifier against an injected repository.
// The executable lookup is strict (a missing package is an error);
// description and license lookups degrade to safe defaults so that
// absent metadata never blocks generation.
type MetadataResolver struct {
	Repo ports.MetadataRepoPort
}

func NewMetadataResolver(repo ports.MetadataRepoPort) MetadataResolver {
	return MetadataResolver{Repo: repo}
}

// ResolveExecutable returns the explicit override verbatim when given,
// otherwise the package's mainProgram, otherwise the raw pname.
func (r MetadataResolver) ResolveExecutable(ctx context.Context, pname string, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	meta, found, err := r.lookup(ctx, pname)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf(
				"package %q not found in repository; check the spelling or set exe explicitly (nested names support a single level, e.g. ns.name)",
				pname))
	}
	if meta.MainProgram != "" {
		return meta.MainProgram, nil
	}
	return pname, nil
}

// ResolveDescription returns the explicit override verbatim when
// given.  A package missing from the repository, or present without a
// description, yields the default "Application".
func (r MetadataResolver) ResolveDescription(ctx context.Context, pname string, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	meta, found, err := r.lookup(ctx, pname)
	if err != nil {
		return "", err
	}
	if !found || meta.Description == "" {
		return types.DefaultDescription, nil
	}
	return meta.Description, nil
}

// ResolveLicenseFreedom reports whether the package is free.  A
// package missing from the repository counts as free so that absent
// metadata never silently marks a launcher unfree.
func (r MetadataResolver) ResolveLicenseFreedom(ctx context.Context, pname string) (bool, error) {
	meta, found, err := r.lookup(ctx, pname)
	if err != nil {
		return false, err
	}
	if !found {
		log.Ctx(ctx).Debug().Str("pname", pname).Msg("no metadata for license check, assuming free")
		return true, nil
	}
	return meta.Free(), nil
}

func (r MetadataResolver) lookup(ctx context.Context, pname string) (types.PackageMetadata, bool, error) {
	if r.Repo == nil {
		return types.PackageMetadata{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata resolver requires a repository port")
	}
	return r.Repo.Lookup(ctx, pname)
}
