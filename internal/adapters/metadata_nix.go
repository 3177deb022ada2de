package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lazyapps/internal/ports"
	"lazyapps/internal/shared"
	"lazyapps/internal/types"
)

// MetadataNixAdapter resolves package metadata by evaluating the meta
// attribute of a flake output with the nix CLI.  Used when no
// pre-built metadata index is available.
type MetadataNixAdapter struct {
	FlakeRef string
}

var _ ports.MetadataRepoPort = MetadataNixAdapter{}

func NewMetadataNixAdapter(flakeRef string) MetadataNixAdapter {
	if flakeRef == "" {
		flakeRef = types.DefaultFlakeRef
	}
	return MetadataNixAdapter{FlakeRef: flakeRef}
}

func (a MetadataNixAdapter) Lookup(ctx context.Context, pname string) (types.PackageMetadata, bool, error) {
	assert.NotEmpty(ctx, a.FlakeRef, "flake ref must be set")
	attr := fmt.Sprintf("%s#%s.meta", a.FlakeRef, pname)
	cmd := exec.CommandContext(ctx, "nix", "eval", "--json", attr)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if isMissingAttribute(output) {
			log.Ctx(ctx).Debug().Str("attr", attr).Msg("attribute missing in flake")
			return types.PackageMetadata{}, false, nil
		}
		return types.PackageMetadata{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("nix eval failed").
			WithCause(shared.CommandError(output, err))
	}
	meta, err := parseNixMeta(output)
	if err != nil {
		return types.PackageMetadata{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unexpected nix meta output").
			WithCause(err)
	}
	return meta, true, nil
}

func isMissingAttribute(output []byte) bool {
	text := string(output)
	return strings.Contains(text, "does not provide attribute") ||
		strings.Contains(text, "attribute") && strings.Contains(text, "missing")
}

// nixMeta mirrors the meta attrset shape.  license may be a single
// attrset, a list of attrsets, or a plain string.
type nixMeta struct {
	MainProgram string          `json:"mainProgram"`
	Description string          `json:"description"`
	License     json.RawMessage `json:"license"`
}

func parseNixMeta(data []byte) (types.PackageMetadata, error) {
	var raw nixMeta
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.PackageMetadata{}, err
	}
	meta := types.PackageMetadata{
		MainProgram: raw.MainProgram,
		Description: raw.Description,
	}
	if len(raw.License) == 0 {
		return meta, nil
	}
	switch raw.License[0] {
	case '[':
		var licenses []types.License
		if err := json.Unmarshal(raw.License, &licenses); err != nil {
			return types.PackageMetadata{}, err
		}
		meta.Licenses = licenses
	case '{':
		var license types.License
		if err := json.Unmarshal(raw.License, &license); err != nil {
			return types.PackageMetadata{}, err
		}
		meta.Licenses = []types.License{license}
	default:
		// Bare string licenses carry no free flag; treat as free.
	}
	return meta, nil
}
