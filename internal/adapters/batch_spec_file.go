package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"lazyapps/internal/ports"
	"lazyapps/internal/types"
)

// BatchSpecFileAdapter loads a YAML batch spec and pushes the
// file-level flake ref down to apps that do not set their own.
// Identifier rules are checked later, per app, by the builder.
type BatchSpecFileAdapter struct{}

var _ ports.BatchSpecPort = BatchSpecFileAdapter{}

func NewBatchSpecFileAdapter() BatchSpecFileAdapter {
	return BatchSpecFileAdapter{}
}

func (a BatchSpecFileAdapter) Load(path string) (types.BatchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BatchSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("batch spec file not found").
			WithCause(err)
	}
	var spec types.BatchSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.BatchSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse batch spec yaml").
			WithCause(err)
	}
	if len(spec.Apps) == 0 {
		return types.BatchSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("batch spec must list at least one app")
	}
	if spec.FlakeRef != "" {
		for i, app := range spec.Apps {
			if app.FlakeRef == "" {
				spec.Apps[i].FlakeRef = spec.FlakeRef
			}
		}
	}
	return spec, nil
}
