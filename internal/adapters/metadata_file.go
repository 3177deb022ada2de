package adapters

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"lazyapps/internal/ports"
	"lazyapps/internal/types"
)

// MetadataFileAdapter serves package metadata from a YAML index file
// mapping pname to metadata.  Dotted identifiers are stored as flat
// keys, so "python313Packages.numpy" is a literal map key and no
// namespace traversal happens here.
type MetadataFileAdapter struct {
	Path   string
	cached map[string]types.PackageMetadata
	loaded bool
}

var _ ports.MetadataRepoPort = (*MetadataFileAdapter)(nil)

func NewMetadataFileAdapter(path string) *MetadataFileAdapter {
	return &MetadataFileAdapter{Path: path}
}

func (a *MetadataFileAdapter) Lookup(_ context.Context, pname string) (types.PackageMetadata, bool, error) {
	index, err := a.load()
	if err != nil {
		return types.PackageMetadata{}, false, err
	}
	meta, ok := index[pname]
	return meta, ok, nil
}

func (a *MetadataFileAdapter) load() (map[string]types.PackageMetadata, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("metadata index file not found").
			WithCause(err)
	}
	var index map[string]types.PackageMetadata
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid metadata index format").
			WithCause(err)
	}
	if index == nil {
		index = map[string]types.PackageMetadata{}
	}
	a.cached = index
	a.loaded = true
	return index, nil
}
