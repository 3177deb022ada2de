package ports

import "lazyapps/internal/types"

// BatchSpecPort loads a batch spec file describing a set of apps to
// generate in one run.
type BatchSpecPort interface {
	Load(path string) (types.BatchSpec, error)
}
