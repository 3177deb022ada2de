package ports

import (
	"context"

	"lazyapps/internal/types"
)

// MetadataRepoPort is the injected package-metadata lookup capability.
// Lookup returns found=false when the identifier is absent from the
// repository; err is reserved for failures of the lookup mechanism
// itself.  Dotted identifiers are opaque keys; the port performs no
// namespace traversal.
type MetadataRepoPort interface {
	Lookup(ctx context.Context, pname string) (types.PackageMetadata, bool, error)
}
