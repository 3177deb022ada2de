package app

import (
	"lazyapps/internal/adapters"
	"lazyapps/internal/ports"
)

// Service wires the ports together.  Adapters that need per-request
// parameters (output directories, index path) are built through
// factory fields so tests can substitute fakes.
type Service struct {
	SpecLoader ports.BatchSpecPort
	Theme      ports.IconThemePort
	NewRepo    func(metadataIndex string, flakeRef string) ports.MetadataRepoPort
	NewWriter  func(binDir string, applicationsDir string) ports.LauncherWriterPort
}

func NewService() Service {
	return Service{
		SpecLoader: adapters.NewBatchSpecFileAdapter(),
		Theme:      adapters.NewIconThemeAdapter(),
		NewRepo: func(metadataIndex string, flakeRef string) ports.MetadataRepoPort {
			if metadataIndex != "" {
				return adapters.NewMetadataFileAdapter(metadataIndex)
			}
			return adapters.NewMetadataNixAdapter(flakeRef)
		},
		NewWriter: func(binDir string, applicationsDir string) ports.LauncherWriterPort {
			return adapters.NewLauncherFileAdapter(binDir, applicationsDir)
		},
	}
}
