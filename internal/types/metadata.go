package types

// License is one license entry attached to a package.  A nil Free flag
// means the license is free; a package is unfree as soon as any of its
// licenses carries free: false.
type License struct {
	Free     *bool  `yaml:"free,omitempty" json:"free,omitempty"`
	SPDXID   string `yaml:"spdx_id,omitempty" json:"spdxId,omitempty"`
	FullName string `yaml:"full_name,omitempty" json:"fullName,omitempty"`
}

// IsFree reports the per-license freedom, defaulting to free when the
// flag is absent.
func (l License) IsFree() bool {
	return l.Free == nil || *l.Free
}

// PackageMetadata holds the facts resolved for one package identifier.
type PackageMetadata struct {
	MainProgram string    `yaml:"main_program,omitempty" json:"mainProgram,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Licenses    []License `yaml:"licenses,omitempty" json:"licenses,omitempty"`
}

// Free computes the package-level freedom: the AND over all license
// entries.  A package with no license entries is free.
func (m PackageMetadata) Free() bool {
	for _, lic := range m.Licenses {
		if !lic.IsFree() {
			return false
		}
	}
	return true
}
