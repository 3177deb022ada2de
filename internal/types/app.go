package types

// DefaultFlakeRef is the flake reference used when an app or batch spec
// does not name one.
const DefaultFlakeRef = "nixpkgs"

// DefaultDescription is substituted whenever no description can be
// resolved from either the app config or the package repository.
const DefaultDescription = "Application"

// AppConfig describes one deferred app as supplied by the user, either
// programmatically or through a batch spec file.  Every field except
// Pname is optional; zero values are filled in by ApplyDefaults.
type AppConfig struct {
	// Pname is the package identifier in the repository.  It may be a
	// dotted path (e.g. "python313Packages.numpy"), which is treated as
	// a single opaque key.
	Pname string `yaml:"pname"`

	// Exe overrides the executable name resolved from package metadata.
	// It is used verbatim, with no normalization.
	Exe string `yaml:"exe,omitempty"`

	// DesktopName overrides the generated display name.
	DesktopName string `yaml:"desktop_name,omitempty"`

	Description string `yaml:"description,omitempty"`

	// Icon names the icon to look up in the theme, or an absolute path
	// used verbatim.  Empty means look up by Pname.
	Icon string `yaml:"icon,omitempty"`

	Categories []string `yaml:"categories,omitempty"`
	FlakeRef   string   `yaml:"flake_ref,omitempty"`

	// TerminalCommand controls whether this app claims its lowercased
	// name as a terminal command, and with it a slot in collision
	// detection.  Nil means true.
	TerminalCommand *bool `yaml:"terminal_command,omitempty"`

	AllowUnfree bool `yaml:"allow_unfree,omitempty"`
	GCRoot      bool `yaml:"gc_root,omitempty"`
}

// TerminalEnabled reports whether a terminal command should be created
// for this app, defaulting to true.
func (c AppConfig) TerminalEnabled() bool {
	return c.TerminalCommand == nil || *c.TerminalCommand
}

// ApplyDefaults fills in the documented defaults for unset fields.
func (c AppConfig) ApplyDefaults() AppConfig {
	if len(c.Categories) == 0 {
		c.Categories = []string{"Application"}
	}
	if c.FlakeRef == "" {
		c.FlakeRef = DefaultFlakeRef
	}
	return c
}

// BatchSpec is the on-disk format for generating several deferred apps
// in one run.  File-level FlakeRef applies to every app that does not
// set its own.
type BatchSpec struct {
	FlakeRef  string      `yaml:"flake_ref,omitempty"`
	IconTheme string      `yaml:"icon_theme,omitempty"`
	Apps      []AppConfig `yaml:"apps"`
}
