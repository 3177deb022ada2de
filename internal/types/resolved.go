package types

// WrapperSpec carries everything needed to render the wrapper script
// that performs the deferred fetch-and-run on first invocation.
type WrapperSpec struct {
	PackageID  string
	FlakeRef   string
	Executable string
	IconPath   string
	UnsafeMode bool
	GCRoot     bool
}

// DesktopEntrySpec carries the fields rendered into a desktop-entry
// file, one Key=Value per line.
type DesktopEntrySpec struct {
	ID             string
	Name           string
	Comment        string
	Icon           string
	Categories     []string
	Terminal       bool
	StartupNotify  bool
	StartupWMClass string
}

// ResolvedApp is the fully computed descriptor for one deferred app.
// It is built once per AppConfig and immutable thereafter.
type ResolvedApp struct {
	Pname           string
	FinalExe        string
	TerminalCommand string
	TerminalEnabled bool
	DisplayName     string
	Description     string
	IconPath        string
	NeedsUnsafeMode bool

	Wrapper      WrapperSpec
	DesktopEntry DesktopEntrySpec
}

// CommandClaim is one app's claim on a terminal command, fed to
// collision detection across a batch.
type CommandClaim struct {
	PackageID string
	Command   string
	Enabled   bool
}

// CollisionReport maps a terminal command to the package identifiers
// that would produce it.  Only commands with two or more producers are
// recorded; a nil report means the batch is collision-free.
type CollisionReport map[string][]string
