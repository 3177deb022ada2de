package ports

import "lazyapps/internal/types"

// LauncherWriterPort renders the two artifacts of a resolved app.  Both
// methods return the path written.
type LauncherWriterPort interface {
	WriteWrapper(spec types.WrapperSpec, command string) (string, error)
	WriteDesktopEntry(spec types.DesktopEntrySpec) (string, error)
}
