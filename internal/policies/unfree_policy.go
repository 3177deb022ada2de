package policies

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// CheckUnfree is the policy gate run after an app is otherwise fully
// resolved: an unfree package is rejected unless the caller opted in
// explicitly.  There is no implicit bypass.
func CheckUnfree(pname string, free bool, allowUnfree bool) error {
	if free || allowUnfree {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodePermissionDenied).
		WithMsg(fmt.Sprintf(
			"package %q is unfree; set allow_unfree: true for it to opt in (the wrapper will then fetch impurely with NIXPKGS_ALLOW_UNFREE=1, which is less reproducible)",
			pname))
}
