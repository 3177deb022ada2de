package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ValidatePackageName gates a package identifier before any repository
// lookup happens.  Rules are checked in order and each failure names
// the violated rule together with the offending value.  No
// normalization is performed.
func ValidatePackageName(pname string) error {
	if pname == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name must not be empty")
	}
	if strings.Contains(pname, "/") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package name must not contain '/': %q", pname))
	}
	if strings.Contains(pname, " ") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package name must not contain spaces: %q", pname))
	}
	if strings.HasPrefix(pname, ".") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package name must not start with '.': %q", pname))
	}
	if strings.HasPrefix(pname, "-") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package name must not start with '-': %q", pname))
	}
	return nil
}
