package policies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lazyapps/internal/types"
)

// DetectCollisions checks a complete batch of apps for terminal
// commands claimed more than once.  Claims with terminal integration
// disabled are ignored.  A nil report means the batch is clean; a
// non-nil report is always paired with a CodeFailedPrecondition error
// whose message lists every colliding command with its contributing
// package identifiers and how to break the tie.  The whole batch is
// rejected on any collision.
func DetectCollisions(claims []types.CommandClaim) (types.CollisionReport, error) {
	byCommand := map[string][]string{}
	for _, claim := range claims {
		if !claim.Enabled {
			continue
		}
		byCommand[claim.Command] = append(byCommand[claim.Command], claim.PackageID)
	}

	report := types.CollisionReport{}
	for command, owners := range byCommand {
		if len(owners) < 2 {
			continue
		}
		sort.Strings(owners)
		report[command] = owners
	}
	if len(report) == 0 {
		return nil, nil
	}

	commands := make([]string, 0, len(report))
	for command := range report {
		commands = append(commands, command)
	}
	sort.Strings(commands)

	var b strings.Builder
	b.WriteString("terminal command collisions detected; disable terminal_command for one of the conflicting apps or override its exe:\n")
	for _, command := range commands {
		b.WriteString(fmt.Sprintf("  command %q claimed by: %s\n", command, strings.Join(report[command], ", ")))
	}
	return report, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(strings.TrimRight(b.String(), "\n"))
}
