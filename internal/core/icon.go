package core

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"lazyapps/internal/ports"
)

// iconSizeOrder is the probe order across theme size directories.
// Upstream themes are inconsistent about which sizes ship an icon, so
// the search walks from the preferred launcher size down.
var iconSizeOrder = []string{
	"64x64", "scalable", "48x48", "128x128", "96x96",
	"256x256", "32x32", "24x24", "22x22", "16x16",
}

// IconResolver locates an icon file inside a themed icon tree at
// generation time, so the launcher displays correctly regardless of
// the end user's active theme.
type IconResolver struct {
	Theme ports.IconThemePort
}

func NewIconResolver(theme ports.IconThemePort) IconResolver {
	return IconResolver{Theme: theme}
}

// Resolve tries each candidate name against each size directory under
// themeRoot, returning the first existing icon with symlinks resolved.
// An absolute path as the first candidate bypasses the search and is
// returned verbatim, unchecked.  When nothing matches, the originally
// requested name is returned unchanged for the desktop environment's
// own icon lookup to interpret, and a warning is logged.
func (r IconResolver) Resolve(ctx context.Context, candidates []string, themeRoot string) string {
	if len(candidates) == 0 {
		return ""
	}
	requested := candidates[0]
	if filepath.IsAbs(requested) {
		return requested
	}
	if r.Theme == nil || themeRoot == "" {
		return requested
	}
	for _, name := range candidates {
		if name == "" {
			continue
		}
		for _, size := range iconSizeOrder {
			probe := filepath.Join(themeRoot, size, "apps", name+".svg")
			if real, ok := r.Theme.Probe(probe); ok {
				return real
			}
		}
	}
	log.Ctx(ctx).Warn().
		Str("icon", requested).
		Str("theme", themeRoot).
		Msg("icon not found in theme, falling back to name lookup at display time")
	return requested
}
