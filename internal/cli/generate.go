package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lazyapps/internal/app"
)

type generateOptions struct {
	Spec            string
	FlakeRef        string
	MetadataIndex   string
	IconTheme       string
	BinDir          string
	ApplicationsDir string
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [pname...]",
		Short: "Generate deferred launchers for packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Batch spec file path")
	cmd.Flags().StringVar(&opts.FlakeRef, "flake-ref", "nixpkgs", "Flake reference for name-only apps")
	cmd.Flags().StringVar(&opts.MetadataIndex, "metadata-index", "", "Metadata index file (default: evaluate via nix)")
	cmd.Flags().StringVar(&opts.IconTheme, "icon-theme", "", "Icon theme root directory")
	cmd.Flags().StringVar(&opts.BinDir, "bin-dir", "", "Wrapper script directory (default: ~/.local/bin)")
	cmd.Flags().StringVar(&opts.ApplicationsDir, "applications-dir", "", "Desktop entry directory (default: ~/.local/share/applications)")
	_ = viper.BindPFlag("flake_ref", cmd.Flags().Lookup("flake-ref"))
	_ = viper.BindPFlag("metadata_index", cmd.Flags().Lookup("metadata-index"))
	_ = viper.BindPFlag("icon_theme", cmd.Flags().Lookup("icon-theme"))
	_ = viper.BindPFlag("bin_dir", cmd.Flags().Lookup("bin-dir"))
	_ = viper.BindPFlag("applications_dir", cmd.Flags().Lookup("applications-dir"))
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions, args []string) error {
	service := app.NewService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		SpecPath:        opts.Spec,
		Pnames:          args,
		FlakeRef:        resolveString(cmd, opts.FlakeRef, "flake_ref", "flake-ref"),
		MetadataIndex:   resolveString(cmd, opts.MetadataIndex, "metadata_index", "metadata-index"),
		IconTheme:       resolveString(cmd, opts.IconTheme, "icon_theme", "icon-theme"),
		BinDir:          defaultDir(resolveString(cmd, opts.BinDir, "bin_dir", "bin-dir"), ".local", "bin"),
		ApplicationsDir: defaultDir(resolveString(cmd, opts.ApplicationsDir, "applications_dir", "applications-dir"), ".local", "share", "applications"),
	})
	if err != nil {
		return err
	}
	for _, generated := range result.Apps {
		fmt.Printf("generated: %s (%s)\n", generated.Pname, generated.Command)
	}
	return nil
}

// defaultDir falls back to a path under the home directory when no
// explicit directory was configured.
func defaultDir(value string, fallback ...string) string {
	if value != "" {
		return value
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(fallback...)
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if fromConfig := viper.GetString(key); fromConfig != "" {
		return fromConfig
	}
	return value
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
