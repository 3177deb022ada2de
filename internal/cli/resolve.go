package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lazyapps/internal/app"
	"lazyapps/internal/types"
)

type resolveOptions struct {
	Exe           string
	DesktopName   string
	Description   string
	Icon          string
	FlakeRef      string
	MetadataIndex string
	IconTheme     string
	AllowUnfree   bool
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <pname>",
		Short: "Show the resolved descriptor for one package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Exe, "exe", "", "Executable name override")
	cmd.Flags().StringVar(&opts.DesktopName, "desktop-name", "", "Display name override")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Description override")
	cmd.Flags().StringVar(&opts.Icon, "icon", "", "Icon name or absolute path")
	cmd.Flags().StringVar(&opts.FlakeRef, "flake-ref", "nixpkgs", "Flake reference")
	cmd.Flags().StringVar(&opts.MetadataIndex, "metadata-index", "", "Metadata index file (default: evaluate via nix)")
	cmd.Flags().StringVar(&opts.IconTheme, "icon-theme", "", "Icon theme root directory")
	cmd.Flags().BoolVar(&opts.AllowUnfree, "allow-unfree", false, "Opt in to unfree packages")
	_ = viper.BindPFlag("flake_ref", cmd.Flags().Lookup("flake-ref"))
	_ = viper.BindPFlag("metadata_index", cmd.Flags().Lookup("metadata-index"))
	_ = viper.BindPFlag("icon_theme", cmd.Flags().Lookup("icon-theme"))
	_ = viper.BindPFlag("allow_unfree", cmd.Flags().Lookup("allow-unfree"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions, pname string) error {
	service := app.NewService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		Config: types.AppConfig{
			Pname:       pname,
			Exe:         opts.Exe,
			DesktopName: opts.DesktopName,
			Description: opts.Description,
			Icon:        opts.Icon,
			FlakeRef:    resolveString(cmd, opts.FlakeRef, "flake_ref", "flake-ref"),
			AllowUnfree: resolveBool(cmd, opts.AllowUnfree, "allow_unfree", "allow-unfree"),
		},
		MetadataIndex: resolveString(cmd, opts.MetadataIndex, "metadata_index", "metadata-index"),
		IconTheme:     resolveString(cmd, opts.IconTheme, "icon_theme", "icon-theme"),
	})
	if err != nil {
		return err
	}
	resolved := result.App
	fmt.Printf("pname:            %s\n", resolved.Pname)
	fmt.Printf("executable:       %s\n", resolved.FinalExe)
	fmt.Printf("terminal command: %s\n", resolved.TerminalCommand)
	fmt.Printf("display name:     %s\n", resolved.DisplayName)
	fmt.Printf("description:      %s\n", resolved.Description)
	fmt.Printf("icon:             %s\n", resolved.IconPath)
	fmt.Printf("unsafe mode:      %t\n", resolved.NeedsUnsafeMode)
	return nil
}
