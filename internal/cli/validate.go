package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lazyapps/internal/app"
)

type validateOptions struct {
	Spec          string
	FlakeRef      string
	MetadataIndex string
	IconTheme     string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [pname...]",
		Short: "Resolve a batch and check for terminal command collisions without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Batch spec file path")
	cmd.Flags().StringVar(&opts.FlakeRef, "flake-ref", "nixpkgs", "Flake reference for name-only apps")
	cmd.Flags().StringVar(&opts.MetadataIndex, "metadata-index", "", "Metadata index file (default: evaluate via nix)")
	cmd.Flags().StringVar(&opts.IconTheme, "icon-theme", "", "Icon theme root directory")
	_ = viper.BindPFlag("flake_ref", cmd.Flags().Lookup("flake-ref"))
	_ = viper.BindPFlag("metadata_index", cmd.Flags().Lookup("metadata-index"))
	_ = viper.BindPFlag("icon_theme", cmd.Flags().Lookup("icon-theme"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions, args []string) error {
	service := app.NewService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		SpecPath:      opts.Spec,
		Pnames:        args,
		FlakeRef:      resolveString(cmd, opts.FlakeRef, "flake_ref", "flake-ref"),
		MetadataIndex: resolveString(cmd, opts.MetadataIndex, "metadata_index", "metadata-index"),
		IconTheme:     resolveString(cmd, opts.IconTheme, "icon_theme", "icon-theme"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %d apps, no collisions\n", result.AppCount)
	return nil
}
