package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spiffcs/dtcalc/config"
)

// NewCmdConfig creates the config command with subcommands.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Long: `Show or manage configuration.

When run without arguments, shows the current merged configuration.

Subcommands:
  init      Create a starter config file
  path      Show config file locations
  show      Show current merged config (same as bare 'dtcalc config')`,
		RunE: runConfigShow,
	}

	cmd.AddCommand(NewCmdConfigInit())
	cmd.AddCommand(NewCmdConfigPath())
	cmd.AddCommand(NewCmdConfigShow())

	return cmd
}

// NewCmdConfigInit creates the config init subcommand.
func NewCmdConfigInit() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter config file",
		Long: `Create a starter config file with the default settings.

By default the file is created at the global location
(~/.config/dtcalc/config.yaml). Use --local to create ./.dtcalc.yaml
instead, which applies only in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, local)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Create local config file (./.dtcalc.yaml)")

	return cmd
}

// NewCmdConfigPath creates the config path subcommand.
func NewCmdConfigPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file locations",
		Long:  `Show the paths to global and local config files and indicate which exist.`,
		RunE:  runConfigPath,
	}
}

// NewCmdConfigShow creates the config show subcommand.
func NewCmdConfigShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current merged configuration",
		Long:  `Show the current configuration after merging defaults, global, and local configs.`,
		RunE:  runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out, err := cfg.ToYAML()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func runConfigInit(cmd *cobra.Command, local bool) error {
	path := config.ConfigPath()
	if local {
		path = config.LocalConfigPath()
	}

	if err := config.SaveTo(path, config.MinimalConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	info := config.GetConfigPaths()

	exists := func(ok bool) string {
		if ok {
			return "exists"
		}
		return "not found"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "global: %s (%s)\n", info.GlobalPath, exists(info.GlobalExists))
	fmt.Fprintf(cmd.OutOrStdout(), "local:  %s (%s)\n", info.LocalPath, exists(info.LocalExists))
	return nil
}
