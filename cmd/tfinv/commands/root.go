// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the tfinv CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tfinv",
		Short:         "Generate a Kubespray inventory from Terraform outputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Generate())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
