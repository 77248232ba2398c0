package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var profileFlag string
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &profileFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "padhost",
		Short:         "Inspect and edit controller family options",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "Profile document path (overrides paths.profile_path)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Log at debug level and enable verbose controller messages")

	rootCmd.AddCommand(newOptionsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
