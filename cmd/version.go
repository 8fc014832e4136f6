package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
)

// Overridden at build time with -ldflags "-X github.com/they4kman/gomaze/cmd.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gomaze version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gomaze %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
