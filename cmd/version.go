package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lynis-dash",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lynis-dash", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
