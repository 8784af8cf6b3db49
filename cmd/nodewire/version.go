package main

import (
	"fmt"
	"strings"

	"github.com/dvstudio/nodewire"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nodewire",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nodewire version %s\n", strings.TrimSpace(nodewire.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
