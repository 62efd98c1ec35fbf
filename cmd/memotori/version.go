package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/memotori"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of memotori",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("memotori version %s\n", strings.TrimSpace(memotori.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
