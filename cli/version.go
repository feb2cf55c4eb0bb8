package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zed-0xff/vcpatch"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vcpatch", vcpatch.Version)
	},
}
