package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zed-0xff/vcpatch"
)

func init() {
	rootCmd.AddCommand(patternCmd)
}

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Print the replacement pattern for the configured resolution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := vcpatch.LoadConfig(flagConfig)
		checkCLI(err)

		source, err := desktopSource()
		checkCLI(err)
		desktop, err := source.DesktopResolution()
		checkCLI(err)

		configured := cfg.Resolve()
		if flagWidth != 0 && flagHeight != 0 {
			configured = vcpatch.Resolution{Width: flagWidth, Height: flagHeight}
		}

		patch, err := vcpatch.ComputePatch(configured, desktop)
		checkCLI(err)

		fmt.Println(patch.Pattern())
		return nil
	},
}
