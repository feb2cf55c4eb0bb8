package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zed-0xff/vcpatch"
)

var (
	flagConfig  string
	flagExe     string
	flagRecord  string
	flagWidth   int
	flagHeight  int
	flagDesktop string
	flagDryRun  bool
	flagForce   bool
	flagPause   bool
	flagVerbose int
	flagQuiet   bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", vcpatch.DefaultConfigPath, "fix config file")
	pf.IntVar(&flagWidth, "width", 0, "override resolution.width from the config")
	pf.IntVar(&flagHeight, "height", 0, "override resolution.height from the config")
	pf.StringVar(&flagDesktop, "desktop", "", "desktop resolution as WIDTHxHEIGHT instead of detecting it")
	pf.CountVarP(&flagVerbose, "verbose", "v", "more output, repeat for even more")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "only print warnings and errors")

	f := rootCmd.Flags()
	f.StringVarP(&flagExe, "exe", "e", vcpatch.DefaultExePath, "game executable to patch")
	f.StringVarP(&flagRecord, "record", "r", vcpatch.DefaultRecordPath, "file keeping the last applied pattern")
	f.BoolVarP(&flagDryRun, "dry-run", "n", false, "compute the patch but don't write anything")
	f.BoolVarP(&flagForce, "force", "f", false, "patch even if masterEnable is false")
	f.BoolVar(&flagPause, "pause", false, "wait for Enter before exiting")
}

var rootCmd = &cobra.Command{
	Use:   "vcpatch",
	Short: "Patch Valkyria.exe for custom resolutions",
	Long: `Patch the viewport setup in Valkyria.exe to use the resolution from the fix's yml.

A resolution of 0x0 in the yml means "use the desktop resolution". The last applied
pattern is kept in the record file so the tool can be rerun after changing the yml.`,
	Example: "  vcpatch\n  vcpatch -e \"C:\\Games\\Valkyria Chronicles\\Valkyria.exe\" --width 5120 --height 1440",
	Version: vcpatch.Version,
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setVerbosity(flagVerbose, flagQuiet)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagPause {
			defer pause()
		}

		source, err := desktopSource()
		checkCLI(err)

		res, err := vcpatch.Run(vcpatch.Options{
			ConfigPath: flagConfig,
			ExePath:    flagExe,
			Record:     vcpatch.FileRecord(flagRecord),
			Desktop:    source,
			Override:   vcpatch.Resolution{Width: flagWidth, Height: flagHeight},
			DryRun:     flagDryRun,
			Force:      flagForce,
		})
		checkCLI(err)

		if res.Written {
			fmt.Printf("patched %s @ 0x%X\n", flagExe, res.Offset)
		}
		return nil
	},
}

func desktopSource() (vcpatch.ResolutionSource, error) {
	if flagDesktop == "" {
		return vcpatch.Desktop{}, nil
	}
	res, err := vcpatch.ParseResolution(flagDesktop)
	if err != nil {
		return nil, err
	}
	return vcpatch.FixedResolution(res), nil
}

func pause() {
	fmt.Print("Press enter to exit...")
	bufio.NewReader(os.Stdin).ReadString('\n')
}
