package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/zed-0xff/vcpatch"
)

var flagDump bool

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().BoolVarP(&flagDump, "dump", "d", false, "hex dump the bytes around the match")
}

var findCmd = &cobra.Command{
	Use:   "find <file> <bytes>...",
	Short: "Find the first occurrence of a byte pattern in a file",
	Example: "  vcpatch find ../Valkyria.exe B8 39 8E E3 38 F7 E3\n" +
		"  vcpatch find ../Valkyria.exe \"$(cat patch.txt)\"",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := vcpatch.ParsePattern(strings.Join(args[1:], " "))
		checkCLI(err)

		offset, data, err := vcpatch.Locate(args[0], pattern)
		checkCLI(err)

		color.New(color.FgGreen).Printf("%X\n", offset)
		if flagDump {
			vcpatch.DumpAround(os.Stdout, data, offset, pattern.Length())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <file> <offset> [size]",
	Short: "Hex dump part of a file",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := parseHex(args[1], "offset")
		checkCLI(err)
		size := int64(0x100)
		if len(args) == 3 {
			size, err = parseHex(args[2], "size")
			checkCLI(err)
			if size < 0 {
				checkCLI(fmt.Errorf("invalid size: %s", args[2]))
			}
		}

		data, err := os.ReadFile(args[0])
		checkCLI(err)
		if offset < 0 || offset >= int64(len(data)) {
			checkCLI(fmt.Errorf("offset 0x%X is past end of file (0x%X)", offset, len(data)))
		}
		end := offset + size
		if end > int64(len(data)) {
			end = int64(len(data))
		}

		vcpatch.HexDump(os.Stdout, data[offset:end], offset)
		return nil
	},
}
