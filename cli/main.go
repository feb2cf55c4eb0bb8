package main

import (
	"os"
)

func main() {
	defer RecoverCLI()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
