package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/zed-0xff/vcpatch"
)

var (
	ErrCLIPanic = errors.New("cli panic")
)

func checkCLI(err error) {
	if err != nil {
		red := color.New(color.FgRed).FprintlnFunc()
		red(os.Stderr, err)

		// deferred pause still has to run, so don't exit here
		panic(ErrCLIPanic)
	}
}

func RecoverCLI() {
	if r := recover(); r != nil {
		if r == ErrCLIPanic {
			os.Exit(1)
		} else {
			panic(r)
		}
	}
}

// parseHex accepts "1f00", "0x1f00" and "1f_00".
func parseHex(s string, title string) (int64, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.ReplaceAll(s, "_", "")
	x, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", title, s)
	}
	return x, nil
}

func setVerbosity(verbose int, quiet bool) {
	switch {
	case quiet:
		vcpatch.Log.SetLevel(logrus.WarnLevel)
	case verbose >= 2:
		vcpatch.Log.SetLevel(logrus.TraceLevel)
	case verbose == 1:
		vcpatch.Log.SetLevel(logrus.DebugLevel)
	default:
		vcpatch.Log.SetLevel(logrus.InfoLevel)
	}
}
