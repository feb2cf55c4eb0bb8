package vcpatch

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
)

const Version = "1.0.1"

const DefaultExePath = "../Valkyria.exe"

var ErrDisabled = errors.New("masterEnable is false")

var Log = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	},
	Hooks: make(logrus.LevelHooks),
	Level: logrus.InfoLevel,
}

type Options struct {
	ConfigPath string
	ExePath    string

	// Record defaults to FileRecord(DefaultRecordPath).
	Record RecordStore
	// Desktop defaults to Desktop{}.
	Desktop ResolutionSource

	// Override replaces the configured resolution when non-zero.
	Override Resolution
	DryRun   bool
	Force    bool
}

type Result struct {
	Patch       Patch
	Replacement string
	Offset      int64
	Written     bool
}

// Run loads the config, works out the resolution and patches the executable.
func Run(opts Options) (*Result, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = DefaultConfigPath
	}
	if opts.ExePath == "" {
		opts.ExePath = DefaultExePath
	}
	if opts.Record == nil {
		opts.Record = FileRecord(DefaultRecordPath)
	}
	if opts.Desktop == nil {
		opts.Desktop = Desktop{}
	}

	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		Log.WithError(err).Error("failed to load config")
		return nil, err
	}
	Log.Infof("yml: name: %s", cfg.Name)
	Log.Infof("yml: masterEnable: %v", cfg.Enabled())
	Log.Infof("yml: resolution: width:  %d", cfg.Resolution.Width)
	Log.Infof("yml: resolution: height: %d", cfg.Resolution.Height)

	if !cfg.Enabled() {
		if !opts.Force {
			Log.Warn("masterEnable is false, not patching (use --force to patch anyway)")
			return nil, ErrDisabled
		}
		Log.Warn("masterEnable is false, patching anyway")
	}

	configured := cfg.Resolve()
	if !opts.Override.IsZero() {
		Log.Infof("resolution override: %s", opts.Override)
		configured = opts.Override
	}

	desktop, err := opts.Desktop.DesktopResolution()
	if err != nil {
		Log.WithError(err).Error("failed to get desktop resolution")
		return nil, err
	}
	Log.Infof("desktop resolution: %s", desktop)

	patch, err := ComputePatch(configured, desktop)
	if err != nil {
		Log.WithError(err).Error("failed to compute patch")
		return nil, err
	}
	res := &Result{
		Patch:       patch,
		Replacement: patch.Pattern(),
		Offset:      -1,
	}
	Log.WithFields(logrus.Fields{
		"resolution":  patch.Resolution(),
		"aspectRatio": patch.AspectRatio(),
		"offset":      patch.Offset,
	}).Info("computed patch")
	Log.Infof("replacement pattern: %s", res.Replacement)

	if opts.DryRun {
		Log.Info("dry run, not touching ", opts.ExePath)
		return res, nil
	}

	p := &Patcher{Record: opts.Record}
	res.Offset, err = p.Apply(opts.ExePath, DefaultSearchPattern, res.Replacement)
	if err != nil {
		if !errors.Is(err, ErrPatternNotFound) {
			Log.WithError(err).Error("failed to patch ", opts.ExePath)
		}
		return res, err
	}
	res.Written = true
	return res, nil
}
