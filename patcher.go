package vcpatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatternNotFound = errors.New("pattern not found")
	ErrOutOfBounds     = errors.New("replacement runs past end of file")
	ErrIO              = errors.New("i/o error")
)

// Patcher overwrites a byte pattern in an executable and remembers what it
// wrote in Record, so that a rerun finds the already patched bytes.
type Patcher struct {
	Record RecordStore
}

// searchPattern returns the recorded pattern if there is one, else def.
func (p *Patcher) searchPattern(def string) string {
	def = strings.TrimSpace(def)
	if p.Record == nil {
		return def
	}

	recorded, err := p.Record.Load()
	if err != nil {
		Log.WithError(err).Warn("failed to read patch record")
		Log.Infof("will search using default pattern: %s", def)
		return def
	}
	if recorded == "" {
		Log.Debug("no patch record")
		Log.Infof("will search using default pattern: %s", def)
		return def
	}

	Log.Infof("will search for recorded pattern: %s", recorded)
	return recorded
}

// Apply finds the first occurrence of the search pattern in the file at path
// and overwrites it with replacement. Returns the file offset of the patch.
func (p *Patcher) Apply(path, defaultSearch, replacement string) (offset int64, err error) {
	search := p.searchPattern(defaultSearch)

	sp, err := ParsePattern(search)
	if err != nil {
		return -1, fmt.Errorf("search pattern: %w", err)
	}
	rp, err := ParsePattern(replacement)
	if err != nil {
		return -1, fmt.Errorf("replacement pattern: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return -1, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return -1, fmt.Errorf("%w: read '%s': %w", ErrIO, path, err)
	}

	idx := sp.Find(data)
	if idx == -1 {
		Log.Errorf("cannot find: %s", sp)
		Log.Error("delete and reinstall the game and try again")
		return -1, fmt.Errorf("%w: %s", ErrPatternNotFound, sp)
	}
	offset = int64(idx)
	Log.Infof("found: %s @ 0x%X", sp, offset)

	buf := rp.Bytes()
	if offset+int64(len(buf)) > int64(len(data)) {
		return offset, fmt.Errorf("%w: %d bytes @ 0x%X, file size 0x%X", ErrOutOfBounds, len(buf), offset, len(data))
	}

	if _, err := f.WriteAt(buf, offset); err != nil {
		return offset, fmt.Errorf("%w: write '%s': %w", ErrIO, path, err)
	}
	Log.Infof("replaced with: %s @ 0x%X", rp, offset)

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		copy(data[offset:], buf)
		var dump bytes.Buffer
		DumpAround(&dump, data, offset, len(buf))
		Log.Debug("patched bytes:")
		for _, line := range strings.Split(strings.TrimSuffix(dump.String(), "\n"), "\n") {
			Log.Debug(line)
		}
	}

	if p.Record != nil {
		if err := p.Record.Save(FormatSignature(buf)); err != nil {
			return offset, fmt.Errorf("save patch record: %w", err)
		}
	}
	return offset, nil
}

// Locate reads the file at path and returns the offset of the first
// occurrence of pattern together with the file contents.
func Locate(path string, pattern Pattern) (int64, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	idx := pattern.Find(data)
	if idx == -1 {
		return -1, data, fmt.Errorf("%w: %s", ErrPatternNotFound, pattern)
	}
	return int64(idx), data, nil
}
