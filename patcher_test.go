package vcpatch

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// the unpatched viewport setup, DefaultSearchPattern is its prefix
const originalBlock = "B8 39 8E E3 38 F7 E3 8B FA B8 39 8E E3 38 F7 EB D1 FA 8B C2 C1 E8 1F 03 C2 2B C8 D1 EF D1 F9"

const testOffset = 100

func fakeExe(t *testing.T) (string, []byte) {
	t.Helper()
	block, err := ParseSignature(originalBlock)
	require.NoError(t, err)

	data := bytes.Repeat([]byte{0xCC}, testOffset)
	data = append(data, block...)
	data = append(data, bytes.Repeat([]byte{0xCC}, 50)...)

	path := filepath.Join(t.TempDir(), "Valkyria.exe")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path, data
}

func replacementFor(t *testing.T, width, height int) string {
	t.Helper()
	patch, err := ComputePatch(Resolution{width, height}, Resolution{width, height})
	require.NoError(t, err)
	return patch.Pattern()
}

func TestApply(t *testing.T) {
	path, orig := fakeExe(t)
	record := &MemoryRecord{}
	replacement := replacementFor(t, 5120, 1440)

	p := &Patcher{Record: record}
	offset, err := p.Apply(path, DefaultSearchPattern, replacement)
	require.NoError(t, err)
	assert.Equal(t, int64(testOffset), offset)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, len(orig))

	buf, err := ParseSignature(replacement)
	require.NoError(t, err)
	assert.Equal(t, orig[:testOffset], data[:testOffset])
	assert.Equal(t, buf, data[testOffset:testOffset+len(buf)])
	assert.Equal(t, orig[testOffset+len(buf):], data[testOffset+len(buf):])

	assert.Equal(t, replacement, record.Pattern)
}

func TestApplyShorterReplacement(t *testing.T) {
	path, orig := fakeExe(t)

	p := &Patcher{}
	offset, err := p.Apply(path, DefaultSearchPattern, "90 90 90")
	require.NoError(t, err)
	assert.Equal(t, int64(testOffset), offset)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := append([]byte{}, orig...)
	copy(want[testOffset:], []byte{0x90, 0x90, 0x90})
	assert.Equal(t, want, data)
}

func TestApplyNotFound(t *testing.T) {
	path, orig := fakeExe(t)
	record := &MemoryRecord{}

	p := &Patcher{Record: record}
	_, err := p.Apply(path, "B8 39 8E E3 38 F7 E3 8B FA B8 39 8E E3 39", replacementFor(t, 5120, 1440))
	assert.True(t, errors.Is(err, ErrPatternNotFound))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, data)
	assert.Equal(t, "", record.Pattern)
}

func TestApplyRerun(t *testing.T) {
	path, _ := fakeExe(t)
	record := FileRecord(filepath.Join(t.TempDir(), "patch.txt"))
	p := &Patcher{Record: record}

	first := replacementFor(t, 5120, 1440)
	offset, err := p.Apply(path, DefaultSearchPattern, first)
	require.NoError(t, err)
	assert.Equal(t, int64(testOffset), offset)

	recorded, err := record.Load()
	require.NoError(t, err)
	assert.Equal(t, first, recorded)

	// the default pattern is gone now, the record is what gets searched
	second := replacementFor(t, 3440, 1440)
	offset, err = p.Apply(path, DefaultSearchPattern, second)
	require.NoError(t, err)
	assert.Equal(t, int64(testOffset), offset)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	buf, err := ParseSignature(second)
	require.NoError(t, err)
	assert.Equal(t, buf, data[testOffset:testOffset+len(buf)])

	recorded, err = record.Load()
	require.NoError(t, err)
	assert.Equal(t, second, recorded)

	// without the record the default pattern no longer matches
	_, err = (&Patcher{}).Apply(path, DefaultSearchPattern, first)
	assert.True(t, errors.Is(err, ErrPatternNotFound))
}

func TestApplyUnreadableRecordFallsBack(t *testing.T) {
	path, _ := fakeExe(t)

	p := &Patcher{Record: FileRecord(t.TempDir())}
	offset, err := p.Apply(path, DefaultSearchPattern, "90")
	require.NoError(t, err)
	assert.Equal(t, int64(testOffset), offset)
}

func TestApplyOutOfBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Valkyria.exe")
	orig, err := ParseSignature(DefaultSearchPattern)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, orig, 0644))

	_, err = (&Patcher{}).Apply(path, DefaultSearchPattern, replacementFor(t, 5120, 1440))
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, data)
}

func TestApplyMissingFile(t *testing.T) {
	record := &MemoryRecord{}
	p := &Patcher{Record: record}

	_, err := p.Apply(filepath.Join(t.TempDir(), "missing.exe"), DefaultSearchPattern, "90")
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "", record.Pattern)
}

func TestApplyBadPatterns(t *testing.T) {
	path, orig := fakeExe(t)

	_, err := (&Patcher{Record: &MemoryRecord{Pattern: "B8 XX"}}).Apply(path, DefaultSearchPattern, "90")
	var perr *PatternError
	assert.True(t, errors.As(err, &perr))

	_, err = (&Patcher{}).Apply(path, DefaultSearchPattern, "90 G0")
	assert.True(t, errors.As(err, &perr))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, data)
}

func TestLocate(t *testing.T) {
	path, orig := fakeExe(t)

	p, err := ParsePattern(DefaultSearchPattern)
	require.NoError(t, err)
	offset, data, err := Locate(path, p)
	require.NoError(t, err)
	assert.Equal(t, int64(testOffset), offset)
	assert.Equal(t, orig, data)

	p, err = ParsePattern("90 90 90")
	require.NoError(t, err)
	_, _, err = Locate(path, p)
	assert.True(t, errors.Is(err, ErrPatternNotFound))

	_, _, err = Locate(filepath.Join(t.TempDir(), "missing.exe"), p)
	assert.True(t, errors.Is(err, ErrIO))
}
