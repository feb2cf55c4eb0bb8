package vcpatch

import (
	"errors"
	"os"
	"strings"
)

const DefaultRecordPath = "patch.txt"

// RecordStore keeps the last replacement pattern written to the executable,
// which is what the next run has to search for.
type RecordStore interface {
	// Load returns "" and no error if nothing was recorded yet.
	Load() (string, error)
	Save(pattern string) error
}

// FileRecord stores the pattern as a single line in a text file.
type FileRecord string

func (f FileRecord) Load() (string, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}

func (f FileRecord) Save(pattern string) error {
	return os.WriteFile(string(f), []byte(pattern), 0644)
}

type MemoryRecord struct {
	Pattern string
}

func (m *MemoryRecord) Load() (string, error) {
	return m.Pattern, nil
}

func (m *MemoryRecord) Save(pattern string) error {
	m.Pattern = pattern
	return nil
}
