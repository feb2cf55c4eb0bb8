package vcpatch

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Pattern is a byte signature like "B8 39 8E ?? 38".
type Pattern struct {
	data []int // -1 means wildcard
}

type PatternError struct {
	Index int
	Token string
	Err   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid token %q at index %d: %v", e.Token, e.Index, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

func (p Pattern) Length() int {
	return len(p.data)
}

func (p Pattern) String() string {
	tokens := make([]string, 0, len(p.data))
	for _, c := range p.data {
		if c == -1 {
			tokens = append(tokens, "??")
		} else {
			tokens = append(tokens, fmt.Sprintf("%02X", c))
		}
	}
	return strings.Join(tokens, " ")
}

// Bytes returns the pattern as a byte buffer. Wildcards become 0x00.
func (p Pattern) Bytes() []byte {
	buf := make([]byte, len(p.data))
	for i, c := range p.data {
		if c != -1 {
			buf[i] = byte(c)
		}
	}
	return buf
}

// Find returns the offset of the first occurrence of the pattern in buffer, or -1.
//
// Wildcards are not "any byte" here: they take part in the search as a literal
// 0x00, same as in Bytes.
func (p Pattern) Find(buffer []byte) int {
	if len(p.data) == 0 {
		return -1
	}
	return bytes.Index(buffer, p.Bytes())
}

func (p *Pattern) FromHexString(s string) error {
	p.data = []int{}
	for i, c := range strings.Fields(s) {
		if c == "?" || c == "??" {
			p.data = append(p.data, -1)
			continue
		}
		x, err := strconv.ParseUint(c, 16, 8)
		if err != nil {
			return &PatternError{Index: i, Token: c, Err: err}
		}
		p.data = append(p.data, int(x))
	}
	return nil
}

func ParsePattern(src string) (Pattern, error) {
	p := Pattern{}
	err := p.FromHexString(src)
	return p, err
}

// ParseSignature converts a space separated hex signature into bytes.
func ParseSignature(src string) ([]byte, error) {
	p, err := ParsePattern(src)
	if err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// FormatSignature renders buf as two-digit uppercase hex tokens separated by spaces.
func FormatSignature(buf []byte) string {
	tokens := make([]string, len(buf))
	for i, b := range buf {
		tokens[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(tokens, " ")
}
