package vcpatch

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultSearchPattern is the start of the unpatched viewport setup in Valkyria.exe:
//
//	B8 39 8E E3 38 | mov eax, 38E38E39
//	F7 E3          | mul ebx
//	8B FA          | mov edi, edx
//	B8 39 8E E3 38 | mov eax, 38E38E39
//
// followed by imul/sar/shr/add/sub that derive a 16:9 viewport from the desktop size.
// The replacement loads the registers with fixed values instead and spans all 31
// bytes of that block.
const DefaultSearchPattern = "B8 39 8E E3 38 F7 E3 8B FA B8 39 8E E3 38"

var ErrOverflow = errors.New("value does not fit in 32 bits")

type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// IsZero reports whether r asks for the desktop resolution.
func (r Resolution) IsZero() bool {
	return r.Width == 0 || r.Height == 0
}

// Patch holds the register values written into the executable.
type Patch struct {
	Width   uint32 // eax, edx, edi
	Height  uint32 // esi
	Special uint32 // ebx, height << 4
	Offset  int32  // ecx, centers the viewport when narrower than the desktop
}

// ComputePatch resolves the configured resolution against the desktop one and
// derives the register values.
func ComputePatch(configured, desktop Resolution) (Patch, error) {
	res := configured
	if res.IsZero() {
		res = desktop
	}

	if res.Width < 0 || int64(res.Width) > math.MaxUint32 {
		return Patch{}, fmt.Errorf("width %d: %w", res.Width, ErrOverflow)
	}
	if res.Height < 0 || int64(res.Height) > math.MaxUint32>>4 {
		return Patch{}, fmt.Errorf("height %d: %w", res.Height, ErrOverflow)
	}

	offset := (int64(desktop.Width) - int64(res.Width)) / 2
	if offset < math.MinInt32 || offset > math.MaxInt32 {
		return Patch{}, fmt.Errorf("offset %d: %w", offset, ErrOverflow)
	}

	return Patch{
		Width:   uint32(res.Width),
		Height:  uint32(res.Height),
		Special: uint32(res.Height) << 4,
		Offset:  int32(offset),
	}, nil
}

func (p Patch) Resolution() Resolution {
	return Resolution{Width: int(p.Width), Height: int(p.Height)}
}

func (p Patch) AspectRatio() float32 {
	if p.Height == 0 {
		return 0
	}
	return float32(p.Width) / float32(p.Height)
}

// Pattern renders the replacement instruction block:
//
//	B8 <width>   | mov eax, width
//	BB <special> | mov ebx, height << 4
//	B9 <offset>  | mov ecx, offset
//	BA <width>   | mov edx, width
//	BE <height>  | mov esi, height
//	BF <width>   | mov edi, width
//	90           | nop
func (p Patch) Pattern() string {
	width := le32(p.Width)
	return strings.Join([]string{
		"B8", width,
		"BB", le32(p.Special),
		"B9", le32(uint32(p.Offset)),
		"BA", width,
		"BE", le32(p.Height),
		"BF", width,
		"90",
	}, " ")
}

func le32(value uint32) string {
	buffer := make([]byte, 4)
	buffer[0] = byte(value)
	buffer[1] = byte(value >> 8)
	buffer[2] = byte(value >> 16)
	buffer[3] = byte(value >> 24)
	return FormatSignature(buffer)
}
