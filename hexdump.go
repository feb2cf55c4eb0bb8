package vcpatch

import (
	"fmt"
	"io"
)

// prints hexdump, 16 bytes per line, with ascii chars on the right
func HexDump(w io.Writer, buffer []byte, ea int64) {
	for i := 0; i < len(buffer); i += 16 {
		fmt.Fprintf(w, "%08X:", int64(i)+ea)
		for j := 0; j < 16; j++ {
			if j == 8 {
				fmt.Fprint(w, " ")
			}
			if i+j < len(buffer) {
				fmt.Fprintf(w, " %02x", buffer[i+j])
			} else {
				fmt.Fprint(w, "   ")
			}
		}

		fmt.Fprint(w, "     |")

		for j := 0; j < 16; j++ {
			if i+j < len(buffer) && buffer[i+j] >= 32 && buffer[i+j] <= 126 {
				fmt.Fprintf(w, "%c", buffer[i+j])
			} else {
				fmt.Fprint(w, " ")
			}
		}

		fmt.Fprintln(w, "|")
	}
}

// DumpAround dumps the 16-byte aligned lines covering data[offset:offset+size],
// plus one line of context on each side.
func DumpAround(w io.Writer, data []byte, offset int64, size int) {
	start := (offset &^ 0xF) - 16
	if start < 0 {
		start = 0
	}
	end := ((offset + int64(size) + 15) &^ 0xF) + 16
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	if start >= end {
		return
	}
	HexDump(w, data[start:end], start)
}
