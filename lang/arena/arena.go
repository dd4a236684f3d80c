// Package arena implements the three bump-allocated memory regions (code,
// data, strings) that hold every piece of durable compiler output (spec
// §3), plus the Image that assembles them into the final in-memory layout
// (spec §6).
package arena

import "fmt"

// wordSize is the size, in bytes, of a single VM word (spec §6: "32-bit
// words").
const wordSize = 4

// Arena is a bump-allocated, fixed-capacity byte region with a cursor.
// Bytes already placed never move, so an offset into an Arena is a stable
// key for the lifetime of the compile session (spec §3).
type Arena struct {
	name string
	buf  []byte
	max  int
}

// New creates an Arena with the given fixed upper bound, in bytes.
func New(name string, max int) *Arena {
	return &Arena{name: name, buf: make([]byte, 0, max), max: max}
}

// Len returns the current high-water length of the arena, in bytes.
func (a *Arena) Len() int { return len(a.buf) }

// Bytes returns the arena's contents. The returned slice aliases the
// arena's backing array and must not be retained past further writes.
func (a *Arena) Bytes() []byte { return a.buf }

// reserve grows the arena by n bytes, returning the offset of the first
// new byte. It is a fatal compile error (spec §7 "Resource errors") if the
// arena's upper bound would be exceeded.
func (a *Arena) reserve(n int) (int, error) {
	off := len(a.buf)
	if off+n > a.max {
		return 0, fmt.Errorf("%s arena overflow: need %d more bytes, only %d available", a.name, n, a.max-off)
	}
	a.buf = append(a.buf, make([]byte, n)...)
	return off, nil
}

// AllocWord reserves one word (4 bytes) initialized to v and returns its
// offset.
func (a *Arena) AllocWord(v int32) (int, error) {
	off, err := a.reserve(wordSize)
	if err != nil {
		return 0, err
	}
	putWord(a.buf[off:], v)
	return off, nil
}

// AllocWords reserves len(vs) consecutive words and returns the offset of
// the first one.
func (a *Arena) AllocWords(vs []int32) (int, error) {
	off, err := a.reserve(wordSize * len(vs))
	if err != nil {
		return 0, err
	}
	for i, v := range vs {
		putWord(a.buf[off+i*wordSize:], v)
	}
	return off, nil
}

// AllocBytes reserves len(b) raw bytes (used for the code arena and for
// byte-typed array storage) and returns their offset.
func (a *Arena) AllocBytes(b []byte) (int, error) {
	off, err := a.reserve(len(b))
	if err != nil {
		return 0, err
	}
	copy(a.buf[off:], b)
	return off, nil
}

// AllocZero reserves n zero-initialized bytes and returns their offset.
func (a *Arena) AllocZero(n int) (int, error) {
	return a.reserve(n)
}

// PutWord overwrites the word at off with v. Used to back-patch fixups and
// to record the array element count at a reserved size slot.
func (a *Arena) PutWord(off int, v int32) {
	putWord(a.buf[off:], v)
}

// WordAt reads back the word at off.
func (a *Arena) WordAt(off int) int32 {
	return getWord(a.buf[off:])
}

// Rewind truncates the arena back to off, discarding everything allocated
// after it. Used by the asm{} block handling (spec §4.2): the code emitted
// while assembling the block is captured into the AST node and the cursor
// is rewound so the outer code generator can re-emit it in the final
// instruction stream in place.
func (a *Arena) Rewind(off int) {
	a.buf = a.buf[:off]
}

func putWord(b []byte, v int32) {
	u := uint32(v)
	b[0] = byte(u)
	b[1] = byte(u >> 8)
	b[2] = byte(u >> 16)
	b[3] = byte(u >> 24)
}

func getWord(b []byte) int32 {
	return int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}
