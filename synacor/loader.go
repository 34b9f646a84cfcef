package synacor

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrProgramTooLarge is returned by Init when the supplied word
// sequence would not fit in the machine's address space.
var ErrProgramTooLarge = errors.New("program exceeds 32768 words")

// Init overwrites memory[0:len(words)] with the given sequence.
// len(words) must be at most MemSize.
func (m *Machine) Init(words []uint16) error {
	if len(words) > MemSize {
		return ErrProgramTooLarge
	}
	copy(m.memory[:], words)
	return nil
}

// Load consumes bytes from r two at a time, decoding each pair
// (low, high) as one little-endian word, and places the resulting
// words into memory starting at address 0. An odd trailing byte is
// ignored. Reaching end-of-stream before MemSize words are read is not
// an error; an I/O error from r is surfaced as *LoadError.
func (m *Machine) Load(r io.Reader) error {
	var pair [2]byte
	addr := 0

	for addr < MemSize {
		n, err := io.ReadFull(r, pair[:])
		switch {
		case n == 2:
			m.memory[addr] = binary.LittleEndian.Uint16(pair[:])
			addr++
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return nil
		case err != nil:
			return newLoadError(err)
		}
	}

	return nil
}
