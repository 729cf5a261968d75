package cpu

import (
	"encoding/binary"
	"io"
	"log"
)

// Memory image format: a flat sequence of 16-bit words, most significant
// byte first, loaded starting at address zero.

// LoadImage reads a memory image into the machine's memory, which is
// cleared first. An odd trailing byte is discarded with a warning; an
// image longer than the address space fails with ErrImageTooLarge.
func (m *Machine) LoadImage(r io.Reader) (err error) {
	image, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(image) > MEMORY_SIZE*2 {
		err = ErrImageTooLarge
		return
	}

	if len(image)%2 != 0 {
		log.Print(f("warning: uneven number of bytes in memory image"))
		image = image[:len(image)-1]
	}

	clear(m.Memory[:])
	for n := 0; n < len(image); n += 2 {
		m.Memory[n/2] = Word(binary.BigEndian.Uint16(image[n : n+2]))
	}

	return
}

// SaveImage writes the machine's memory as an image, all 4096 words.
func (m *Machine) SaveImage(w io.Writer) (err error) {
	var buf [2]byte
	for _, word := range m.Memory {
		binary.BigEndian.PutUint16(buf[:], uint16(word))
		_, err = w.Write(buf[:])
		if err != nil {
			return
		}
	}

	return
}
