package io

// The SMALL encoding packs two characters into one 12-bit data segment,
// six bits per character. Index 63 is the NONE sentinel: it pads short
// strings and is never emitted.
const (
	SMALL_SPACE = 62 // encoding of ' '
	SMALL_NONE  = 63 // padding sentinel, suppressed on output
)

// smallAlphabet maps the 6-bit SMALL indices 0..62 to their characters.
// Index 63 (SMALL_NONE) is deliberately absent.
const smallAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	" "

// DecodeSmall maps a 6-bit SMALL index to its character. The second
// return is false for the NONE sentinel, which has no character.
func DecodeSmall(index uint16) (ch byte, ok bool) {
	index &= 0x3f
	if index >= SMALL_NONE {
		return
	}

	ch = smallAlphabet[index]
	ok = true
	return
}

// EncodeSmall maps a character to its 6-bit SMALL index. An underscore
// encodes the NONE padding sentinel. The second return is false for
// characters outside the alphabet.
func EncodeSmall(ch byte) (index uint16, ok bool) {
	if ch == '_' {
		return SMALL_NONE, true
	}

	switch {
	case ch >= 'A' && ch <= 'Z':
		index = uint16(ch - 'A')
	case ch >= 'a' && ch <= 'z':
		index = uint16(ch-'a') + 26
	case ch >= '0' && ch <= '9':
		index = uint16(ch-'0') + 52
	case ch == ' ':
		index = SMALL_SPACE
	default:
		return
	}

	ok = true
	return
}
