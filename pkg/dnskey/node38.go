package dnskey

// Node38Sentinel is returned by Node38Xlat for a post-xlat byte outside
// the hostname alphabet.
const Node38Sentinel = 0xFF

// node38Alphabet lists the 38 post-xlat bytes that make up the hostname
// alphabet — the separator, the hyphen image, the 10 digit images, and
// the 26 lowercase-letter images — in the dense index order Node38Xlat
// and Node38Unxlat use. The order is chosen to match ascending byte
// value (0x00 < 0x2E < 0x31..0x3A < 0x48..0x61), so that a Node38's
// positional order (spec invariant 3) is also its canonical order,
// letting Minimum/Maximum/range-scan treat index order as byte order.
var node38Alphabet = func() [38]byte {
	var a [38]byte
	a[0] = 0x00
	a[1] = 0x2E // '-'
	for i := 0; i < 10; i++ {
		a[2+i] = 0x31 + byte(i) // '0'..'9'
	}
	for i := 0; i < 26; i++ {
		a[12+i] = 0x48 + byte(i) // 'a'..'z'
	}
	return a
}()

var node38Index = func() [256]byte {
	var idx [256]byte
	for i := range idx {
		idx[i] = Node38Sentinel
	}
	for i, b := range node38Alphabet {
		idx[b] = byte(i)
	}
	return idx
}()

// Node38Xlat maps a post-xlat byte to its dense 0..37 hostname-alphabet
// index, or Node38Sentinel if b is outside the alphabet.
func Node38Xlat(b byte) byte { return node38Index[b] }

// Node38Unxlat is the inverse of Node38Xlat: it maps a dense index back
// to its post-xlat byte. i must be < 38.
func Node38Unxlat(i byte) byte { return node38Alphabet[i] }

// InHostnameAlphabet reports whether a post-xlat byte belongs to the
// 38-value hostname alphabet.
func InHostnameAlphabet(b byte) bool { return Node38Xlat(b) != Node38Sentinel }
