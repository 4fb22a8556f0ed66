// Package dnswire converts presentation-form domain names — the
// dotted, escape-aware text a zone file or a command line uses — into
// the wire form dnskey.MakeKey expects: a sequence of length-prefixed
// labels terminated by a zero-length label.
package dnswire

import (
	"errors"
	"fmt"
)

// ErrBadParameter is returned by ParsePresentation when given text that
// is not a legal presentation-form domain name.
var ErrBadParameter = errors.New("dnswire: not a legal presentation-form domain name")

// maxLabelLength is RFC 1035 §3.1's per-label bound.
const maxLabelLength = 63

// ParsePresentation converts name — e.g. "www.example.com." or the root
// name "." — into wire form. A trailing dot is optional; ParsePresentation
// treats "example.com" and "example.com." identically, both fully
// qualified (this port never resolves a name relative to some other
// origin).
//
// Escapes follow RFC 1035 §5.1 exactly: "\X" for a literal punctuation or
// whitespace character X, and "\DDD" for a byte given as three decimal
// digits 0-9. Hexadecimal escapes are not RFC 1035 syntax: "\xFF" is read
// as the literal escaped character 'x' followed by the ordinary characters
// "FF", not as a byte value.
func ParsePresentation(name string) ([]byte, error) {
	if name == "." {
		return []byte{0x00}, nil
	}

	labels, err := splitPresentationLabels(name)
	if err != nil {
		return nil, err
	}

	size := 1
	for _, l := range labels {
		size += len(l) + 1
	}

	wire := make([]byte, 0, size)
	for _, l := range labels {
		if len(l) > maxLabelLength {
			return nil, fmt.Errorf("%w: label %q exceeds %d octets", ErrBadParameter, l, maxLabelLength)
		}
		wire = append(wire, byte(len(l)))
		wire = append(wire, l...)
	}
	wire = append(wire, 0x00)

	return wire, nil
}

// splitPresentationLabels splits name on unescaped dots, resolving
// escapes within each label into their literal byte values.
func splitPresentationLabels(name string) ([][]byte, error) {
	var labels [][]byte
	var cur []byte

	i := 0
	n := len(name)
	for i < n {
		c := name[i]

		switch {
		case c == '.':
			labels = append(labels, cur)
			cur = nil
			i++

		case c == '\\':
			b, consumed, err := decodeEscape(name[i:])
			if err != nil {
				return nil, err
			}
			cur = append(cur, b)
			i += consumed

		default:
			cur = append(cur, c)
			i++
		}
	}

	if len(cur) > 0 || len(labels) == 0 {
		labels = append(labels, cur)
	}

	return labels, nil
}

// decodeEscape decodes the escape sequence at the start of s (which
// begins with '\'), returning the literal byte it denotes and how many
// bytes of s it consumed.
func decodeEscape(s string) (b byte, consumed int, err error) {
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("%w: truncated escape", ErrBadParameter)
	}

	if isDecimalDigit(s[1]) {
		if len(s) < 4 || !isDecimalDigit(s[2]) || !isDecimalDigit(s[3]) {
			return 0, 0, fmt.Errorf("%w: malformed \\DDD escape", ErrBadParameter)
		}
		v := int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
		if v > 255 {
			return 0, 0, fmt.Errorf("%w: \\DDD escape %d out of range", ErrBadParameter, v)
		}
		return byte(v), 4, nil
	}

	return s[1], 2, nil
}

func isDecimalDigit(c byte) bool { return c >= '0' && c <= '9' }
