package artnode

import "github.com/k0ekk0ek/namedb/pkg/dnskey"

// allInHostnameAlphabet reports whether incoming and every byte in keys
// lies in the 38-value hostname alphabet — the test that decides whether
// a Node16/Node32 promotes to Node38 (spec §4.3) rather than Node48.
func allInHostnameAlphabet(keys []byte, incoming byte) bool {
	if !dnskey.InHostnameAlphabet(incoming) {
		return false
	}
	for _, k := range keys {
		if !dnskey.InHostnameAlphabet(k) {
			return false
		}
	}
	return true
}
