package simdscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/k0ekk0ek/namedb/pkg/simdscan"
)

func TestFindEq(t *testing.T) {
	vec := []byte{1, 3, 5, 7, 9, 0, 0, 0}

	assert.Equal(t, 2, simdscan.FindEq(5, vec, 5))
	assert.Equal(t, simdscan.NotFound, simdscan.FindEq(0, vec, 5))
	assert.Equal(t, 5, simdscan.FindEq(0, vec, 8))
}

func TestFindGT(t *testing.T) {
	vec := []byte{1, 3, 5, 7, 9}

	assert.Equal(t, 2, simdscan.FindGT(4, vec, 5))
	assert.Equal(t, 0, simdscan.FindGT(0, vec, 5))
	assert.Equal(t, simdscan.NotFound, simdscan.FindGT(9, vec, 5))
}

func TestHaveAVX2(t *testing.T) {
	assert.False(t, simdscan.HaveAVX2)
}
