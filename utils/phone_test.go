package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+12125550123", NormalizePhone("(212) 555-0123"))
	assert.Equal(t, "+12125550123", NormalizePhone("+1 212 555 0123"))

	// Unparseable input is kept verbatim.
	assert.Equal(t, "not-a-number", NormalizePhone("not-a-number"))
	assert.Equal(t, "", NormalizePhone("   "))
}
