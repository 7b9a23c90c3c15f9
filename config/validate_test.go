package config

import (
	"strings"
	"testing"

	"quickcap/pkg/terrors"

	"github.com/stretchr/testify/assert"
)

func TestValidateCompanyCode(t *testing.T) {
	assert := assert.New(t)
	for _, code := range []string{"AIC", "WN", "PERSONAL", "X1"} {
		assert.Nilf(validateCompanyCode(code), "code %q", code)
	}
	for _, code := range []string{"", "A-C", "A C", "A/B", strings.Repeat("A", maxCompanyCodeLen+1)} {
		assert.NotNilf(validateCompanyCode(code), "code %q", code)
	}
	assert.Nil(validateCompanyCode(strings.Repeat("A", maxCompanyCodeLen)))
}

func TestValidateMissingKey(t *testing.T) {
	assert := assert.New(t)
	err := validateTypeNumber("limits.definitely-not-set")
	assert.ErrorIs(err, terrors.ErrNotFound)
	err = validateTypeInt("logging.definitely-not-set")
	assert.ErrorIs(err, terrors.ErrNotFound)
}
