package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("hunter2go")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2go", hashed)
	assert.True(t, ComparePassword(hashed, "hunter2go"))
	assert.False(t, ComparePassword(hashed, "hunter2GO"))
}

func TestGenerateOTPShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 20; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "mini-fridge-great-condition-abcd1234", Slugify("Mini Fridge!! Great Condition", "abcd1234-rest"))
	assert.Equal(t, "abcd1234", Slugify("!!!", "abcd1234"))
	assert.Equal(t, "t-shirt-size-m-abcd1234", Slugify("T-Shirt (size M)", "abcd1234"))
}
