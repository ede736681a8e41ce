package semester

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("2025-I")
	require.NoError(t, err)
	assert.Equal(t, "2025-I", s.String())

	_, err = Parse("2025-II")
	assert.NoError(t, err)

	for _, bad := range []string{"", "2025", "2025-III", "2025-1", "25-I", "2025-i"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalid, "input %q", bad)
	}
}
