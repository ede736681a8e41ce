package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabGroupEnroll(t *testing.T) {
	g := &LabGroup{Capacity: 2, Enrolled: 0}

	require.NoError(t, g.Enroll())
	assert.Equal(t, 1, g.Enrolled)
	assert.False(t, g.Full())

	require.NoError(t, g.Enroll())
	assert.Equal(t, 2, g.Enrolled)
	assert.True(t, g.Full())

	// Counter never exceeds capacity
	err := g.Enroll()
	assert.ErrorIs(t, err, ErrGroupFull)
	assert.Equal(t, 2, g.Enrolled)
}

func TestLabGroupWithdraw(t *testing.T) {
	g := &LabGroup{Capacity: 1, Enrolled: 1}

	require.NoError(t, g.Withdraw())
	assert.Equal(t, 0, g.Enrolled)

	err := g.Withdraw()
	assert.ErrorIs(t, err, ErrNoneEnrolled)
	assert.Equal(t, 0, g.Enrolled)
}

func TestLabGroupFullAtCapacityOne(t *testing.T) {
	g := &LabGroup{Capacity: 1, Enrolled: 1}
	assert.True(t, g.Full())

	g = &LabGroup{Capacity: 1, Enrolled: 0}
	assert.False(t, g.Full())
}
