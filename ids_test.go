package rete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterIDSourceReset(t *testing.T) {
	ids := newCounterIDSource()

	assert.Equal(t, uint64(0), ids.NextWME())
	assert.Equal(t, uint64(1), ids.NextWME())
	assert.Equal(t, uint64(dummyTokenID+1), ids.NextToken())

	ids.Reset()
	assert.Equal(t, uint64(0), ids.NextWME())
	assert.Equal(t, uint64(dummyTokenID+1), ids.NextToken())
}

func TestCounterIDSourceAlphaAndBetaJoinAreIndependent(t *testing.T) {
	ids := newCounterIDSource()

	assert.Equal(t, uint64(0), ids.NextAlphaNode())
	assert.Equal(t, uint64(0), ids.NextBetaJoinNode())
	assert.Equal(t, uint64(1), ids.NextBetaJoinNode())
	assert.Equal(t, uint64(1), ids.NextAlphaNode())
}

func TestWithIDSourceOverride(t *testing.T) {
	ids := newCounterIDSource()
	re := New(WithIDSource(ids))

	id1 := re.AddWME([3]uint64{1, 2, 3})
	id2 := re.AddWME([3]uint64{4, 5, 6})
	assert.Equal(t, uint64(0), id1)
	assert.Equal(t, uint64(1), id2)
}
