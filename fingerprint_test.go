package rete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWMEFingerprintsOrder(t *testing.T) {
	fps := wmeFingerprints([3]uint64{7, 8, 9})

	// Most-specific (no wildcards) first, least-specific (all wildcards) last.
	assert.Equal(t, constantTest{val: [3]uint64{7, 8, 9}}, fps[0])
	assert.Equal(t, constantTest{wild: [3]bool{true, true, true}}, fps[7])

	for _, fp := range fps {
		assert.True(t, fp.matches([3]uint64{7, 8, 9}))
	}
	assert.False(t, fps[0].matches([3]uint64{7, 8, 0}))
}

func TestConditionFingerprintMatchesIgnoresVariableIdentity(t *testing.T) {
	c1 := Condition{Variable(1), Constant(on), Variable(2)}
	c2 := Condition{Variable(99), Constant(on), Variable(100)}

	assert.Equal(t, conditionFingerprint(c1), conditionFingerprint(c2))
}

func TestConditionFingerprintDistinguishesConstants(t *testing.T) {
	c1 := Condition{Variable(1), Constant(on), Constant(red)}
	c2 := Condition{Variable(1), Constant(on), Constant(30)}

	assert.NotEqual(t, conditionFingerprint(c1), conditionFingerprint(c2))
}
