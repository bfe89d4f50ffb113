package rete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchObserverFuncHandlesNilFields(t *testing.T) {
	var matched, unmatched int
	obs := MatchObserverFunc{Match: func(Match) { matched++ }}

	obs.OnMatch(Match{})
	assert.NotPanics(t, func() { obs.OnUnmatch(Match{}) })
	assert.Equal(t, 1, matched)
	assert.Equal(t, 0, unmatched)
}

func TestNoopObserverNeverPanics(t *testing.T) {
	var obs MatchObserver = noopObserver{}
	assert.NotPanics(t, func() {
		obs.OnMatch(Match{})
		obs.OnUnmatch(Match{})
	})
}

func TestDefaultObserverIsNoop(t *testing.T) {
	re := New()
	assert.NoError(t, re.AddProduction(blockWorldProduction(1)))
	assert.NotPanics(t, func() {
		re.AddWME([3]uint64{b1, on, b2})
	})
}
