package rete

// IDSource supplies the independent monotonic counters the network uses to
// name WMEs, alpha nodes, beta/join nodes and tokens. Alpha nodes and
// beta/join nodes are drawn from separate counters, so an alpha memory and a
// beta or join node built around the same time can legitimately share a
// numeric id; only ids drawn from the same counter are guaranteed distinct.
// The default implementation, [counterIDSource], is a set of plain
// incrementing counters; it is exposed as an interface so tests can plug in
// a deterministic, resettable source (see [counterIDSource.Reset]) without
// reaching into network internals.
type IDSource interface {
	NextWME() uint64
	NextAlphaNode() uint64
	NextBetaJoinNode() uint64
	NextToken() uint64
}

// dummyTokenID is the reserved id of the dummy root token; token counters
// start one past it so real tokens never collide with the dummy.
const dummyTokenID = 0

type counterIDSource struct {
	wme          uint64
	alphaNode    uint64
	betaJoinNode uint64
	token        uint64
}

func newCounterIDSource() *counterIDSource {
	return &counterIDSource{token: dummyTokenID + 1}
}

func (c *counterIDSource) NextWME() uint64 {
	id := c.wme
	c.wme++
	return id
}

func (c *counterIDSource) NextAlphaNode() uint64 {
	id := c.alphaNode
	c.alphaNode++
	return id
}

func (c *counterIDSource) NextBetaJoinNode() uint64 {
	id := c.betaJoinNode
	c.betaJoinNode++
	return id
}

func (c *counterIDSource) NextToken() uint64 {
	id := c.token
	c.token++
	return id
}

// Reset restarts all four counters at their initial values. It exists to
// give tests deterministic, repeatable ids across independent networks; it
// is not safe to call while the owning [Rete] is in use.
func (c *counterIDSource) Reset() {
	c.wme = 0
	c.alphaNode = 0
	c.betaJoinNode = 0
	c.token = dummyTokenID + 1
}
