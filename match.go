package rete

import "github.com/google/uuid"

// Match reports that a production's left-hand side is satisfied by the
// bindings reachable from Token, or that a previously reported Match no
// longer holds. The network guarantees exactly one [MatchObserver.OnMatch]
// per distinct (production, terminal token) pair and exactly one
// [MatchObserver.OnUnmatch] per deletion of that token.
type Match struct {
	// Production is the production whose left-hand side matched.
	Production Production
	// Token is the terminal token of the match: walking its parent chain up
	// to (excluding) the dummy root recovers the WME bound to each
	// condition, in condition order (see [Token.Bindings]).
	Token *Token
	// Seq is a monotonically increasing sequence number, unique per
	// network, assigned in emission order. It lets an external consumer
	// total-order matches and unmatches observed out of band from one
	// another (e.g. across a channel).
	Seq uint64
	// ID externally correlates this particular emission; an OnMatch and its
	// eventual OnUnmatch for the same token share the same ID.
	ID uuid.UUID
}

// MatchObserver receives match and unmatch notifications from a [Rete]
// network's production leaves. Implementations must not block: they are
// called synchronously from within [Rete.AddWME], [Rete.RemoveWME] and
// [Rete.AddProduction] while the network's mutex is held.
type MatchObserver interface {
	// OnMatch is called when a production's left-hand side becomes
	// satisfied by a new set of bindings.
	OnMatch(Match)
	// OnUnmatch is called when a previously reported match's terminal token
	// is deleted, whether because its WME (or an ancestor's WME) was
	// removed, or because the token's parent chain was otherwise retracted.
	OnUnmatch(Match)
}

// noopObserver is the default [MatchObserver] used when none is supplied,
// mirroring how the teacher substitutes a no-op for a nil noRoute/noMethod
// handler.
type noopObserver struct{}

func (noopObserver) OnMatch(Match)   {}
func (noopObserver) OnUnmatch(Match) {}

// MatchObserverFunc adapts a pair of plain functions to [MatchObserver] for
// callers that only care about one of the two events.
type MatchObserverFunc struct {
	Match   func(Match)
	Unmatch func(Match)
}

func (f MatchObserverFunc) OnMatch(m Match) {
	if f.Match != nil {
		f.Match(m)
	}
}

func (f MatchObserverFunc) OnUnmatch(m Match) {
	if f.Unmatch != nil {
		f.Unmatch(m)
	}
}
