// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Package rete implements a Rete discrimination network: an incremental
// many-patterns/many-facts matcher for production rules over a working
// memory of WME triples.
//
// The network is built from productions, each a conjunction of conditions
// over three positional fields. As WMEs are added to or removed from working
// memory, the network activates productions whose conditions are newly
// satisfied and retracts activations whose supporting WME was removed, without
// re-evaluating the whole rule set on every change.
//
// Rule-firing (executing whatever action a matched production implies),
// rule-authoring syntax, persistence and truth maintenance beyond
// match/unmatch signaling are not part of this package; callers observe
// matches through a [MatchObserver].
package rete
