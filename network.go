// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package rete

import (
	"sync"

	"github.com/google/uuid"
)

// Rete is a discrimination network matching production rules against an
// evolving working memory of WME triples. A zero-value Rete is not usable;
// construct one with [New].
//
// Exported methods take an internal mutex for the duration of each call,
// mirroring the coarse single-writer-at-a-time discipline the teacher router
// applies to its route tree (see [locked router] in the teacher codebase):
// matching itself stays single-threaded and synchronous within one call, but
// a *Rete is routinely shared across goroutines by its embedding application
// (one ingesting WMEs, another periodically reading [Rete.Stats]).
type Rete struct {
	cfg *config

	mu sync.Mutex

	alphaIndex    map[constantTest]*alphaMemory
	workingMemory map[uint64]*WME
	wmeAlphas     map[uint64][]*alphaMemory

	dummyTop   *betaMemoryNode
	dummyToken *Token

	productions map[uint64]*productionNode

	matchSeq uint64
}

// New creates an empty network with a dummy top beta memory and a dummy top
// token (id 0, a synthetic all-zero WME), ready to accept productions and
// WMEs.
func New(opts ...Option) *Rete {
	cfg := newConfig(opts...)

	re := &Rete{
		cfg:           cfg,
		alphaIndex:    make(map[constantTest]*alphaMemory),
		workingMemory: make(map[uint64]*WME),
		wmeAlphas:     make(map[uint64][]*alphaMemory),
		productions:   make(map[uint64]*productionNode),
	}

	dummyWME := newWME(0, [3]uint64{0, 0, 0})
	re.dummyTop = newBetaMemoryNode(cfg.ids.NextBetaJoinNode(), nil)
	re.dummyToken = &Token{ID: dummyTokenID, WME: dummyWME, Owner: re.dummyTop}
	re.dummyTop.addToken(re.dummyToken)

	return re
}

// AddWME inserts a ground triple into working memory and returns its fresh
// id. The WME is registered against every alpha memory whose constant test
// it satisfies, right-activating each memory's successor joins in turn. It is
// stored in working memory unconditionally, even if no alpha memory
// currently matches it, so a production added later can still backfill
// against it.
func (re *Rete) AddWME(fields [3]uint64) uint64 {
	re.mu.Lock()
	defer re.mu.Unlock()

	id := re.cfg.ids.NextWME()
	w := newWME(id, fields)
	re.workingMemory[id] = w

	for _, fp := range wmeFingerprints(fields) {
		mem, ok := re.alphaIndex[fp]
		if !ok {
			continue
		}
		mem.addWME(w)
		re.registerWMEAlpha(id, mem)
		for _, succ := range mem.successors {
			succ.rightActivate(re, w)
		}
	}

	return id
}

// RemoveWME removes a fact from working memory; it is a no-op if id is
// unknown. Alpha-memory membership is cleaned up first, driven by
// wmeAlphas[id]; then every token that referenced the WME is deleted, along
// with its descendants, driven by the WME's own back-reference list, which
// is drained before any deletion begins so it cannot be re-entrantly
// mutated.
func (re *Rete) RemoveWME(id uint64) {
	re.mu.Lock()
	defer re.mu.Unlock()

	w, known := re.workingMemory[id]
	delete(re.workingMemory, id)

	for _, mem := range re.wmeAlphas[id] {
		mem.removeWME(id)
	}
	delete(re.wmeAlphas, id)

	if !known {
		return
	}

	tokens := w.drainTokens()
	for _, t := range tokens {
		deleteSelfAndDescendants(t, re.onTokenDeleted)
	}
	infoRetraction(re.cfg.log, id, len(tokens))
}

// onTokenDeleted is [deleteSelfAndDescendants]'s post-order hook: every
// token owned by a production leaf that gets deleted is reported to the
// [MatchObserver] as an unmatch, reusing the correlation id assigned at
// match time.
func (re *Rete) onTokenDeleted(t *Token) {
	p, ok := t.Owner.(*productionNode)
	if !ok {
		return
	}
	id, ok := p.matchID(t)
	if !ok {
		return
	}
	re.emitUnmatch(p, t, id)
}

// AddProduction registers a production, building and sharing alpha memories,
// beta memories and join nodes along its condition chain. Conditions
// must be non-empty; an empty Conditions slice is a programmer error and
// panics, since it can only arise from a caller building a Production by
// hand incorrectly, not from any external input this package parses itself.
// A duplicate production id is instead a caller-recoverable condition: it is
// returned as a wrapped [ProductionConflictError], not a panic.
func (re *Rete) AddProduction(production Production) error {
	re.mu.Lock()
	defer re.mu.Unlock()

	if len(production.Conditions) == 0 {
		panic(ErrEmptyConditions)
	}
	if len(production.Conditions) > re.cfg.maxConditions {
		return ErrConditionLimit
	}
	if existing, ok := re.productions[production.ID]; ok {
		return &ProductionConflictError{New: production, Existing: existing.production}
	}

	conditions := production.Conditions

	current := buildOrShareJoin(re, re.dummyTop, re.buildOrShareAlpha(conditions[0]), getJoinTests(conditions[0], nil))

	earlier := make([]Condition, 0, len(conditions)-1)
	for i := 1; i < len(conditions); i++ {
		beta := buildOrShareBeta(re, current)
		earlier = append(earlier, conditions[i-1])
		tests := getJoinTests(conditions[i], earlier)
		am := re.buildOrShareAlpha(conditions[i])
		current = buildOrShareJoin(re, beta, am, tests)
	}

	leaf := newProductionNode(production, current)
	current.addChild(leaf)
	re.productions[production.ID] = leaf

	updateNewNodeWithMatchesFromAbove(re, leaf)

	infoProduction(re.cfg.log, production.ID, len(conditions))
	return nil
}

// Production looks up a registered production by id, returning
// [ErrUnknownProduction] if none is registered under that id.
func (re *Rete) Production(id uint64) (Production, error) {
	re.mu.Lock()
	defer re.mu.Unlock()

	p, ok := re.productions[id]
	if !ok {
		return Production{}, ErrUnknownProduction
	}
	return p.production, nil
}

func (re *Rete) emitMatch(p *productionNode, t *Token, id uuid.UUID) {
	re.matchSeq++
	re.cfg.observer.OnMatch(Match{Production: p.production, Token: t, Seq: re.matchSeq, ID: id})
}

func (re *Rete) emitUnmatch(p *productionNode, t *Token, id uuid.UUID) {
	re.matchSeq++
	re.cfg.observer.OnUnmatch(Match{Production: p.production, Token: t, Seq: re.matchSeq, ID: id})
}
