// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package rete

import "log/slog"

// defaultMaxConditions bounds the number of conditions a single production
// may carry, guarding against pathological input building an unbounded join chain.
const defaultMaxConditions = 256

type config struct {
	log           *slog.Logger
	observer      MatchObserver
	ids           IDSource
	maxConditions int
}

// Option configures a [Rete] network at construction time.
type Option func(*config)

// WithLogger sets the [slog.Logger] used for construction and activation
// diagnostics. By default, logging is disabled.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMatchObserver registers the observer notified of every match and
// unmatch emitted by the network's production leaves. By default, a no-op
// observer is used.
func WithMatchObserver(observer MatchObserver) Option {
	return func(c *config) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// WithIDSource overrides the monotonic id generators used for WMEs, alpha
// nodes, beta/join nodes and tokens. By default, a [counterIDSource] starting
// after the dummy token id is used. Primarily useful for tests that need
// deterministic, resettable ids.
func WithIDSource(ids IDSource) Option {
	return func(c *config) {
		if ids != nil {
			c.ids = ids
		}
	}
}

// WithMaxConditions sets the maximum number of conditions a single production
// may declare. [Rete.AddProduction] returns [ErrConditionLimit] if exceeded.
// By default, defaultMaxConditions is used.
func WithMaxConditions(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxConditions = n
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		log:           noopLogger(),
		observer:      noopObserver{},
		ids:           newCounterIDSource(),
		maxConditions: defaultMaxConditions,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
