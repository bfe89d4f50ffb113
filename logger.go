// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package rete

import (
	"context"
	"log/slog"
)

// Keys for the structured log attributes emitted by the network during
// construction and matching.
const (
	// LogProductionIDKey is the key used for the id of the production being built or matched.
	// The associated [slog.Value] is a uint64.
	LogProductionIDKey = "production_id"
	// LogWMEIDKey is the key used for the id of the WME involved in the event.
	// The associated [slog.Value] is a uint64.
	LogWMEIDKey = "wme_id"
	// LogNodeKindKey is the key used for the kind of node involved in the event (alpha, beta, join, production).
	// The associated [slog.Value] is a string.
	LogNodeKindKey = "node_kind"
	// LogNodeIDKey is the key used for the id of the node involved in the event.
	// The associated [slog.Value] is a uint64.
	LogNodeIDKey = "node_id"
	// LogSharedKey indicates whether a build-or-share call reused an existing node rather than creating one.
	// The associated [slog.Value] is a bool.
	LogSharedKey = "shared"
)

// discardHandler is a [slog.Handler] that drops every record without
// allocating, used as the default when no logger is supplied.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

func noopLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

// debugNode logs, at Debug level, a build-or-share decision for an alpha,
// beta or join node.
func debugNode(log *slog.Logger, kind string, id uint64, shared bool) {
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	log.Debug("build-or-share",
		slog.String(LogNodeKindKey, kind),
		slog.Uint64(LogNodeIDKey, id),
		slog.Bool(LogSharedKey, shared),
	)
}

// infoProduction logs, at Info level, the registration of a new production.
func infoProduction(log *slog.Logger, id uint64, conditions int) {
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	log.Info("production registered",
		slog.Uint64(LogProductionIDKey, id),
		slog.Int("conditions", conditions),
	)
}

// infoRetraction logs, at Info level, the cascading removal of a WME.
func infoRetraction(log *slog.Logger, wmeID uint64, tokensRemoved int) {
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	log.Info("wme removed",
		slog.Uint64(LogWMEIDKey, wmeID),
		slog.Int("tokens_removed", tokensRemoved),
	)
}
