// SPDX-License-Identifier: MIT

package pathfind

import (
	"github.com/sirupsen/logrus"
)

// LogrusSink writes events to a logrus logger as structured entries.
// Per-node events (enqueue, expand) are logged at the configured level;
// start and terminal events are raised to Info when the configured level
// is more verbose.
type LogrusSink struct {
	log   logrus.FieldLogger
	level logrus.Level
}

// NewLogrusSink returns a sink logging to l at level. Panics on nil l.
func NewLogrusSink(l logrus.FieldLogger, level logrus.Level) *LogrusSink {
	if l == nil {
		panic("pathfind: NewLogrusSink(nil)")
	}
	return &LogrusSink{log: l, level: level}
}

// Emit logs e with its fields.
func (s *LogrusSink) Emit(e Event) {
	lvl := s.level
	if (e.Kind == EventStart || e.Kind.Terminal()) && lvl > logrus.InfoLevel {
		lvl = logrus.InfoLevel
	}
	s.log.WithFields(logrus.Fields{
		"run_id":    e.RunID.String(),
		"algorithm": e.Algorithm.String(),
		"cell":      e.Cell.String(),
		"depth":     e.Depth,
		"cost":      e.Cost,
		"step":      e.Step,
	}).Log(lvl, "search ", e.Kind.String())
}
