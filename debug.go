package adventure

import (
	"time"

	"go.uber.org/zap"
)

// tickStats holds per-tick timing and output metrics.
// Only populated when Engine.debug is true.
type tickStats struct {
	updateTime  time.Duration
	commitTime  time.Duration
	projectTime time.Duration
	sortTime    time.Duration
	renderTime  time.Duration
	entities    int
	added       int
	removed     int
	batches     int
	primitives  int
}

// debugLog writes timing and output stats at debug level.
func (e *Engine) debugLog(stats tickStats) {
	if !e.debug {
		return
	}
	total := stats.updateTime + stats.commitTime + stats.sortTime + stats.projectTime + stats.renderTime
	e.log.Debug("tick",
		zap.Int("tick", e.ticks),
		zap.Duration("update", stats.updateTime),
		zap.Duration("commit", stats.commitTime),
		zap.Duration("sort", stats.sortTime),
		zap.Duration("project", stats.projectTime),
		zap.Duration("render", stats.renderTime),
		zap.Duration("total", total),
	)
	e.log.Debug("tick output",
		zap.Int("tick", e.ticks),
		zap.Int("entities", stats.entities),
		zap.Int("added", stats.added),
		zap.Int("removed", stats.removed),
		zap.Int("batches", stats.batches),
		zap.Int("primitives", stats.primitives),
	)
}

// debugMaxEntities is the live collection size above which debug mode warns.
const debugMaxEntities = 1000

func (e *Engine) debugCheckEntityCount() {
	if len(e.entities) > debugMaxEntities {
		e.log.Warn("live collection is large",
			zap.Int("entities", len(e.entities)),
			zap.Int("threshold", debugMaxEntities))
	}
}
