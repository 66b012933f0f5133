package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements all
// hook interfaces, so one value can be registered for each.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnSolveStart(_ context.Context, problem, algorithm string) {
	h.logger.Debug("solve start", "problem", problem, "algorithm", algorithm)
}

func (h *LogHooks) OnSolveComplete(_ context.Context, problem, algorithm string, expanded int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("solve failed", "problem", problem, "algorithm", algorithm, "expanded", expanded, "duration", d, "err", err)
		return
	}
	h.logger.Debug("solve done", "problem", problem, "algorithm", algorithm, "expanded", expanded, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ SearchHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ ServerHooks = (*LogHooks)(nil)
)
