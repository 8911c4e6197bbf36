// Package telemetry records an optional JSONL trace of a deborg run.
//
// Nothing is written unless Start was called; Event and StartSpan are cheap
// no-ops otherwise.
package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

type SessionInfo struct {
	TracePath string
}

type session struct {
	startedAt time.Time
	info      SessionInfo
	file      *os.File
	logger    *slog.Logger
}

var (
	mu     sync.RWMutex
	active *session
)

// Start opens a trace file in dir. Calling Start twice keeps the first session.
func Start(dir string) (SessionInfo, error) {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		return active.info, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return SessionInfo{}, err
	}

	stamp := time.Now().UTC().Format("20060102-150405.000")
	info := SessionInfo{
		TracePath: filepath.Join(dir, fmt.Sprintf("deborg-%s.jsonl", stamp)),
	}

	f, err := os.Create(info.TracePath)
	if err != nil {
		return SessionInfo{}, err
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	active = &session{
		startedAt: time.Now(),
		info:      info,
		file:      f,
		logger:    logger,
	}
	logger.Info(
		"trace.session_start",
		"trace_path", info.TracePath,
		"pid", os.Getpid(),
		"goos", runtime.GOOS,
		"goarch", runtime.GOARCH,
	)
	return info, nil
}

// Stop closes the active session, if any.
func Stop() (SessionInfo, error) {
	mu.Lock()
	s := active
	active = nil
	mu.Unlock()

	if s == nil {
		return SessionInfo{}, nil
	}

	s.logger.Info("trace.session_stop", "elapsed_ms", time.Since(s.startedAt).Milliseconds())
	return s.info, s.file.Close()
}

func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return active != nil
}

func Event(name string, kv ...any) {
	mu.RLock()
	s := active
	mu.RUnlock()
	if s == nil {
		return
	}
	s.logger.Info(name, normalizeKV(kv)...)
}

// StartSpan logs name+".start" and returns a func logging name+".done" with
// the elapsed time.
func StartSpan(name string, kv ...any) func(kv ...any) {
	if !Enabled() {
		return func(...any) {}
	}
	started := time.Now()
	Event(name+".start", kv...)
	return func(doneKV ...any) {
		fields := make([]any, 0, len(kv)+len(doneKV)+2)
		fields = append(fields, kv...)
		fields = append(fields, doneKV...)
		fields = append(fields, "duration_ms", time.Since(started).Milliseconds())
		Event(name+".done", fields...)
	}
}

func normalizeKV(kv []any) []any {
	if len(kv)%2 == 0 {
		return kv
	}
	out := make([]any, len(kv)+1)
	copy(out, kv)
	out[len(out)-1] = "(missing)"
	return out
}
