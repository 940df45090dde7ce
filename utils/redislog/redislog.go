package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is a structured diagnostic saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger echoes every entry to the process log and, when a client is set,
// queues it for a capped Redis LIST (e.g. "logs:visitors").
// Callers never wait on Redis: entries go through a buffered channel drained
// by one goroutine, and are dropped when the buffer is full.
// A nil *Logger and a Logger without client are both valid.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
	timeout   time.Duration // per-entry Redis budget
	now       func() time.Time

	mu      sync.RWMutex
	closed  bool
	entries chan []byte
	done    chan struct{}
}

const (
	defaultTimeout = 500 * time.Millisecond
	queueSize      = 256
)

// New creates a logger over rdb. Pass a nil client for stdout-only logging.
// Call Close to flush queued entries before the client is closed.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	l := &Logger{rdb: rdb, key: key, max: max, retention: retention, timeout: defaultTimeout, now: time.Now}
	if rdb != nil {
		l.entries = make(chan []byte, queueSize)
		l.done = make(chan struct{})
		go l.drain()
	}
	return l
}

// Close stops accepting entries and waits for the queue to be written. Idempotent.
func (l *Logger) Close() {
	if l == nil || l.entries == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.entries)
	l.mu.Unlock()
	<-l.done
}

// log prints the entry and queues it for Redis when configured.
func (l *Logger) log(level, msg string, meta map[string]string) {
	if l == nil {
		return
	}
	log.Printf("[%s] %s%s", level, msg, formatMeta(meta))
	if l.entries == nil {
		return
	}

	b, err := json.Marshal(Entry{
		Level: level,
		Msg:   msg,
		Time:  l.now().UTC().Format(time.RFC3339),
		Meta:  meta,
	})
	if err != nil {
		return
	}
	l.enqueue(b)
}

func (l *Logger) enqueue(b []byte) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return
	}
	select {
	case l.entries <- b:
	default: // Redis is behind; stdout already has the line
	}
}

func (l *Logger) drain() {
	defer close(l.done)
	for b := range l.entries {
		l.push(b)
	}
}

// push does LPUSH -> LTRIM -> EXPIRE for one entry.
func (l *Logger) push(b []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	if err := l.rdb.LPush(ctx, l.key, b).Err(); err != nil {
		return
	}
	if l.max > 0 {
		_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	}
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

// formatMeta renders meta as " k=v" pairs in key order.
func formatMeta(meta map[string]string) string {
	if len(meta) == 0 {
		return ""
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, meta[k])
	}
	return b.String()
}

// Convenience helpers

// Info is normal operation (not an error, not a warning).
func (l *Logger) Info(msg string, meta map[string]string) { l.log("info", msg, meta) }

// Warn is a degraded but handled condition, e.g. a visitor not persisted.
func (l *Logger) Warn(msg string, meta map[string]string)  { l.log("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.log("error", msg, meta) }
