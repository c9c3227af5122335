package activitylog

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
)

const (
	// Capacity is the fixed size of the ring; the oldest entries are evicted
	// once it is exceeded.
	Capacity = 100

	DefaultRecentLimit = 50
)

type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
}

// Log is a bounded FIFO of activity entries shared by every pipeline run and
// the HTTP layer. It is owned by the App and injected, never a package global.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Log {
	return &Log{entries: make([]Entry, 0, Capacity)}
}

// Append records a message with the current time, evicting the oldest entries
// so at most Capacity remain.
func (l *Log) Append(message string, severity Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Severity:  severity,
	})
	if len(l.entries) > Capacity {
		l.entries = l.entries[len(l.entries)-Capacity:]
	}
}

// Recent returns a copy of the last limit entries, most recent first. A
// non-positive limit falls back to DefaultRecentLimit.
func (l *Log) Recent(limit int) []Entry {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]Entry, limit)
	for i := 0; i < limit; i++ {
		out[i] = l.entries[len(l.entries)-1-i]
	}
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
