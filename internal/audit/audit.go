// Package audit records sync activity: a log of processing outcomes with the
// raw payload attached, and per-object status notes. The pipeline treats the
// sink as optional; a nil or absent sink never fails a sync.
package audit

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Level grades a log entry.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Entry is one processing outcome with the payload that produced it.
type Entry struct {
	ID          string
	Level       Level
	Message     string
	PayloadDump string
	ObjectID    int64
	CreatedAt   time.Time
}

// Note is a visible status marker attached to an object.
type Note struct {
	ID          string
	ObjectID    int64
	Status      string
	Title       string
	Description string
	CreatedAt   time.Time
}

// Sink receives audit records.
type Sink interface {
	Record(ctx context.Context, e Entry) error
	Note(ctx context.Context, n Note) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Record(context.Context, Entry) error { return nil }
func (NopSink) Note(context.Context, Note) error    { return nil }

// Dump renders any value for the payload column of a log entry.
func Dump(v any) string {
	return spew.Sdump(v)
}
