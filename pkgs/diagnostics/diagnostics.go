// Package diagnostics is an append-only sink for parse-time errors and
// warnings, independent of any particular parser. It never truncates
// or discards: every record ever added stays in Render order.
package diagnostics

import (
	"fmt"
	"strings"
)

// Level distinguishes a hard failure from an advisory note.
type Level int

const (
	LevelError Level = iota
	LevelWarning
)

func (lv Level) String() string {
	switch lv {
	case LevelWarning:
		return "warning"
	default:
		return "error"
	}
}

// Diagnostic is a single located message.
type Diagnostic struct {
	File    string
	Row     uint32
	Col     uint32
	Level   Level
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (%d, %d): %s", d.File, d.Row, d.Col, d.Message)
}

// Sink accumulates diagnostics in the order they're added.
type Sink struct {
	items []Diagnostic
}

// New returns an empty sink.
func New() *Sink {
	return &Sink{}
}

// Add appends a diagnostic.
func (s *Sink) Add(file string, row, col uint32, level Level, format string, args ...any) {
	s.items = append(s.items, Diagnostic{
		File:    file,
		Row:     row,
		Col:     col,
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddError appends a LevelError diagnostic.
func (s *Sink) AddError(file string, row, col uint32, format string, args ...any) {
	s.Add(file, row, col, LevelError, format, args...)
}

// AddWarning appends a LevelWarning diagnostic.
func (s *Sink) AddWarning(file string, row, col uint32, format string, args ...any) {
	s.Add(file, row, col, LevelWarning, format, args...)
}

// Items returns every diagnostic recorded so far, in insertion order.
// The returned slice is owned by the caller; mutating it does not
// affect the sink.
func (s *Sink) Items() []Diagnostic {
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	return out
}

// CountOfLevel reports how many recorded diagnostics have the given level.
func (s *Sink) CountOfLevel(level Level) int {
	n := 0
	for _, d := range s.items {
		if d.Level == level {
			n++
		}
	}
	return n
}

// HasErrors reports whether any LevelError diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	return s.CountOfLevel(LevelError) > 0
}

// First returns the first recorded diagnostic, if any.
func (s *Sink) First() (Diagnostic, bool) {
	if len(s.items) == 0 {
		return Diagnostic{}, false
	}
	return s.items[0], true
}

// Render formats every diagnostic, one per line, in insertion order.
func (s *Sink) Render() string {
	var b strings.Builder
	for _, d := range s.items {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}
