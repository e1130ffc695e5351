// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history keeps a flat, tab-separated log of past conversions.
//
// Each line holds: id, RFC 3339 timestamp, source base, target base, input,
// output. The file is rewritten atomically on every change and capped at a
// maximum number of entries, oldest dropped first. Unreadable lines are
// skipped so a hand-edited file never locks the user out of the history.
package history

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/basecalc/internal/radix"
	"github.com/jeranaias/basecalc/internal/util"
)

const fieldsPerEntry = 6

// Entry is one recorded conversion.
type Entry struct {
	ID     string     `json:"id"`
	Time   time.Time  `json:"time"`
	From   radix.Base `json:"from"`
	To     radix.Base `json:"to"`
	Input  string     `json:"input"`
	Output string     `json:"output"`
}

// Store is a handle on one history file. It is safe for concurrent use.
type Store struct {
	path       string
	maxEntries int
	now        func() time.Time

	mu sync.Mutex
}

// NewStore returns a store for path keeping at most maxEntries entries.
func NewStore(path string, maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &Store{path: path, maxEntries: maxEntries, now: time.Now}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Append records a conversion and returns the stored entry.
func (s *Store) Append(from, to radix.Base, input, output string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:     uuid.NewString(),
		Time:   s.now().UTC().Truncate(time.Second),
		From:   from,
		To:     to,
		Input:  input,
		Output: output,
	}
	entries = append(entries, e)
	if len(entries) > s.maxEntries {
		entries = entries[len(entries)-s.maxEntries:]
	}

	if err := s.write(entries); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// List returns the most recent limit entries, oldest first. A limit <= 0
// returns every entry.
func (s *Store) List(limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Clear deletes the history file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Store) read() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", s.path, err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	var entries []Entry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader resynchronises at the next line
			continue
		}
		if e, ok := decode(rec); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *Store) write(entries []Entry) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	for _, e := range entries {
		if err := w.Write(encode(e)); err != nil {
			return fmt.Errorf("encode history: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := util.AtomicWriteFile(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write history %s: %w", s.path, err)
	}
	return nil
}

func encode(e Entry) []string {
	return []string{
		e.ID,
		e.Time.Format(time.RFC3339),
		e.From.Short(),
		e.To.Short(),
		e.Input,
		e.Output,
	}
}

func decode(rec []string) (Entry, bool) {
	if len(rec) != fieldsPerEntry {
		return Entry{}, false
	}
	ts, err := time.Parse(time.RFC3339, rec[1])
	if err != nil {
		return Entry{}, false
	}
	from, err := radix.ParseBase(rec[2])
	if err != nil {
		return Entry{}, false
	}
	to, err := radix.ParseBase(rec[3])
	if err != nil {
		return Entry{}, false
	}
	return Entry{ID: rec[0], Time: ts, From: from, To: to, Input: rec[4], Output: rec[5]}, true
}
