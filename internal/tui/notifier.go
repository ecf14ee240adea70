// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "sync"

// statusLine is the core.Notifier of the TUI. It keeps the latest message
// and a sequence number so a delayed clear does not wipe a newer message.
type statusLine struct {
	mu    sync.Mutex
	text  string
	isErr bool
	seq   int
}

func (s *statusLine) Success(msg string) { s.set(msg, false) }
func (s *statusLine) Error(msg string)   { s.set(msg, true) }

func (s *statusLine) set(msg string, isErr bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = msg
	s.isErr = isErr
	s.seq++
}

// get returns the current message, whether it is an error, and its sequence number.
func (s *statusLine) get() (string, bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.isErr, s.seq
}

// clear removes the message if it is still the one with sequence seq.
func (s *statusLine) clear(seq int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == seq {
		s.text = ""
		s.isErr = false
	}
}
