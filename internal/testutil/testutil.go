// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds in-memory fakes for the core side-effect interfaces.
package testutil

import "sync"

// FakeNotifier records every message it receives.
type FakeNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (f *FakeNotifier) Success(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Successes = append(f.Successes, msg)
}

func (f *FakeNotifier) Error(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errors = append(f.Errors, msg)
}

// LastError returns the most recent error message or "".
func (f *FakeNotifier) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Errors) == 0 {
		return ""
	}
	return f.Errors[len(f.Errors)-1]
}

// FakeClipboard stores the last written text. A non-nil Err makes every
// write fail.
type FakeClipboard struct {
	Text   string
	Writes int
	Err    error
}

func (f *FakeClipboard) WriteAll(text string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Text = text
	f.Writes++
	return nil
}
