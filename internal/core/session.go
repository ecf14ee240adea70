// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/toeirei/impassword/internal/generator"
	"github.com/toeirei/impassword/internal/i18n"
	"github.com/toeirei/impassword/internal/logging"
	"github.com/toeirei/impassword/internal/model"
	"github.com/toeirei/impassword/internal/strength"
)

// Length range offered by the user interfaces. The generator itself accepts
// any length.
const (
	MinLength = 8
	MaxLength = 64
)

// Copy errors.
var (
	ErrNothingToCopy = errors.New("no password generated yet")
	ErrNoClipboard   = errors.New("no clipboard available")
)

// DefaultOptions returns the options a fresh session starts with.
func DefaultOptions() model.Options {
	return model.Options{
		Length:           16,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
		ExcludeAmbiguous: true,
	}
}

// State is a consistent snapshot of a session. Strength always belongs to
// Password, and both were produced from Options.
type State struct {
	Options  model.Options
	Password string
	Strength strength.Level
	Err      error
}

// Generate runs one pass of the pipeline: options -> password -> strength.
// On failure the returned state has an empty password and Unset strength.
func Generate(opts model.Options, rng generator.RandomSource) State {
	pw, err := generator.New(rng).Generate(opts)
	if err != nil {
		return State{Options: opts, Err: err}
	}
	return State{Options: opts, Password: pw, Strength: strength.Score(pw, opts)}
}

// Session holds the current options and the password derived from them.
// It is safe for concurrent use, but rng must be too if Session is shared.
type Session struct {
	mu        sync.Mutex
	state     State
	rng       generator.RandomSource
	notifier  Notifier
	clipboard Clipboard
}

// NewSession creates a session and generates the first password. A nil
// notifier discards messages; a nil rng uses crypto/rand.
func NewSession(opts model.Options, rng generator.RandomSource, notifier Notifier, clip Clipboard) *Session {
	if rng == nil {
		rng = generator.CryptoSource{}
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s := &Session{rng: rng, notifier: notifier, clipboard: clip}
	s.mu.Lock()
	s.apply(opts)
	s.mu.Unlock()
	return s
}

// apply regenerates for opts. Callers hold s.mu.
func (s *Session) apply(opts model.Options) {
	s.state = Generate(opts, s.rng)
	if s.state.Err != nil {
		logging.Debugf("generation failed for length %d: %v", opts.Length, s.state.Err)
		if errors.Is(s.state.Err, generator.ErrNoCharactersAvailable) {
			s.notifier.Error(i18n.T("error.no_characters"))
		} else {
			s.notifier.Error(s.state.Err.Error())
		}
		return
	}
	logging.Debugf("generated password of length %d rated %q", len(s.state.Password), s.state.Strength)
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Options returns the current options.
func (s *Session) Options() model.Options { return s.Snapshot().Options }

// Password returns the current password, empty after a failed generation.
func (s *Session) Password() string { return s.Snapshot().Password }

// Strength returns the rating of the current password.
func (s *Session) Strength() strength.Level { return s.Snapshot().Strength }

// Err returns the error of the last generation, if any.
func (s *Session) Err() error { return s.Snapshot().Err }

// Regenerate draws a new password for the current options.
func (s *Session) Regenerate() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(s.state.Options)
	return s.state
}

// SetOptions replaces the options and regenerates.
func (s *Session) SetOptions(opts model.Options) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(opts)
	return s.state
}

// update applies fn to the current options and regenerates.
func (s *Session) update(fn func(o model.Options) model.Options) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(fn(s.state.Options))
	return s.state
}

// SetLength sets the requested length and regenerates.
func (s *Session) SetLength(n int) State {
	return s.update(func(o model.Options) model.Options {
		o.Length = n
		return o
	})
}

// Toggle flips category c and regenerates.
func (s *Session) Toggle(c model.Category) State {
	return s.update(func(o model.Options) model.Options {
		return o.With(c, !o.Includes(c))
	})
}

// SetExcludeAmbiguous sets the ambiguous filter and regenerates.
func (s *Session) SetExcludeAmbiguous(exclude bool) State {
	return s.update(func(o model.Options) model.Options {
		o.ExcludeAmbiguous = exclude
		return o
	})
}

// Copy writes the current password to the clipboard and notifies the outcome.
func (s *Session) Copy() error {
	s.mu.Lock()
	pw := s.state.Password
	s.mu.Unlock()

	if pw == "" {
		s.notifier.Error(i18n.T("error.nothing_to_copy"))
		return ErrNothingToCopy
	}
	if s.clipboard == nil {
		s.notifier.Error(i18n.T("error.copy_failed"))
		return ErrNoClipboard
	}
	if err := s.clipboard.WriteAll(pw); err != nil {
		logging.Warnf("clipboard write failed: %v", err)
		s.notifier.Error(i18n.T("error.copy_failed"))
		return fmt.Errorf("copy password: %w", err)
	}
	s.notifier.Success(i18n.T("notify.copied"))
	return nil
}
