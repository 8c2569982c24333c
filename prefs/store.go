// Package prefs implements the user preference store. It keeps the signed-in
// user's display defaults, loads and saves them through a persistence
// backend, and pushes a restored default fill style into the canvas style
// defaults so that newly created plottables pick it up immediately.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maniartech/signals"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/optional"
)

// ErrNotAuthenticated is returned by Save when there is no signed-in user.
// The message is part of the API contract with callers that report it
// verbatim.
var ErrNotAuthenticated = errors.New("Not authenticated")

// Record is a user's stored preference record.
type Record struct {
	DefaultFill optional.Optional[easel.FillStyle]
}

// IdentityProvider answers who is currently signed in. The store never
// authenticates, it only queries.
type IdentityProvider interface {
	// CurrentUserID returns the id of the signed-in user, or false when
	// nobody is signed in.
	CurrentUserID(ctx context.Context) (string, bool)
}

// Session is an IdentityProvider holding one settable user id.
type Session struct {
	uid string
}

// NewSession returns a session signed in as the given user id, or signed out
// when the id is empty.
func NewSession(uid string) *Session {
	return &Session{uid: uid}
}

// SetUserID signs the session in as the given user id.
func (s *Session) SetUserID(uid string) {
	s.uid = uid
}

// SignOut signs the session out.
func (s *Session) SignOut() {
	s.uid = ""
}

// CurrentUserID implements IdentityProvider.
func (s *Session) CurrentUserID(ctx context.Context) (string, bool) {
	return s.uid, s.uid != ""
}

// Anonymous returns an IdentityProvider with nobody ever signed in.
func Anonymous() IdentityProvider {
	return anonymous{}
}

type anonymous struct{}

func (anonymous) CurrentUserID(ctx context.Context) (string, bool) {
	return "", false
}

// Backend loads and saves preference records by user id.
type Backend interface {
	// LoadPreferences returns the user's record, or nil when the user has no
	// stored preferences.
	LoadPreferences(ctx context.Context, uid string) (*Record, error)
	SavePreferences(ctx context.Context, uid string, rec Record) error
}

// Store is the preference store of one application session.
//
// The store expects a single cooperative caller: its fields are not
// synchronized and a Load does not exclude another. Overlapping loads resolve
// in completion order, the last one to finish wins.
type Store struct {
	// Changed emits the new default fill style after a load restores one or
	// a save persists one.
	Changed signals.Signal[easel.FillStyle]

	identity IdentityProvider
	backend  Backend
	defaults *easel.StyleDefaults

	defaultFill optional.Optional[easel.FillStyle]
	loading     bool
}

// New returns a preference store reading identity from identity, records from
// backend, and writing a restored default fill into defaults.
func New(identity IdentityProvider, backend Backend, defaults *easel.StyleDefaults) *Store {
	return &Store{
		Changed:  signals.NewSync[easel.FillStyle](),
		identity: identity,
		backend:  backend,
		defaults: defaults,
	}
}

// Loading reports whether a load call is in flight.
func (s *Store) Loading() bool {
	return s.loading
}

// DefaultFill returns the user's default fill style, empty when the user has
// no stored preference.
func (s *Store) DefaultFill() optional.Optional[easel.FillStyle] {
	return s.defaultFill
}

// SetDefaultFill sets the default fill style to be persisted by the next
// Save.
func (s *Store) SetDefaultFill(fs easel.FillStyle) {
	s.defaultFill = optional.New(fs)
}

// ClearDefaultFill removes the default fill style.
func (s *Store) ClearDefaultFill() {
	s.defaultFill.Clear()
}

// Load reads the preference record of the given user, or of the signed-in
// user when uid is empty. Without a uid and without a signed-in user the call
// is a no-op: anonymous usage has nothing to load. A restored default fill is
// written into the canvas style defaults. A record without a default fill
// clears the local value but leaves the canvas defaults untouched.
//
// On a backend error the loading flag is cleared, the local value keeps its
// prior state, and the error is returned.
func (s *Store) Load(ctx context.Context, uid string) error {
	if uid == "" {
		id, ok := s.identity.CurrentUserID(ctx)
		if !ok {
			slog.Debug("Preference load skipped, nobody is signed in")
			return nil
		}
		uid = id
	}

	s.loading = true
	defer func() {
		s.loading = false
	}()

	rec, err := s.backend.LoadPreferences(ctx, uid)
	if err != nil {
		return fmt.Errorf("load preferences for user %s: %w", uid, err)
	}
	if rec != nil && rec.DefaultFill.Present() {
		fill := rec.DefaultFill.ValueOrZero()
		s.defaultFill = optional.New(fill)
		s.defaults.SetDefaultFill(fill)
		s.Changed.Emit(ctx, fill)
		slog.Debug("Preferences loaded", "user", uid, "defaultFill", fill)
	} else {
		s.defaultFill.Clear()
		slog.Debug("Preferences loaded", "user", uid, "defaultFill", "<empty>")
	}
	return nil
}

// Save persists the current preference record, including an empty default
// fill, for the signed-in user. Without a signed-in user it fails with
// ErrNotAuthenticated and the backend is not called.
func (s *Store) Save(ctx context.Context) error {
	uid, ok := s.identity.CurrentUserID(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	if err := s.backend.SavePreferences(ctx, uid, Record{DefaultFill: s.defaultFill}); err != nil {
		return fmt.Errorf("save preferences for user %s: %w", uid, err)
	}
	if s.defaultFill.Present() {
		s.Changed.Emit(ctx, s.defaultFill.ValueOrZero())
	}
	slog.Debug("Preferences saved", "user", uid, "defaultFill", s.defaultFill)
	return nil
}
