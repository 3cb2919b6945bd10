package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/models"
)

// Tab identifies one of the five top-level surfaces.
type Tab string

const (
	TabHome     Tab = "home"
	TabChat     Tab = "chat"
	TabReceipts Tab = "receipts"
	TabMatch    Tab = "match"
	TabProfile  Tab = "profile"
)

// Tabs returns the surfaces in display order.
func Tabs() []Tab {
	return []Tab{TabHome, TabChat, TabReceipts, TabMatch, TabProfile}
}

func (t Tab) valid() bool {
	switch t {
	case TabHome, TabChat, TabReceipts, TabMatch, TabProfile:
		return true
	}
	return false
}

type userStore interface {
	Load() (*models.User, error)
	Save(models.User) error
}

type userCreator interface {
	CreateUser(ctx context.Context, req api.CreateUserRequest) (models.User, string, error)
}

// SessionService owns the signed-in user and the active tab. Every other
// controller reads the user through it; it is the only writer of the
// local user record.
type SessionService struct {
	store userStore
	api   userCreator
	log   *logrus.Logger

	user *models.User
	tab  Tab
}

func NewSessionService(store userStore, api userCreator, log *logrus.Logger) *SessionService {
	return &SessionService{
		store: store,
		api:   api,
		log:   log,
		tab:   TabHome,
	}
}

// Boot restores the persisted user, if any. A missing record is a normal
// first run; a corrupt record is surfaced so the caller can decide.
func (s *SessionService) Boot() error {
	user, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	s.user = user
	return nil
}

func (s *SessionService) SignedIn() bool {
	return s.user != nil
}

// User returns a copy of the signed-in user.
func (s *SessionService) User() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *SessionService) ActiveTab() Tab {
	return s.tab
}

// SwitchTab changes the active surface. Unknown tabs are ignored so a
// bad keypress never corrupts navigation state.
func (s *SessionService) SwitchTab(t Tab) {
	if !t.valid() {
		return
	}
	s.tab = t
}

// CompleteOnboarding registers the user remotely and persists the result.
// A failed save does not discard the in-memory user: the session stays
// signed in and the returned error wraps ErrUserNotPersisted so callers
// can tell a registered-but-unsaved user from a failed registration.
func (s *SessionService) CompleteOnboarding(ctx context.Context, name string, sign models.Sign, dob string) (string, error) {
	user, welcome, err := s.api.CreateUser(ctx, api.CreateUserRequest{Name: name, Sign: sign, DOB: dob})
	if err != nil {
		return "", err
	}
	s.user = &user
	if err := s.store.Save(user); err != nil {
		s.log.WithError(err).Warn("Failed to persist user record")
		return welcome, fmt.Errorf("%w: %v", ErrUserNotPersisted, err)
	}
	return welcome, nil
}

// ApplyUserPatch merges the patch into the signed-in user and persists
// the full record.
func (s *SessionService) ApplyUserPatch(patch models.UserPatch) error {
	if s.user == nil {
		return ErrNoUser
	}
	updated := s.user.Merge(patch)
	if err := s.store.Save(updated); err != nil {
		return fmt.Errorf("saving user record: %w", err)
	}
	s.user = &updated
	return nil
}
