package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/models"
)

type stubStore struct {
	user     *models.User
	loadErr  error
	saveErr  error
	saved    []models.User
	lastSave models.User
}

func (s *stubStore) Load() (*models.User, error) {
	return s.user, s.loadErr
}

func (s *stubStore) Save(u models.User) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, u)
	s.lastSave = u
	return nil
}

type stubUserCreator struct {
	user    models.User
	welcome string
	err     error
	lastReq api.CreateUserRequest
}

func (s *stubUserCreator) CreateUser(_ context.Context, req api.CreateUserRequest) (models.User, string, error) {
	s.lastReq = req
	if s.err != nil {
		return models.User{}, "", s.err
	}
	return s.user, s.welcome, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestSessionBootNoUser(t *testing.T) {
	svc := NewSessionService(&stubStore{}, &stubUserCreator{}, testLogger())

	if err := svc.Boot(); err != nil {
		t.Fatalf("Boot() error = %v", err)
	}
	if svc.SignedIn() {
		t.Fatal("expected signed-out session on first run")
	}
	if svc.ActiveTab() != TabHome {
		t.Fatalf("ActiveTab() = %q, want %q", svc.ActiveTab(), TabHome)
	}
}

func TestSessionBootRestoresUser(t *testing.T) {
	stored := models.User{ID: "u1", Name: "Priya", Sign: models.Leo, DOB: "2000-08-05"}
	svc := NewSessionService(&stubStore{user: &stored}, &stubUserCreator{}, testLogger())

	if err := svc.Boot(); err != nil {
		t.Fatalf("Boot() error = %v", err)
	}
	user, ok := svc.User()
	if !ok {
		t.Fatal("expected signed-in session")
	}
	if user != stored {
		t.Fatalf("User() = %+v, want %+v", user, stored)
	}
}

func TestSessionBootCorruptRecord(t *testing.T) {
	svc := NewSessionService(&stubStore{loadErr: errors.New("corrupt record")}, &stubUserCreator{}, testLogger())

	if err := svc.Boot(); err == nil {
		t.Fatal("expected error for corrupt record")
	}
	if svc.SignedIn() {
		t.Fatal("session must stay signed out after a failed restore")
	}
}

func TestSessionSwitchTab(t *testing.T) {
	svc := NewSessionService(&stubStore{}, &stubUserCreator{}, testLogger())

	svc.SwitchTab(TabMatch)
	if svc.ActiveTab() != TabMatch {
		t.Fatalf("ActiveTab() = %q, want %q", svc.ActiveTab(), TabMatch)
	}

	svc.SwitchTab(Tab("settings"))
	if svc.ActiveTab() != TabMatch {
		t.Fatalf("unknown tab changed navigation to %q", svc.ActiveTab())
	}
}

func TestSessionCompleteOnboarding(t *testing.T) {
	store := &stubStore{}
	creator := &stubUserCreator{
		user:    models.User{ID: "u42", Name: "Arjun", Sign: models.Aries, DOB: "1999-04-01"},
		welcome: "Welcome, Arjun!",
	}
	svc := NewSessionService(store, creator, testLogger())

	welcome, err := svc.CompleteOnboarding(context.Background(), "Arjun", models.Aries, "1999-04-01")
	if err != nil {
		t.Fatalf("CompleteOnboarding() error = %v", err)
	}
	if welcome != "Welcome, Arjun!" {
		t.Fatalf("welcome = %q", welcome)
	}
	if creator.lastReq.Name != "Arjun" || creator.lastReq.Sign != models.Aries {
		t.Fatalf("request = %+v", creator.lastReq)
	}
	if store.lastSave.ID != "u42" {
		t.Fatalf("saved user = %+v", store.lastSave)
	}
	if !svc.SignedIn() {
		t.Fatal("expected signed-in session")
	}
}

func TestSessionCompleteOnboardingSaveFailureKeepsUser(t *testing.T) {
	store := &stubStore{saveErr: errors.New("disk full")}
	creator := &stubUserCreator{user: models.User{ID: "u42", Name: "Arjun"}, welcome: "Welcome!"}
	svc := NewSessionService(store, creator, testLogger())

	welcome, err := svc.CompleteOnboarding(context.Background(), "Arjun", models.Aries, "1999-04-01")
	if !errors.Is(err, ErrUserNotPersisted) {
		t.Fatalf("CompleteOnboarding() error = %v, want ErrUserNotPersisted", err)
	}
	if welcome != "Welcome!" {
		t.Fatalf("welcome = %q, the greeting must survive a failed save", welcome)
	}
	if !svc.SignedIn() {
		t.Fatal("a failed save must not sign the user out")
	}
}

func TestSessionApplyUserPatch(t *testing.T) {
	store := &stubStore{}
	svc := NewSessionService(store, &stubUserCreator{}, testLogger())
	svc.user = &models.User{ID: "u1", Name: "Priya", Sign: models.Leo}

	premium := true
	if err := svc.ApplyUserPatch(models.UserPatch{IsPremium: &premium}); err != nil {
		t.Fatalf("ApplyUserPatch() error = %v", err)
	}
	user, _ := svc.User()
	if !user.IsPremium {
		t.Fatal("expected premium user")
	}
	if user.Name != "Priya" {
		t.Fatalf("patch touched unset field, Name = %q", user.Name)
	}
	if !store.lastSave.IsPremium {
		t.Fatal("patched record was not persisted")
	}
}

func TestSessionApplyUserPatchNoUser(t *testing.T) {
	svc := NewSessionService(&stubStore{}, &stubUserCreator{}, testLogger())

	if err := svc.ApplyUserPatch(models.UserPatch{}); !errors.Is(err, ErrNoUser) {
		t.Fatalf("ApplyUserPatch() error = %v, want ErrNoUser", err)
	}
}

func TestSessionApplyUserPatchSaveFailureKeepsOld(t *testing.T) {
	store := &stubStore{saveErr: errors.New("disk full")}
	svc := NewSessionService(store, &stubUserCreator{}, testLogger())
	svc.user = &models.User{ID: "u1", Name: "Priya"}

	premium := true
	if err := svc.ApplyUserPatch(models.UserPatch{IsPremium: &premium}); err == nil {
		t.Fatal("expected save error")
	}
	user, _ := svc.User()
	if user.IsPremium {
		t.Fatal("failed save must not apply the patch in memory")
	}
}
