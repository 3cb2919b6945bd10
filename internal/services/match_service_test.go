package services

import (
	"context"
	"errors"
	"testing"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/models"
)

type stubMatchAPI struct {
	result  models.MatchResult
	err     error
	lastReq api.MatchRequest
}

func (s *stubMatchAPI) Match(_ context.Context, req api.MatchRequest) (models.MatchResult, error) {
	s.lastReq = req
	if s.err != nil {
		return models.MatchResult{}, s.err
	}
	return s.result, nil
}

var matchUser = models.User{ID: "u1", Name: "Priya", Sign: models.Leo}

func TestMatchCheckSuccess(t *testing.T) {
	stub := &stubMatchAPI{result: models.MatchResult{
		OverallScore: 73,
		ToxicLevel:   "Spicy",
		Verdict:      "Chaotic but fun",
		Breakdown:    models.Breakdown{Emotional: 80, Physical: 90, Intellectual: 60, Spiritual: 62},
	}}
	svc := NewMatchService(stub)

	if err := svc.Check(context.Background(), matchUser, models.Aries); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	result, ok := svc.Result()
	if !ok || result.OverallScore != 73 {
		t.Fatalf("result = %+v ok = %v", result, ok)
	}
	if svc.Crush() != models.Aries {
		t.Fatalf("Crush() = %q", svc.Crush())
	}
	if stub.lastReq.UserSign != models.Leo || stub.lastReq.CrushSign != models.Aries {
		t.Fatalf("request = %+v", stub.lastReq)
	}
}

func TestMatchCheckRejectsUnknownSign(t *testing.T) {
	svc := NewMatchService(&stubMatchAPI{})

	if err := svc.Check(context.Background(), matchUser, models.Sign("ophiuchus")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Check() error = %v, want ErrInvalidInput", err)
	}
	if _, ok := svc.Result(); ok {
		t.Fatal("invalid sign must not produce a result")
	}
}

func TestMatchFailureSynthesizesVerdict(t *testing.T) {
	svc := NewMatchService(&stubMatchAPI{err: errors.New("compatibility engine down")})

	if err := svc.Check(context.Background(), matchUser, models.Scorpio); err != nil {
		t.Fatalf("Check() error = %v, failures must render as a result", err)
	}
	result, ok := svc.Result()
	if !ok {
		t.Fatal("expected a synthesized result")
	}
	if result.OverallScore != 0 {
		t.Fatalf("OverallScore = %d, want 0", result.OverallScore)
	}
	if result.ToxicLevel != models.ToxicLevelUnknown {
		t.Fatalf("ToxicLevel = %q, want %q", result.ToxicLevel, models.ToxicLevelUnknown)
	}
	if result.Verdict != "compatibility engine down" {
		t.Fatalf("Verdict = %q", result.Verdict)
	}
	if result.Breakdown != (models.Breakdown{}) {
		t.Fatalf("Breakdown = %+v, want zeroed", result.Breakdown)
	}
}

func TestMatchBusyGuard(t *testing.T) {
	svc := NewMatchService(&stubMatchAPI{})
	svc.busy = true

	if err := svc.Check(context.Background(), matchUser, models.Aries); !errors.Is(err, ErrBusy) {
		t.Fatalf("Check() error = %v, want ErrBusy", err)
	}
}

func TestMatchReset(t *testing.T) {
	svc := NewMatchService(&stubMatchAPI{result: models.MatchResult{OverallScore: 50}})
	if err := svc.Check(context.Background(), matchUser, models.Aries); err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	svc.Reset()
	if _, ok := svc.Result(); ok {
		t.Fatal("Reset() must drop the result")
	}
	if svc.Crush() != "" {
		t.Fatalf("Crush() = %q after reset", svc.Crush())
	}
}
