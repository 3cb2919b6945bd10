package services

import (
	"context"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/models"
)

type matchAPI interface {
	Match(ctx context.Context, req api.MatchRequest) (models.MatchResult, error)
}

// MatchService runs the compatibility checker. A failed check still
// produces a result card: the failure is rendered as a zero-score verdict
// rather than an error screen.
type MatchService struct {
	api matchAPI

	busy   bool
	crush  models.Sign
	result *models.MatchResult
}

func NewMatchService(api matchAPI) *MatchService {
	return &MatchService{api: api}
}

func (m *MatchService) Busy() bool         { return m.busy }
func (m *MatchService) Crush() models.Sign { return m.crush }

func (m *MatchService) Result() (models.MatchResult, bool) {
	if m.result == nil {
		return models.MatchResult{}, false
	}
	return *m.result, true
}

// Check runs a compatibility reading against the crush sign. Only one
// check runs at a time.
func (m *MatchService) Check(ctx context.Context, user models.User, crush models.Sign) error {
	if !crush.Valid() {
		return ErrInvalidInput
	}
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	defer func() { m.busy = false }()

	m.crush = crush
	result, err := m.api.Match(ctx, api.MatchRequest{UserID: user.ID, UserSign: user.Sign, CrushSign: crush})
	if err != nil {
		m.result = &models.MatchResult{
			OverallScore: 0,
			ToxicLevel:   models.ToxicLevelUnknown,
			Verdict:      err.Error(),
		}
		return nil
	}
	m.result = &result
	return nil
}

// Reset clears the last reading.
func (m *MatchService) Reset() {
	m.crush = ""
	m.result = nil
}
