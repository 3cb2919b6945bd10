package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/007PR/aura/internal/models"
)

// Step is the onboarding wizard's position.
type Step int

const (
	StepWelcome Step = iota
	StepName
	StepBirthDate
	StepSign
	StepDone
)

type onboardingCompleter interface {
	CompleteOnboarding(ctx context.Context, name string, sign models.Sign, dob string) (string, error)
}

// OnboardingService walks a new user through the sign-up wizard. Each
// setter validates its own field and refuses to advance on bad input, so
// the wizard can never reach Submit with a half-filled form.
type OnboardingService struct {
	session onboardingCompleter

	step    Step
	name    string
	dob     string
	sign    models.Sign
	errText string
	welcome string
}

func NewOnboardingService(session onboardingCompleter) *OnboardingService {
	return &OnboardingService{session: session, step: StepWelcome}
}

func (o *OnboardingService) Step() Step      { return o.step }
func (o *OnboardingService) Error() string   { return o.errText }
func (o *OnboardingService) Welcome() string { return o.welcome }

// Begin advances past the welcome screen.
func (o *OnboardingService) Begin() {
	if o.step == StepWelcome {
		o.step = StepName
	}
}

// SetName records the user's name. Blank input keeps the wizard on the
// name step.
func (o *OnboardingService) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		o.errText = "Tell us your name first"
		return ErrInvalidInput
	}
	o.name = name
	o.errText = ""
	o.step = StepBirthDate
	return nil
}

// SetBirthDate records the date of birth as YYYY-MM-DD. Future dates are
// rejected.
func (o *OnboardingService) SetBirthDate(dob string) error {
	dob = strings.TrimSpace(dob)
	parsed, err := time.Parse("2006-01-02", dob)
	if err != nil {
		o.errText = "Use the YYYY-MM-DD format"
		return ErrInvalidInput
	}
	if parsed.After(time.Now()) {
		o.errText = "Birth date can't be in the future"
		return ErrInvalidInput
	}
	o.dob = dob
	o.errText = ""
	o.step = StepSign
	return nil
}

// SelectSign records the zodiac sign from the closed set.
func (o *OnboardingService) SelectSign(raw string) error {
	sign, err := models.ParseSign(raw)
	if err != nil {
		o.errText = "Pick one of the twelve signs"
		return ErrInvalidInput
	}
	o.sign = sign
	o.errText = ""
	return nil
}

// Submit registers the user. On a failed registration the wizard stays on
// the sign step with the error surfaced and a retry re-issues the request.
// A persistence failure after a successful registration finishes the
// wizard with the warning surfaced: the user exists and is signed in, so
// retrying would register a duplicate account.
func (o *OnboardingService) Submit(ctx context.Context) error {
	if o.step != StepSign || !o.sign.Valid() {
		o.errText = "Pick one of the twelve signs"
		return ErrInvalidInput
	}
	welcome, err := o.session.CompleteOnboarding(ctx, o.name, o.sign, o.dob)
	if err != nil {
		if errors.Is(err, ErrUserNotPersisted) {
			o.welcome = welcome
			o.errText = err.Error()
			o.step = StepDone
			return nil
		}
		o.errText = err.Error()
		return err
	}
	o.welcome = welcome
	o.errText = ""
	o.step = StepDone
	return nil
}
