// Package services holds one controller per feature surface: the session
// (root) controller plus onboarding, dashboard, chat, receipts, match and
// profile. Controllers own their view's local state and call the API
// client through narrow interfaces. They are driven from a single
// goroutine, mirroring the one-UI-thread model; the dashboard's three
// parallel fetches are the only internal concurrency and are guarded.
package services

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNoUser                = errors.New("no user signed in")
	ErrNoImage               = errors.New("no screenshot attached")
	ErrBusy                  = errors.New("request already in flight")
	ErrCheckoutNotConfigured = errors.New("checkout key is not configured")
	ErrUserNotPersisted      = errors.New("user record not persisted")
)
