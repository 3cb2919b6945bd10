// Package report provides optional crash/error reporting. With no DSN
// configured every method is a no-op, so callers never need to branch.
package report

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

type Reporter struct {
	initialized bool
}

// New initializes Sentry when a DSN is supplied.
func New(dsn, environment string) *Reporter {
	if dsn == "" {
		return &Reporter{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		log.Printf("Sentry initialization failed: %v", err)
		return &Reporter{}
	}

	return &Reporter{initialized: true}
}

func (r *Reporter) CaptureException(err error) {
	if !r.initialized || err == nil {
		return
	}
	sentry.CaptureException(err)
}

func (r *Reporter) Flush(timeout time.Duration) bool {
	if !r.initialized {
		return true
	}
	return sentry.Flush(timeout)
}

func (r *Reporter) Close() {
	r.Flush(2 * time.Second)
}
