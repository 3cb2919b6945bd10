// Package checkout models the third-party payment widget as an injected
// capability, so native flows and test doubles share one contract.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/007PR/aura/internal/api"
)

var (
	ErrNotLoaded = errors.New("checkout provider not loaded")
	ErrCancelled = errors.New("checkout cancelled")
)

// Options configures one checkout session, built from a created order.
type Options struct {
	Key         string
	Amount      int64
	Currency    string
	OrderID     string
	Name        string
	Description string
}

// Provider is the external checkout boundary. Load prepares the provider
// and must be idempotent; Open runs one payment flow and returns the
// provider's signed completion fields.
type Provider interface {
	Load(ctx context.Context) error
	Open(ctx context.Context, opts Options) (api.VerifyPaymentRequest, error)
}

// PromptFunc collects the signed completion fields once a payment flow has
// been presented. It stands in for the widget's completion callback.
type PromptFunc func(ctx context.Context, opts Options) (api.VerifyPaymentRequest, error)

// Razorpay presents the hosted Razorpay flow from a terminal: it writes
// the checkout parameters for the user and collects the completion fields
// through the injected prompt.
type Razorpay struct {
	out    io.Writer
	prompt PromptFunc

	mu     sync.Mutex
	loaded bool
}

func NewRazorpay(out io.Writer, prompt PromptFunc) *Razorpay {
	return &Razorpay{out: out, prompt: prompt}
}

// Load marks the provider ready. Calling it again is a no-op, mirroring
// the load-once guard around the hosted checkout script.
func (r *Razorpay) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = true
	return nil
}

func (r *Razorpay) Open(ctx context.Context, opts Options) (api.VerifyPaymentRequest, error) {
	r.mu.Lock()
	loaded := r.loaded
	r.mu.Unlock()
	if !loaded {
		return api.VerifyPaymentRequest{}, ErrNotLoaded
	}
	if r.prompt == nil {
		return api.VerifyPaymentRequest{}, ErrCancelled
	}

	fmt.Fprintf(r.out, "%s — %s\n", opts.Name, opts.Description)
	fmt.Fprintf(r.out, "Order %s: %d %s (key %s)\n", opts.OrderID, opts.Amount, opts.Currency, opts.Key)

	completion, err := r.prompt(ctx, opts)
	if err != nil {
		return api.VerifyPaymentRequest{}, err
	}
	if completion.RazorpayOrderID == "" {
		completion.RazorpayOrderID = opts.OrderID
	}
	return completion, nil
}
