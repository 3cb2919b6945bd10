package services

import (
	"context"
	"fmt"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/checkout"
	"github.com/007PR/aura/internal/models"
	"github.com/007PR/aura/internal/remedies"
)

type paymentsAPI interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (models.Order, error)
	VerifyPayment(ctx context.Context, req api.VerifyPaymentRequest) error
}

type premiumApplier interface {
	ApplyUserPatch(patch models.UserPatch) error
}

// Catalog lists the purchasable items shown on the profile screen.
func Catalog() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:           models.ItemInnerCircle,
			Title:        "Inner Circle",
			Description:  "Unlimited readings, priority remedies, premium chat",
			Icon:         "✦",
			Amount:       19900,
			Subscription: true,
		},
		{
			ID:          "receipts_single",
			Title:       "Receipts Reading",
			Description: "One chat screenshot, fully decoded",
			Icon:        "📸",
			Amount:      2900,
		},
		{
			ID:          "deep_dive_report",
			Title:       "Deep Dive Report",
			Description: "Your full chart, no stone unturned",
			Icon:        "📋",
			Amount:      4900,
		},
		{
			ID:          "instant_upay",
			Title:       "Instant Upay",
			Description: "One remedy, delivered now",
			Icon:        "🪔",
			Amount:      1100,
		},
	}
}

// ProfileService drives the profile screen: the remedy library, the item
// catalog and the purchase flow. The checkout provider is loaded lazily
// on the first purchase and reused after that.
type ProfileService struct {
	api      paymentsAPI
	session  premiumApplier
	provider checkout.Provider
	key      string
	remedies []remedies.Remedy

	loaded bool
}

func NewProfileService(apiClient paymentsAPI, session premiumApplier, provider checkout.Provider, key string) *ProfileService {
	return &ProfileService{
		api:      apiClient,
		session:  session,
		provider: provider,
		key:      key,
		remedies: remedies.Default(),
	}
}

// RemedyLibrary returns the built-in remedy catalog.
func (p *ProfileService) RemedyLibrary() []remedies.Remedy {
	out := make([]remedies.Remedy, len(p.remedies))
	copy(out, p.remedies)
	return out
}

func (p *ProfileService) item(itemID string) (models.CatalogItem, bool) {
	for _, item := range Catalog() {
		if item.ID == itemID {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// Purchase runs the full payment flow for a catalog item: create the
// order, open checkout, verify the completion, and for subscriptions mark
// the user premium. The configuration check happens before any network
// call.
func (p *ProfileService) Purchase(ctx context.Context, user models.User, itemID string) error {
	item, ok := p.item(itemID)
	if !ok {
		return ErrInvalidInput
	}
	if p.key == "" {
		return ErrCheckoutNotConfigured
	}

	if !p.loaded {
		if err := p.provider.Load(ctx); err != nil {
			return fmt.Errorf("loading checkout: %w", err)
		}
		p.loaded = true
	}

	order, err := p.api.CreateOrder(ctx, api.CreateOrderRequest{UserID: user.ID, Item: item.ID, Amount: item.Amount})
	if err != nil {
		return err
	}

	completion, err := p.provider.Open(ctx, checkout.Options{
		Key:         p.key,
		Amount:      order.Amount,
		Currency:    order.Currency,
		OrderID:     order.RazorpayOrderID,
		Name:        "Aura AI",
		Description: "Aura AI purchase",
	})
	if err != nil {
		return err
	}

	if err := p.api.VerifyPayment(ctx, completion); err != nil {
		return err
	}

	if item.Subscription {
		premium := true
		if err := p.session.ApplyUserPatch(models.UserPatch{IsPremium: &premium}); err != nil {
			return fmt.Errorf("marking premium: %w", err)
		}
	}
	return nil
}
