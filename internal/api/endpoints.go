package api

import (
	"context"

	"github.com/007PR/aura/internal/models"
)

// CreateUserRequest registers a new account during onboarding.
type CreateUserRequest struct {
	Name string      `json:"name"`
	Sign models.Sign `json:"sign"`
	DOB  string      `json:"dob"`
}

type createUserResponse struct {
	models.User
	Message string `json:"message"`
}

// CreateUser posts /api/user. The returned string is the backend's welcome
// message. A response without an id is a broken contract.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (models.User, string, error) {
	var resp createUserResponse
	if err := c.Post(ctx, "/api/user", req, &resp); err != nil {
		return models.User{}, "", err
	}
	if resp.ID == "" {
		return models.User{}, "", &DecodeError{Path: "/api/user", Field: "id"}
	}
	return resp.User, resp.Message, nil
}

// BatteryRequest fetches the daily energy reading.
type BatteryRequest struct {
	UserID string      `json:"user_id"`
	Sign   models.Sign `json:"sign"`
	DOB    string      `json:"dob"`
}

func (c *Client) Battery(ctx context.Context, req BatteryRequest) (models.BatteryStatus, error) {
	var resp models.BatteryStatus
	if err := c.Post(ctx, "/api/battery", req, &resp); err != nil {
		return models.BatteryStatus{}, err
	}
	return resp, nil
}

// RoastRequest fetches the daily roast for a sign.
type RoastRequest struct {
	UserID string      `json:"user_id"`
	Sign   models.Sign `json:"sign"`
}

func (c *Client) Roast(ctx context.Context, req RoastRequest) (models.RoastResult, error) {
	var resp models.RoastResult
	if err := c.Post(ctx, "/api/roast", req, &resp); err != nil {
		return models.RoastResult{}, err
	}
	return resp, nil
}

// RemedyRequest fetches a remedy suggestion for a concern.
type RemedyRequest struct {
	UserID  string      `json:"user_id"`
	Sign    models.Sign `json:"sign"`
	Concern string      `json:"concern"`
}

func (c *Client) Remedy(ctx context.Context, req RemedyRequest) (models.RemedyResult, error) {
	var resp models.RemedyResult
	if err := c.Post(ctx, "/api/remedy", req, &resp); err != nil {
		return models.RemedyResult{}, err
	}
	return resp, nil
}

// ChatTurn is one role-tagged entry of the conversation history sent with
// a chat request.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries one user message plus the full prior history.
type ChatRequest struct {
	UserID  string          `json:"user_id"`
	Message string          `json:"message"`
	Mode    models.ChatMode `json:"mode"`
	History []ChatTurn      `json:"conversation_history"`
}

// ChatReply is the assistant's response.
type ChatReply struct {
	Reply            string          `json:"reply"`
	Mode             models.ChatMode `json:"mode"`
	PlanetaryContext string          `json:"planetary_context"`
	IsFree           bool            `json:"is_free"`
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatReply, error) {
	var resp ChatReply
	if err := c.Post(ctx, "/api/chat", req, &resp); err != nil {
		return ChatReply{}, err
	}
	if resp.Reply == "" {
		return ChatReply{}, &DecodeError{Path: "/api/chat", Field: "reply"}
	}
	return resp, nil
}

// ReceiptsRequest submits one encoded screenshot for analysis.
type ReceiptsRequest struct {
	UserID      string `json:"user_id"`
	ImageBase64 string `json:"image_base64"`
}

func (c *Client) AnalyzeReceipts(ctx context.Context, req ReceiptsRequest) (models.ReceiptVerdict, error) {
	var resp models.ReceiptVerdict
	if err := c.Post(ctx, "/api/receipts", req, &resp); err != nil {
		return models.ReceiptVerdict{}, err
	}
	return resp, nil
}

// MatchRequest asks for compatibility between the user's sign and a
// candidate's.
type MatchRequest struct {
	UserID    string      `json:"user_id"`
	UserSign  models.Sign `json:"user_sign"`
	CrushSign models.Sign `json:"crush_sign"`
}

func (c *Client) Match(ctx context.Context, req MatchRequest) (models.MatchResult, error) {
	var resp models.MatchResult
	if err := c.Post(ctx, "/api/match", req, &resp); err != nil {
		return models.MatchResult{}, err
	}
	return resp, nil
}

// CreateOrderRequest opens a payment order for a catalog item.
type CreateOrderRequest struct {
	UserID string `json:"user_id"`
	Item   string `json:"item"`
	Amount int64  `json:"amount"`
}

// CreateOrder posts /api/payments/create-order. An order without a provider
// order id cannot be handed to the checkout widget. A missing currency
// defaults to INR, the backend's only currency.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (models.Order, error) {
	var resp models.Order
	if err := c.Post(ctx, "/api/payments/create-order", req, &resp); err != nil {
		return models.Order{}, err
	}
	if resp.RazorpayOrderID == "" {
		return models.Order{}, &DecodeError{Path: "/api/payments/create-order", Field: "razorpay_order_id"}
	}
	if resp.Currency == "" {
		resp.Currency = "INR"
	}
	return resp, nil
}

// VerifyPaymentRequest carries the provider's signed completion fields.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifyPayment posts /api/payments/verify. Nothing from the response body
// is consumed; a nil error means verified.
func (c *Client) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) error {
	return c.Post(ctx, "/api/payments/verify", req, nil)
}
