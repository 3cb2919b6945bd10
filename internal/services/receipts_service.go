package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/007PR/aura/internal/api"
	"github.com/007PR/aura/internal/models"
)

// Phase is the receipts analyzer's screen state.
type Phase int

const (
	PhaseUpload Phase = iota
	PhaseLoading
	PhaseResult
)

type receiptsAPI interface {
	AnalyzeReceipts(ctx context.Context, req api.ReceiptsRequest) (models.ReceiptVerdict, error)
}

// ReceiptsService runs the chat-screenshot analyzer. The attached image
// is carried as a data URL, matching what the endpoint expects.
type ReceiptsService struct {
	api receiptsAPI

	phase   Phase
	image   string
	verdict *models.ReceiptVerdict
	errText string
}

func NewReceiptsService(api receiptsAPI) *ReceiptsService {
	return &ReceiptsService{api: api}
}

func (r *ReceiptsService) Phase() Phase   { return r.phase }
func (r *ReceiptsService) Error() string  { return r.errText }
func (r *ReceiptsService) HasImage() bool { return r.image != "" }

func (r *ReceiptsService) Verdict() (models.ReceiptVerdict, bool) {
	if r.verdict == nil {
		return models.ReceiptVerdict{}, false
	}
	return *r.verdict, true
}

// AttachImage encodes raw image bytes as a data URL. A missing mime type
// is sniffed from the bytes.
func (r *ReceiptsService) AttachImage(data []byte, mimeType string) error {
	if len(data) == 0 {
		return ErrInvalidInput
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	r.image = fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	r.errText = ""
	return nil
}

// AttachFile reads an image from disk and attaches it.
func (r *ReceiptsService) AttachFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading screenshot: %w", err)
	}
	return r.AttachImage(data, "")
}

// Analyze submits the attached screenshot. Without an image no request is
// made. A failed analysis returns to the upload phase with the error
// surfaced; the image stays attached for a retry.
func (r *ReceiptsService) Analyze(ctx context.Context, user models.User) error {
	if r.image == "" {
		r.errText = "Attach a screenshot first"
		return ErrNoImage
	}
	r.phase = PhaseLoading
	r.errText = ""

	verdict, err := r.api.AnalyzeReceipts(ctx, api.ReceiptsRequest{UserID: user.ID, ImageBase64: r.image})
	if err != nil {
		r.phase = PhaseUpload
		r.errText = err.Error()
		return err
	}
	r.verdict = &verdict
	r.phase = PhaseResult
	return nil
}

// Reset clears the analyzer back to the upload phase.
func (r *ReceiptsService) Reset() {
	r.phase = PhaseUpload
	r.image = ""
	r.verdict = nil
	r.errText = ""
}
