package port

import (
	"context"

	"gstlens/internal/domain"
)

// BillExtractor converts raw bill text into a semi-structured record.
// The analyze endpoint accepts pre-extracted records directly; an
// implementation of this interface (OCR, vision model) can be plugged in
// upstream without touching the engine.
type BillExtractor interface {
	Extract(ctx context.Context, billText string) (*domain.RawExtractedBill, error)
}
