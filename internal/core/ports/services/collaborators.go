package services

import (
	"context"

	"github.com/invomate/invomate_app/internal/core/domain"
)

// FileStorageSvc uploads rendered documents and profile photos to object
// storage. Single attempt, no retry; failure is terminal for the operation.
type FileStorageSvc interface {
	// Upload stores data under folder and returns a public URL.
	Upload(ctx context.Context, folder string, filename string, contentType string, data []byte) (string, error)
}

// EmailSenderSvc sends transactional mail.
type EmailSenderSvc interface {
	// SendOTPEmail delivers a password-reset OTP to the user.
	SendOTPEmail(ctx context.Context, toEmail string, name string, otp string) error
}

// ABNLookupSvc proxies Australian Business Register lookups.
type ABNLookupSvc interface {
	// FetchABNDetails queries the register for one ABN.
	FetchABNDetails(ctx context.Context, abn string) (*domain.ABNDetails, error)
}

// DocumentRendererSvc renders invoices and quotes to PDF bytes. Rendering is
// synchronous and fails before drawing if client or business is missing.
type DocumentRendererSvc interface {
	RenderInvoice(detail *domain.InvoiceDetail) ([]byte, error)
	RenderQuote(detail *domain.QuoteDetail) ([]byte, error)
}
