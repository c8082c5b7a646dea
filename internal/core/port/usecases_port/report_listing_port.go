package usecases_port

import (
	"context"
	"ndjimba/internal/core/domain"
)

type ReportListingUseCase interface {
	Execute(ctx context.Context, propertyID string, reason domain.ReportReason) (string, error) // returns the confirmation message
}
