package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

type ReportListingUseCase struct {
	catalog port.CatalogPort
	events  port.EventPublisherPort
	now     func() time.Time
}

func NewReportListingUseCase(catalog port.CatalogPort, events port.EventPublisherPort) *ReportListingUseCase {
	return &ReportListingUseCase{
		catalog: catalog,
		events:  events,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (uc *ReportListingUseCase) Execute(ctx context.Context, propertyID string, reason domain.ReportReason) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ReportListing",
		"property_id": propertyID,
		"reason":      reason,
	})

	ucLogger.Info("Use case started", nil)

	if _, err := domain.ParseReportReason(string(reason)); err != nil {
		ucLogger.Warn("Unknown report reason", nil)
		return "", err
	}
	if _, err := uc.catalog.FindByID(ctx, propertyID); err != nil {
		ucLogger.Warn("Cannot report listing", port.Fields{"error": err.Error()})
		return "", err
	}

	event := domain.ListingReportedEvent{
		EventID:    uuid.New().String(),
		PropertyID: propertyID,
		Reason:     string(reason),
		ReportedAt: uc.now(),
	}
	if err := uc.events.PublishListingReported(ctx, event); err != nil {
		ucLogger.Error("Failed to publish listing report", err, nil)
		return "", fmt.Errorf("failed to publish report: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"event_id": event.EventID})
	return domain.ReportConfirmation(reason), nil
}
