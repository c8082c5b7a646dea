package usecase

import (
	"context"
	"errors"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	catalog port.CatalogPort
}

func NewGetPropertyDetailsUseCase(catalog port.CatalogPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{catalog: catalog}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id string) (*domain.PropertyDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.catalog.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found", nil)
			return nil, err
		}
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	view := &domain.PropertyDetailsView{
		Property: *property,
		Contact:  domain.BuildContactLinks(property),
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"has_whatsapp": view.Contact.WhatsApp != ""})
	return view, nil
}
