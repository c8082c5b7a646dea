package usecase

import (
	"context"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
	"ndjimba/internal/core/search"
)

// RecentListingsLimit caps the "recent" section of the home screen.
const RecentListingsLimit = 4

type GetHomeFeedUseCase struct {
	catalog port.CatalogPort
}

func NewGetHomeFeedUseCase(catalog port.CatalogPort) *GetHomeFeedUseCase {
	return &GetHomeFeedUseCase{catalog: catalog}
}

func (uc *GetHomeFeedUseCase) Execute(ctx context.Context) (*domain.HomeFeed, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetHomeFeed"})

	ucLogger.Info("Use case started", nil)

	records, err := uc.catalog.All(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	feed := &domain.HomeFeed{Featured: []domain.Property{}}
	for _, p := range records {
		if p.Verified {
			feed.Featured = append(feed.Featured, p)
		}
	}
	feed.Recent = search.Sort(records, domain.SortDateDesc)
	if len(feed.Recent) > RecentListingsLimit {
		feed.Recent = feed.Recent[:RecentListingsLimit]
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"featured": len(feed.Featured),
		"recent":   len(feed.Recent),
	})
	return feed, nil
}
