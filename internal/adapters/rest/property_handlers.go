package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
	"ndjimba/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	findPropertiesUC usecases_port.FindPropertiesUseCase
	getDetailsUC     usecases_port.GetPropertyDetailsUseCase
	getHomeFeedUC    usecases_port.GetHomeFeedUseCase
	getOptionsUC     usecases_port.GetFilterOptionsUseCase
	reportListingUC  usecases_port.ReportListingUseCase
}

func NewPropertyHandler(
	findPropertiesUC usecases_port.FindPropertiesUseCase,
	getDetailsUC usecases_port.GetPropertyDetailsUseCase,
	getHomeFeedUC usecases_port.GetHomeFeedUseCase,
	getOptionsUC usecases_port.GetFilterOptionsUseCase,
	reportListingUC usecases_port.ReportListingUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		findPropertiesUC: findPropertiesUC,
		getDetailsUC:     getDetailsUC,
		getHomeFeedUC:    getHomeFeedUC,
		getOptionsUC:     getOptionsUC,
		reportListingUC:  reportListingUC,
	}
}

// isBadInput reports whether err comes from a malformed filter or form value.
func isBadInput(err error) bool {
	for _, target := range []error{
		domain.ErrUnknownCity,
		domain.ErrUnknownNeighborhood,
		domain.ErrNeighborhoodOutOfScope,
		domain.ErrUnknownPropertyType,
		domain.ErrUnknownSortKey,
		domain.ErrInvalidPriceRange,
		domain.ErrUnknownReportReason,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// FindProperties handles GET /api/v1/properties
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	filters, err := parseSearchFilters(query)
	if err != nil {
		logger.Warn("Invalid search parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	sortKey, err := domain.ParseSortKey(strings.TrimSpace(query.Get("sort")))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"handler": "FindProperties", "sort": sortKey})
	handlerLogger.Debug("Processing request to find properties", port.Fields{"empty_filters": filters.IsEmpty()})

	result, err := h.findPropertiesUC.Execute(r.Context(), filters, sortKey)
	if err != nil {
		if isBadInput(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Total:      result.Total,
		Sort:       string(result.Sort),
		Properties: toCards(result.Properties),
	})
}

// GetPropertyDetails handles GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "propertyID")

	view, err := h.getDetailsUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, domain.NotFoundMessage)
			return
		}
		logger.Error("Failed to get property details", err, port.Fields{"property_id": id})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve property")
		return
	}

	RespondWithJSON(w, http.StatusOK, toDetails(view))
}

// ReportListing handles POST /api/v1/properties/{propertyID}/reports
func (h *PropertyHandler) ReportListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	id := chi.URLParam(r, "propertyID")

	var req ReportRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.reportListingUC.Execute(r.Context(), id, domain.ReportReason(req.Reason))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, domain.NotFoundMessage)
		case isBadInput(err):
			WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Error("Failed to report listing", err, port.Fields{"property_id": id})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to report listing")
		}
		return
	}

	RespondWithJSON(w, http.StatusAccepted, ReportResponse{Message: message})
}

// GetHomeFeed handles GET /api/v1/home
func (h *PropertyHandler) GetHomeFeed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	feed, err := h.getHomeFeedUC.Execute(r.Context())
	if err != nil {
		logger.Error("Failed to build home feed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve home feed")
		return
	}

	RespondWithJSON(w, http.StatusOK, HomeFeedResponse{
		Featured: toCards(feed.Featured),
		Recent:   toCards(feed.Recent),
	})
}

// GetFilterOptions handles GET /api/v1/filters/options
func (h *PropertyHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	city := domain.City(strings.TrimSpace(r.URL.Query().Get("city")))

	opts, err := h.getOptionsUC.Execute(r.Context(), city)
	if err != nil {
		if isBadInput(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to build filter options", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, toFilterOptions(opts))
}
