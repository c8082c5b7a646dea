package rest

import (
	"time"

	"ndjimba/internal/core/domain"
)

// PropertyCardResponse is a listing in a result list.
type PropertyCardResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	TypeLabel    string    `json:"type_label"`
	Price        int64     `json:"price"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	Surface      float64   `json:"surface"`
	Rooms        int       `json:"rooms"`
	Bathrooms    int       `json:"bathrooms"`
	Image        string    `json:"image,omitempty"`
	Available    bool      `json:"available"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// PropertyResponse is the full listing of the details page.
type PropertyResponse struct {
	PropertyCardResponse
	Description   string    `json:"description"`
	Images        []string  `json:"images"`
	OwnerName     string    `json:"owner_name"`
	OwnerPhone    string    `json:"owner_phone"`
	OwnerWhatsApp string    `json:"owner_whatsapp,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ContactLinksResponse struct {
	Call     string `json:"call"`
	SMS      string `json:"sms"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

type PropertyDetailsResponse struct {
	Property PropertyResponse     `json:"property"`
	Contact  ContactLinksResponse `json:"contact"`
}

type SearchResponse struct {
	Total      int                    `json:"total"`
	Sort       string                 `json:"sort"`
	Properties []PropertyCardResponse `json:"properties"`
}

type HomeFeedResponse struct {
	Featured []PropertyCardResponse `json:"featured"`
	Recent   []PropertyCardResponse `json:"recent"`
}

type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type PriceRangeResponse struct {
	Index     int    `json:"index"`
	Min       int64  `json:"min"`
	Max       *int64 `json:"max"`
	Unbounded bool   `json:"unbounded"`
	Label     string `json:"label"`
}

type FilterOptionsResponse struct {
	Cities        []string                 `json:"cities"`
	Neighborhoods []string                 `json:"neighborhoods"`
	PropertyTypes []DictionaryItemResponse `json:"property_types"`
	PriceRanges   []PriceRangeResponse     `json:"price_ranges"`
	SortOptions   []DictionaryItemResponse `json:"sort_options"`
	ReportReasons []string                 `json:"report_reasons"`
}

type PhoneRequest struct {
	Phone string `json:"phone"`
}

type PhoneValidationResponse struct {
	IsValid    bool   `json:"is_valid"`
	Normalized string `json:"normalized"`
	Message    string `json:"message,omitempty"`
}

type SupportLinkResponse struct {
	Web string `json:"web"`
	App string `json:"app"`
}

// SignupStateResponse mirrors the signup form after a submission.
type SignupStateResponse struct {
	Status       string               `json:"status"`
	PhoneInput   string               `json:"phone_input"`
	IsValid      bool                 `json:"is_valid"`
	Normalized   string               `json:"normalized"`
	Loading      bool                 `json:"loading"`
	ErrorMessage *string              `json:"error_message"`
	AccessCode   *string              `json:"access_code"`
	SupportLink  *SupportLinkResponse `json:"support_link"`
}

type LoginRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
}

type ReportRequest struct {
	Reason string `json:"reason"`
}

type ReportResponse struct {
	Message string `json:"message"`
}

func toCard(p *domain.Property) PropertyCardResponse {
	card := PropertyCardResponse{
		ID:           p.ID,
		Title:        p.Title,
		Type:         string(p.Type),
		TypeLabel:    p.Type.Label(),
		Price:        p.Price,
		Neighborhood: p.Neighborhood,
		City:         string(p.City),
		Surface:      p.Surface,
		Rooms:        p.Rooms,
		Bathrooms:    p.Bathrooms,
		Available:    p.Available,
		Verified:     p.Verified,
		CreatedAt:    p.CreatedAt,
	}
	if len(p.Images) > 0 {
		card.Image = p.Images[0]
	}
	return card
}

func toCards(records []domain.Property) []PropertyCardResponse {
	cards := make([]PropertyCardResponse, len(records))
	for i := range records {
		cards[i] = toCard(&records[i])
	}
	return cards
}

func toDetails(view *domain.PropertyDetailsView) PropertyDetailsResponse {
	p := &view.Property
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return PropertyDetailsResponse{
		Property: PropertyResponse{
			PropertyCardResponse: toCard(p),
			Description:          p.Description,
			Images:               images,
			OwnerName:            p.OwnerName,
			OwnerPhone:           p.OwnerPhone,
			OwnerWhatsApp:        p.OwnerWhatsApp,
			UpdatedAt:            p.UpdatedAt,
		},
		Contact: ContactLinksResponse{
			Call:     view.Contact.Call,
			SMS:      view.Contact.SMS,
			WhatsApp: view.Contact.WhatsApp,
		},
	}
}

func toDictionary(items []domain.DictionaryItem) []DictionaryItemResponse {
	out := make([]DictionaryItemResponse, len(items))
	for i, it := range items {
		out[i] = DictionaryItemResponse{SystemName: it.SystemName, DisplayName: it.DisplayName}
	}
	return out
}

func toFilterOptions(opts *domain.FilterOptions) FilterOptionsResponse {
	resp := FilterOptionsResponse{
		Cities:        make([]string, len(opts.Cities)),
		Neighborhoods: opts.Neighborhoods,
		PropertyTypes: toDictionary(opts.PropertyTypes),
		PriceRanges:   make([]PriceRangeResponse, len(opts.PriceRanges)),
		SortOptions:   toDictionary(opts.SortOptions),
		ReportReasons: make([]string, len(domain.ReportReasons)),
	}
	for i, c := range opts.Cities {
		resp.Cities[i] = string(c)
	}
	for i, pr := range opts.PriceRanges {
		item := PriceRangeResponse{
			Index:     i,
			Min:       pr.Min,
			Unbounded: pr.Max.IsUnbounded(),
			Label:     pr.Label,
		}
		if v, ok := pr.Max.Value(); ok {
			item.Max = &v
		}
		resp.PriceRanges[i] = item
	}
	for i, r := range domain.ReportReasons {
		resp.ReportReasons[i] = string(r)
	}
	return resp
}

func toSignupState(s domain.SignupState) SignupStateResponse {
	resp := SignupStateResponse{
		Status:       string(s.Status),
		PhoneInput:   s.PhoneInput,
		IsValid:      s.Validation.IsValid,
		Normalized:   s.Validation.Normalized,
		Loading:      s.Loading,
		ErrorMessage: s.ErrorMessage,
		AccessCode:   s.AccessCode,
	}
	if s.SupportLink != nil {
		resp.SupportLink = &SupportLinkResponse{Web: s.SupportLink.Web, App: s.SupportLink.App}
	}
	return resp
}
