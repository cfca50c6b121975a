package assistant

import (
	"quotation-engine/internal/catalog"
	"quotation-engine/internal/extract"
)

// ProductView is a catalog item processed for the response payload: resolved
// image, derived price display, and discount badge.
type ProductView struct {
	Name              string `json:"name"`
	OriginalPrice     string `json:"original_price"`
	SalePrice         string `json:"sale_price"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	Material          string `json:"material"`
	Dimensions        string `json:"dimensions"`
	Color             string `json:"color"`
	Brand             string `json:"brand"`
	Photo             string `json:"photo"`
	Link              string `json:"link"`
	HasBulkDiscount   bool   `json:"has_bulk_discount"`
	FormattedDiscount string `json:"formatted_discount,omitempty"`
	DiscountBadge     string `json:"discount_badge,omitempty"`
	PriceDisplay      string `json:"price_display"`
	HasDiscount       bool   `json:"has_discount"`
}

// ChatResponse is the payload for a processed text message.
type ChatResponse struct {
	Response       string                  `json:"response"`
	Products       []ProductView           `json:"products"`
	ConversationID string                  `json:"conversation_id"`
	QuotationData  extract.QuotationRecord `json:"quotation_data"`
	DataCompletion string                  `json:"data_completion"`
}

// ImageResponse is the payload for a processed image upload.
type ImageResponse struct {
	Response string        `json:"response"`
	Products []ProductView `json:"products"`
}

// StatusResponse reports data-collection progress for one conversation.
type StatusResponse struct {
	ConversationID   string                  `json:"conversation_id"`
	QuotationData    extract.QuotationRecord `json:"quotation_data"`
	CompletionStatus string                  `json:"completion_status"`
	MissingFields    []extract.Slot          `json:"missing_fields"`
	IsComplete       bool                    `json:"is_complete"`
}

// CustomerDetails is the export view of a record; unset slots are rendered as
// the NOT COLLECTED placeholder so the sales team sees gaps at a glance.
type CustomerDetails struct {
	Email          string `json:"email"`
	Company        string `json:"company"`
	BudgetPerPack  string `json:"budget_per_pack"`
	NumberOfPacks  string `json:"number_of_packs"`
	Occasion       string `json:"occasion"`
	SpecialRequest string `json:"special_requests"`
}

// ExportResponse packages a quotation for team processing.
type ExportResponse struct {
	Timestamp           string          `json:"timestamp"`
	ConversationID      string          `json:"conversation_id"`
	QuotationReady      bool            `json:"quotation_ready"`
	CustomerDetails     CustomerDetails `json:"customer_details"`
	MissingInformation  []extract.Slot  `json:"missing_information"`
	ConversationSummary []string        `json:"conversation_summary"`
	NextSteps           string          `json:"next_steps"`
}

// QuotationSummary is one row of the admin roll-up.
type QuotationSummary struct {
	ConversationID   string `json:"conversation_id"`
	CompletionStatus string `json:"completion_status"`
	IsComplete       bool   `json:"is_complete"`
	CustomerEmail    string `json:"customer_email"`
	CompanyName      string `json:"company_name"`
	Occasion         string `json:"occasion"`
	LastActivity     string `json:"last_activity"`
}

// AllQuotationsResponse is the admin dashboard payload.
type AllQuotationsResponse struct {
	TotalConversations   int                `json:"total_conversations"`
	CompleteQuotations   int                `json:"complete_quotations"`
	IncompleteQuotations int                `json:"incomplete_quotations"`
	Quotations           []QuotationSummary `json:"quotations"`
}

// viewOf processes a catalog item for the response payload.
func viewOf(item catalog.Item, baseDomain string) ProductView {
	display, hasDiscount := item.PriceDisplay()

	view := ProductView{
		Name:              item.Name,
		OriginalPrice:     item.OriginalPrice,
		SalePrice:         item.SalePrice,
		Description:       item.Description,
		Category:          item.Category,
		Material:          item.Material,
		Dimensions:        item.Dimensions,
		Color:             item.Color,
		Brand:             item.Brand,
		Photo:             item.ImageURL(baseDomain),
		Link:              item.Link,
		HasBulkDiscount:   item.HasBulkDiscount,
		FormattedDiscount: item.FormattedDiscount,
		PriceDisplay:      display,
		HasDiscount:       hasDiscount,
	}
	if item.HasBulkDiscount {
		view.DiscountBadge = "BULK DISCOUNT"
	}
	return view
}

func viewsOf(items []catalog.Item, baseDomain string) []ProductView {
	views := make([]ProductView, 0, len(items))
	for _, item := range items {
		views = append(views, viewOf(item, baseDomain))
	}
	return views
}
