package catalog

import (
	"sort"
	"strings"
)

// PlaceholderImage is substituted when an item carries no usable image
// reference.
const PlaceholderImage = "https://via.placeholder.com/300x200?text=No+Image"

// Item is one sellable product entry. Read-only from the engine's
// perspective; the scorer and transport only read. The raw Images field can
// arrive as a string, a list, or a mapping depending on which ingestion batch
// produced the entry.
type Item struct {
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Category          string      `json:"category"`
	Material          string      `json:"material"`
	Brand             string      `json:"brand"`
	Color             string      `json:"color"`
	Dimensions        string      `json:"dimensions"`
	OriginalPrice     string      `json:"original_price"`
	SalePrice         string      `json:"sale_price"`
	Link              string      `json:"link"`
	Photo             string      `json:"photo"`
	Images            interface{} `json:"images,omitempty"`
	HasBulkDiscount   bool        `json:"has_bulk_discount"`
	FormattedDiscount string      `json:"formatted_discount"`
}

// SearchText returns the lowercased name + description + category blob the
// scorer matches query terms against.
func (i *Item) SearchText() string {
	return strings.ToLower(i.Name + " " + i.Description + " " + i.Category)
}

// ImageURL resolves the item's image reference: the photo field wins, then
// the images field as a direct string, the first element of a list, or the
// first value of a mapping. Relative URLs are prefixed with baseDomain and a
// placeholder is substituted when nothing usable is found.
func (i *Item) ImageURL(baseDomain string) string {
	url := i.Photo

	if url == "" && i.Images != nil {
		switch images := i.Images.(type) {
		case string:
			url = images
		case []interface{}:
			if len(images) > 0 {
				if s, ok := images[0].(string); ok {
					url = s
				}
			}
		case map[string]interface{}:
			// Map iteration order is random; pick by sorted key so repeated
			// loads resolve the same URL.
			keys := make([]string, 0, len(images))
			for k := range images {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if s, ok := images[k].(string); ok {
					url = s
					break
				}
			}
		}
	}

	if strings.HasPrefix(url, "/") {
		url = baseDomain + url
	}
	if url == "" {
		url = PlaceholderImage
	}
	return url
}

// PriceDisplay derives the customer-facing price string and whether a
// discount applies.
func (i *Item) PriceDisplay() (display string, hasDiscount bool) {
	if i.SalePrice != "" && i.SalePrice != i.OriginalPrice {
		return i.SalePrice + " (was " + i.OriginalPrice + ")", true
	}
	if i.OriginalPrice != "" {
		return i.OriginalPrice, false
	}
	return "Price on request", false
}
