package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testBaseDomain = "https://printngift.com"

func TestItem_ImageURL(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected string
	}{
		{
			name:     "photo field wins",
			item:     Item{Photo: "https://cdn.example.com/mug.jpg", Images: "/ignored.jpg"},
			expected: "https://cdn.example.com/mug.jpg",
		},
		{
			name:     "images as string",
			item:     Item{Images: "https://cdn.example.com/tote.jpg"},
			expected: "https://cdn.example.com/tote.jpg",
		},
		{
			name:     "images as list takes first",
			item:     Item{Images: []interface{}{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}},
			expected: "https://cdn.example.com/a.jpg",
		},
		{
			name:     "images as map picks lowest key",
			item:     Item{Images: map[string]interface{}{"front": "https://cdn.example.com/front.jpg", "back": "https://cdn.example.com/back.jpg"}},
			expected: "https://cdn.example.com/back.jpg",
		},
		{
			name:     "relative url gets base domain",
			item:     Item{Photo: "/media/mug.jpg"},
			expected: testBaseDomain + "/media/mug.jpg",
		},
		{
			name:     "relative url from images list",
			item:     Item{Images: []interface{}{"/media/tote.jpg"}},
			expected: testBaseDomain + "/media/tote.jpg",
		},
		{
			name:     "no image falls back to placeholder",
			item:     Item{},
			expected: PlaceholderImage,
		},
		{
			name:     "non-string list entry falls back to placeholder",
			item:     Item{Images: []interface{}{42}},
			expected: PlaceholderImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.ImageURL(testBaseDomain))
		})
	}
}

func TestItem_PriceDisplay(t *testing.T) {
	tests := []struct {
		name            string
		item            Item
		expectedDisplay string
		expectedHas     bool
	}{
		{
			name:            "sale price with original",
			item:            Item{OriginalPrice: "$20.00", SalePrice: "$15.00"},
			expectedDisplay: "$15.00 (was $20.00)",
			expectedHas:     true,
		},
		{
			name:            "sale equals original",
			item:            Item{OriginalPrice: "$20.00", SalePrice: "$20.00"},
			expectedDisplay: "$20.00",
			expectedHas:     false,
		},
		{
			name:            "original only",
			item:            Item{OriginalPrice: "$20.00"},
			expectedDisplay: "$20.00",
			expectedHas:     false,
		},
		{
			name:            "no prices",
			item:            Item{},
			expectedDisplay: "Price on request",
			expectedHas:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, has := tt.item.PriceDisplay()
			assert.Equal(t, tt.expectedDisplay, display)
			assert.Equal(t, tt.expectedHas, has)
		})
	}
}

func TestItem_SearchText(t *testing.T) {
	item := Item{Name: "Power Bank", Description: "Fast USB charger", Category: "Electronics"}

	assert.Equal(t, "power bank fast usb charger electronics", item.SearchText())
}
