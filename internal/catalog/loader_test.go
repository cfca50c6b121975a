package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotation-engine/internal/common/logger"
)

func TestParse_WrappedProductsObject(t *testing.T) {
	raw := []byte(`{"products": [
		{"name": "Mug", "category": "Drinkware"},
		{"name": "Tote", "category": "Bags"}
	]}`)

	items, err := Parse(raw, logger.NewNoOpLogger())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Mug", items[0].Name)
	assert.Equal(t, "Bags", items[1].Category)
}

func TestParse_BareList(t *testing.T) {
	raw := []byte(`[{"name": "Mug"}, {"name": "Tote"}]`)

	items, err := Parse(raw, logger.NewNoOpLogger())

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestParse_SkipsMalformedEntries(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expectedNames []string
	}{
		{
			name:          "missing name",
			raw:           `[{"name": "Mug"}, {"category": "Bags"}, {"name": "Tote"}]`,
			expectedNames: []string{"Mug", "Tote"},
		},
		{
			name:          "empty name",
			raw:           `[{"name": ""}, {"name": "Tote"}]`,
			expectedNames: []string{"Tote"},
		},
		{
			name:          "name wrong type",
			raw:           `[{"name": 42}, {"name": "Tote"}]`,
			expectedNames: []string{"Tote"},
		},
		{
			name:          "entry not an object",
			raw:           `["just a string", {"name": "Tote"}]`,
			expectedNames: []string{"Tote"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Parse([]byte(tt.raw), logger.NewNoOpLogger())

			require.NoError(t, err)
			names := make([]string, 0, len(items))
			for _, item := range items {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestParse_UnexpectedStructure(t *testing.T) {
	_, err := Parse([]byte(`"not a catalog"`), logger.NewNoOpLogger())
	assert.Error(t, err)

	_, err = Parse([]byte(`{invalid json`), logger.NewNoOpLogger())
	assert.Error(t, err)
}

func TestParse_ExtraFieldsTolerated(t *testing.T) {
	raw := []byte(`[{"name": "Mug", "unknown_field": {"nested": true}, "images": ["/a.jpg"]}]`)

	items, err := Parse(raw, logger.NewNoOpLogger())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mug", items[0].Name)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products": [{"name": "Mug"}]}`), 0o644))

	items, err := Load(path, logger.NewNoOpLogger())

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), logger.NewNoOpLogger())
	assert.Error(t, err)
}
