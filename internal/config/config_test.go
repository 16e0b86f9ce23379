package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList_TrimsAndPrunes(t *testing.T) {
	assert.Equal(t, []string{"color", "size"}, SplitList(" color , size ,, "))
	assert.Empty(t, SplitList(""))
}

func TestParseStoreViews_DropsMalformedPairs(t *testing.T) {
	views := ParseStoreViews("fr:french_store de:german_store broken :x en:")

	require.Len(t, views, 2)
	assert.Equal(t, StoreView{Locale: "fr", StoreCode: "french_store"}, views[0])
	assert.Equal(t, StoreView{Locale: "de", StoreCode: "german_store"}, views[1])
}

func TestConfig_FieldList_OrderAndSplitting(t *testing.T) {
	cfg := Config{
		"productName":                   "productName",
		"productSku":                    "sku",
		"productPrice":                  "price",
		"MagentoProductCategory":        "Default,Clothing",
		"magentoConfigurableAttributes": "color, size",
		"magentoCustomAttributes":       "brand.name",
	}

	list := cfg.FieldList()

	require.Len(t, list, 5)
	assert.Equal(t, RoleName, list[0].Role)
	assert.Equal(t, RoleSKU, list[1].Role)
	assert.Equal(t, RolePrice, list[2].Role)
	assert.Equal(t, Binding{Role: RoleConfigurableAttributes, Paths: []string{"color", "size"}}, list[3])
	assert.Equal(t, Binding{Role: RoleCustomAttributes, Paths: []string{"brand.name"}}, list[4])

	for _, b := range list {
		assert.NotEqual(t, RoleCategories, b.Role)
	}
}

func TestConfig_Languages(t *testing.T) {
	cfg := Config{
		KeyDefaultLanguage: "en",
		KeyValidLanguages:  "en, fr de",
	}

	assert.Equal(t, "en", cfg.DefaultLanguage())
	assert.Equal(t, []string{"en", "fr", "de"}, cfg.ValidLanguages())
	assert.True(t, cfg.HasLanguage("fr"))
	assert.False(t, cfg.HasLanguage("es"))
}

func TestStore_FirstAccessCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connector", "config.yml")
	store := NewStore(path)

	cfg, err := store.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Get(KeyDefaultLanguage))
	assert.Contains(t, cfg, "productName")
	assert.Contains(t, cfg, "magentoCustomAttributes")

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.yml"))

	cfg, err := store.Snapshot()
	require.NoError(t, err)

	cfg[KeyClass] = "Product"
	cfg["productName"] = "productName"
	require.NoError(t, store.Save(cfg))

	loaded, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "Product", loaded.Get(KeyClass))
	assert.Equal(t, "productName", loaded.Field(RoleName))
}

func TestStore_InvalidYAMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := NewStore(path).Snapshot()
	require.Error(t, err)
}
