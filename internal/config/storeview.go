package config

import "strings"

// StoreView binds a source locale to a destination store view code.
type StoreView struct {
	Locale    string
	StoreCode string
}

// StoreViews parses the magentoStoreViewTranslations value. Pairs are
// whitespace-separated "locale:storeCode" entries; malformed entries are
// dropped. Order of the configured value is preserved.
func (c Config) StoreViews() []StoreView {
	return ParseStoreViews(c[KeyStoreViewTranslations])
}

// ParseStoreViews parses space-separated "locale:storeCode" pairs.
func ParseStoreViews(value string) []StoreView {
	fields := strings.Fields(value)
	views := make([]StoreView, 0, len(fields))

	for _, f := range fields {
		locale, code, ok := strings.Cut(f, ":")
		if !ok || locale == "" || code == "" {
			continue
		}

		views = append(views, StoreView{Locale: locale, StoreCode: code})
	}

	return views
}
