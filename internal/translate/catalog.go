package translate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Translator resolves admin translation phrases.
type Translator interface {
	// Lookup returns the phrase stored for key in the given locale. The
	// second result is false when no translation exists.
	Lookup(locale, key string) (string, bool)
}

// Catalog is a file-backed Translator. The document maps locale codes to
// phrase keys ("general.productName", "attribute.Red") to phrases.
type Catalog map[string]map[string]string

// LoadCatalog reads a translation catalog from a YAML file. A missing file
// yields an empty catalog.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Catalog{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read translation catalog %q: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse translation catalog %q: %w", path, err)
	}

	if c == nil {
		c = Catalog{}
	}

	return c, nil
}

func (c Catalog) Lookup(locale, key string) (string, bool) {
	phrases, ok := c[locale]
	if !ok {
		return "", false
	}

	phrase, ok := phrases[key]
	return phrase, ok
}
