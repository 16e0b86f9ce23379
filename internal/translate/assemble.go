package translate

import (
	"fmt"

	"github.com/qburst/pimcore-magento-product-connector/internal/locale"
	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
)

// Translation catalog key groups.
const (
	labelTranslationKey     = "general"
	attributeTranslationKey = "attribute"
)

// Assembler resolves configured field paths against an object and merges the
// results with collected localization data.
type Assembler struct {
	Resolver      *schema.Resolver
	Translator    Translator
	DefaultLocale string
	Locales       []string
}

// Assemble produces one Record per configured field path. Every record
// leaves with a non-nil Translations.Values map, even when no locale
// contributed a value.
func (a *Assembler) Assemble(obj *schema.Object, paths []string) (*ProductData, error) {
	data := NewProductData()

	for _, path := range paths {
		resolved, err := a.Resolver.Resolve(obj, path)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", path, err)
		}

		data.Set(path, &Record{
			Value: resolved.Value,
			Type:  resolved.Type,
			Label: resolved.Label,
			Name:  resolved.Name,
		})
	}

	a.mergeLocalized(data, Collect(obj, paths))
	a.loadTranslations(data)

	return data, nil
}

// mergeLocalized fills Translations.Values per locale. Dropdown fields
// synthesize their option list from the record's own resolved value; relation
// fields and localized-container fields take the collected per-locale data.
func (a *Assembler) mergeLocalized(data *ProductData, localized LocalizedMap) {
	for _, path := range data.Paths() {
		rec, _ := data.Get(path)

		for _, loc := range a.Locales {
			values, ok := localized[loc]
			if !ok {
				continue
			}

			if rec.Type.IsDropdown() {
				rec.ensureValues()

				switch {
				case rec.Type.IsCountryOrLanguage():
					if opts, ok := rec.Value.([]locale.Option); ok {
						rec.Translations.Values[loc] = locale.Codes(opts)
					}
				case rec.Type == schema.FieldMultiselect:
					rec.Translations.Values[loc] = stringList(rec.Value)
				case rec.Type == schema.FieldSelect:
					if rec.Value != nil {
						rec.Translations.Values[loc] = stringList(rec.Value)
					}
				case rec.Type.IsRelation():
					if v, present := values[path]; present {
						rec.Translations.Values[loc] = extractLocalized(path, v)
					}
				}

				continue
			}

			v, present := values[path]
			if !present {
				continue
			}

			rec.ensureValues()
			rec.Translations.Values[loc] = extractLocalized(path, v)
		}
	}
}

// extractLocalized reduces a collected value to the shape stored per locale.
// Records gathered through relations carry whole per-locale items; the named
// sub-key is the last path segment.
func extractLocalized(path string, v any) any {
	sub := lastSegment(path)

	switch t := v.(type) {
	case []map[string]any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if value, ok := item[sub]; ok {
				out = append(out, fmt.Sprint(value))
			}
		}

		return out
	case map[string]any:
		if value, ok := t[sub]; ok {
			return value
		}

		return nil
	default:
		return v
	}
}

// loadTranslations runs the closing label and option passes over every
// record.
func (a *Assembler) loadTranslations(data *ProductData) {
	for _, path := range data.Paths() {
		rec, _ := data.Get(path)
		rec.ensureValues()
		rec.Translations.Label = a.labelTranslations(rec.Name, rec.Label)

		if rec.Type.IsDropdown() && len(rec.Translations.Values) > 0 {
			a.translateOptions(rec)
		}
	}
}

func (a *Assembler) labelTranslations(name, label string) map[string]string {
	out := make(map[string]string, len(a.Locales))
	for _, loc := range a.Locales {
		out[loc] = a.translate(labelTranslationKey, loc, name, label)
	}

	return out
}

// translateOptions replaces each per-locale value list with {translate,
// value} pairs. Relation options pair the locale phrase with the
// default-locale phrase at the same index.
func (a *Assembler) translateOptions(rec *Record) {
	defaults := stringList(rec.Translations.Values[a.DefaultLocale])
	out := make(map[string]any, len(rec.Translations.Values))

	for _, loc := range a.Locales {
		raw, ok := rec.Translations.Values[loc]
		if !ok {
			continue
		}

		entries := stringList(raw)
		pairs := make([]Pair, 0, len(entries))

		for i, entry := range entries {
			switch {
			case rec.Type == schema.FieldSelect || rec.Type == schema.FieldMultiselect:
				pairs = append(pairs, Pair{
					Translate: a.translate(attributeTranslationKey, loc, entry, ""),
					Value:     a.translate(attributeTranslationKey, a.DefaultLocale, entry, ""),
				})
			case rec.Type.IsRelation():
				value := entry
				if i < len(defaults) {
					value = defaults[i]
				}

				pairs = append(pairs, Pair{Translate: entry, Value: value})
			case rec.Type == schema.FieldCountry || rec.Type == schema.FieldCountryMultiselect:
				pairs = append(pairs, Pair{
					Translate: locale.DisplayRegion(entry, loc),
					Value:     locale.DisplayRegion(entry, a.DefaultLocale),
				})
			case rec.Type == schema.FieldLanguage || rec.Type == schema.FieldLanguageMultiselect:
				pairs = append(pairs, Pair{
					Translate: locale.DisplayLanguage(entry, loc),
					Value:     locale.DisplayLanguage(entry, a.DefaultLocale),
				})
			}
		}

		out[loc] = pairs
	}

	rec.Translations.Values = out
}

// translate looks up "<group>.<value>" for a locale, falling back to the
// provided default, then to the raw value.
func (a *Assembler) translate(group, loc, value, fallback string) string {
	if a.Translator != nil {
		if phrase, ok := a.Translator.Lookup(loc, group+"."+value); ok {
			return phrase
		}
	}

	if fallback != "" {
		return fallback
	}

	return value
}

func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, fmt.Sprint(e))
		}

		return out
	default:
		return []string{fmt.Sprint(t)}
	}
}
