package product

import (
	"fmt"
	"strings"

	"github.com/qburst/pimcore-magento-product-connector/internal/config"
	"github.com/qburst/pimcore-magento-product-connector/internal/locale"
	"github.com/qburst/pimcore-magento-product-connector/internal/payload"
	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
	"github.com/qburst/pimcore-magento-product-connector/internal/translate"
)

// customAttributes emits one fragment per configured configurable or custom
// attribute, plus the short-description field. Fields without any schema type
// are skipped; empty values fail hard when the field's role requires one.
func (b *Builder) customAttributes(data *translate.ProductData, role Role) (*payload.Array, error) {
	configurable := b.Config.ConfigurableAttributeFields()
	shortDesc := b.Config.Field(config.RoleShortDescription)
	isConfigurable := role == RoleVariant || role == RoleConfigurable
	isVariant := role == RoleVariant

	inputs := uniqueStrings(configurable, b.Config.CustomAttributeFields(), []string{shortDesc})
	attrs := payload.NewArray()

	for _, input := range inputs {
		rec, ok := data.Get(input)
		if !ok {
			continue
		}

		value := b.attributeValue(rec)
		if value == "" {
			if isConfigurable && contains(configurable, input) {
				return nil, &ValidationError{
					Message: "field `" + rec.Label + "` cannot be empty as it is mapped as a configurable attribute",
				}
			}

			if !isVariant && input == shortDesc {
				return nil, &ValidationError{Message: "field `" + shortDesc + "` cannot be empty"}
			}
		}

		if rec.Type == schema.FieldUnknown {
			continue
		}

		inputKind := mapInputType(rec.Type)
		if contains(configurable, input) {
			if inputKind == "textarea" || inputKind == "multiselect" {
				return nil, &ValidationError{
					Message: fmt.Sprintf(
						"field `%s` should only be a select field and not a %q as it is mapped as a configurable attribute",
						rec.Label, rec.Type,
					),
				}
			}

			inputKind = "select"
		}

		group := ""
		if i := strings.IndexByte(input, '.'); i > 0 && !rec.Type.IsRelation() {
			group = capitalize(input[:i])
		}

		attrs.Append(payload.NewObject().
			SetString("attribute_code", snakeCase(rec.Name)).
			SetString("value", value).
			SetString("attribute_group_name", group).
			SetString("input", inputKind))
	}

	return attrs, nil
}

// attributeValue flattens a record to the single default-locale string the
// attribute fragment carries. Translated option pairs contribute their stable
// default-locale keys.
func (b *Builder) attributeValue(rec *translate.Record) string {
	if v, ok := rec.Translations.Values[b.Assembler.DefaultLocale]; ok && v != nil {
		switch t := v.(type) {
		case []translate.Pair:
			parts := make([]string, 0, len(t))
			for _, p := range t {
				parts = append(parts, p.Value)
			}

			return strings.Join(parts, ",")
		case []string:
			return strings.Join(t, ",")
		default:
			return stringValue(t)
		}
	}

	switch t := rec.Value.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(t, ",")
	case []locale.Option:
		parts := make([]string, 0, len(t))
		for _, opt := range t {
			parts = append(parts, opt.Label)
		}

		return strings.Join(parts, ",")
	default:
		return stringValue(t)
	}
}

// mapInputType maps a schema field type onto the catalog's attribute input
// kinds.
func mapInputType(t schema.FieldType) string {
	switch t {
	case schema.FieldDate:
		return "date"
	case schema.FieldDatetime:
		return "datetime"
	case schema.FieldTextarea:
		return "textarea"
	case schema.FieldCheckbox:
		return "boolean"
	case schema.FieldSelect, schema.FieldCountry, schema.FieldLanguage, schema.FieldManyToOneRelation:
		return "select"
	case schema.FieldMultiselect, schema.FieldCountryMultiselect, schema.FieldLanguageMultiselect, schema.FieldManyToManyRelation:
		return "multiselect"
	case schema.FieldWysiwyg:
		return "wysiwyg"
	default:
		return "text"
	}
}

// uniqueStrings concatenates the lists keeping first occurrences and dropping
// empty entries.
func uniqueStrings(lists ...[]string) []string {
	seen := map[string]struct{}{}
	var out []string

	for _, list := range lists {
		for _, v := range list {
			if v == "" {
				continue
			}

			if _, dup := seen[v]; dup {
				continue
			}

			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
