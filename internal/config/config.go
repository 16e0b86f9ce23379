// Package config holds the connector configuration: a flat key→value map
// persisted as YAML, snapshotted once per pipeline run and immutable for the
// duration of that run.
package config

import "strings"

// Connector-level configuration keys.
const (
	KeyClass                   = "pimcoreClass"
	KeyHostURL                 = "pimcoreHostUrl"
	KeyStoreURL                = "magentoStoreUrl"
	KeyAccessToken             = "magentoAccessToken"
	KeyCurrency                = "magentoCurrency"
	KeyStoreViewTranslations   = "magentoStoreViewTranslations"
	KeyConfigurableTypeValue   = "configurableProductTypeValue"
	KeySimpleTypeValue         = "simpleProductTypeValue"
	KeyDefaultLanguage         = "defaultLanguage"
	KeyValidLanguages          = "validLanguages"
	KeyAdminToken              = "adminApiToken"
)

// Role names an abstract product field bound to a concrete schema field path
// through the configuration.
type Role string

const (
	RoleName                   Role = "name"
	RoleDescription            Role = "description"
	RoleShortDescription       Role = "shortDescription"
	RoleSKU                    Role = "sku"
	RolePrice                  Role = "price"
	RoleQuantity               Role = "quantity"
	RoleStatus                 Role = "status"
	RoleCategories             Role = "categories"
	RoleProductType            Role = "productType"
	RoleConfigurableAttributes Role = "configurable_attributes"
	RoleCustomAttributes       Role = "custom_attributes"
)

// productFieldKeys maps roles to their configuration keys.
var productFieldKeys = map[Role]string{
	RoleName:                   "productName",
	RoleDescription:            "productDescription",
	RoleShortDescription:       "productShortDescription",
	RoleSKU:                    "productSku",
	RolePrice:                  "productPrice",
	RoleQuantity:               "productQuantity",
	RoleStatus:                 "productStatus",
	RoleCategories:             "MagentoProductCategory",
	RoleProductType:            "parentProductType",
	RoleConfigurableAttributes: "magentoConfigurableAttributes",
	RoleCustomAttributes:       "magentoCustomAttributes",
}

// fieldRoleOrder fixes the iteration order of configured product fields; the
// payload depends on it being stable.
var fieldRoleOrder = []Role{
	RoleName,
	RoleDescription,
	RoleShortDescription,
	RoleSKU,
	RolePrice,
	RoleQuantity,
	RoleStatus,
	RoleCategories,
	RoleProductType,
	RoleConfigurableAttributes,
	RoleCustomAttributes,
}

// Config is one immutable configuration snapshot.
type Config map[string]string

// Get returns the raw value stored under key.
func (c Config) Get(key string) string {
	return c[key]
}

// Field returns the schema field path (or raw value) configured for a role.
func (c Config) Field(role Role) string {
	key, ok := productFieldKeys[role]
	if !ok {
		return ""
	}

	return c[key]
}

// FieldKey returns the configuration key backing a role.
func FieldKey(role Role) string {
	return productFieldKeys[role]
}

// Binding is one configured product field: the role and the schema field
// paths bound to it (attribute roles bind several comma-separated paths).
type Binding struct {
	Role  Role
	Paths []string
}

// FieldList returns the configured product fields in canonical order,
// excluding categories (which are configuration values, not schema paths).
// Attribute-list roles are split on commas with empties pruned.
func (c Config) FieldList() []Binding {
	bindings := make([]Binding, 0, len(fieldRoleOrder))

	for _, role := range fieldRoleOrder {
		if role == RoleCategories {
			continue
		}

		value := c.Field(role)
		if value == "" {
			continue
		}

		switch role {
		case RoleConfigurableAttributes, RoleCustomAttributes:
			bindings = append(bindings, Binding{Role: role, Paths: SplitList(value)})
		default:
			bindings = append(bindings, Binding{Role: role, Paths: []string{value}})
		}
	}

	return bindings
}

// ConfigurableAttributeFields returns the schema field paths mapped as
// configurable attributes.
func (c Config) ConfigurableAttributeFields() []string {
	return SplitList(c.Field(RoleConfigurableAttributes))
}

// CustomAttributeFields returns the schema field paths mapped as custom
// attributes.
func (c Config) CustomAttributeFields() []string {
	return SplitList(c.Field(RoleCustomAttributes))
}

// Categories returns the configured category names.
func (c Config) Categories() []string {
	return SplitList(c.Field(RoleCategories))
}

// DefaultLanguage returns the default locale of the host system.
func (c Config) DefaultLanguage() string {
	return c[KeyDefaultLanguage]
}

// ValidLanguages returns the locales the host system is configured with.
func (c Config) ValidLanguages() []string {
	raw := strings.ReplaceAll(c[KeyValidLanguages], ",", " ")
	return strings.Fields(raw)
}

// HasLanguage reports whether loc is one of the valid languages.
func (c Config) HasLanguage(loc string) bool {
	for _, l := range c.ValidLanguages() {
		if l == loc {
			return true
		}
	}

	return false
}

// SplitList splits a comma-separated value, trimming whitespace and pruning
// empty entries.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		out = append(out, p)
	}

	return out
}
