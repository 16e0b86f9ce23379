package product

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qburst/pimcore-magento-product-connector/internal/config"
	"github.com/qburst/pimcore-magento-product-connector/internal/payload"
	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
	"github.com/qburst/pimcore-magento-product-connector/internal/translate"
)

// Wire values understood by the catalog API.
const (
	typeSimple       = "SIMPLE"
	typeConfigurable = "CONFIGURABLE"
	statusEnabled    = "1"
	statusDisabled   = "2"
	visibilityBoth   = 4
	visibilityHidden = 1
)

// Attribute codes the catalog treats as core product fields; the configured
// schema field names must not leak into these codes.
var coreAttributeCodes = map[config.Role]string{
	config.RoleName:             "name",
	config.RoleDescription:      "description",
	config.RoleShortDescription: "shortDescription",
	config.RoleSKU:              "sku",
	config.RolePrice:            "price",
}

// Builder assembles the payload tree for one object against one
// configuration snapshot.
type Builder struct {
	Config    config.Config
	Assembler *translate.Assembler
	Resolver  *schema.Resolver
}

// Build resolves, assembles and transforms the object into a payload tree.
func (b *Builder) Build(obj *schema.Object) (*payload.Object, error) {
	data, err := b.Assembler.Assemble(obj, b.configuredPaths())
	if err != nil {
		return nil, err
	}

	return b.Transform(obj, data)
}

func (b *Builder) configuredPaths() []string {
	var paths []string
	for _, binding := range b.Config.FieldList() {
		paths = append(paths, binding.Paths...)
	}

	return paths
}

// Transform classifies the object and lays out the payload tree. Variants
// nest their full product inside the parent's product_variants list;
// configurable parents declare their children's composite SKUs up front.
func (b *Builder) Transform(obj *schema.Object, data *translate.ProductData) (*payload.Object, error) {
	b.pinCoreAttributeCodes(data)

	attributeSet := capitalize(b.Config.Get(config.KeyClass))
	name := strings.TrimSpace(stringValue(b.roleValue(data, config.RoleName)))
	description := stringValue(b.roleValue(data, config.RoleDescription))

	ownSku := stringValue(b.roleValue(data, config.RoleSKU))
	if ownSku == "" {
		return nil, &ValidationError{Message: capitalize(b.Config.Field(config.RoleSKU)) + " cannot be empty"}
	}

	sku := b.GenerateSku(obj, ownSku)
	configurableAttrs := b.configurableAttributeCodes()

	role, err := b.classify(obj, data)
	if err != nil {
		return nil, err
	}

	root := payload.NewObject().
		SetString("attribute_set_name", attributeSet).
		SetString("website_url", strings.TrimRight(b.Config.Get(config.KeyStoreURL), "/")).
		SetString("currency", b.Config.Get(config.KeyCurrency))

	typeID := typeConfigurable
	visibility := visibilityBoth
	body := root

	switch role {
	case RoleVariant:
		typeID = typeSimple
		visibility = visibilityHidden

		parentSku := b.GenerateSku(obj, "")
		root.SetString("sku", parentSku)
		root.SetRaw("type_id", typeConfigurable)
		root.SetRaw("status", b.resolveStatus(obj.Parent))
		root.Set("configurable_attributes", payload.Strings(configurableAttrs))

		siblings, err := b.childVariants(obj.Parent.Children(), parentSku, sku)
		if err != nil {
			return nil, err
		}

		body = payload.NewObject().SetString("attribute_set_name", attributeSet)
		root.Set("product_variants", siblings.Append(body))

		name = b.inheritIfEmpty(obj.Parent, config.RoleName, name)
		description = b.inheritIfEmpty(obj.Parent, config.RoleDescription, description)
	case RoleConfigurable:
		if obj.HasChildren() {
			variants, err := b.childVariants(obj.Children(), sku)
			if err != nil {
				return nil, err
			}

			root.Set("product_variants", variants)
		}
	default:
		typeID = typeSimple
	}

	if name == "" {
		return nil, &ValidationError{Message: capitalize(b.Config.Field(config.RoleName)) + " cannot be empty"}
	}

	if role != RoleVariant && stripMarkup(description) == "" {
		return nil, &ValidationError{Message: capitalize(b.Config.Field(config.RoleDescription)) + " cannot be empty"}
	}

	body.SetString("name", name).
		SetString("description", description).
		SetString("sku", sku).
		SetRaw("status", b.ownStatus(data)).
		SetRaw("type_id", typeID).
		SetRaw("visibility", strconv.Itoa(visibility))

	if categories := b.Config.Categories(); len(categories) > 0 {
		body.Set("categories", payload.Strings(categories))
	}

	custom, err := b.customAttributes(data, role)
	if err != nil {
		return nil, err
	}

	body.Set("custom_attributes", custom)
	body.Set("images", b.images(obj))

	video, err := b.video(obj)
	if err != nil {
		return nil, err
	}

	if video != nil {
		body.Set("video", video)
	}

	if typeID == typeSimple {
		price := stringValue(b.roleValue(data, config.RolePrice))
		if isEmptyText(price) {
			return nil, &ValidationError{Message: capitalize(b.Config.Field(config.RolePrice)) + " cannot be empty"}
		}

		body.SetRaw("price", price)

		if quantity := stringValue(b.roleValue(data, config.RoleQuantity)); !isEmptyText(quantity) {
			body.Set("stock", payload.NewObject().SetRaw("quantity", quantity))
		}
	}

	body.Set("translations", b.storefrontBlocks(data))

	if role != RoleVariant {
		body.Set("configurable_attributes", payload.Strings(configurableAttrs))
	}

	return root, nil
}

// classify maps the object's resolved product-type value onto a hierarchy
// role. An unrecognized value is a configuration mistake, not a remote
// failure.
func (b *Builder) classify(obj *schema.Object, data *translate.ProductData) (Role, error) {
	productType := strings.TrimSpace(stringValue(b.roleValue(data, config.RoleProductType)))

	switch productType {
	case b.Config.Get(config.KeySimpleTypeValue):
		if b.hasValidParent(obj) && b.GenerateSku(obj, "") != "" {
			return RoleVariant, nil
		}

		return RoleStandalone, nil
	case b.Config.Get(config.KeyConfigurableTypeValue):
		return RoleConfigurable, nil
	default:
		return RoleStandalone, &ValidationError{
			Message: fmt.Sprintf(
				"cannot determine the product type: the value of field %q must match one of the configured product type values",
				capitalize(b.Config.Field(config.RoleProductType)),
			),
		}
	}
}

// pinCoreAttributeCodes overwrites the canonical names of core fields so the
// emitted attribute codes stay stable regardless of schema field naming.
func (b *Builder) pinCoreAttributeCodes(data *translate.ProductData) {
	for role, code := range coreAttributeCodes {
		if rec, ok := data.Get(b.Config.Field(role)); ok {
			rec.Name = code
		}
	}
}

func (b *Builder) roleValue(data *translate.ProductData, role config.Role) any {
	rec, ok := data.Get(b.Config.Field(role))
	if !ok {
		return nil
	}

	return rec.Value
}

// ownStatus derives the wire status from the assembled status field.
func (b *Builder) ownStatus(data *translate.ProductData) string {
	if isEmptyValue(b.roleValue(data, config.RoleStatus)) {
		return statusDisabled
	}

	return statusEnabled
}

// inheritIfEmpty substitutes the parent's resolved value when the variant's
// own value is empty.
func (b *Builder) inheritIfEmpty(parent *schema.Object, role config.Role, own string) string {
	if strings.TrimSpace(own) != "" {
		return own
	}

	value, err := b.Resolver.ResolveValue(parent, b.Config.Field(role))
	if err != nil {
		return own
	}

	return strings.TrimSpace(stringValue(value) + " " + own)
}

// configurableAttributeCodes converts the configured field paths to attribute
// codes, keeping only the last segment of dotted paths.
func (b *Builder) configurableAttributeCodes() []string {
	fields := b.Config.ConfigurableAttributeFields()
	codes := make([]string, 0, len(fields))

	for _, field := range fields {
		if i := strings.LastIndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}

		codes = append(codes, snakeCase(field))
	}

	return codes
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// isEmptyValue mirrors loose emptiness: nil, blank strings, zero numbers and
// false all disable the product.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	default:
		return isEmptyText(stringValue(v))
	}
}

func isEmptyText(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "0"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// snakeCase inserts an underscore before each interior uppercase letter and
// lowercases the result.
func snakeCase(s string) string {
	var out strings.Builder

	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			out.WriteByte('_')
		}

		out.WriteRune(r)
	}

	return strings.ToLower(out.String())
}
