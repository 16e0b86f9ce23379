package product

import (
	"strings"

	"github.com/qburst/pimcore-magento-product-connector/internal/config"
	"github.com/qburst/pimcore-magento-product-connector/internal/payload"
	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
)

// Role classifies an object within the product hierarchy.
type Role int

const (
	RoleStandalone Role = iota
	RoleVariant
	RoleConfigurable
)

func (r Role) String() string {
	switch r {
	case RoleStandalone:
		return "simple-standalone"
	case RoleVariant:
		return "simple-variant"
	case RoleConfigurable:
		return "configurable-parent"
	default:
		return "unknown"
	}
}

// hasValidParent reports whether the object's parent is a configurable
// product of the same class. Folder parents and parents of a different class
// never qualify.
func (b *Builder) hasValidParent(obj *schema.Object) bool {
	parent := obj.Parent
	if parent == nil || parent.IsFolder() || !parent.SameClassAs(obj) {
		return false
	}

	value, err := b.Resolver.ResolveValue(parent, b.Config.Field(config.RoleProductType))
	if err != nil {
		return false
	}

	return strings.TrimSpace(stringValue(value)) == b.Config.Get(config.KeyConfigurableTypeValue)
}

// GenerateSku builds the composite SKU: each valid ancestor's own SKU is
// prepended root-to-leaf, spaces become hyphens, and leading/trailing hyphens
// are trimmed.
func (b *Builder) GenerateSku(obj *schema.Object, sku string) string {
	if b.hasValidParent(obj) {
		parentSku, err := b.Resolver.ResolveValue(obj.Parent, b.Config.Field(config.RoleSKU))
		if err == nil {
			sku = stringValue(parentSku) + " " + sku
		}

		sku = b.GenerateSku(obj.Parent, sku)
	}

	return normalizeSku(sku)
}

func normalizeSku(sku string) string {
	return strings.Trim(strings.ReplaceAll(sku, " ", "-"), "-")
}

// childVariants emits one {sku} fragment per non-folder child, composing each
// child SKU as parentSku-childOwnSku. SKUs listed in exclude are skipped.
func (b *Builder) childVariants(children []*schema.Object, parentSku string, exclude ...string) (*payload.Array, error) {
	variants := payload.NewArray()

	for _, child := range children {
		if child.IsFolder() {
			continue
		}

		own, err := b.Resolver.ResolveValue(child, b.Config.Field(config.RoleSKU))
		if err != nil {
			return nil, err
		}

		childSku := parentSku + "-" + normalizeSku(stringValue(own))
		if contains(exclude, childSku) {
			continue
		}

		variants.Append(payload.NewObject().SetString("sku", childSku))
	}

	return variants, nil
}

// resolveStatus derives the wire status of a relative: any non-empty status
// value enables the product.
func (b *Builder) resolveStatus(obj *schema.Object) string {
	value, err := b.Resolver.ResolveValue(obj, b.Config.Field(config.RoleStatus))
	if err != nil || isEmptyValue(value) {
		return statusDisabled
	}

	return statusEnabled
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}

	return false
}
