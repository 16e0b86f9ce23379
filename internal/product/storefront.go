package product

import (
	"strings"

	"github.com/qburst/pimcore-magento-product-connector/internal/config"
	"github.com/qburst/pimcore-magento-product-connector/internal/payload"
	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
	"github.com/qburst/pimcore-magento-product-connector/internal/translate"
)

// storefrontBlocks emits one {storeViewCode, attributes} block per configured
// locale→store view pair. Status, product type and stock quantity never
// translate; fields lacking a name or a type are skipped. A locale without a
// recorded translation still yields the code and label fragment.
func (b *Builder) storefrontBlocks(data *translate.ProductData) *payload.Array {
	excluded := map[string]struct{}{
		b.Config.Field(config.RoleStatus):      {},
		b.Config.Field(config.RoleProductType): {},
		b.Config.Field(config.RoleQuantity):    {},
	}

	blocks := payload.NewArray()

	for _, view := range b.Config.StoreViews() {
		attrs := payload.NewArray()

		for _, path := range data.Paths() {
			if _, skip := excluded[path]; skip {
				continue
			}

			rec, _ := data.Get(path)
			if rec.Name == "" || rec.Type == schema.FieldUnknown {
				continue
			}

			attr := payload.NewObject().
				SetString("attribute_code", snakeCase(rec.Name)).
				SetString("label", rec.Translations.Label[view.Locale])

			if value, ok := rec.Translations.Values[view.Locale]; ok && value != nil {
				switch t := value.(type) {
				case []translate.Pair:
					options := payload.NewArray()
					for _, p := range t {
						options.Append(payload.NewObject().
							SetString("value", p.Value).
							SetString("translate", p.Translate))
					}

					attr.Set("options", options)
				case []string:
					attr.SetString("value", strings.Join(t, ","))
				default:
					attr.SetString("value", stringValue(t))
				}
			}

			attrs.Append(attr)
		}

		blocks.Append(payload.NewObject().
			SetString("storeViewCode", view.StoreCode).
			Set("attributes", attrs))
	}

	return blocks
}
