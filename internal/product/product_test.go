package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qburst/pimcore-magento-product-connector/internal/config"
	"github.com/qburst/pimcore-magento-product-connector/internal/payload"
	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
	"github.com/qburst/pimcore-magento-product-connector/internal/translate"
)

func testConfig() config.Config {
	return config.Config{
		config.KeyClass:                 "product",
		config.KeyHostURL:               "https://pim.example.com",
		config.KeyStoreURL:              "https://shop.example.com/",
		config.KeyCurrency:              "USD",
		config.KeyStoreViewTranslations: "en:default fr:french_store",
		config.KeyConfigurableTypeValue: "configurable",
		config.KeySimpleTypeValue:       "simple",
		config.KeyDefaultLanguage:       "en",
		config.KeyValidLanguages:        "en,fr",
		"productName":                   "name",
		"productDescription":            "description",
		"productShortDescription":       "shortDescription",
		"productSku":                    "sku",
		"productPrice":                  "price",
		"productQuantity":               "quantity",
		"productStatus":                 "status",
		"MagentoProductCategory":        "Default,Clothing",
		"parentProductType":             "productType",
		"magentoConfigurableAttributes": "color",
		"magentoCustomAttributes":       "madeIn",
	}
}

func newBuilder(cfg config.Config, catalog translate.Catalog) *Builder {
	resolver := &schema.Resolver{DefaultLocale: "en"}

	return &Builder{
		Config:   cfg,
		Resolver: resolver,
		Assembler: &translate.Assembler{
			Resolver:      resolver,
			Translator:    catalog,
			DefaultLocale: "en",
			Locales:       cfg.ValidLanguages(),
		},
	}
}

func productClass() *schema.Class {
	return schema.NewClass("product", "Product",
		&schema.FieldDefinition{Name: "sku", Title: "SKU", Type: schema.FieldInput},
		&schema.FieldDefinition{Name: "productType", Title: "Product Type", Type: schema.FieldSelect},
		&schema.FieldDefinition{Name: "price", Title: "Price", Type: schema.FieldNumeric},
		&schema.FieldDefinition{Name: "quantity", Title: "Quantity", Type: schema.FieldNumeric},
		&schema.FieldDefinition{Name: "status", Title: "Status", Type: schema.FieldCheckbox},
		&schema.FieldDefinition{Name: "color", Title: "Color", Type: schema.FieldSelect},
		&schema.FieldDefinition{Name: "madeIn", Title: "Made In", Type: schema.FieldCountry},
		&schema.FieldDefinition{Name: "general", Title: "General", Type: schema.FieldLocalizedFields,
			Children: []*schema.FieldDefinition{
				{Name: "name", Title: "Name", Type: schema.FieldInput},
				{Name: "description", Title: "Description", Type: schema.FieldWysiwyg},
				{Name: "shortDescription", Title: "Short Description", Type: schema.FieldTextarea},
			},
		},
		&schema.FieldDefinition{Name: "photo", Title: "Photo", Type: schema.FieldImage},
		&schema.FieldDefinition{Name: "clip", Title: "Clip", Type: schema.FieldVideo},
	)
}

func fullLocalized() *schema.Localized {
	return schema.NewLocalized().
		Set("en", "name", "Shirt").
		Set("en", "description", "<p>Soft cotton</p>").
		Set("en", "shortDescription", "Cotton shirt").
		Set("fr", "name", "Chemise").
		Set("fr", "description", "<p>Coton doux</p>").
		Set("fr", "shortDescription", "Chemise en coton")
}

func simpleProduct(id int64, key, sku string) *schema.Object {
	return schema.NewObject(id, key, productClass()).
		SetField("sku", sku).
		SetField("productType", "simple").
		SetField("price", "19.99").
		SetField("quantity", "5").
		SetField("status", true).
		SetField("color", "Red").
		SetField("madeIn", "US").
		SetField("general", fullLocalized())
}

func configurableProduct(id int64, key, sku string) *schema.Object {
	obj := simpleProduct(id, key, sku)
	obj.SetField("productType", "configurable")

	return obj
}

func TestGenerateSku_NoSpacesOrEdgeHyphens(t *testing.T) {
	parent := configurableProduct(1, "mens-wear", "Mens Wear")
	child := simpleProduct(2, "polo", " polo shirt ")
	parent.AddChild(child)

	b := newBuilder(testConfig(), nil)
	sku := b.GenerateSku(child, "polo shirt")

	assert.NotContains(t, sku, " ")
	assert.False(t, strings.HasPrefix(sku, "-"))
	assert.False(t, strings.HasSuffix(sku, "-"))
	assert.Equal(t, "Mens-Wear-polo-shirt", sku)
}

func TestBuild_EmptySkuFails(t *testing.T) {
	obj := simpleProduct(1, "shirt", "")

	_, err := newBuilder(testConfig(), nil).Build(obj)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Sku cannot be empty")
}

func TestBuild_SimpleStandalonePayloadShape(t *testing.T) {
	obj := simpleProduct(1, "shirt", "shirt").
		SetField("photo", &schema.Image{Path: "/products/shirt.png"})

	root, err := newBuilder(testConfig(), nil).Build(obj)
	require.NoError(t, err)
	rendered := payload.Render(root)

	assert.Contains(t, rendered, `attribute_set_name: \"Product\"`)
	assert.Contains(t, rendered, `website_url: \"https://shop.example.com\"`)
	assert.Contains(t, rendered, `currency: \"USD\"`)
	assert.Contains(t, rendered, `name: \"Shirt\"`)
	assert.Contains(t, rendered, `sku: \"shirt\"`)
	assert.Contains(t, rendered, `status: 1`)
	assert.Contains(t, rendered, `type_id: SIMPLE`)
	assert.Contains(t, rendered, `visibility: 4`)
	assert.Contains(t, rendered, `categories: [\"Default\",\"Clothing\"]`)
	assert.Contains(t, rendered, `price: 19.99`)
	assert.Contains(t, rendered, `stock: {quantity: 5}`)
	assert.Contains(t, rendered, `url: \"https://pim.example.com/products/shirt.png\",types: [THUMBNAIL, IMAGE, SMALL_IMAGE]`)
	assert.Contains(t, rendered, `configurable_attributes: [\"color\"]`)
}

func TestBuild_ConfigurableListsChildVariantsInOrder(t *testing.T) {
	parent := configurableProduct(1, "shirt", "shirt")
	parent.AddChild(
		simpleProduct(2, "red", "red"),
		simpleProduct(3, "blue", "blue"),
		schema.NewFolder(4, "archive"),
	)

	root, err := newBuilder(testConfig(), nil).Build(parent)
	require.NoError(t, err)
	rendered := payload.Render(root)

	assert.Contains(t, rendered, `product_variants: [{sku: \"shirt-red\"},{sku: \"shirt-blue\"}]`)
	assert.Contains(t, rendered, `type_id: CONFIGURABLE`)
	assert.NotContains(t, rendered, "archive")
}

func TestBuild_VariantNestsInsideParent(t *testing.T) {
	parent := configurableProduct(1, "shirt", "shirt")
	child := simpleProduct(2, "red", "red")
	// the variant's own name stays empty so it inherits the parent's
	child.SetField("general", schema.NewLocalized().
		Set("en", "description", "").
		Set("fr", "description", ""))
	parent.AddChild(child)

	root, err := newBuilder(testConfig(), nil).Build(child)
	require.NoError(t, err)
	rendered := payload.Render(root)

	assert.Contains(t, rendered, `sku: \"shirt\",type_id: CONFIGURABLE`)
	assert.Contains(t, rendered, `name: \"Shirt\"`)
	assert.Contains(t, rendered, `sku: \"shirt-red\"`)
	assert.Contains(t, rendered, `visibility: 1`)
	assert.Contains(t, rendered, `type_id: SIMPLE`)

	// the nested variant closes the payload, no trailing configurable block
	assert.True(t, strings.HasSuffix(rendered, "}]"))
}

func TestBuild_SelectRoundTripPerStorefront(t *testing.T) {
	catalog := translate.Catalog{
		"en": {"attribute.Red": "Red"},
		"fr": {"attribute.Red": "Rouge"},
	}
	obj := simpleProduct(1, "shirt", "shirt")

	root, err := newBuilder(testConfig(), catalog).Build(obj)
	require.NoError(t, err)
	rendered := payload.Render(root)

	assert.Contains(t, rendered, `storeViewCode: \"french_store\"`)
	assert.Contains(t, rendered, `options: [{value: \"Red\",translate: \"Rouge\"}]`)
	assert.Contains(t, rendered, `options: [{value: \"Red\",translate: \"Red\"}]`)
}

func TestBuild_SerializationIsIdempotent(t *testing.T) {
	obj := simpleProduct(1, "shirt", "shirt")

	root, err := newBuilder(testConfig(), nil).Build(obj)
	require.NoError(t, err)

	assert.Equal(t, payload.Render(root), payload.Render(root))
}

func TestBuild_EmptyConfigurableAttributeFails(t *testing.T) {
	obj := configurableProduct(1, "shirt", "shirt")
	obj.SetField("color", "")

	_, err := newBuilder(testConfig(), nil).Build(obj)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "configurable attribute")
}

func TestBuild_UnknownProductTypeFails(t *testing.T) {
	obj := simpleProduct(1, "shirt", "shirt")
	obj.SetField("productType", "bundle")

	_, err := newBuilder(testConfig(), nil).Build(obj)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestBuild_UnsupportedVideoProviderFails(t *testing.T) {
	obj := simpleProduct(1, "shirt", "shirt").
		SetField("clip", &schema.Video{Provider: "dailymotion", ID: "x123"})

	_, err := newBuilder(testConfig(), nil).Build(obj)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "dailymotion")
}

func TestBuild_YouTubeVideoFragment(t *testing.T) {
	obj := simpleProduct(1, "shirt", "shirt").
		SetField("clip", &schema.Video{Provider: schema.VideoProviderYouTube, ID: "abc123"})

	root, err := newBuilder(testConfig(), nil).Build(obj)
	require.NoError(t, err)

	assert.Contains(t, payload.Render(root), `video: {id: \"abc123\",url: \"https://www.youtube.com/watch?v=abc123\"}`)
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "short_description", snakeCase("shortDescription"))
	assert.Equal(t, "sku", snakeCase("sku"))
	assert.Equal(t, "made_in", snakeCase("madeIn"))
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Soft cotton", stripMarkup("<p>Soft <b>cotton</b></p>"))
	assert.Equal(t, "", stripMarkup("<p></p>"))
}
