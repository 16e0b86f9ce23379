package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
)

func buildProductClass() *schema.Class {
	return schema.NewClass("product", "Product",
		&schema.FieldDefinition{Name: "sku", Title: "SKU", Type: schema.FieldInput},
		&schema.FieldDefinition{Name: "color", Title: "Color", Type: schema.FieldSelect},
		&schema.FieldDefinition{Name: "madeIn", Title: "Made In", Type: schema.FieldCountry},
		&schema.FieldDefinition{Name: "general", Title: "General", Type: schema.FieldLocalizedFields,
			Children: []*schema.FieldDefinition{
				{Name: "name", Title: "Name", Type: schema.FieldInput},
				{Name: "description", Title: "Description", Type: schema.FieldWysiwyg},
			},
		},
		&schema.FieldDefinition{Name: "brand", Title: "Brand", Type: schema.FieldManyToOneRelation},
		&schema.FieldDefinition{Name: "details", Title: "Details", Type: schema.FieldObjectBricks,
			Bricks: []*schema.BrickDefinition{
				{Key: "TechnicalDetails", Fields: []*schema.FieldDefinition{
					{Name: "specs", Title: "Specs", Type: schema.FieldLocalizedFields,
						Children: []*schema.FieldDefinition{
							{Name: "careNotes", Title: "Care Notes", Type: schema.FieldInput},
						},
					},
				}},
			},
		},
	)
}

func buildBrandClass() *schema.Class {
	return schema.NewClass("brand", "Brand",
		&schema.FieldDefinition{Name: "general", Title: "General", Type: schema.FieldLocalizedFields,
			Children: []*schema.FieldDefinition{
				{Name: "localizedName", Title: "Localized Name", Type: schema.FieldInput},
			},
		},
	)
}

func localizedName(en, fr string) *schema.Localized {
	return schema.NewLocalized().
		Set("en", "name", en).
		Set("fr", "name", fr)
}

func TestCollect_RootLocalizedFields(t *testing.T) {
	obj := schema.NewObject(1, "shirt", buildProductClass()).
		SetField("general", localizedName("Shirt\x07", "Chemise"))

	m := Collect(obj, []string{"name"})

	require.Contains(t, m, "en")
	require.Contains(t, m, "fr")
	assert.Equal(t, "Shirt", m["en"]["name"])
	assert.Equal(t, "Chemise", m["fr"]["name"])
}

func TestCollect_IgnoresUnconfiguredPaths(t *testing.T) {
	obj := schema.NewObject(1, "shirt", buildProductClass()).
		SetField("general", schema.NewLocalized().
			Set("en", "name", "Shirt").
			Set("en", "description", "Soft cotton"))

	m := Collect(obj, []string{"name"})

	require.Contains(t, m, "en")
	assert.NotContains(t, m["en"], "description")
}

func TestCollect_RelationRecordsWholeItems(t *testing.T) {
	brand := schema.NewObject(99, "acme", buildBrandClass()).
		SetField("general", schema.NewLocalized().
			Set("en", "localizedName", "Acme").
			Set("fr", "localizedName", "Acmé"))
	obj := schema.NewObject(1, "shirt", buildProductClass()).SetField("brand", brand)

	m := Collect(obj, []string{"brand.localizedName"})

	items, ok := m["fr"]["brand.localizedName"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Acmé", items[0]["localizedName"])
}

func TestCollect_BrickPathsUseLowercasedSegments(t *testing.T) {
	item := schema.NewBrickItem("TechnicalDetails").
		SetField("specs", schema.NewLocalized().
			Set("en", "careNotes", "Machine wash"))
	obj := schema.NewObject(1, "shirt", buildProductClass()).
		SetField("details", schema.NewBrickContainer().Put(item))

	m := Collect(obj, []string{"technicalDetails.careNotes"})

	require.Contains(t, m, "en")
	assert.Equal(t, "Machine wash", m["en"]["technicalDetails.careNotes"])
}

func newAssembler(tr Translator) *Assembler {
	return &Assembler{
		Resolver:      &schema.Resolver{DefaultLocale: "en"},
		Translator:    tr,
		DefaultLocale: "en",
		Locales:       []string{"en", "fr"},
	}
}

func TestAssemble_SelectOptionsCarryDefaultLocaleKeys(t *testing.T) {
	catalog := Catalog{
		"en": {"attribute.Red": "Red"},
		"fr": {"attribute.Red": "Rouge"},
	}
	obj := schema.NewObject(1, "shirt", buildProductClass()).
		SetField("color", "Red").
		SetField("general", localizedName("Shirt", "Chemise"))

	data, err := newAssembler(catalog).Assemble(obj, []string{"name", "color"})
	require.NoError(t, err)

	rec, ok := data.Get("color")
	require.True(t, ok)

	fr, ok := rec.Translations.Values["fr"].([]Pair)
	require.True(t, ok)
	require.Len(t, fr, 1)
	assert.Equal(t, Pair{Translate: "Rouge", Value: "Red"}, fr[0])

	en, ok := rec.Translations.Values["en"].([]Pair)
	require.True(t, ok)
	assert.Equal(t, Pair{Translate: "Red", Value: "Red"}, en[0])
}

func TestAssemble_RelationOptionsAreIndexAligned(t *testing.T) {
	brand := schema.NewObject(99, "acme", buildBrandClass()).
		SetField("general", schema.NewLocalized().
			Set("en", "localizedName", "Acme").
			Set("fr", "localizedName", "Acmé"))
	obj := schema.NewObject(1, "shirt", buildProductClass()).SetField("brand", brand)

	data, err := newAssembler(nil).Assemble(obj, []string{"brand.localizedName"})
	require.NoError(t, err)

	rec, ok := data.Get("brand.localizedName")
	require.True(t, ok)
	assert.Equal(t, schema.FieldManyToOneRelation, rec.Type)

	fr, ok := rec.Translations.Values["fr"].([]Pair)
	require.True(t, ok)
	en, ok := rec.Translations.Values["en"].([]Pair)
	require.True(t, ok)

	require.Len(t, fr, len(en))
	assert.Equal(t, Pair{Translate: "Acmé", Value: "Acme"}, fr[0])
	assert.Equal(t, Pair{Translate: "Acme", Value: "Acme"}, en[0])
}

func TestAssemble_CountryOptionsUseDisplayNames(t *testing.T) {
	obj := schema.NewObject(1, "shirt", buildProductClass()).
		SetField("madeIn", "US").
		SetField("general", localizedName("Shirt", "Chemise"))

	data, err := newAssembler(nil).Assemble(obj, []string{"name", "madeIn"})
	require.NoError(t, err)

	rec, ok := data.Get("madeIn")
	require.True(t, ok)

	fr, ok := rec.Translations.Values["fr"].([]Pair)
	require.True(t, ok)
	require.Len(t, fr, 1)
	assert.Equal(t, "États-Unis", fr[0].Translate)
	assert.Equal(t, "United States", fr[0].Value)
}

func TestAssemble_LabelTranslationFallsBack(t *testing.T) {
	catalog := Catalog{"fr": {"general.name": "Nom"}}
	obj := schema.NewObject(1, "shirt", buildProductClass()).
		SetField("general", localizedName("Shirt", "Chemise"))

	data, err := newAssembler(catalog).Assemble(obj, []string{"name"})
	require.NoError(t, err)

	rec, ok := data.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Nom", rec.Translations.Label["fr"])
	assert.Equal(t, "Name", rec.Translations.Label["en"])
}

func TestAssemble_EveryRecordGetsValuesMap(t *testing.T) {
	obj := schema.NewObject(1, "shirt", buildProductClass()).SetField("sku", "SH-1")

	data, err := newAssembler(nil).Assemble(obj, []string{"sku"})
	require.NoError(t, err)

	rec, ok := data.Get("sku")
	require.True(t, ok)
	require.NotNil(t, rec.Translations.Values)
	assert.Empty(t, rec.Translations.Values)
}

func TestAssemble_LocalizedScalarTranslations(t *testing.T) {
	obj := schema.NewObject(1, "shirt", buildProductClass()).
		SetField("general", localizedName("Shirt", "Chemise"))

	data, err := newAssembler(nil).Assemble(obj, []string{"name"})
	require.NoError(t, err)

	rec, ok := data.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Shirt", rec.Translations.Values["en"])
	assert.Equal(t, "Chemise", rec.Translations.Values["fr"])
}

func TestAssemble_UnsetRelationYieldsEmptyRecord(t *testing.T) {
	// The class declares brand but this product has none assigned yet.
	obj := schema.NewObject(1, "shirt", buildProductClass()).SetField("sku", "SH-1")

	data, err := newAssembler(nil).Assemble(obj, []string{"brand.localizedName"})
	require.NoError(t, err)

	rec, ok := data.Get("brand.localizedName")
	require.True(t, ok)
	assert.Nil(t, rec.Value)
	assert.Equal(t, schema.FieldUnknown, rec.Type)
	assert.Empty(t, rec.Translations.Values)
}

func TestAssemble_UnknownPathFails(t *testing.T) {
	obj := schema.NewObject(1, "shirt", buildProductClass())

	_, err := newAssembler(nil).Assemble(obj, []string{"nosuchfield"})
	require.Error(t, err)

	var notFound *schema.FieldNotFoundError
	require.ErrorAs(t, err, &notFound)
}
