package schema

// FieldType identifies the declared type of a field definition.
type FieldType int

const (
	FieldUnknown FieldType = iota
	FieldInput
	FieldTextarea
	FieldWysiwyg
	FieldNumeric
	FieldDate
	FieldDatetime
	FieldCheckbox
	FieldSelect
	FieldMultiselect
	FieldCountry
	FieldLanguage
	FieldCountryMultiselect
	FieldLanguageMultiselect
	FieldManyToOneRelation
	FieldManyToManyRelation
	FieldLocalizedFields
	FieldObjectBricks
	FieldImage
	FieldHotspotImage
	FieldImageGallery
	FieldExternalImage
	FieldVideo
)

// String returns the wire name of the field type as the host platform
// spells it.
func (t FieldType) String() string {
	switch t {
	case FieldInput:
		return "input"
	case FieldTextarea:
		return "textarea"
	case FieldWysiwyg:
		return "wysiwyg"
	case FieldNumeric:
		return "numeric"
	case FieldDate:
		return "date"
	case FieldDatetime:
		return "datetime"
	case FieldCheckbox:
		return "checkbox"
	case FieldSelect:
		return "select"
	case FieldMultiselect:
		return "multiselect"
	case FieldCountry:
		return "country"
	case FieldLanguage:
		return "language"
	case FieldCountryMultiselect:
		return "countrymultiselect"
	case FieldLanguageMultiselect:
		return "languagemultiselect"
	case FieldManyToOneRelation:
		return "manyToOneRelation"
	case FieldManyToManyRelation:
		return "manyToManyObjectRelation"
	case FieldLocalizedFields:
		return "localizedfields"
	case FieldObjectBricks:
		return "objectbricks"
	case FieldImage:
		return "image"
	case FieldHotspotImage:
		return "hotspotimage"
	case FieldImageGallery:
		return "imageGallery"
	case FieldExternalImage:
		return "externalImage"
	case FieldVideo:
		return "video"
	default:
		return "unknown"
	}
}

var fieldTypeNames = map[string]FieldType{
	"input":                    FieldInput,
	"textarea":                 FieldTextarea,
	"wysiwyg":                  FieldWysiwyg,
	"numeric":                  FieldNumeric,
	"date":                     FieldDate,
	"datetime":                 FieldDatetime,
	"checkbox":                 FieldCheckbox,
	"select":                   FieldSelect,
	"multiselect":              FieldMultiselect,
	"country":                  FieldCountry,
	"language":                 FieldLanguage,
	"countrymultiselect":       FieldCountryMultiselect,
	"languagemultiselect":      FieldLanguageMultiselect,
	"manyToOneRelation":        FieldManyToOneRelation,
	"manyToManyObjectRelation": FieldManyToManyRelation,
	"localizedfields":          FieldLocalizedFields,
	"objectbricks":             FieldObjectBricks,
	"image":                    FieldImage,
	"hotspotimage":             FieldHotspotImage,
	"imageGallery":             FieldImageGallery,
	"externalImage":            FieldExternalImage,
	"video":                    FieldVideo,
}

// ParseFieldType maps a wire name back to its field type; unrecognized names
// yield FieldUnknown.
func ParseFieldType(name string) FieldType {
	return fieldTypeNames[name]
}

// IsRelation reports whether the type references other objects.
func (t FieldType) IsRelation() bool {
	return t == FieldManyToOneRelation || t == FieldManyToManyRelation
}

// IsDropdown reports whether the type offers a fixed set of options and
// therefore participates in option translation.
func (t FieldType) IsDropdown() bool {
	switch t {
	case FieldSelect, FieldMultiselect,
		FieldManyToOneRelation, FieldManyToManyRelation,
		FieldCountry, FieldLanguage,
		FieldCountryMultiselect, FieldLanguageMultiselect:
		return true
	default:
		return false
	}
}

// IsCountryOrLanguage reports whether option values are region or language
// codes that resolve to display names.
func (t FieldType) IsCountryOrLanguage() bool {
	switch t {
	case FieldCountry, FieldLanguage, FieldCountryMultiselect, FieldLanguageMultiselect:
		return true
	default:
		return false
	}
}

// IsImage reports whether the field carries image assets.
func (t FieldType) IsImage() bool {
	switch t {
	case FieldImage, FieldHotspotImage, FieldImageGallery, FieldExternalImage:
		return true
	default:
		return false
	}
}
