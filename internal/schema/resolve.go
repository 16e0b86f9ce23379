package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/qburst/pimcore-magento-product-connector/internal/locale"
)

// FieldNotFoundError reports a configured attribute that neither the class
// schema nor its bricks expose.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field `%s` does not exist in this product class; adjust the value provided in the configuration", e.Field)
}

// SubfieldNotFoundError reports a subfield missing on a relation target or
// brick item.
type SubfieldNotFoundError struct {
	Field     string
	Attribute string
	Container string
}

func (e *SubfieldNotFoundError) Error() string {
	return fmt.Sprintf("field `%s` does not exist in the %s field `%s`; adjust the value provided in the configuration", e.Field, e.Container, e.Attribute)
}

// ResolvedField is the record produced for one resolved field path.
type ResolvedField struct {
	Value any
	// Type is the declared schema type, or FieldUnknown for implicit system
	// fields that have no definition.
	Type  FieldType
	Label string
	Name  string
}

// Resolver resolves dotted field paths against an object, carrying the
// default locale used for localized fallbacks and display names. Build one
// per pipeline run from the configuration snapshot.
type Resolver struct {
	DefaultLocale string
}

// datetimeLayout is the catalog's expected date rendering (MM/DD/YYYY HH:MM:SS).
const datetimeLayout = "01/02/2006 15:04:05"

// Resolve resolves a field path and returns the full record including schema
// display metadata.
func (r *Resolver) Resolve(obj *Object, path string) (ResolvedField, error) {
	return r.resolve(obj, path)
}

// ResolveValue resolves a field path and returns only the normalized value.
func (r *Resolver) ResolveValue(obj *Object, path string) (any, error) {
	rec, err := r.resolve(obj, path)
	if err != nil {
		return nil, err
	}

	return rec.Value, nil
}

func (r *Resolver) resolve(obj *Object, path string) (ResolvedField, error) {
	attribute, subfield, dotted := strings.Cut(path, ".")

	if dotted && subfield != "" {
		return r.resolveSubfield(obj, attribute, subfield)
	}

	return r.resolveDirect(obj, attribute)
}

// resolveSubfield handles "attribute.subfield" paths through relation fields
// and brick containers, first match in declaration order wins. An attribute
// the schema exposes but with no resolvable value (unset relation, absent
// brick item) yields a null record, not an error.
func (r *Resolver) resolveSubfield(obj *Object, attribute, subfield string) (ResolvedField, error) {
	if obj.Class == nil {
		return ResolvedField{}, &FieldNotFoundError{Field: attribute}
	}

	exposed := false

	for _, def := range obj.Class.Definitions() {
		switch {
		case def.Type.IsRelation() && strings.EqualFold(def.Name, attribute):
			exposed = true
			raw, _ := obj.Field(def.Name)

			related, ok := raw.(*Object)
			if !ok || related == nil {
				continue
			}

			value, found := r.objectValue(related, subfield)
			if !found {
				return ResolvedField{}, &SubfieldNotFoundError{Field: subfield, Attribute: attribute, Container: "relation"}
			}

			// The record carries the relation's own type tag, so dropdown
			// handling downstream sees a relation, not the target's type.
			return r.finish(value, def.Type, def, attribute, subfield), nil

		case def.Type == FieldObjectBricks:
			raw, _ := obj.Field(def.Name)
			container, hasContainer := raw.(*BrickContainer)

			for _, brick := range def.Bricks {
				if !strings.EqualFold(brick.Key, attribute) {
					continue
				}

				exposed = true

				if !hasContainer || container == nil {
					continue
				}

				item, ok := container.Item(brick.Key)
				if !ok {
					continue
				}

				value, subdef, found := r.brickValue(item, brick, subfield)
				if !found {
					return ResolvedField{}, &SubfieldNotFoundError{Field: subfield, Attribute: attribute, Container: "object brick"}
				}

				fieldType := FieldUnknown
				if subdef != nil {
					fieldType = subdef.Type
				}

				return r.finish(value, fieldType, subdef, attribute, subfield), nil
			}
		}
	}

	if exposed {
		return ResolvedField{}, nil
	}

	return ResolvedField{}, &FieldNotFoundError{Field: attribute}
}

// resolveDirect handles bare attribute names: schema fields, fields merged in
// from localized containers, and the implicit system fields.
func (r *Resolver) resolveDirect(obj *Object, attribute string) (ResolvedField, error) {
	var def *FieldDefinition
	if obj.Class != nil {
		if d, ok := obj.Class.Definition(attribute); ok {
			def = d
		}
	}

	value, found := r.objectValue(obj, attribute)
	if !found && def == nil {
		return ResolvedField{}, &FieldNotFoundError{Field: attribute}
	}

	fieldType := FieldUnknown
	if def != nil {
		fieldType = def.Type
	}

	return r.finish(value, fieldType, def, attribute, ""), nil
}

// objectValue reads a field value off an object: the direct value, a
// localized-container fallback in the default locale, or an implicit system
// field (id, key).
func (r *Resolver) objectValue(obj *Object, name string) (any, bool) {
	if v, ok := obj.Field(name); ok {
		return v, true
	}

	if obj.Class != nil {
		if container, ok := obj.Class.localizedContainerFor(name); ok {
			if raw, ok := obj.Field(container.Name); ok {
				if lv, ok := raw.(*Localized); ok && lv != nil {
					if v, ok := lv.Value(r.DefaultLocale, name); ok {
						return v, true
					}
				}
			}

			// The field exists in the schema even when this object holds no
			// value for it.
			return nil, true
		}

		if _, ok := obj.Class.Definition(name); ok {
			return nil, true
		}
	}

	switch name {
	case "id":
		return obj.ID, true
	case "key":
		return obj.Key, true
	}

	return nil, false
}

// brickValue reads a field value off a brick item, falling through localized
// containers declared on the brick.
func (r *Resolver) brickValue(item *BrickItem, brick *BrickDefinition, name string) (any, *FieldDefinition, bool) {
	def, hasDef := brick.Definition(name)

	if v, ok := item.Field(name); ok {
		return v, def, true
	}

	for _, d := range brick.Fields {
		if d.Type != FieldLocalizedFields {
			continue
		}

		for _, child := range d.Children {
			if child.Name != name {
				continue
			}

			if raw, ok := item.Field(d.Name); ok {
				if lv, ok := raw.(*Localized); ok && lv != nil {
					v, _ := lv.Value(r.DefaultLocale, name)
					return v, child, true
				}
			}

			return nil, child, true
		}
	}

	if hasDef {
		return nil, def, true
	}

	return nil, nil, false
}

// finish applies per-type normalization and attaches display metadata.
func (r *Resolver) finish(value any, fieldType FieldType, def *FieldDefinition, attribute, subfield string) ResolvedField {
	value = r.normalize(value, fieldType)

	rec := ResolvedField{Value: value, Type: fieldType}
	if def != nil {
		rec.Label = def.Title
		rec.Name = def.Name

		return rec
	}

	name := attribute
	if subfield != "" {
		name = subfield
	}

	rec.Label = capitalize(name)
	rec.Name = name

	return rec
}

// normalize unwraps and formats a raw value according to its declared type.
func (r *Resolver) normalize(value any, fieldType FieldType) any {
	if value == nil {
		return nil
	}

	if t, ok := value.(time.Time); ok {
		value = t.Format(datetimeLayout)
	} else if rv, ok := value.(RawValuer); ok {
		value = rv.RawValue()
	}

	switch fieldType {
	case FieldCountry:
		if code, ok := value.(string); ok {
			value = locale.Regions([]string{code}, r.DefaultLocale)
		}
	case FieldCountryMultiselect:
		if codes, ok := value.([]string); ok {
			value = locale.Regions(codes, r.DefaultLocale)
		}
	case FieldLanguage:
		if code, ok := value.(string); ok {
			value = locale.Languages([]string{code}, r.DefaultLocale)
		}
	case FieldLanguageMultiselect:
		if codes, ok := value.([]string); ok {
			value = locale.Languages(codes, r.DefaultLocale)
		}
	}

	return Sanitize(value)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
