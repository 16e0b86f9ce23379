package graph

import (
	"encoding/json"
	"sort"

	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
)

type objectDoc struct {
	ID       int64                      `json:"id"`
	Key      string                     `json:"key"`
	Type     string                     `json:"type"`
	Class    *classDoc                  `json:"class,omitempty"`
	Parent   *objectDoc                 `json:"parent,omitempty"`
	Children []*objectDoc               `json:"children,omitempty"`
	Values   map[string]json.RawMessage `json:"values,omitempty"`
}

type classDoc struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Fields []*fieldDoc `json:"fieldDefinitions"`
}

type fieldDoc struct {
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	Type     string      `json:"fieldtype"`
	Children []*fieldDoc `json:"children,omitempty"`
	Bricks   []*brickDoc `json:"bricks,omitempty"`
}

type brickDoc struct {
	Key    string      `json:"key"`
	Fields []*fieldDoc `json:"fields"`
}

// decode materializes the full graph around this object: its own subtree
// first, then the parent chain with this object spliced into the parent's
// children so sibling traversal sees one shared node.
func (d *objectDoc) decode() *schema.Object {
	obj := d.decodeSelf()
	for _, c := range d.Children {
		obj.AddChild(c.build(nil))
	}

	if d.Parent != nil {
		d.Parent.build(map[int64]*schema.Object{d.ID: obj})
	}

	return obj
}

func (d *objectDoc) build(replace map[int64]*schema.Object) *schema.Object {
	if r, ok := replace[d.ID]; ok {
		return r
	}

	obj := d.decodeSelf()
	for _, c := range d.Children {
		obj.AddChild(c.build(replace))
	}

	if d.Parent != nil {
		d.Parent.build(map[int64]*schema.Object{d.ID: obj})
	}

	return obj
}

func (d *objectDoc) decodeSelf() *schema.Object {
	if d.Type == "folder" || d.Class == nil {
		return schema.NewFolder(d.ID, d.Key)
	}

	class := d.Class.decode()
	obj := schema.NewObject(d.ID, d.Key, class)

	for _, def := range class.Definitions() {
		raw, ok := d.Values[def.Name]
		if !ok {
			continue
		}

		if v := decodeValue(raw, def); v != nil {
			obj.SetField(def.Name, v)
		}
	}

	return obj
}

func (c *classDoc) decode() *schema.Class {
	defs := make([]*schema.FieldDefinition, 0, len(c.Fields))
	for _, f := range c.Fields {
		defs = append(defs, f.decode())
	}

	return schema.NewClass(c.ID, c.Name, defs...)
}

func (f *fieldDoc) decode() *schema.FieldDefinition {
	def := &schema.FieldDefinition{
		Name:  f.Name,
		Title: f.Title,
		Type:  schema.ParseFieldType(f.Type),
	}

	for _, child := range f.Children {
		def.Children = append(def.Children, child.decode())
	}

	for _, brick := range f.Bricks {
		fields := make([]*schema.FieldDefinition, 0, len(brick.Fields))
		for _, bf := range brick.Fields {
			fields = append(fields, bf.decode())
		}

		def.Bricks = append(def.Bricks, &schema.BrickDefinition{Key: brick.Key, Fields: fields})
	}

	return def
}

// decodeValue interprets a raw field value according to the declared type.
// Values that fail to decode are dropped rather than aborting the whole
// object.
func decodeValue(raw json.RawMessage, def *schema.FieldDefinition) any {
	switch def.Type {
	case schema.FieldLocalizedFields:
		return decodeLocalized(raw)
	case schema.FieldObjectBricks:
		return decodeBricks(raw, def)
	case schema.FieldManyToOneRelation:
		var doc objectDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil
		}

		return doc.build(nil)
	case schema.FieldManyToManyRelation:
		var docs []*objectDoc
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil
		}

		related := make([]*schema.Object, 0, len(docs))
		for _, doc := range docs {
			related = append(related, doc.build(nil))
		}

		return related
	case schema.FieldImage:
		return decodeInto[schema.Image](raw)
	case schema.FieldHotspotImage:
		return decodeInto[schema.HotspotImage](raw)
	case schema.FieldImageGallery:
		return decodeInto[schema.Gallery](raw)
	case schema.FieldExternalImage:
		return decodeInto[schema.ExternalImage](raw)
	case schema.FieldVideo:
		return decodeInto[schema.Video](raw)
	default:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil || v == nil {
			return nil
		}

		return v
	}
}

func decodeLocalized(raw json.RawMessage) any {
	var items map[string]map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	locales := make([]string, 0, len(items))
	for loc := range items {
		locales = append(locales, loc)
	}
	sort.Strings(locales)

	localized := schema.NewLocalized()
	for _, loc := range locales {
		fields := make([]string, 0, len(items[loc]))
		for name := range items[loc] {
			fields = append(fields, name)
		}
		sort.Strings(fields)

		for _, name := range fields {
			localized.Set(loc, name, items[loc][name])
		}
	}

	return localized
}

func decodeBricks(raw json.RawMessage, def *schema.FieldDefinition) any {
	var items map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	container := schema.NewBrickContainer()

	for _, brickDef := range def.Bricks {
		values, ok := items[brickDef.Key]
		if !ok {
			continue
		}

		item := schema.NewBrickItem(brickDef.Key)
		for _, fieldDef := range brickDef.Fields {
			fieldRaw, ok := values[fieldDef.Name]
			if !ok {
				continue
			}

			if v := decodeValue(fieldRaw, fieldDef); v != nil {
				item.SetField(fieldDef.Name, v)
			}
		}

		container.Put(item)
	}

	return container
}

func decodeInto[T any](raw json.RawMessage) any {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	return &v
}
