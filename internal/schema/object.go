package schema

import "strings"

// Kind distinguishes product objects from organizational folders. Folders
// never participate in product semantics and are filtered everywhere children
// are enumerated.
type Kind int

const (
	KindObject Kind = iota
	KindFolder
)

// Class is the runtime schema of one product class: an ordered collection of
// field definitions.
type Class struct {
	ID     string
	Name   string
	defs   []*FieldDefinition
	byName map[string]*FieldDefinition
}

// NewClass builds a class from definitions, preserving their order.
func NewClass(id, name string, defs ...*FieldDefinition) *Class {
	c := &Class{ID: id, Name: name, byName: make(map[string]*FieldDefinition, len(defs))}
	for _, d := range defs {
		c.defs = append(c.defs, d)
		c.byName[d.Name] = d
	}

	return c
}

// Definitions returns the field definitions in declaration order.
func (c *Class) Definitions() []*FieldDefinition {
	return c.defs
}

// Definition looks up a field definition by name. Fields declared inside
// localized containers are merged into the lookup, the way the host ORM
// exposes them as first-class attributes.
func (c *Class) Definition(name string) (*FieldDefinition, bool) {
	if d, ok := c.byName[name]; ok {
		return d, true
	}

	for _, d := range c.defs {
		if d.Type != FieldLocalizedFields {
			continue
		}

		for _, child := range d.Children {
			if child.Name == name {
				return child, true
			}
		}
	}

	return nil, false
}

// localizedContainerFor returns the localized container definition holding
// the named child field, if any.
func (c *Class) localizedContainerFor(name string) (*FieldDefinition, bool) {
	for _, d := range c.defs {
		if d.Type != FieldLocalizedFields {
			continue
		}

		for _, child := range d.Children {
			if child.Name == name {
				return d, true
			}
		}
	}

	return nil, false
}

// FieldDefinition describes one field of a class.
type FieldDefinition struct {
	Name  string
	Title string
	Type  FieldType

	// Children holds the contained field definitions of a localized
	// container.
	Children []*FieldDefinition

	// Bricks holds the registered item definitions of a brick container.
	Bricks []*BrickDefinition
}

// BrickDefinition describes one registered brick item: a named sub-object
// with its own field definitions.
type BrickDefinition struct {
	Key    string
	Fields []*FieldDefinition
}

// Definition looks up a brick field definition by name.
func (b *BrickDefinition) Definition(name string) (*FieldDefinition, bool) {
	for _, d := range b.Fields {
		if d.Name == name {
			return d, true
		}
	}

	return nil, false
}

// Object is one node of the product tree.
type Object struct {
	ID       int64
	Key      string
	Kind     Kind
	Class    *Class
	Parent   *Object
	children []*Object
	values   map[string]any
}

// NewObject builds an object of the given class.
func NewObject(id int64, key string, class *Class) *Object {
	return &Object{ID: id, Key: key, Class: class, values: make(map[string]any)}
}

// NewFolder builds a folder node.
func NewFolder(id int64, key string) *Object {
	return &Object{ID: id, Key: key, Kind: KindFolder, values: make(map[string]any)}
}

// IsFolder reports whether the node is an organizational folder.
func (o *Object) IsFolder() bool {
	return o.Kind == KindFolder
}

// AddChild appends children in order, wiring their parent back-reference.
func (o *Object) AddChild(children ...*Object) *Object {
	for _, c := range children {
		c.Parent = o
		o.children = append(o.children, c)
	}

	return o
}

// Children returns all children in order, folders included.
func (o *Object) Children() []*Object {
	return o.children
}

// HasChildren reports whether the object has any children.
func (o *Object) HasChildren() bool {
	return len(o.children) > 0
}

// SetField stores a raw field value.
func (o *Object) SetField(name string, value any) *Object {
	o.values[name] = value
	return o
}

// Field returns the raw stored value for a directly held field.
func (o *Object) Field(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok
}

// ClassName returns the object's class name, or empty for folders.
func (o *Object) ClassName() string {
	if o.Class == nil {
		return ""
	}

	return o.Class.Name
}

// SameClassAs reports whether both objects share a class.
func (o *Object) SameClassAs(other *Object) bool {
	return o.Class != nil && other.Class != nil && o.Class.ID == other.Class.ID
}

// MatchesClassName compares the class name case-insensitively, the way the
// sync gate matches the configured class.
func (o *Object) MatchesClassName(name string) bool {
	return strings.EqualFold(o.ClassName(), name)
}
