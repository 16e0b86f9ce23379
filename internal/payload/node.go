package payload

import "strings"

// Node is a renderable element of the payload tree.
type Node interface {
	render(b *strings.Builder)
}

// String is a quoted string value. Embedded double quotes are escaped by the
// writer; callers pass the raw text.
type String string

// Raw is emitted verbatim: enum identifiers, numbers, and preformatted
// literals such as the image type list.
type Raw string

type pair struct {
	key  string
	node Node
}

// Object is an ordered sequence of key: value pairs.
type Object struct {
	pairs []pair
}

// NewObject returns an empty object node.
func NewObject() *Object {
	return &Object{}
}

// Set appends a key with an arbitrary node value. Keys are kept in insertion
// order; duplicates are not collapsed.
func (o *Object) Set(key string, n Node) *Object {
	o.pairs = append(o.pairs, pair{key: key, node: n})
	return o
}

// SetString appends a key with a quoted string value.
func (o *Object) SetString(key, value string) *Object {
	return o.Set(key, String(value))
}

// SetRaw appends a key with a verbatim literal value.
func (o *Object) SetRaw(key, literal string) *Object {
	return o.Set(key, Raw(literal))
}

// Len returns the number of pairs set so far.
func (o *Object) Len() int {
	return len(o.pairs)
}

// Array is an ordered sequence of nodes.
type Array struct {
	items []Node
}

// NewArray returns an array node holding the given items.
func NewArray(items ...Node) *Array {
	return &Array{items: items}
}

// Append adds items to the end of the array.
func (a *Array) Append(items ...Node) *Array {
	a.items = append(a.items, items...)
	return a
}

// Len returns the number of items in the array.
func (a *Array) Len() int {
	return len(a.items)
}

// Strings builds an array of quoted string nodes.
func Strings(values []string) *Array {
	arr := &Array{items: make([]Node, 0, len(values))}
	for _, v := range values {
		arr.items = append(arr.items, String(v))
	}

	return arr
}
