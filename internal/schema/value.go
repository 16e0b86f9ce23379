package schema

// RawValuer is implemented by wrapper values (unit quantities, price wrappers)
// that carry a canonical raw value; the resolver unwraps them.
type RawValuer interface {
	RawValue() any
}

// Localized holds per-locale records of a localized container: for every
// locale an item mapping field name to value.
type Localized struct {
	locales []string
	items   map[string]map[string]any
}

// NewLocalized returns an empty localized container value.
func NewLocalized() *Localized {
	return &Localized{items: make(map[string]map[string]any)}
}

// Set stores a field value for a locale, tracking locale insertion order.
func (l *Localized) Set(locale, field string, value any) *Localized {
	if _, ok := l.items[locale]; !ok {
		l.locales = append(l.locales, locale)
		l.items[locale] = make(map[string]any)
	}

	l.items[locale][field] = value

	return l
}

// Locales returns the locales carrying items, in insertion order.
func (l *Localized) Locales() []string {
	return l.locales
}

// Item returns the field→value record for a locale.
func (l *Localized) Item(locale string) map[string]any {
	return l.items[locale]
}

// Value returns a single field value for a locale.
func (l *Localized) Value(locale, field string) (any, bool) {
	item, ok := l.items[locale]
	if !ok {
		return nil, false
	}

	v, ok := item[field]

	return v, ok
}

// BrickContainer is the value of a brick container field: sub-objects keyed
// by their registered brick key.
type BrickContainer struct {
	order []string
	items map[string]*BrickItem
}

// NewBrickContainer returns an empty brick container value.
func NewBrickContainer() *BrickContainer {
	return &BrickContainer{items: make(map[string]*BrickItem)}
}

// Put stores a brick item, keeping key insertion order.
func (b *BrickContainer) Put(item *BrickItem) *BrickContainer {
	if _, ok := b.items[item.Key]; !ok {
		b.order = append(b.order, item.Key)
	}

	b.items[item.Key] = item

	return b
}

// Keys returns the brick keys in insertion order.
func (b *BrickContainer) Keys() []string {
	return b.order
}

// Item returns the brick item stored under key.
func (b *BrickContainer) Item(key string) (*BrickItem, bool) {
	item, ok := b.items[key]
	return item, ok
}

// BrickItem is one populated brick: field values of a registered sub-object.
type BrickItem struct {
	Key    string
	values map[string]any
}

// NewBrickItem returns an empty brick item for the given key.
func NewBrickItem(key string) *BrickItem {
	return &BrickItem{Key: key, values: make(map[string]any)}
}

// SetField stores a field value on the brick item.
func (b *BrickItem) SetField(name string, value any) *BrickItem {
	b.values[name] = value
	return b
}

// Field returns the raw stored value of a brick field.
func (b *BrickItem) Field(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Image is a hosted image asset addressed by its front-end path.
type Image struct {
	Path string
}

// HotspotImage wraps an image with hotspot metadata; only the image matters
// for the catalog payload.
type HotspotImage struct {
	Image *Image
}

// Gallery is the value of an image gallery field.
type Gallery struct {
	Items []*HotspotImage
}

// ExternalImage references an image by absolute URL on a foreign host.
type ExternalImage struct {
	URL string
}

// Video provider identifiers supported by the host platform.
const (
	VideoProviderYouTube = "youtube"
	VideoProviderVimeo   = "vimeo"
)

// Video is the value of a video field: a provider tag plus the provider's
// video identifier.
type Video struct {
	Provider string
	ID       string
}
