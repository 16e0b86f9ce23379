package translate

import "github.com/qburst/pimcore-magento-product-connector/internal/schema"

// Pair is one translated dropdown option. Value is the default-locale phrase
// used as the stable machine key, Translate the phrase in the target locale.
type Pair struct {
	Translate string
	Value     string
}

// Translations carries the per-locale label and values of a field record.
// Values holds []Pair for dropdown fields after the value-translation pass,
// otherwise the raw per-locale value ([]string or scalar).
type Translations struct {
	Label  map[string]string
	Values map[string]any
}

// Record is the assembled form of one configured product field.
type Record struct {
	Value        any
	Type         schema.FieldType
	Label        string
	Name         string
	Translations Translations
}

func (r *Record) ensureValues() {
	if r.Translations.Values == nil {
		r.Translations.Values = map[string]any{}
	}
}

// ProductData maps configured field paths to assembled records, preserving
// the configuration order of the paths.
type ProductData struct {
	order   []string
	records map[string]*Record
}

func NewProductData() *ProductData {
	return &ProductData{records: map[string]*Record{}}
}

// Set stores a record under path, keeping first-insertion order.
func (p *ProductData) Set(path string, rec *Record) {
	if _, exists := p.records[path]; !exists {
		p.order = append(p.order, path)
	}

	p.records[path] = rec
}

// Get returns the record stored under path.
func (p *ProductData) Get(path string) (*Record, bool) {
	rec, ok := p.records[path]
	return rec, ok
}

// Paths returns the stored field paths in insertion order.
func (p *ProductData) Paths() []string {
	return p.order
}

// Len returns the number of stored records.
func (p *ProductData) Len() int {
	return len(p.order)
}
