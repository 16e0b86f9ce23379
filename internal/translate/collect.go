package translate

import (
	"strings"
	"unicode"

	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
)

// LocalizedMap maps locale → configured field path → collected raw value.
// Root-level localized fields record the sanitized scalar; fields reached
// through a relation record the whole per-locale item so the assembler can
// extract the named sub-key later.
type LocalizedMap map[string]map[string]any

// Collect walks the object's schema tree and gathers localized values for
// every configured field path. Sibling fields are independent of one another,
// so traversal order never changes the result.
func Collect(obj *schema.Object, configuredPaths []string) LocalizedMap {
	configured := make(map[string]struct{}, len(configuredPaths))
	for _, p := range configuredPaths {
		configured[p] = struct{}{}
	}

	out := LocalizedMap{}
	collectObject(obj, "", configured, out)

	return out
}

func collectObject(obj *schema.Object, prefix string, configured map[string]struct{}, out LocalizedMap) {
	if obj == nil || obj.Class == nil {
		return
	}

	for _, def := range obj.Class.Definitions() {
		switch {
		case def.Type == schema.FieldLocalizedFields:
			collectContainer(obj, def, prefix, configured, out)
		case def.Type == schema.FieldObjectBricks:
			collectBricks(obj, def, prefix, configured, out)
		case def.Type.IsRelation():
			value, ok := obj.Field(def.Name)
			if !ok {
				continue
			}

			next := joinPath(prefix, def.Name)
			switch related := value.(type) {
			case *schema.Object:
				collectObject(related, next, configured, out)
			case []*schema.Object:
				for _, r := range related {
					collectObject(r, next, configured, out)
				}
			}
		}
	}
}

func collectContainer(obj *schema.Object, def *schema.FieldDefinition, prefix string, configured map[string]struct{}, out LocalizedMap) {
	value, ok := obj.Field(def.Name)
	if !ok {
		return
	}

	container, ok := value.(*schema.Localized)
	if !ok {
		return
	}

	for _, loc := range container.Locales() {
		item := container.Item(loc)

		for _, child := range def.Children {
			raw, present := item[child.Name]
			if !present {
				continue
			}

			path := joinPath(prefix, child.Name)
			if _, want := configured[path]; !want {
				continue
			}

			if prefix == "" {
				record(out, loc, path, schema.Sanitize(raw))
			} else {
				appendRecord(out, loc, path, sanitizeItem(item))
			}
		}
	}
}

func collectBricks(obj *schema.Object, def *schema.FieldDefinition, prefix string, configured map[string]struct{}, out LocalizedMap) {
	value, ok := obj.Field(def.Name)
	if !ok {
		return
	}

	container, ok := value.(*schema.BrickContainer)
	if !ok {
		return
	}

	for _, brickDef := range def.Bricks {
		item, ok := container.Item(brickDef.Key)
		if !ok {
			continue
		}

		for _, brickField := range brickDef.Fields {
			if brickField.Type != schema.FieldLocalizedFields {
				continue
			}

			fieldValue, ok := item.Field(brickField.Name)
			if !ok {
				continue
			}

			localized, ok := fieldValue.(*schema.Localized)
			if !ok {
				continue
			}

			for _, loc := range localized.Locales() {
				localeItem := localized.Item(loc)

				for _, child := range brickField.Children {
					raw, present := localeItem[child.Name]
					if !present {
						continue
					}

					path := joinPath(prefix, lcFirst(brickDef.Key), lcFirst(child.Name))
					if _, want := configured[path]; !want {
						continue
					}

					if prefix == "" {
						record(out, loc, path, schema.Sanitize(raw))
					} else {
						appendRecord(out, loc, path, sanitizeItem(localeItem))
					}
				}
			}
		}
	}
}

func record(out LocalizedMap, loc, path string, value any) {
	if out[loc] == nil {
		out[loc] = map[string]any{}
	}

	out[loc][path] = value
}

func appendRecord(out LocalizedMap, loc, path string, item map[string]any) {
	if out[loc] == nil {
		out[loc] = map[string]any{}
	}

	list, _ := out[loc][path].([]map[string]any)
	out[loc][path] = append(list, item)
}

func sanitizeItem(item map[string]any) map[string]any {
	clean := make(map[string]any, len(item))
	for k, v := range item {
		clean[k] = schema.Sanitize(v)
	}

	return clean
}

func joinPath(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			joined = append(joined, p)
		}
	}

	return strings.Join(joined, ".")
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}

	return path
}

func lcFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}
