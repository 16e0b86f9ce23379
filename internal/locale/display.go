// Package locale resolves human-readable region and language names for the
// country/language field types, mirroring the host platform's intl lookups.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Option pairs a stored code with its display name. Order of options is
// significant and preserved end to end.
type Option struct {
	Code  string
	Label string
}

// DisplayRegion returns the name of the region identified by code (an ISO
// 3166-1 alpha-2 code such as "US") in the given locale. Unknown codes and
// locales fall back to the code itself.
func DisplayRegion(code, loc string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}

	namer := display.Regions(displayTag(loc))
	if namer == nil {
		return code
	}

	if name := namer.Name(region); name != "" {
		return name
	}

	return code
}

// DisplayLanguage returns the name of the language identified by code (a BCP
// 47 tag such as "fr") in the given locale, falling back to the code.
func DisplayLanguage(code, loc string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	namer := display.Languages(displayTag(loc))
	if namer == nil {
		return code
	}

	if name := namer.Name(tag); name != "" {
		return name
	}

	return code
}

func displayTag(loc string) language.Tag {
	tag, err := language.Parse(loc)
	if err != nil {
		return language.English
	}

	return tag
}

// Regions maps each code to an option carrying its display name in loc,
// preserving input order.
func Regions(codes []string, loc string) []Option {
	opts := make([]Option, 0, len(codes))
	for _, c := range codes {
		opts = append(opts, Option{Code: c, Label: DisplayRegion(c, loc)})
	}

	return opts
}

// Languages maps each code to an option carrying its display name in loc,
// preserving input order.
func Languages(codes []string, loc string) []Option {
	opts := make([]Option, 0, len(codes))
	for _, c := range codes {
		opts = append(opts, Option{Code: c, Label: DisplayLanguage(c, loc)})
	}

	return opts
}

// Codes extracts the code column of an option list, preserving order.
func Codes(opts []Option) []string {
	codes := make([]string, 0, len(opts))
	for _, o := range opts {
		codes = append(codes, o.Code)
	}

	return codes
}
