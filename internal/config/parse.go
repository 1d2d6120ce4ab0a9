package config

import "strings"

// ParseExtensions splits a comma-separated extension list. Entries are
// trimmed and lowercased; entries that do not start with a dot are dropped.
func ParseExtensions(raw string) []string {
	var exts []string
	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		ext := strings.TrimSpace(part)
		if !strings.HasPrefix(ext, ".") {
			continue
		}
		ext = strings.ToLower(ext)
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	return exts
}

// ParseCountries splits a comma-separated country list. Entries are trimmed,
// blanks are dropped, and repeats keep their first position. An empty result
// falls back to DefaultCountries.
func ParseCountries(raw string) []string {
	var countries []string
	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		country := strings.TrimSpace(part)
		if country == "" {
			continue
		}
		if _, dup := seen[country]; dup {
			continue
		}
		seen[country] = struct{}{}
		countries = append(countries, country)
	}
	if len(countries) == 0 {
		return DefaultCountries()
	}
	return countries
}
