package biostudies

import (
	"net/url"
	"strings"
)

// ParseSearchParams normalizes a raw "param1=value1&param2=value2" string
// into the query for the search endpoints and extracts the collection name.
// It does the following:
// 1. Splits pairs on the first '=' only, so values may themselves contain '='
// 2. Drops pairs without an '='; a later duplicate key overwrites an earlier one
// 3. Removes the collection key and returns its value separately
// 4. Drops every key with the facet. prefix
// 5. Defaults page, pageSize and sortOrder when the key is absent; a key
// present with an empty value is left alone
func ParseSearchParams(raw string) (url.Values, string) {
	query := url.Values{}
	collection := ""

	for _, pair := range strings.Split(raw, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if key == "collection" {
			collection = value
			continue
		}
		if strings.HasPrefix(key, "facet.") {
			continue
		}
		query.Set(key, value)
	}

	if _, ok := query["page"]; !ok {
		query.Set("page", "1")
	}
	if _, ok := query["pageSize"]; !ok {
		query.Set("pageSize", "20")
	}
	if _, ok := query["sortOrder"]; !ok {
		query.Set("sortOrder", "descending")
	}

	return query, collection
}
