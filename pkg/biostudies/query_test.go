package biostudies

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseSearchParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		raw            string
		wantQuery      url.Values
		wantCollection string
	}{
		{
			name: "empty input yields defaults only",
			raw:  "",
			wantQuery: url.Values{
				"page":      {"1"},
				"pageSize":  {"20"},
				"sortOrder": {"descending"},
			},
		},
		{
			name: "present pagination keys are never altered",
			raw:  "page=3&pageSize=50&sortOrder=ascending",
			wantQuery: url.Values{
				"page":      {"3"},
				"pageSize":  {"50"},
				"sortOrder": {"ascending"},
			},
		},
		{
			name: "empty value counts as present",
			raw:  "sortOrder=",
			wantQuery: url.Values{
				"page":      {"1"},
				"pageSize":  {"20"},
				"sortOrder": {""},
			},
		},
		{
			name: "pairs without an equals sign contribute nothing",
			raw:  "query=cancer&badpair&page=2",
			wantQuery: url.Values{
				"query":     {"cancer"},
				"page":      {"2"},
				"pageSize":  {"20"},
				"sortOrder": {"descending"},
			},
		},
		{
			name: "later duplicate key overwrites earlier",
			raw:  "query=first&query=second",
			wantQuery: url.Values{
				"query":     {"second"},
				"page":      {"1"},
				"pageSize":  {"20"},
				"sortOrder": {"descending"},
			},
		},
		{
			name: "value may itself contain equals signs",
			raw:  "query=a=b=c",
			wantQuery: url.Values{
				"query":     {"a=b=c"},
				"page":      {"1"},
				"pageSize":  {"20"},
				"sortOrder": {"descending"},
			},
		},
		{
			name: "collection is extracted and removed",
			raw:  "collection=ArrayExpress&query=mouse",
			wantQuery: url.Values{
				"query":     {"mouse"},
				"page":      {"1"},
				"pageSize":  {"20"},
				"sortOrder": {"descending"},
			},
			wantCollection: "ArrayExpress",
		},
		{
			name: "empty collection value still removes the key",
			raw:  "collection=&query=mouse",
			wantQuery: url.Values{
				"query":     {"mouse"},
				"page":      {"1"},
				"pageSize":  {"20"},
				"sortOrder": {"descending"},
			},
			wantCollection: "",
		},
		{
			name: "facet keys are dropped wherever they appear",
			raw:  "facet.organism=human&query=x&facet.released_year_facet=2023",
			wantQuery: url.Values{
				"query":     {"x"},
				"page":      {"1"},
				"pageSize":  {"20"},
				"sortOrder": {"descending"},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotQuery, gotCollection := ParseSearchParams(tc.raw)
			if !reflect.DeepEqual(gotQuery, tc.wantQuery) {
				t.Fatalf("unexpected query: got %v, want %v", gotQuery, tc.wantQuery)
			}
			if gotCollection != tc.wantCollection {
				t.Fatalf("unexpected collection: got %q, want %q", gotCollection, tc.wantCollection)
			}
		})
	}
}
