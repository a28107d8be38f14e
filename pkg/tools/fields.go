package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type SearchFieldsReference struct {
	Title            string                   `json:"title"`
	Description      string                   `json:"description"`
	QuerySyntax      QuerySyntaxGuide         `json:"query_syntax"`
	GeneralFields    []SearchField            `json:"general_fields"`
	PaginationFields []SearchField            `json:"pagination_fields"`
	CollectionFields map[string][]SearchField `json:"collection_fields"`
	Examples         []SearchExample          `json:"examples"`
}

type QuerySyntaxGuide struct {
	Terms             string `json:"terms"`
	BooleanOperators  string `json:"boolean_operators"`
	Wildcards         string `json:"wildcards"`
	RegularExpression string `json:"regular_expressions"`
	SpecialCharacters string `json:"special_characters"`
	Quoting           string `json:"quoting"`
}

type SearchField struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     string `json:"default,omitempty"`
}

type SearchExample struct {
	Description string `json:"description"`
	Params      string `json:"params"`
}

var searchFieldsReference = SearchFieldsReference{
	Title:       "BioStudies Search Fields Reference",
	Description: "Use this reference when building the params string for search_studies.",
	QuerySyntax: QuerySyntaxGuide{
		Terms:             "Each word in query is treated as a separate term unless enclosed in double quotes",
		BooleanOperators:  "AND, OR and NOT plus brackets modify behavior, e.g. Leukemia AND (mouse OR human)",
		Wildcards:         "* matches any sequence of characters, ? matches any single character",
		RegularExpression: "Regular expressions are supported using /pattern/ syntax",
		SpecialCharacters: `Special characters (+, -, &&, ||, !, (), {}, [], ^, ", ~, *, ?, :, \, /) need to be escaped or quoted`,
		Quoting:           `DOIs and paths should be in quotes, e.g. "10.1371/journal.pone.0127346" or "eeg/fmri"`,
	},
	GeneralFields: []SearchField{
		{Name: "query", Description: "Searches for the provided text in all submissions"},
		{Name: "accession", Description: "Searches for a specific BioStudies accession (wildcards allowed after the first character, e.g. S-EPMC*)"},
		{Name: "title", Description: "Searches for presence of the parameter in the title of the study"},
		{Name: "author", Description: "Searches for presence of the parameter in the name of the author(s)/submitter(s)"},
		{Name: "release_date", Description: "Searches for a specific release date (format: yyyy-mm-dd); wildcards and ranges supported, e.g. 2009* or [2008-01-01 2008-05-31]"},
		{Name: "content", Description: "Free-text search in any part of the study content, including file names and links"},
		{Name: "links", Description: "Number of links in the study"},
		{Name: "files", Description: "Number of files in the study"},
		{Name: "orcid", Description: "Searches for the ORCID of any authors of the study"},
		{Name: "type", Description: "Study type (supported: 'study', 'array', 'collection')"},
		{Name: "link_type", Description: "Searches for a specific type of link to external databases"},
		{Name: "link_value", Description: "Searches in the value of the link type field"},
		{Name: "collection", Description: "Optional collection name to limit search to a specific collection"},
	},
	PaginationFields: []SearchField{
		{Name: "page", Description: "Result page number", Default: "1"},
		{Name: "pageSize", Description: "Number of results per page (max: 100)", Default: "20"},
		{Name: "sortBy", Description: "Sorting key (works only for numeric fields)"},
		{Name: "sortOrder", Description: "Sorting order ('ascending' or 'descending')", Default: "descending"},
	},
	CollectionFields: map[string][]SearchField{
		"ArrayExpress": {
			{Name: "experimental_design", Description: "Experiment design"},
			{Name: "study_type", Description: "Study type"},
			{Name: "experimental_factor", Description: "Experimental factor"},
			{Name: "experimental_factor_value", Description: "The value of an experimental factor"},
			{Name: "source_characteristics", Description: "Sample attribute values / source characteristics"},
			{Name: "source_characteristics_value", Description: "Sample attribute category / source characteristics value"},
			{Name: "technology", Description: "Technology"},
			{Name: "organism", Description: "Species/organism of the experiment, study or sample"},
			{Name: "gxa", Description: `Presence ("true") / absence ("false") in Expression Atlas`},
			{Name: "raw", Description: "Experiment has raw data available"},
			{Name: "processed", Description: "Experiment has processed data available"},
			{Name: "assay_count", Description: "The number of assays"},
			{Name: "sample_count", Description: "The number of samples"},
			{Name: "experimental_factor_count", Description: "The number of experimental factors"},
			{Name: "miame_score", Description: "The MIAME compliance score"},
			{Name: "minseqe_score", Description: "The MINSEQE compliance score"},
		},
		"BioModels": {
			{Name: "domain", Description: "Domain of the model"},
			{Name: "curation_status", Description: "Curation status of the model"},
			{Name: "modelling_approach", Description: "Modeling approach used"},
			{Name: "model_format", Description: "Format of the model"},
			{Name: "model_tags", Description: "Tags associated with the model"},
			{Name: "organism", Description: "Organism in the model"},
		},
	},
	Examples: []SearchExample{
		{Description: "Full-text search with boolean operators", Params: "query=Leukemia AND (mouse OR human)"},
		{Description: "ArrayExpress experiments with raw data for a species", Params: "collection=ArrayExpress&organism=Homo sapiens&raw=true"},
		{Description: "Second page of a larger result set", Params: "query=cryo-EM&page=2&pageSize=50"},
		{Description: "Studies by author, oldest first", Params: "author=Smith&sortBy=release_date&sortOrder=ascending"},
		{Description: "Accession prefix lookup", Params: "accession=S-EPMC*"},
	},
}

var SearchFieldsResource = mcp.NewResource(
	"biostudies://search-fields",
	"BioStudies Search Fields Reference",
	mcp.WithResourceDescription(`Centralized reference for the search_studies params string.
Covers query syntax, general and pagination fields, and the collection-specific
fields of the ArrayExpress and BioModels collections.`),
	mcp.WithMIMEType("application/json"),
)

func SearchFieldsResourceHandler() server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		result, err := json.Marshal(searchFieldsReference)
		if err != nil {
			return nil, err
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(result),
			},
		}, nil
	}
}
