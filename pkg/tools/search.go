package tools

import (
	"context"
	"fmt"

	"github.com/biostudies/biostudies-mcp-server/pkg/params"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SearchStudiesTool creates a tool to search the BioStudies database.
func SearchStudiesTool(client Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool("search_studies",
			mcp.WithDescription(`Search for studies in the BioStudies database.

Supported parameters include:
- query: Searches for the provided text in all submissions. Each word is treated as a separate term unless enclosed in double quotes. Boolean operators (AND, OR, NOT) and brackets can modify behavior, e.g. Leukemia AND (mouse OR human). Wildcards are supported: * matches any sequence of characters, ? matches any single character. Regular expressions are supported using /pattern/ syntax.
- accession: Searches for a specific BioStudies accession (wildcards allowed after the first character, e.g. S-EPMC*)
- title: Searches for presence of the parameter in the title of the study
- author: Searches for presence of the parameter in the name of the author(s)/submitter(s)
- release_date: Searches for a specific release date (format: yyyy-mm-dd). Wildcards and ranges are supported, e.g. 2009* or [2008-01-01 2008-05-31]
- content: Free-text search in any part of the study content, including file names and links
- links: Number of links in the study
- files: Number of files in the study
- orcid: Searches for the ORCID of any authors of the study
- type: Study type (supported: 'study', 'array', 'collection')
- link_type: Searches for a specific type of link to external databases
- link_value: Searches in the value of the link type field
- page: Result page number (default: 1)
- pageSize: Number of results per page (default: 20, max: 100)
- sortBy: Sorting key (works only for numeric fields)
- sortOrder: Sorting order ('ascending' or 'descending', default: 'descending')
- collection: Optional collection name to limit search to a specific collection

Collection-specific fields (e.g. organism, technology and study_type for ArrayExpress, or domain and model_format for BioModels) are documented in the biostudies://search-fields resource.`),
			mcp.WithString("params",
				mcp.Description(`All search parameters as a single string in the format "param1=value1&param2=value2"`),
				mcp.Required(),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			raw, err := params.Optional[string](request, "params")
			if err != nil {
				return nil, fmt.Errorf("failed to get params, err: %w", err)
			}

			return mcp.NewToolResultText(client.Search(ctx, raw).Text()), nil
		}
}
