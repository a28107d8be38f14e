package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GetStudyTool creates a tool to fetch a single study by accession.
func GetStudyTool(client Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool("get_study",
			mcp.WithDescription("Get a study from the BioStudies database with the given accession."),
			mcp.WithString("accession",
				mcp.Description("The BioStudies accession ID, e.g. S-BSST1234"),
				mcp.Required(),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			accession, err := request.RequireString("accession")
			if err != nil {
				return mcp.NewToolResultError("missing required parameter: accession"), nil
			}

			return mcp.NewToolResultText(client.Study(ctx, accession).Text()), nil
		}
}

// GetStudyInfoTool creates a tool to fetch auxiliary metadata for a study.
func GetStudyInfoTool(client Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool("get_study_info",
			mcp.WithDescription(`Get additional information for a study with the given accession.
Returns information such as the FTP link and the relative path of the study.`),
			mcp.WithString("accession",
				mcp.Description("The BioStudies accession ID, e.g. S-BSST1234"),
				mcp.Required(),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			accession, err := request.RequireString("accession")
			if err != nil {
				return mcp.NewToolResultError("missing required parameter: accession"), nil
			}

			return mcp.NewToolResultText(client.StudyInfo(ctx, accession).Text()), nil
		}
}
