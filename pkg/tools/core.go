package tools

import (
	"context"

	"github.com/biostudies/biostudies-mcp-server/pkg/biostudies"
)

// Client executes BioStudies API operations on behalf of the tools. Every
// operation renders its outcome into the uniform text result, so failures
// reach the caller as text rather than as Go errors.
type Client interface {
	Study(ctx context.Context, accession string) biostudies.Result
	StudyInfo(ctx context.Context, accession string) biostudies.Result
	Search(ctx context.Context, params string) biostudies.Result
}
