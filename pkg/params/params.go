package params

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Optional fetches a requested parameter from the request.
// It does the following checks:
// 1. Checks if the parameter is present in the request, if not, it returns its zero-value
// 2. If it is present, it checks if the parameter is of the expected type and returns it
func Optional[T any](r mcp.CallToolRequest, p string) (T, error) {
	var zero T

	if _, ok := r.GetArguments()[p]; !ok {
		return zero, nil
	}

	if _, ok := r.GetArguments()[p].(T); !ok {
		return zero, fmt.Errorf("parameter %s is not of type %T, is %T", p, zero, r.GetArguments()[p])
	}

	return r.GetArguments()[p].(T), nil
}
