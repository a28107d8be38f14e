package biostudies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type resultKind int

const (
	resultSuccess resultKind = iota
	resultRemoteError
	resultTransportError
)

// Result is the outcome of a single API request. It always renders to text:
// pretty-printed JSON on success, a string with the "Error:" prefix
// otherwise. Failures never surface as Go errors at this boundary.
type Result struct {
	kind   resultKind
	status int
	body   string
	reason string
}

// Text renders the result into the uniform text payload returned by every
// tool.
func (r Result) Text() string {
	switch r.kind {
	case resultRemoteError:
		return fmt.Sprintf("Error: Request failed with status code %d. Response: %s", r.status, r.body)
	case resultTransportError:
		return fmt.Sprintf("Error: An exception occurred during request: %s", r.reason)
	default:
		return r.body
	}
}

// OK reports whether the request produced a 200 response with a JSON body.
func (r Result) OK() bool {
	return r.kind == resultSuccess
}

func successResult(pretty string) Result {
	return Result{kind: resultSuccess, body: pretty}
}

func remoteErrorResult(status int, body string) Result {
	return Result{kind: resultRemoteError, status: status, body: body}
}

func transportErrorResult(err error) Result {
	return Result{kind: resultTransportError, reason: err.Error()}
}

// Execute performs exactly one GET against endpoint with the given query
// parameters and converts the outcome into a Result. A 200 response body is
// re-serialized as 2-space-indented JSON. Any other status renders the
// literal status code and the raw body. Transport and JSON decoding
// failures render the underlying description. No retries and no
// per-request timeout are applied.
func (c *Client) Execute(ctx context.Context, endpoint string, query url.Values) Result {
	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return transportErrorResult(err)
	}
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return transportErrorResult(err)
	}

	resp, err := c.cl.Do(req)
	if err != nil {
		return transportErrorResult(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportErrorResult(err)
	}

	if resp.StatusCode != http.StatusOK {
		return remoteErrorResult(resp.StatusCode, string(body))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		return transportErrorResult(err)
	}
	return successResult(pretty.String())
}
