package biostudies

import "net/http"

// userAgentTransport stamps a User-Agent header on every outbound request.
// The BioStudies API is unauthenticated but EBI asks clients to identify
// themselves.
type userAgentTransport struct {
	roundTripper http.RoundTripper
	userAgent    string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.roundTripper.RoundTrip(req)
}
