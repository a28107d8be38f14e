package biostudies

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultAPIURL is the public BioStudies REST API base.
	DefaultAPIURL = "https://www.ebi.ac.uk/biostudies/api/v1"

	// DefaultUserAgent identifies this client to the EBI services.
	DefaultUserAgent = "biostudies-mcp-server"
)

var (
	newHTTPClientFunc = func(userAgent string) *http.Client {
		t := &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			// MaxIdleConnsPerHost does not work as expected
			// https://github.com/golang/go/issues/13801
			// https://github.com/OJ/gobuster/issues/127
			// Improve connection re-use
			MaxIdleConns:          256,
			MaxIdleConnsPerHost:   128,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
		}
		return &http.Client{Transport: &userAgentTransport{
			roundTripper: t,
			userAgent:    userAgent,
		}}
	}
)

// Client talks to a BioStudies REST API and renders every outcome into the
// uniform text result expected by the tools layer.
type Client struct {
	apiURL    string
	userAgent string
	cl        *http.Client
}

// ClientOption configures the BioStudies client.
type ClientOption func(*Client)

// WithUserAgent sets the User-Agent header stamped on outbound requests.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the default HTTP client, including its
// User-Agent-stamping transport.
func WithHTTPClient(cl *http.Client) ClientOption {
	return func(c *Client) {
		c.cl = cl
	}
}

// NewClient creates a client for the BioStudies API rooted at apiURL.
func NewClient(apiURL string, opts ...ClientOption) *Client {
	c := &Client{
		apiURL:    strings.TrimSuffix(apiURL, "/"),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cl == nil {
		c.cl = newHTTPClientFunc(c.userAgent)
	}
	return c
}

// APIURL returns the API base URL the client was created with.
func (c *Client) APIURL() string {
	return c.apiURL
}

// Get performs a plain GET, bypassing result normalization. Used for
// fetching documents that are not study payloads, such as OpenAPI specs.
func (c *Client) Get(url string) (*http.Response, error) {
	return c.cl.Get(url)
}

// Study fetches a single study by accession. The accession is used verbatim
// as a path segment; the remote API decides whether it is valid.
func (c *Client) Study(ctx context.Context, accession string) Result {
	return c.Execute(ctx, c.studyURL(accession), nil)
}

// StudyInfo fetches auxiliary metadata for a study, such as its FTP link
// and relative path.
func (c *Client) StudyInfo(ctx context.Context, accession string) Result {
	return c.Execute(ctx, c.studyInfoURL(accession), nil)
}

// Search runs a study search from a raw parameter string in the
// "param1=value1&param2=value2" format. The collection parameter, when
// present, scopes the search to that collection's endpoint.
func (c *Client) Search(ctx context.Context, rawParams string) Result {
	query, collection := ParseSearchParams(rawParams)
	return c.Execute(ctx, c.searchURL(collection), query)
}

func (c *Client) studyURL(accession string) string {
	return fmt.Sprintf("%s/studies/%s", c.apiURL, accession)
}

func (c *Client) studyInfoURL(accession string) string {
	return fmt.Sprintf("%s/studies/%s/info", c.apiURL, accession)
}

func (c *Client) searchURL(collection string) string {
	if collection != "" {
		return fmt.Sprintf("%s/%s/search", c.apiURL, collection)
	}
	return fmt.Sprintf("%s/search", c.apiURL)
}
