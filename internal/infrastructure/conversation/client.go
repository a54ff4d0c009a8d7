// Package conversation talks to the Home Assistant conversation API.
package conversation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/ports"
)

// Client issues conversation requests with a bearer token.
type Client struct {
	baseURL    *url.URL
	language   string
	token      string
	httpClient *http.Client
}

// NewClient builds a Client from cfg. A nil httpClient gets one bounded by
// cfg.Timeout; zero leaves requests unbounded beyond the transport defaults.
func NewClient(cfg domain.Config, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse ha_url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("ha_url %q must be an absolute URL", cfg.URL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    base,
		language:   cfg.LanguageOrDefault(),
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

// Endpoint returns the conversation URL: the configured base with its path replaced.
func (c *Client) Endpoint() string {
	return c.withPath(domain.ConversationPath)
}

func (c *Client) withPath(path string) string {
	u := *c.baseURL
	u.Path = path
	u.RawPath = ""
	return u.String()
}

type processRequest struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Process sends text to the conversation API and classifies the reply. The
// body is parsed whatever the status; connection failures, and error statuses
// whose body does not parse, wrap domain.ErrTransport. Other bodies that do
// not match the expected shape wrap domain.ErrMalformedResponse.
func (c *Client) Process(ctx context.Context, text string) (domain.Response, error) {
	body, err := json.Marshal(processRequest{Language: c.language, Text: text})
	if err != nil {
		return domain.Response{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return domain.Response{}, err
	}
	httpReq.Header.Set("content-type", "application/json")
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.Response{}, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return domain.Response{}, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	parsed, err := parseProcessResponse(responseBody.Bytes())
	if err != nil && resp.StatusCode >= 400 {
		// Error statuses usually carry a plain-text body; report the status.
		return domain.Response{}, fmt.Errorf("%w: %s", domain.ErrTransport, resp.Status)
	}
	return parsed, err
}

// Ping checks that the API is reachable and accepts the token.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.withPath(domain.APIStatusPath), nil)
	if err != nil {
		return err
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: %s", domain.ErrTransport, resp.Status)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("authorization", "Bearer "+c.token)
}

type processResponse struct {
	Response *struct {
		ResponseType *domain.ResponseKind `json:"response_type"`
		Speech       *struct {
			Plain *struct {
				Speech *string `json:"speech"`
			} `json:"plain"`
		} `json:"speech"`
	} `json:"response"`
}

func parseProcessResponse(body []byte) (domain.Response, error) {
	var decoded processResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.Response{}, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	r := decoded.Response
	switch {
	case r == nil:
		return domain.Response{}, fmt.Errorf("%w: missing response", domain.ErrMalformedResponse)
	case r.ResponseType == nil:
		return domain.Response{}, fmt.Errorf("%w: missing response_type", domain.ErrMalformedResponse)
	case r.Speech == nil || r.Speech.Plain == nil || r.Speech.Plain.Speech == nil:
		return domain.Response{}, fmt.Errorf("%w: missing speech.plain.speech", domain.ErrMalformedResponse)
	}

	return domain.Response{
		Kind:   *r.ResponseType,
		Speech: *r.Speech.Plain.Speech,
	}, nil
}

var _ ports.ConversationClient = (*Client)(nil)
