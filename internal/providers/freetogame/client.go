package freetogame

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/providers"
)

// Config controls how the freetogame client reaches the upstream API.
type Config struct {
	BaseURL    string
	RelayURL   string
	Host       string // execution host; loopback hosts route via the relay
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the game collection from the FreeToGame listing API and
// maps it to domain records. When constructed for a loopback host it routes
// through the public relay instead of hitting the upstream directly.
type Client struct {
	baseURL    string
	relayURL   string
	useRelay   bool
	httpClient httpDoer
	timeout    time.Duration
}

// NewClient constructs a freetogame client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		relayURL:   normalizeBaseURL(cfg.RelayURL, defaultRelayURL),
		useRelay:   IsLoopbackHost(cfg.Host),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		timeout:    resolveTimeout(cfg.Timeout),
	}
}

// FetchGames retrieves the game collection mapped to domain records.
// Failures propagate unchanged: transport and status errors as-is for the
// retry layer to classify, decode failures wrapped as DecodeError so they
// are never retried.
func (c *Client) FetchGames(ctx context.Context, q providers.Query) ([]games.Game, error) {
	body, err := c.fetchBody(ctx, q)
	if err != nil {
		return nil, err
	}

	var payload []gameResponse
	if decodeErr := json.Unmarshal(body, &payload); decodeErr != nil {
		return nil, &providers.DecodeError{Source: sourceName, Err: decodeErr}
	}

	return mapGames(payload), nil
}

// FetchRawGames retrieves the listing payload byte-for-byte as the upstream
// sent it, verifying only that it is a JSON array. The proxy relies on this
// to serve every upstream field, not just the ones the catalog maps.
func (c *Client) FetchRawGames(ctx context.Context, q providers.Query) ([]byte, error) {
	body, err := c.fetchBody(ctx, q)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if decodeErr := json.Unmarshal(body, &items); decodeErr != nil {
		return nil, &providers.DecodeError{Source: sourceName, Err: decodeErr}
	}

	return body, nil
}

func (c *Client) fetchBody(ctx context.Context, q providers.Query) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.requestURL(q), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return io.ReadAll(resp.Body)
}

// requestURL builds either the direct upstream URL or, for loopback hosts,
// the relay URL wrapping the fully-encoded upstream target.
func (c *Client) requestURL(q providers.Query) string {
	target := c.baseURL + listPath
	if params := encodeQuery(q); params != "" {
		target += "?" + params
	}

	if !c.useRelay {
		return target
	}
	return c.relayURL + "/raw?url=" + url.QueryEscape(target)
}

// encodeQuery forwards platform and category only when they carry a real
// value ("all" and empty mean unfiltered) and sort-by whenever set.
func encodeQuery(q providers.Query) string {
	params := url.Values{}
	if q.Platform != "" && q.Platform != games.FilterAll {
		params.Set("platform", q.Platform)
	}
	if q.Category != "" && q.Category != games.FilterAll {
		params.Set("category", q.Category)
	}
	if q.SortBy != "" {
		params.Set("sort-by", string(q.SortBy))
	}
	return params.Encode()
}
