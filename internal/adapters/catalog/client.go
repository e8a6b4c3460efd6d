// internal/adapters/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/time/rate"

	"puntosabor/internal/adapters/observability"
)

const maxBody = 10 << 20

// Every upstream response uses the {success, data | message} envelope;
// a successful one must carry its data list.
const envelopeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["success"],
  "properties": {
    "success": {"type": "boolean"},
    "message": {"type": "string"},
    "data":    {"type": "array", "items": {"type": "object"}}
  },
  "if":   {"properties": {"success": {"const": true}}},
  "then": {"required": ["data"]}
}`

// Client talks to an upstream Catalog Service. It never retries: a fetch is
// all-or-nothing and the caller decides what to do with a failure.
type Client struct {
	base   *url.URL
	hc     *http.Client
	rl     *rate.Limiter
	schema *gojsonschema.Schema

	mu    sync.Mutex
	token string
}

func New(base, token string, rps int) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		if err == nil {
			err = fmt.Errorf("base url %q must be absolute", base)
		}
		return nil, &ConfigurationError{Err: err}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(envelopeSchema))
	if err != nil {
		return nil, fmt.Errorf("compile envelope schema: %w", err)
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:   u,
		hc:     &http.Client{Timeout: 10 * time.Second},
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
		schema: schema,
		token:  token,
	}, nil
}

// ---- Public API ----

func (c *Client) FetchRestaurants(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, "/restaurants")
}

func (c *Client) FetchDishes(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, "/dishes")
}

// Token returns the bearer token currently in use ("" once evicted).
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// ---- Internals ----

func (c *Client) list(ctx context.Context, path string) ([]map[string]any, error) {
	doc, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	raw, ok := doc["data"].([]any)
	if !ok {
		return nil, &HTTPError{Status: http.StatusOK, Message: "envelope without data list"}
	}
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, &HTTPError{Status: http.StatusOK, Message: fmt.Sprintf("data item is %T, not an object", it)}
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string) (map[string]any, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.base.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Error().Err(err).Str("url", u).Msg("catalog request configuration error")
		return nil, &ConfigurationError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "puntosabor/1.0")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("catalog", path, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Error().Err(err).Str("url", u).Msg("catalog network error")
		return nil, &NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("catalog", path, resp.StatusCode, time.Since(start))

	doc, decodeErr := c.decode(resp.Body)

	if resp.StatusCode != http.StatusOK {
		herr := &HTTPError{Status: resp.StatusCode, Message: messageOf(doc)}
		c.onHTTPError(u, herr)
		return nil, herr
	}
	if decodeErr != nil {
		return nil, &HTTPError{Status: resp.StatusCode, Message: decodeErr.Error()}
	}
	if ok, _ := doc["success"].(bool); !ok {
		return nil, &HTTPError{Status: resp.StatusCode, Message: messageOf(doc)}
	}
	return doc, nil
}

// decode reads the body and checks it against the envelope schema.
func (c *Client) decode(r io.Reader) (map[string]any, error) {
	var doc map[string]any
	if err := json.NewDecoder(io.LimitReader(r, maxBody)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	res, err := c.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate envelope: %w", err)
	}
	if !res.Valid() {
		errs := make([]string, len(res.Errors()))
		for i, desc := range res.Errors() {
			errs[i] = desc.String()
		}
		return doc, errors.New("envelope validation failed: " + strings.Join(errs, "; "))
	}
	return doc, nil
}

// onHTTPError logs per status; 401 also evicts the session token.
func (c *Client) onHTTPError(u string, e *HTTPError) {
	if e.Status == http.StatusUnauthorized {
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		log.Warn().Str("url", u).Str("message", e.Message).Msg("catalog rejected credentials; token evicted")
		return
	}

	msg := "catalog error response"
	switch e.Status {
	case http.StatusForbidden:
		msg = "catalog access denied"
	case http.StatusNotFound:
		msg = "catalog resource not found"
	case http.StatusInternalServerError:
		msg = "catalog internal server error"
	}
	log.Error().Str("url", u).Int("status", e.Status).Str("message", e.Message).Msg(msg)
}

func messageOf(doc map[string]any) string {
	if doc == nil {
		return ""
	}
	s, _ := doc["message"].(string)
	return s
}
