package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
)

const (
	defaultProps = "id,slug,title,metadata"
	postProps    = "id,slug,title,metadata,created_at"

	// depth=1 resolves one level of object references (review -> product,
	// post -> author), matching what the storefront renders.
	defaultDepth = "1"
)

// Client talks to the Cosmic bucket REST API. Read operations use the read
// key as a query parameter; write operations send the write key as a bearer
// token. A 404 from the bucket means "no matching objects" and is never an
// error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	bucket     string
	readKey    string
	writeKey   string
}

// NewClient builds a catalog gateway from config.
func NewClient(cfg config.CosmicConfig) (*Client, error) {
	if cfg.BucketSlug == "" {
		return nil, errors.New("cosmic bucket slug is required")
	}
	if cfg.ReadKey == "" {
		return nil, errors.New("cosmic read key is required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		bucket:     cfg.BucketSlug,
		readKey:    cfg.ReadKey,
		writeKey:   cfg.WriteKey,
	}, nil
}

// Ping reports whether the bucket endpoint is reachable. Any HTTP response,
// including 404 for an empty bucket, counts as healthy.
func (c *Client) Ping(ctx context.Context) error {
	endpoint, err := c.objectsURL(map[string]any{"type": "products"}, defaultProps, 1)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cosmic unreachable: %w", err)
	}
	defer drainAndClose(resp.Body)
	return nil
}

type objectsEnvelope struct {
	Objects json.RawMessage `json:"objects"`
	Total   int             `json:"total"`
}

type singleObjectEnvelope struct {
	Object json.RawMessage `json:"object"`
}

func (c *Client) objectsURL(query map[string]any, props string, limit int) (string, error) {
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return "", fmt.Errorf("encode query: %w", err)
	}

	values := url.Values{}
	values.Set("query", string(queryJSON))
	values.Set("read_key", c.readKey)
	values.Set("props", props)
	values.Set("depth", defaultDepth)
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	return fmt.Sprintf("%s/buckets/%s/objects?%s", c.baseURL, c.bucket, values.Encode()), nil
}

// fetchObjects runs a find query and returns the raw objects array, or nil
// when the bucket has no matches.
func (c *Client) fetchObjects(ctx context.Context, query map[string]any, props string, limit int) (json.RawMessage, error) {
	endpoint, err := c.objectsURL(query, props, limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cosmic request: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cosmic responded %d", resp.StatusCode)
	}

	var envelope objectsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return envelope.Objects, nil
}

// insertObject creates a bucket record using the write key.
func (c *Client) insertObject(ctx context.Context, payload any) (json.RawMessage, error) {
	if c.writeKey == "" {
		return nil, errors.New("cosmic write key is required for inserts")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/buckets/%s/objects", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.writeKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cosmic request: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cosmic responded %d", resp.StatusCode)
	}

	var envelope singleObjectEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return envelope.Object, nil
}

// updateObject patches an existing bucket record using the write key.
func (c *Client) updateObject(ctx context.Context, id string, payload any) error {
	if c.writeKey == "" {
		return errors.New("cosmic write key is required for updates")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/buckets/%s/objects/%s", c.baseURL, c.bucket, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.writeKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cosmic request: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("cosmic responded %d", resp.StatusCode)
	}
	return nil
}

func findMany[T any](ctx context.Context, c *Client, query map[string]any, props, label string) ([]T, error) {
	raw, err := c.fetchObjects(ctx, query, props, 0)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, label)
	}
	if raw == nil {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, label)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, c *Client, query map[string]any, props, label string) (*T, error) {
	raw, err := c.fetchObjects(ctx, query, props, 1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, label)
	}
	if raw == nil {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, label)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func drainAndClose(body io.ReadCloser) {
	io.Copy(io.Discard, body)
	body.Close()
}
