// Package cms talks to the Strapi content API and normalizes its records
// into the storefront models. Every fetch reports failure through an error;
// callers decide how to fall back.
package cms

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
	"strings"

	"go.uber.org/zap"

	"storefront/internal/config"
)

const pageSize = 100

var (
	// ErrDisabled is returned by every fetch when no CMS base URL is configured.
	ErrDisabled = errors.New("cms: not configured")
	// ErrCollectionNotFound means none of the collection name candidates exist.
	ErrCollectionNotFound = errors.New("cms: collection not found")
)

// StatusError is a non-2xx answer from the CMS.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cms: %s returned HTTP %d", e.URL, e.Code)
}

func isNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client is safe for concurrent use; it holds no per-request state.
type Client struct {
	cfg    config.CMS
	http   *http.Client
	logger *zap.Logger
}

func New(cfg config.CMS, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *Client) Enabled() bool { return c != nil && c.cfg.Enabled() }

// BaseURL is used to absolutize relative media paths.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }

type envelope struct {
	Data any
	Meta struct {
		Pagination struct {
			PageCount *int
		}
	}
}

func (c *Client) get(ctx context.Context, collection string, query url.Values) (*envelope, error) {
	endpoint := fmt.Sprintf("%s/api/%s?%s", c.cfg.BaseURL, collection, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cms: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: request %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, URL: endpoint}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cms: read %s: %w", collection, err)
	}

	var raw struct {
		Data json.RawMessage `json:"data"`
		Meta struct {
			Pagination struct {
				PageCount json.Number `json:"pageCount"`
			} `json:"pagination"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("cms: decode %s: %w", collection, err)
	}

	env := &envelope{}
	if len(raw.Data) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw.Data))
		dec.UseNumber()
		if err := dec.Decode(&env.Data); err != nil {
			return nil, fmt.Errorf("cms: decode %s data: %w", collection, err)
		}
	}
	if pc := raw.Meta.Pagination.PageCount.String(); pc != "" {
		n, err := strconv.Atoi(pc)
		if err != nil {
			return nil, fmt.Errorf("cms: decode %s pageCount: %w", collection, err)
		}
		env.Meta.Pagination.PageCount = &n
	}
	return env, nil
}

// eachPage walks a collection until pageCount is reached or a short page comes back.
// A non-list data payload stops the walk without an error.
func (c *Client) eachPage(ctx context.Context, collection string, populate url.Values, fn func(page int, rows []any)) error {
	for page := 1; ; page++ {
		q := url.Values{}
		for k, v := range populate {
			q[k] = v
		}
		q.Set("pagination[page]", strconv.Itoa(page))
		q.Set("pagination[pageSize]", strconv.Itoa(pageSize))

		env, err := c.get(ctx, collection, q)
		if err != nil {
			return err
		}
		rows, ok := env.Data.([]any)
		if !ok {
			return nil
		}
		fn(page, rows)

		if pc := env.Meta.Pagination.PageCount; pc != nil && page >= *pc {
			return nil
		}
		if len(rows) < pageSize {
			return nil
		}
	}
}

// candidates returns the configured collection name plus its singular/plural twin.
func candidates(collection string) []string {
	var alt string
	switch {
	case strings.HasSuffix(collection, "ies"):
		alt = strings.TrimSuffix(collection, "ies") + "y"
	case strings.HasSuffix(collection, "y"):
		alt = strings.TrimSuffix(collection, "y") + "ies"
	case strings.HasSuffix(collection, "s"):
		alt = strings.TrimSuffix(collection, "s")
	default:
		alt = collection + "s"
	}
	if alt == collection || alt == "" {
		return []string{collection}
	}
	return []string{collection, alt}
}
