package liststore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPStoreConfig configures the HTTP client for the remote store.
type HTTPStoreConfig struct {
	BaseURL string
	// OAuth2 client-credentials settings; when ClientID is empty the
	// client talks to the store unauthenticated (local dev).
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	Timeout      time.Duration
}

// HTTPStore talks to the remote list store over its REST surface:
// GET/POST {base}/{collection}, GET/PATCH/DELETE {base}/{collection}/{id}.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

var _ Store = (*HTTPStore)(nil)

// NewHTTPStore creates a Store client. With OAuth2 credentials configured,
// the underlying client refreshes bearer tokens transparently.
func NewHTTPStore(ctx context.Context, cfg HTTPStoreConfig) (*HTTPStore, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("list store base URL cannot be empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := &http.Client{Timeout: timeout}
	if cfg.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		client = cc.Client(ctx)
		client.Timeout = timeout
	}

	return &HTTPStore{
		baseURL: cfg.BaseURL,
		client:  client,
	}, nil
}

// List implements Store.
func (s *HTTPStore) List(ctx context.Context, collection Collection, q Query) ([]Record, error) {
	params := url.Values{}
	for field, value := range q.Filter {
		params.Set("filter["+field+"]", fmt.Sprint(value))
	}
	if q.OrderBy != "" {
		order := q.OrderBy
		if q.Desc {
			order += " desc"
		}
		params.Set("orderBy", order)
	}
	if q.Top > 0 {
		params.Set("top", strconv.Itoa(q.Top))
	}

	endpoint := s.collectionURL(collection)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var payload struct {
		Records []Record `json:"records"`
	}
	if err := s.do(ctx, http.MethodGet, endpoint, collection, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Records, nil
}

// Get implements Store. Unknown ids surface as apperrors.ErrNotFound.
func (s *HTTPStore) Get(ctx context.Context, collection Collection, id string) (Record, error) {
	var record Record
	if err := s.do(ctx, http.MethodGet, s.recordURL(collection, id), collection, nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Create implements Store. The store assigns the record id.
func (s *HTTPStore) Create(ctx context.Context, collection Collection, fields Record) (Record, error) {
	var record Record
	if err := s.do(ctx, http.MethodPost, s.collectionURL(collection), collection, fields, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update implements Store. Only the provided fields are patched.
func (s *HTTPStore) Update(ctx context.Context, collection Collection, id string, fields Record) (Record, error) {
	var record Record
	if err := s.do(ctx, http.MethodPatch, s.recordURL(collection, id), collection, fields, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete implements Store.
func (s *HTTPStore) Delete(ctx context.Context, collection Collection, id string) error {
	return s.do(ctx, http.MethodDelete, s.recordURL(collection, id), collection, nil, nil)
}

func (s *HTTPStore) collectionURL(collection Collection) string {
	return fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(string(collection)))
}

func (s *HTTPStore) recordURL(collection Collection, id string) string {
	return fmt.Sprintf("%s/%s", s.collectionURL(collection), url.PathEscape(id))
}

// do performs one request and decodes the response into out (when non-nil).
// Non-2xx statuses are classified into typed store errors; a 404 on a
// record URL becomes apperrors.ErrNotFound so callers can errors.Is it.
func (s *HTTPStore) do(ctx context.Context, method, endpoint string, collection Collection, body Record, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s record: %w", collection, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", collection, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("list store request failed for %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s record: %w", collection, apperrors.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.NewStoreError(resp.StatusCode, string(collection), string(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", collection, err)
	}
	return nil
}
