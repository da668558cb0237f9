package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/storefront/internal/config"
)

var ErrIndexNotFound = errors.New("index not found")

// NewClient connects to Elasticsearch and verifies the cluster answers.
// transport may be nil to use the default one.
func NewClient(ctx context.Context, cfg config.ESConfig, transport http.RoundTripper) (*elasticsearch.Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w ES_URL", config.ErrMissingEnv)
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.User,
		Password:  cfg.Password,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch info: %s: %s", res.Status(), body)
	}

	return client, nil
}

// CountDocuments returns the number of documents in index.
func CountDocuments(ctx context.Context, es *elasticsearch.Client, index string) (int64, error) {
	res, err := es.Count(
		es.Count.WithContext(ctx),
		es.Count.WithIndex(index),
	)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return 0, fmt.Errorf("%w: %s", ErrIndexNotFound, index)
	}
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return 0, fmt.Errorf("count %s: %s: %s", index, res.Status(), body)
	}

	var r struct {
		Count int64 `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, fmt.Errorf("decode count: %w", err)
	}
	return r.Count, nil
}
