// Package search wraps the search-index client used to publish
// application records.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/ukripo/sisindex/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Indexer publishes and amends documents in the search index.
type Indexer interface {
	// Index stores the document under the given id, replacing any
	// previous version.
	Index(ctx context.Context, id int64, document []byte) error
	// FindMadridSibling returns the index id and source of the
	// "distributed to Ukraine" record with the given registration number,
	// or 0 when absent.
	FindMadridSibling(ctx context.Context, registrationNumber string) (int64, []byte, error)
}

type esIndexer struct {
	client  *elasticsearch.Client
	index   string
	timeout time.Duration
	log     *zap.Logger
}

// withTimeout bounds one search-index call. A zero timeout leaves the
// caller's context untouched.
func (i *esIndexer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if i.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, i.timeout)
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

func New(p Params) (Indexer, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: p.Config.ElasticHosts,
		Username:  p.Config.ElasticUsername,
		Password:  p.Config.ElasticPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("create search client: %w", err)
	}

	return &esIndexer{
		client:  client,
		index:   p.Config.ElasticIndex,
		timeout: p.Config.ElasticTimeout,
		log:     p.Log.Named("search.indexer"),
	}, nil
}

func (i *esIndexer) Index(ctx context.Context, id int64, document []byte) error {
	ctx, cancel := i.withTimeout(ctx)
	defer cancel()

	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: strconv.FormatInt(id, 10),
		Body:       bytes.NewReader(document),
	}

	resp, err := req.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("index document %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("index document %d: %s: %s", id, resp.Status(), body)
	}
	return nil
}

func (i *esIndexer) FindMadridSibling(ctx context.Context, registrationNumber string) (int64, []byte, error) {
	ctx, cancel := i.withTimeout(ctx)
	defer cancel()

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{"term": map[string]interface{}{"Document.idObjType": 14}},
					map[string]interface{}{"term": map[string]interface{}{"search_data.protective_doc_number.keyword": registrationNumber}},
				},
			},
		},
		"size": 1,
	}

	payload, err := json.Marshal(query)
	if err != nil {
		return 0, nil, err
	}

	resp, err := i.client.Search(
		i.client.Search.WithContext(ctx),
		i.client.Search.WithIndex(i.index),
		i.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search madrid sibling %s: %w", registrationNumber, err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		body, _ := io.ReadAll(resp.Body)
		return 0, nil, fmt.Errorf("search madrid sibling %s: %s: %s", registrationNumber, resp.Status(), body)
	}

	var result struct {
		Hits struct {
			Hits []struct {
				ID     string          `json:"_id"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, nil, err
	}
	if len(result.Hits.Hits) == 0 {
		return 0, nil, nil
	}

	id, err := strconv.ParseInt(result.Hits.Hits[0].ID, 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("parse sibling id %q: %w", result.Hits.Hits[0].ID, err)
	}
	return id, result.Hits.Hits[0].Source, nil
}

// Module wires the search indexer.
var Module = fx.Module("search",
	fx.Provide(New),
)
