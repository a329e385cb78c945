// Package cead looks up document identifiers in the central electronic
// archive. Legacy exports sometimes miss DocIdDocCEAD; the fixers resolve
// it from the document barcode.
package cead

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ukripo/sisindex/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Resolver resolves archive document ids by barcode. An empty id with a
// nil error means the barcode is unknown.
type Resolver interface {
	DocID(ctx context.Context, barcode string) (string, error)
}

type client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

func New(p Params) Resolver {
	return &client{
		baseURL: p.Config.CEADBaseURL,
		http:    &http.Client{Timeout: p.Config.CEADTimeout},
		log:     p.Log.Named("cead.client"),
	}
}

func (c *client) DocID(ctx context.Context, barcode string) (string, error) {
	if c.baseURL == "" || barcode == "" {
		return "", nil
	}

	endpoint := fmt.Sprintf("%s/documents?barcode=%s", c.baseURL, url.QueryEscape(barcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cead lookup: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		IDDoc string `json:"idDoc"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.IDDoc, nil
}

// Module wires the archive resolver.
var Module = fx.Module("cead",
	fx.Provide(New),
)
