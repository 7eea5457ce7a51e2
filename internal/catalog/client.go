package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"plantcart/internal/logger"

	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("product not found")

// Lookup resolves a product identifier to its current catalog snapshot.
// AvailableQty and InStock are the source of truth at the moment of the call.
type Lookup interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
}

type httpLookup struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPLookup(baseURL string) Lookup {
	return &httpLookup{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *httpLookup) GetProduct(ctx context.Context, id string) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", id))

	url := fmt.Sprintf("%s/api/products/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed building catalog request", zap.Error(err))
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Catalog request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read catalog response", zap.Error(err))
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		log.Error("Catalog returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("catalog error: %s", string(bodyBytes))
	}

	var p Product
	if err := json.Unmarshal(bodyBytes, &p); err != nil {
		log.Error("Failed decoding catalog response", zap.Error(err))
		return nil, err
	}

	return &p, nil
}
