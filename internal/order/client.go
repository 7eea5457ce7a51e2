package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"plantcart/internal/logger"

	"go.uber.org/zap"
)

// CreateRequest is the payload for the order-creation endpoint.
type CreateRequest struct {
	CustomerName  string        `json:"customer_name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Street        string        `json:"street"`
	City          string        `json:"city"`
	State         string        `json:"state"`
	Zip           string        `json:"zip"`
	Items         []Item        `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Creator is the order-creation collaborator. The returned order carries
// the backend-assigned identifier and totals.
type Creator interface {
	Create(ctx context.Context, req CreateRequest) (*Order, error)
}

type httpCreator struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPCreator(baseURL string) Creator {
	return &httpCreator{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *httpCreator) Create(ctx context.Context, req CreateRequest) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("customer", req.CustomerName),
		zap.Int("item_count", len(req.Items)),
		zap.String("payment_method", string(req.PaymentMethod)),
	)

	jsonBody, err := json.Marshal(req)
	if err != nil {
		log.Error("Failed to marshal order request", zap.Error(err))
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}
	httpReq.Header.Add("Content-Type", "application/json")

	log.Info("Submitting order")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error("Order request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read order response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Order backend returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("order backend error: %s", string(bodyBytes))
	}

	var ord Order
	if err := json.Unmarshal(bodyBytes, &ord); err != nil {
		log.Error("Failed decoding order response", zap.Error(err))
		return nil, err
	}

	log.Info("Order created",
		zap.String("order_id", ord.ID),
		zap.Float64("total", ord.Total),
	)
	return &ord, nil
}
