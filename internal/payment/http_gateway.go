package payment

import (
	"bytes"
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

type httpGateway struct {
	baseURL       string
	apiKey        string
	callbackToken string
	httpClient    *http.Client
}

func NewHTTPGateway(baseURL, apiKey, callbackToken string) Gateway {
	if apiKey == "" {
		logger.L().Warn("payment API key is empty")
	}

	return &httpGateway{
		baseURL:       baseURL,
		apiKey:        apiKey,
		callbackToken: callbackToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *httpGateway) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", req.OrderID),
		zap.Float64("amount", req.Amount),
		zap.String("currency", req.Currency),
	)

	jsonBody, err := json.Marshal(req)
	if err != nil {
		log.Error("Failed to marshal intent request", zap.Error(err))
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/api/payment_intents", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	httpReq.SetBasicAuth(g.apiKey, "")
	httpReq.Header.Add("Content-Type", "application/json")

	log.Info("Requesting payment intent")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Error("Payment intent request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read payment response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Payment provider returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("payment provider error: %s", string(bodyBytes))
	}

	var intent Intent
	if err := json.Unmarshal(bodyBytes, &intent); err != nil {
		log.Error("Failed decoding payment response", zap.Error(err))
		return nil, err
	}
	if intent.ClientToken == "" {
		return nil, errors.New("payment provider returned empty client token")
	}

	log.Info("Payment intent created")
	return &intent, nil
}

// VerifyCallback checks the provider's callback token header. With no token
// configured the check is skipped (dev mode).
func (g *httpGateway) VerifyCallback(r *http.Request) error {
	if g.callbackToken == "" {
		return nil
	}

	if r.Header.Get("X-Callback-Token") != g.callbackToken {
		return errors.New("invalid callback token")
	}
	return nil
}
