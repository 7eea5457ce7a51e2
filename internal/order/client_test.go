package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper allows us to mock the HTTP response
type MockRoundTripper func(req *http.Request) *http.Response

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

type MockRoundTripperWithError func(req *http.Request) (*http.Response, error)

func (f MockRoundTripperWithError) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestHTTPCreator_Create(t *testing.T) {
	ctx := context.Background()
	c := NewHTTPCreator("http://orders.local").(*httpCreator)

	req := CreateRequest{
		CustomerName:  "Rosa Verde",
		Email:         "rosa@example.com",
		Phone:         "555-0101",
		Street:        "12 Garden Lane",
		City:          "Springfield",
		State:         "IL",
		Zip:           "62704",
		Items:         []Item{{ProductID: "p1", Quantity: 2, Price: 10.00}},
		PaymentMethod: MethodCOD,
	}

	t.Run("Success", func(t *testing.T) {
		respBody := `{
			"id": "ord-42",
			"customer_name": "Rosa Verde",
			"items": [{"product_id": "p1", "quantity": 2, "price": 10.00}],
			"total": 20.00,
			"payment_method": "COD",
			"payment_status": "PENDING",
			"fulfillment_status": "PENDING"
		}`

		c.httpClient.Transport = MockRoundTripper(func(r *http.Request) *http.Response {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "http://orders.local/api/orders", r.URL.String())

			var got CreateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, req, got)

			return &http.Response{
				StatusCode: http.StatusCreated,
				Body:       io.NopCloser(bytes.NewBufferString(respBody)),
			}
		})

		ord, err := c.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "ord-42", ord.ID)
		assert.Equal(t, 20.00, ord.Total)
		assert.Equal(t, PaymentPending, ord.PaymentStatus)
	})

	t.Run("Backend error status", func(t *testing.T) {
		c.httpClient.Transport = MockRoundTripper(func(r *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       io.NopCloser(bytes.NewBufferString("boom")),
			}
		})

		_, err := c.Create(ctx, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "order backend error")
	})

	t.Run("Network failure", func(t *testing.T) {
		c.httpClient.Transport = MockRoundTripperWithError(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("timeout")
		})

		_, err := c.Create(ctx, req)

		assert.Error(t, err)
	})
}
