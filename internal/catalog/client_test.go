package catalog

import (
	"bytes"
	"context"
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

func TestHTTPLookup_GetProduct(t *testing.T) {
	ctx := context.Background()
	c := NewHTTPLookup("http://catalog.local").(*httpLookup)

	t.Run("Success", func(t *testing.T) {
		respBody := `{
			"id": "monstera-01",
			"title": "Monstera Deliciosa",
			"price": 34.50,
			"available_qty": 5,
			"in_stock": true,
			"category_id": "tropical"
		}`

		c.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "http://catalog.local/api/products/monstera-01", req.URL.String())

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(respBody)),
			}
		})

		p, err := c.GetProduct(ctx, "monstera-01")

		require.NoError(t, err)
		assert.Equal(t, "Monstera Deliciosa", p.Title)
		assert.Equal(t, 34.50, p.Price)
		assert.Equal(t, 5, p.AvailableQty)
		assert.True(t, p.InStock)
	})

	t.Run("Not found", func(t *testing.T) {
		c.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusNotFound,
				Body:       io.NopCloser(bytes.NewBufferString(`{"error":"not found"}`)),
			}
		})

		_, err := c.GetProduct(ctx, "ghost")

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Server error", func(t *testing.T) {
		c.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       io.NopCloser(bytes.NewBufferString("boom")),
			}
		})

		_, err := c.GetProduct(ctx, "monstera-01")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "catalog error")
	})

	t.Run("Network failure", func(t *testing.T) {
		c.httpClient.Transport = MockRoundTripperWithError(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})

		_, err := c.GetProduct(ctx, "monstera-01")

		assert.Error(t, err)
	})
}
