package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedCall struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// newStubGateway returns a client aimed at a server that records the last call
// and replies with the given body and status.
func newStubGateway(t *testing.T, status int, body string) (*Client, *capturedCall) {
	t.Helper()
	last := &capturedCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "public-token", r.Header.Get("X-Shopify-Storefront-Access-Token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(last))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "public-token", nil), last
}

func TestProductsAppliesDefaults(t *testing.T) {
	c, last := newStubGateway(t, http.StatusOK, `{"data": {"products": {"edges": []}}}`)

	_, err := c.Products(context.Background(), ProductListOptions{})
	require.NoError(t, err)

	assert.EqualValues(t, 20, last.Variables["first"])
	assert.Equal(t, "BEST_SELLING", last.Variables["sortKey"])
	assert.Equal(t, false, last.Variables["reverse"])
	assert.Equal(t, "", last.Variables["query"])
}

func TestProductsPreservesEdgeOrderAndFlattens(t *testing.T) {
	body := `{"data": {"products": {"edges": [
		{"node": {"id": "gid://1", "title": "Oak Board", "handle": "oak-board",
			"images": {"edges": [{"node": {"url": "https://cdn/img1.jpg"}}]},
			"variants": {"edges": [{"node": {"id": "gid://v1", "availableForSale": true}}]}}},
		{"node": {"id": "gid://2", "title": "Ash Board", "handle": "ash-board",
			"images": {"edges": []}, "variants": {"edges": []}}}
	]}}}`
	c, _ := newStubGateway(t, http.StatusOK, body)

	got, err := c.Products(context.Background(), ProductListOptions{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Oak Board", got[0].Title)
	assert.Equal(t, "Ash Board", got[1].Title)
	require.Len(t, got[0].Images, 1)
	assert.Equal(t, "https://cdn/img1.jpg", got[0].Images[0].URL)
	require.Len(t, got[0].Variants, 1)
	assert.True(t, got[0].Variants[0].AvailableForSale)
	assert.Empty(t, got[1].Variants)
}

func TestProductByHandleMissingIsNotAnError(t *testing.T) {
	c, _ := newStubGateway(t, http.StatusOK, `{"data": {"product": null}}`)

	p, err := c.ProductByHandle(context.Background(), "no-such-thing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGraphQLErrorsSurfaceFirstMessage(t *testing.T) {
	c, _ := newStubGateway(t, http.StatusOK,
		`{"errors": [{"message": "Field 'bogus' doesn't exist"}, {"message": "second"}]}`)

	_, err := c.Products(context.Background(), ProductListOptions{})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "Field 'bogus' doesn't exist", apiErr.Message)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	c, _ := newStubGateway(t, http.StatusTooManyRequests, `{"errors": [{"message": "Throttled"}]}`)

	_, err := c.Products(context.Background(), ProductListOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "Throttled", apiErr.Message)
}

func TestCollectionProductsMissingIsNotAnError(t *testing.T) {
	c, last := newStubGateway(t, http.StatusOK, `{"data": {"collection": null}}`)

	col, err := c.CollectionProducts(context.Background(), "ghost", CollectionProductsOptions{})
	require.NoError(t, err)
	assert.Nil(t, col)
	assert.Equal(t, "ghost", last.Variables["handle"])
	assert.EqualValues(t, 50, last.Variables["first"])
}
