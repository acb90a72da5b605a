// Package ebay is a minimal client for the eBay Sell Fulfillment API,
// covering just enough of the order listing to drive packing slips
// and shipping labels.
package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/sirupsen/logrus"
)

const (
	productionBaseURL = "https://api.ebay.com/sell/fulfillment/v1"

	// unshippedFilter selects orders that still need to go out.
	unshippedFilter = "orderfulfillmentstatus:{NOT_STARTED|IN_PROGRESS}"

	// pageLimit is the page size for order listings. The API allows
	// up to 200 but smaller pages keep responses snappy.
	pageLimit = 50
)

// TokenFile is the fallback location for the user access token when
// the EBAY_USER_TOKEN environment variable is unset.
const TokenFile = "ebay_token.txt"

// LoadToken reads the user access token from the EBAY_USER_TOKEN
// environment variable, falling back to [TokenFile] in the current
// directory.
func LoadToken() (string, error) {
	if tok := strings.TrimSpace(os.Getenv("EBAY_USER_TOKEN")); tok != "" {
		return tok, nil
	}
	data, err := os.ReadFile(TokenFile)
	if err != nil {
		return "", fmt.Errorf("ebay: no token: set EBAY_USER_TOKEN or create %s: %w", TokenFile, err)
	}
	tok := strings.TrimSpace(string(data))
	if tok == "" {
		return "", fmt.Errorf("ebay: token file %s is empty", TokenFile)
	}
	return tok, nil
}

// Client talks to the Fulfillment API on behalf of one user token.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the production API.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: productionBaseURL,
		http:    http.DefaultClient,
	}
}

// WithBaseURL overrides the API endpoint. Intended for tests and the
// sandbox environment.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

// WithHTTPClient overrides the underlying HTTP client.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

type orderQuery struct {
	Filter string `url:"filter,omitempty"`
	Limit  int    `url:"limit,omitempty"`
	Offset int    `url:"offset"`
}

// UnshippedOrders lists all orders that are not yet fully shipped,
// following pagination until the listing is exhausted.
func (c *Client) UnshippedOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	offset := 0
	for {
		page, err := c.listOrders(ctx, orderQuery{
			Filter: unshippedFilter,
			Limit:  pageLimit,
			Offset: offset,
		})
		if err != nil {
			return nil, err
		}
		orders = append(orders, page.Orders...)

		offset += pageLimit
		if offset >= page.Total {
			break
		}
	}
	logrus.WithField("count", len(orders)).Debug("fetched unshipped orders")
	return orders, nil
}

func (c *Client) listOrders(ctx context.Context, q orderQuery) (*ordersResponse, error) {
	v, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("ebay: encode query: %w", err)
	}
	url := c.baseURL + "/order?" + v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ebay: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ebay: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ebay: order listing returned %d: %s", resp.StatusCode, body)
	}

	var out ordersResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ebay: decode response: %w", err)
	}
	return &out, nil
}
