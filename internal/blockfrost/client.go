package blockfrost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kostaspanagias/cardano-lens/pkg/common/logger"
	"github.com/kostaspanagias/cardano-lens/pkg/ratelimiter"
)

// ProjectIDHeader is the Blockfrost authentication header.
const ProjectIDHeader = "project_id"

// HTTPError is a non-2xx response from the API. Callers use the status code to
// tell "resource does not exist" apart from other upstream failures.
type HTTPError struct {
	Status int
	URL    string
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d from %s: %s", e.Status, e.URL, e.Body)
}

// IsNotFound reports whether err is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == http.StatusNotFound
}

// Client is a Blockfrost REST client (https://blockfrost.io/) or any
// compatible Cardano indexing API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	projectID   string
	rateLimiter *ratelimiter.RateLimiter
}

func NewClient(
	baseURL string,
	projectID string,
	timeout time.Duration,
	rl *ratelimiter.RateLimiter,
) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		projectID:   projectID,
		rateLimiter: rl,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set(ProjectIDHeader, c.projectID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request completed", "url", reqURL, "elapsed", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{Status: resp.StatusCode, URL: reqURL, Body: string(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal response from %s: %w", reqURL, err)
	}
	return nil
}

// Asset fetches the metadata of a native asset.
func (c *Client) Asset(ctx context.Context, unit string) (*Asset, error) {
	var asset Asset
	if err := c.get(ctx, "/assets/"+unit, nil, &asset); err != nil {
		return nil, fmt.Errorf("get asset %s: %w", unit, err)
	}
	return &asset, nil
}

// AssetAddresses fetches one page of the holders of a native asset.
func (c *Client) AssetAddresses(ctx context.Context, unit string, page int) ([]AssetAddress, error) {
	var holders []AssetAddress
	endpoint := fmt.Sprintf("/assets/%s/addresses", unit)
	if err := c.get(ctx, endpoint, pageParams(page), &holders); err != nil {
		return nil, fmt.Errorf("get asset addresses %s page %d: %w", unit, page, err)
	}
	return holders, nil
}

// AccountAddresses fetches one page of the payment addresses of a stake key.
func (c *Client) AccountAddresses(ctx context.Context, stakeAddress string, page int) ([]AccountAddress, error) {
	var addrs []AccountAddress
	endpoint := fmt.Sprintf("/accounts/%s/addresses", stakeAddress)
	if err := c.get(ctx, endpoint, pageParams(page), &addrs); err != nil {
		return nil, fmt.Errorf("get account addresses %s page %d: %w", stakeAddress, page, err)
	}
	return addrs, nil
}

// Address fetches the detail of a payment address (balances, stake key).
func (c *Client) Address(ctx context.Context, address string) (*AddressInfo, error) {
	var info AddressInfo
	if err := c.get(ctx, "/addresses/"+address, nil, &info); err != nil {
		return nil, fmt.Errorf("get address %s: %w", address, err)
	}
	return &info, nil
}

// Transaction fetches the top-level detail of a transaction.
func (c *Client) Transaction(ctx context.Context, txHash string) (*Transaction, error) {
	var tx Transaction
	if err := c.get(ctx, "/txs/"+txHash, nil, &tx); err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txHash, err)
	}
	return &tx, nil
}

// TransactionUTxOs fetches the UTXO set (inputs and outputs) of a transaction.
func (c *Client) TransactionUTxOs(ctx context.Context, txHash string) (*TxUTxOs, error) {
	var utxos TxUTxOs
	if err := c.get(ctx, fmt.Sprintf("/txs/%s/utxos", txHash), nil, &utxos); err != nil {
		return nil, fmt.Errorf("get transaction utxos %s: %w", txHash, err)
	}
	return &utxos, nil
}

// Block fetches the detail of a block by its hash or height.
func (c *Client) Block(ctx context.Context, hashOrNumber string) (*Block, error) {
	var block Block
	if err := c.get(ctx, "/blocks/"+hashOrNumber, nil, &block); err != nil {
		return nil, fmt.Errorf("get block %s: %w", hashOrNumber, err)
	}
	return &block, nil
}

func pageParams(page int) map[string]string {
	return map[string]string{"page": strconv.Itoa(page)}
}
