package ecb

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/mcosta/finance-dashboard/internal/config"
	"github.com/sirupsen/logrus"
)

// Client fetches daily EUR reference rates from the ECB XML feed
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new ECB rates client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.ECBRatesURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

func (c *Client) fetch() ([]byte, error) {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("ECB XML response: %d bytes", len(body))
	return body, nil
}

func (c *Client) parseRates(rawBody []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	// Daily feed nests rates as Cube/Cube/Cube with currency and rate
	// attributes
	cubes := doc.FindElements("//Cube/Cube/Cube")
	if len(cubes) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}

	rates := make(map[string]float64, len(cubes))
	for _, cube := range cubes {
		currency := cube.SelectAttrValue("currency", "")
		rateStr := cube.SelectAttrValue("rate", "")
		if currency == "" || rateStr == "" {
			continue
		}
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s: %w", currency, err)
		}
		rates[currency] = rate
	}
	return rates, nil
}

// GetRates retrieves all daily EUR reference rates keyed by currency code
func (c *Client) GetRates() (map[string]float64, error) {
	body, err := c.fetch()
	if err != nil {
		return nil, err
	}
	return c.parseRates(body)
}

// GetRate retrieves the EUR reference rate for one currency code
func (c *Client) GetRate(currency string) (float64, error) {
	rates, err := c.GetRates()
	if err != nil {
		return 0, err
	}
	rate, ok := rates[strings.ToUpper(currency)]
	if !ok {
		return 0, fmt.Errorf("no reference rate for currency %s", currency)
	}
	c.log.Infof("Retrieved EUR/%s reference rate: %.4f", strings.ToUpper(currency), rate)
	return rate, nil
}
