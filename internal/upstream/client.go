package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/commercedesk/geodata-api/internal/config"
)

const combinedJSONPath = "/json/countries+states+cities.json"

// Client fetches the countries/states/cities dataset from the upstream
// raw-file host
type Client struct {
	httpClient *http.Client
	baseURL    string
	releaseURL string
}

// NewClient creates an upstream client from importer configuration
func NewClient(cfg config.ImporterConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:    cfg.BaseURL,
		releaseURL: cfg.ReleaseURL,
	}
}

// FetchTableCSV downloads and parses {base}/csv/{table}.csv
func (c *Client) FetchTableCSV(ctx context.Context, table string) ([]Record, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/csv/%s.csv", c.baseURL, table))
	if err != nil {
		return nil, err
	}

	records, err := ParseCSV(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s.csv: %w", table, err)
	}
	return records, nil
}

// FetchCombined downloads the single JSON document holding all three
// collections, keyed countries/states/cities
func (c *Client) FetchCombined(ctx context.Context) (map[string][]Record, error) {
	body, err := c.get(ctx, c.baseURL+combinedJSONPath)
	if err != nil {
		return nil, err
	}

	var doc map[string][]map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode combined dataset: %w", err)
	}

	out := make(map[string][]Record, len(doc))
	for key, rows := range doc {
		records := make([]Record, 0, len(rows))
		for _, row := range rows {
			records = append(records, normalize(row))
		}
		out[key] = records
	}
	return out, nil
}

// FetchDatasetVersion resolves the dataset version from the release API.
// Any failure falls back to the current date string.
func (c *Client) FetchDatasetVersion(ctx context.Context) string {
	fallback := time.Now().Format("2006-01-02")

	body, err := c.get(ctx, c.releaseURL)
	if err != nil {
		return fallback
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil || release.TagName == "" {
		return fallback
	}
	return release.TagName
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to download %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return body, nil
}

// normalize stringifies a decoded JSON object so both dataset formats share
// the Record coercion rules
func normalize(row map[string]any) Record {
	record := make(Record, len(row))
	for key, value := range row {
		switch v := value.(type) {
		case string:
			record[key] = v
		case json.Number:
			record[key] = v.String()
		case bool:
			record[key] = fmt.Sprintf("%t", v)
		case nil:
			record[key] = ""
		default:
			// Nested objects/arrays (timezones, translations) are not
			// imported; keep them out of the record entirely.
		}
	}
	return record
}
