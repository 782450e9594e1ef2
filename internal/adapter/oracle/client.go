package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/passtrack/passboard/internal/domain/model"
)

const (
	requestPath = "/Request/api/V1.0/Request/GetRequestsByApplicationNumber"

	// Literal markers in the status service replies.
	paidStatus     = "Payment Completed"
	notFoundPrefix = "Data not Found"
)

// Client probes the payment status service for a trace number. The outcome
// is always usable: transport and parse failures come back as
// ProbeUnresolved together with the underlying error for logging.
type Client interface {
	Probe(ctx context.Context, traceNumber string) (model.ProbeOutcome, error)
}

// HTTPClient implements Client against the passport request HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	origin     string
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload of the status service. Replies carry
// either a top-level message or a nested service request status.
type response struct {
	Message        string `json:"message"`
	ServiceRequest struct {
		RequestStatus string `json:"requestStatus"`
	} `json:"serviceRequest"`
}

// NewHTTPClient creates an HTTP status probe with a bounded per-lookup timeout.
func NewHTTPClient(baseURL, origin string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse oracle url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("oracle url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		origin:  origin,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Probe asks the status service about one application trace number.
func (c *HTTPClient) Probe(ctx context.Context, traceNumber string) (model.ProbeOutcome, error) {
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + requestPath
	query := endpoint.Query()
	query.Set("applicationNumber", traceNumber)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return model.ProbeUnresolved, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Origin", c.origin)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ProbeUnresolved, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ProbeUnresolved, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("oracle request failed",
			slog.String("trace", traceNumber),
			slog.Int("status", resp.StatusCode),
		)
		return model.ProbeUnresolved, fmt.Errorf("oracle error: %s", resp.Status)
	}

	var data response
	if err := json.Unmarshal(body, &data); err != nil {
		return model.ProbeUnresolved, err
	}

	if strings.HasPrefix(data.Message, notFoundPrefix) {
		return model.ProbeNotFound, nil
	}
	if data.ServiceRequest.RequestStatus == paidStatus {
		return model.ProbePaid, nil
	}
	return model.ProbeUnresolved, nil
}
