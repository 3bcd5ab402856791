package nemclient

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gitlab.com/nem2/catapult-sdk/client/config"
	"gitlab.com/nem2/catapult-sdk/client/metrics"
	"gitlab.com/nem2/catapult-sdk/common"
)

// Endpoint urls
const (
	BlockEndpoint             = "/block/%d"
	BlockTransactionsEndpoint = "/block/%d/transactions"
	ChainHeightEndpoint       = "/chain/height"
	ChainScoreEndpoint        = "/chain/score"
	StorageEndpoint           = "/diagnostic/storage"
	NetworkEndpoint           = "/network"
)

// nodeClient handles the low level http calls to a catapult node REST gateway
type nodeClient struct {
	logger     zerolog.Logger
	baseURL    *url.URL
	errCounter *prometheus.CounterVec
	m          *metrics.Metrics
	httpClient *retryablehttp.Client
}

func newNodeClient(module string, cfg config.ClientConfiguration, m *metrics.Metrics) (*nodeClient, error) {
	logger := log.With().Str("module", module).Logger()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid client configuration")
	}
	baseURL, err := url.Parse(cfg.NodeURL)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to parse node url(%s)", cfg.NodeURL)
	}
	if m == nil {
		m, err = metrics.NewMetrics(config.MetricsConfiguration{})
		if err != nil {
			return nil, errors.Wrap(err, "fail to create metrics")
		}
	}

	httpClient := retryablehttp.NewClient()
	httpClient.Logger = common.NewRetryableHTTPLogger(logger)
	// a failed request is reported to the caller as is, it's up to the caller to try again
	httpClient.RetryMax = 0
	httpClient.CheckRetry = func(_ context.Context, _ *http.Response, _ error) (bool, error) {
		return false, nil
	}
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &nodeClient{
		logger:     logger,
		baseURL:    baseURL,
		errCounter: m.GetCounterVec(metrics.NemClientError),
		m:          m,
		httpClient: httpClient,
	}, nil
}

// getURL with the given path and raw query, the base url path is kept as prefix
func (n *nodeClient) getURL(path, rawQuery string) string {
	uri := *n.baseURL
	uri.Path = strings.TrimRight(uri.Path, "/") + path
	uri.RawPath = ""
	uri.RawQuery = rawQuery
	uri.Fragment = ""
	return uri.String()
}

// get handle all the low level http GET calls, endpoint is only used to label metrics
func (n *nodeClient) get(ctx context.Context, endpoint, path, rawQuery string) ([]byte, error) {
	start := time.Now()
	defer func() {
		n.m.GetHistograms(metrics.NodeRequestDuration).Observe(time.Since(start).Seconds())
	}()
	n.m.GetCounterVec(metrics.NodeRequest).WithLabelValues(endpoint).Inc()

	uri := n.getURL(path, rawQuery)
	req, err := retryablehttp.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		n.errCounter.WithLabelValues("fail_create_request", endpoint).Inc()
		return nil, &TransportError{URL: uri, Err: err}
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.errCounter.WithLabelValues("fail_get_from_node", endpoint).Inc()
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, &TransportError{URL: uri, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			n.logger.Error().Err(err).Msg("failed to close response body")
		}
	}()

	buf, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		n.errCounter.WithLabelValues("fail_read_node_resp", endpoint).Inc()
		return nil, &TransportError{URL: uri, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		n.errCounter.WithLabelValues("unexpected_status", endpoint).Inc()
		n.logger.Debug().Str("url", uri).Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("node returned an error")
		return nil, &TransportError{URL: uri, StatusCode: resp.StatusCode, Body: buf}
	}
	return buf, nil
}
