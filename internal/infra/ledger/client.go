package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"beatbox-store/internal/infra"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/metrics"
)

// Client talks JSON-RPC to a Solana node through the solana-go rpc client.
type Client struct {
	rpc     *rpc.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewClient(cfg config.LedgerConfig, logger *slog.Logger, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	headers := map[string]string{}
	if token := strings.TrimSpace(cfg.AuthToken); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	transport := jsonrpc.NewClientWithOpts(cfg.RPCURL, &jsonrpc.RPCClientOpts{
		HTTPClient:    &http.Client{Timeout: timeout},
		CustomHeaders: headers,
	})
	return &Client{
		rpc:     rpc.NewWithCustomRPCClient(transport),
		logger:  logger,
		metrics: m,
	}
}

// Close releases idle connections held by the rpc transport.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// observe classifies err into an infra.LedgerError and records the call.
func (c *Client) observe(method string, start time.Time, err error) error {
	err = c.classify(method, err)
	c.metrics.ObserveLedgerCall(method, outcome(err), time.Since(start))
	return err
}

func (c *Client) classify(method string, err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, rpc.ErrNotFound) {
		return infra.WrapLedgerErr(method+" returned no result", err, infra.KindNotFound)
	}
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		c.logger.Debug("ledger rpc error", "method", method, "code", rpcErr.Code, "message", rpcErr.Message)
		return infra.NewRPCError(method, rpcErr.Code, rpcErr.Message)
	}
	var httpErr *jsonrpc.HTTPError
	if errors.As(err, &httpErr) {
		msg := fmt.Sprintf("%s failed: status=%d", method, httpErr.Code)
		if httpErr.Code == http.StatusTooManyRequests || httpErr.Code >= http.StatusInternalServerError {
			return infra.WrapLedgerErr(msg, nil, infra.KindUnavailable)
		}
		return infra.WrapLedgerErr(msg, nil, infra.KindRPCError)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return infra.WrapLedgerErr(method+" request failed", err, infra.KindUnavailable)
	}
	return infra.WrapLedgerErr("failed to decode "+method+" response", err, infra.KindDecode)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case infra.IsKind(err, infra.KindNotFound):
		return "not_found"
	case infra.IsKind(err, infra.KindUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
