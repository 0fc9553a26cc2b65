package issuance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-invmis/internal/config"
	issuanceerrors "go-invmis/internal/issuance/errors"
	"go-invmis/internal/shared/apperror"
	"go-invmis/internal/shared/contextutil"

	"go.uber.org/zap"
)

const defaultInventoryTimeout = 15 * time.Second

type Source string

const (
	SourceWing        Source = "wing"
	SourceAdmin       Source = "admin"
	SourceProcurement Source = "procurement"
)

type DetermineSourceRequest struct {
	ItemMasterID     string `json:"item_master_id"`
	RequiredQuantity int    `json:"required_quantity"`
	WingID           string `json:"wing_id,omitempty"`
}

type SourceDecision struct {
	Source            Source `json:"source"`
	AvailableQuantity int    `json:"available_quantity"`
}

type IssueRequest struct {
	StockIssuanceItemID    string `json:"stock_issuance_item_id"`
	StockIssuanceRequestID string `json:"stock_issuance_request_id"`
	ItemMasterID           string `json:"item_master_id"`
	Quantity               int    `json:"quantity"`
	WingID                 string `json:"wing_id,omitempty"`
	IssuedBy               string `json:"issued_by"`
}

type FinalizeRequest struct {
	StockIssuanceRequestID string `json:"stock_issuance_request_id"`
	FinalizedBy            string `json:"finalized_by"`
}

// InventoryClient talks to the stock issuance endpoints of the inventory service.
//
//go:generate mockgen -source=issuance_client.go -destination=mock/issuance_client_mock.go -package=mock
type InventoryClient interface {
	DetermineSource(ctx context.Context, req DetermineSourceRequest) (SourceDecision, error)
	IssueFromWing(ctx context.Context, req IssueRequest) error
	IssueFromAdmin(ctx context.Context, req IssueRequest) error
	Finalize(ctx context.Context, req FinalizeRequest) error
}

type inventoryEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type httpInventoryClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewInventoryClient(cfg config.InventoryConfig, logger ...*zap.Logger) InventoryClient {
	l := zap.L().Named("issuance.inventory")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("issuance.inventory")
	}

	timeout := defaultInventoryTimeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &httpInventoryClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: l,
	}
}

func (c *httpInventoryClient) DetermineSource(ctx context.Context, req DetermineSourceRequest) (SourceDecision, error) {
	var out SourceDecision
	if err := c.post(ctx, "/api/issuance/determine-source", req, &out); err != nil {
		return SourceDecision{}, err
	}
	return out, nil
}

func (c *httpInventoryClient) IssueFromWing(ctx context.Context, req IssueRequest) error {
	return c.post(ctx, "/api/issuance/issue-from-wing", req, nil)
}

func (c *httpInventoryClient) IssueFromAdmin(ctx context.Context, req IssueRequest) error {
	req.WingID = ""
	return c.post(ctx, "/api/issuance/issue-from-admin", req, nil)
}

func (c *httpInventoryClient) Finalize(ctx context.Context, req FinalizeRequest) error {
	return c.post(ctx, "/api/issuance/finalize", req, nil)
}

// post sends body as JSON and decodes the envelope's data into out when
// out is non-nil. Transport failures and 5xx answers map to ErrNetwork; a
// 4xx or an envelope with success=false maps to ErrInventoryRejected.
func (c *httpInventoryClient) post(ctx context.Context, path string, body, out any) error {
	l := contextutil.GetLogger(ctx, c.logger)
	url := c.baseURL + path

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal inventory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build inventory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		l.Error("inventory call failed", zap.String("url", url), zap.Duration("duration", time.Since(start)), zap.Error(err))
		return apperror.ErrNetwork.WithCause(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.ErrNetwork.WithCause(fmt.Errorf("read inventory response: %w", err))
	}

	l.Debug("inventory response received",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusInternalServerError {
		return apperror.ErrNetwork.WithCause(fmt.Errorf("inventory %s returned %d", path, resp.StatusCode))
	}

	var env inventoryEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return issuanceerrors.ErrInventoryRejected.WithCause(fmt.Errorf("%s returned %d", path, resp.StatusCode))
		}
		return fmt.Errorf("decode inventory response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		reason := env.Error
		if reason == "" {
			reason = env.Message
		}
		if reason == "" {
			reason = fmt.Sprintf("%s returned %d", path, resp.StatusCode)
		}
		return issuanceerrors.ErrInventoryRejected.WithCause(errors.New(reason))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode inventory data: %w", err)
		}
	}
	return nil
}
