package sup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/google/uuid"

	"github.com/habtools/habctl/internal/paths"
	"github.com/habtools/habctl/internal/svcload"
)

// Client implements Controller over the Supervisor's HTTP control gateway.
type Client struct {
	addr   string
	http   *http.Client
	logger log.Logger
}

// NewClient creates a Client for the given gateway address. An empty address
// falls back to the local gateway.
func NewClient(remoteSup string, logger log.Logger) *Client {
	if remoteSup == "" {
		remoteSup = paths.DefaultCtlGatewayAddr
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Client{
		addr:   remoteSup,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// loadRequest is the wire form of a resolved LoadSpec. Only values travel;
// provenance served its purpose during resolution.
type loadRequest struct {
	PkgIdent            string   `json:"pkg_ident"`
	Channel             string   `json:"channel"`
	BldrURL             string   `json:"bldr_url"`
	Group               string   `json:"group"`
	Topology            string   `json:"topology,omitempty"`
	Strategy            string   `json:"strategy"`
	UpdateCondition     string   `json:"update_condition"`
	Binds               []string `json:"binds,omitempty"`
	BindingMode         string   `json:"binding_mode"`
	HealthCheckInterval uint64   `json:"health_check_interval"`
	ShutdownTimeout     *uint64  `json:"shutdown_timeout,omitempty"`
	Force               bool     `json:"force"`
	ConfigFrom          string   `json:"config_from,omitempty"`
}

func newLoadRequest(spec *svcload.LoadSpec) loadRequest {
	req := loadRequest{
		PkgIdent:            spec.PkgIdent.Value,
		Channel:             spec.Channel.Value,
		BldrURL:             spec.BldrURL.Value,
		Group:               spec.Group.Value,
		Strategy:            spec.Strategy.Value,
		UpdateCondition:     spec.UpdateCondition.Value,
		Binds:               spec.Binds.Values,
		BindingMode:         spec.BindingMode.Value,
		HealthCheckInterval: spec.HealthCheckInterval.Value,
		Force:               spec.Force.Value,
	}
	if spec.Topology.Source.IsSet() {
		req.Topology = spec.Topology.Value
	}
	if spec.ShutdownTimeout.Source.IsSet() {
		timeout := spec.ShutdownTimeout.Value
		req.ShutdownTimeout = &timeout
	}
	if spec.ConfigFrom.Source.IsSet() {
		req.ConfigFrom = spec.ConfigFrom.Value
	}
	return req
}

// SvcLoad submits a resolved load spec for execution.
func (c *Client) SvcLoad(ctx context.Context, spec *svcload.LoadSpec) error {
	return c.post(ctx, "svc/load", newLoadRequest(spec))
}

// SvcStart starts a loaded, but stopped, service.
func (c *Client) SvcStart(ctx context.Context, pkgIdent string) error {
	return c.post(ctx, "svc/start", map[string]string{"pkg_ident": pkgIdent})
}

// SvcStop stops a running service.
func (c *Client) SvcStop(ctx context.Context, pkgIdent string, shutdownTimeout *uint64) error {
	return c.post(ctx, "svc/stop", stopRequest{PkgIdent: pkgIdent, ShutdownTimeout: shutdownTimeout})
}

// SvcUnload unloads a service, stopping it first if running.
func (c *Client) SvcUnload(ctx context.Context, pkgIdent string, shutdownTimeout *uint64) error {
	return c.post(ctx, "svc/unload", stopRequest{PkgIdent: pkgIdent, ShutdownTimeout: shutdownTimeout})
}

type stopRequest struct {
	PkgIdent        string  `json:"pkg_ident"`
	ShutdownTimeout *uint64 `json:"shutdown_timeout,omitempty"`
}

// SvcStatus queries the status of services.
func (c *Client) SvcStatus(ctx context.Context, pkgIdent string) ([]ServiceStatus, error) {
	endpoint := c.endpoint("svc/status")
	if pkgIdent != "" {
		endpoint += "?pkg_ident=" + url.QueryEscape(pkgIdent)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Transaction-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supervisor not reachable at %s: %w", c.addr, err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var statuses []ServiceStatus
	if err := json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		return nil, fmt.Errorf("decoding supervisor response: %w", err)
	}
	return statuses, nil
}

func (c *Client) post(ctx context.Context, op string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	txn := uuid.NewString()
	c.logger.Debug("ctl request", "op", op, "txn", txn, "addr", c.addr)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(op), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Transaction-Id", txn)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("supervisor not reachable at %s: %w", c.addr, err)
	}
	defer resp.Body.Close()

	return checkResponse(resp)
}

func (c *Client) endpoint(op string) string {
	return fmt.Sprintf("http://%s/ctl/v1/%s", c.addr, op)
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("supervisor rejected request: %s", msg)
}
