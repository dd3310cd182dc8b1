package adapters

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"hood-sync/internal/core/config"
	"hood-sync/internal/core/httpclient"
	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/metrics"
	"hood-sync/internal/core/proxy"
	"hood-sync/internal/features/hood/domain"
	"hood-sync/internal/features/hood/protocol"

	"go.uber.org/zap"
)

// probeExcerptLength is the size of the body excerpt returned by CheckConnection.
const probeExcerptLength = 200

// HoodAdapter talks to the Hood.de XML API. Every function is a POST of an XML document to
// the same endpoint; the verdict is always returned as a value carrying the raw body.
type HoodAdapter struct {
	// client is reused across calls so TLS sessions are kept alive.
	client *http.Client
	// config holds the endpoint, credentials and timeouts.
	config config.HoodConfig
	// builder produces the signed request documents.
	builder *protocol.Builder
}

// NewHoodAdapter creates a HoodAdapter with a TLS 1.2+ client, optionally behind a proxy.
func NewHoodAdapter(cfg config.HoodConfig, proxySettings proxy.Settings) *HoodAdapter {
	client := httpclient.NewSecureClient(httpclient.Options{
		Timeout: cfg.Timeout + 5*time.Second,
		Proxy:   proxySettings,
	})
	return NewHoodAdapterWithClient(cfg, client, protocol.DefaultListingDefaults())
}

// NewHoodAdapterWithClient creates a HoodAdapter around an existing client.
func NewHoodAdapterWithClient(cfg config.HoodConfig, client *http.Client, defaults protocol.Defaults) *HoodAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 10 * time.Second
	}

	creds := protocol.Credentials{
		APIUser:     cfg.APIUser,
		APIPassword: cfg.APIPassword,
		AccountName: cfg.AccountName,
		AccountPass: cfg.AccountPass,
	}

	return &HoodAdapter{
		client:  client,
		config:  cfg,
		builder: protocol.NewBuilder(creds, defaults),
	}
}

// InsertItem lists a new item.
func (a *HoodAdapter) InsertItem(ctx context.Context, item domain.ItemPayload) (domain.UploadOutcome, error) {
	body, err := a.builder.ItemInsert(item)
	if err != nil {
		return domain.UploadOutcome{}, err
	}
	return a.item(ctx, domain.FunctionItemInsert, body), nil
}

// ValidateItem asks Hood.de to check an item without listing it.
func (a *HoodAdapter) ValidateItem(ctx context.Context, item domain.ItemPayload) (domain.UploadOutcome, error) {
	body, err := a.builder.ItemValidate(item)
	if err != nil {
		return domain.UploadOutcome{}, err
	}
	return a.item(ctx, domain.FunctionItemValidate, body), nil
}

// UpdateItems changes up to five existing items in one call.
func (a *HoodAdapter) UpdateItems(ctx context.Context, items []domain.ItemPayload) (domain.BatchOutcome, error) {
	body, err := a.builder.ItemUpdate(items)
	if err != nil {
		return domain.BatchOutcome{}, err
	}
	return a.batch(ctx, domain.FunctionItemUpdate, body), nil
}

// DeleteItems ends the given listings.
func (a *HoodAdapter) DeleteItems(ctx context.Context, itemIDs ...string) (domain.BatchOutcome, error) {
	body, err := a.builder.ItemDelete(itemIDs...)
	if err != nil {
		return domain.BatchOutcome{}, err
	}
	return a.batch(ctx, domain.FunctionItemDelete, body), nil
}

// ItemDetail reads the full record of one item.
func (a *HoodAdapter) ItemDetail(ctx context.Context, itemID string) (domain.ItemStatusResult, error) {
	body, err := a.builder.ItemDetail(itemID)
	if err != nil {
		return domain.ItemStatusResult{}, err
	}

	raw, result := a.post(ctx, domain.FunctionItemDetail, body, a.config.Timeout)
	if !result.Success {
		return domain.ItemStatusResult{CallResult: result.CallResult}, nil
	}
	out := protocol.InterpretItemStatus(protocol.Parse(raw), string(raw))
	a.record(domain.FunctionItemDetail, out.CallResult)
	return out, nil
}

// ListItems reads one page of the seller's items.
func (a *HoodAdapter) ListItems(ctx context.Context, q domain.ItemListQuery) (domain.ItemListResult, error) {
	body, err := a.builder.ItemList(q)
	if err != nil {
		return domain.ItemListResult{}, err
	}

	raw, result := a.post(ctx, domain.FunctionItemList, body, a.config.Timeout)
	if !result.Success {
		return domain.ItemListResult{CallResult: result.CallResult}, nil
	}
	out := protocol.InterpretItemList(protocol.Parse(raw), string(raw))
	a.record(domain.FunctionItemList, out.CallResult)
	return out, nil
}

// ItemStatus reads the status of the given items at the requested detail levels.
func (a *HoodAdapter) ItemStatus(ctx context.Context, itemIDs []string, levels []string) (domain.ItemStatusResult, error) {
	body, err := a.builder.ItemStatus(itemIDs, levels)
	if err != nil {
		return domain.ItemStatusResult{}, err
	}

	raw, result := a.post(ctx, domain.FunctionItemStatus, body, a.config.Timeout)
	if !result.Success {
		return domain.ItemStatusResult{CallResult: result.CallResult}, nil
	}
	out := protocol.InterpretItemStatus(protocol.Parse(raw), string(raw))
	a.record(domain.FunctionItemStatus, out.CallResult)
	return out, nil
}

// ListOrders reads the orders matching the filter.
func (a *HoodAdapter) ListOrders(ctx context.Context, filter domain.OrderFilter) (domain.OrderListResult, error) {
	body, err := a.builder.OrderList(filter)
	if err != nil {
		return domain.OrderListResult{}, err
	}

	raw, result := a.post(ctx, domain.FunctionOrderList, body, a.config.Timeout)
	if !result.Success {
		return domain.OrderListResult{CallResult: result.CallResult}, nil
	}
	out := protocol.InterpretOrders(protocol.Parse(raw), string(raw))
	a.record(domain.FunctionOrderList, out.CallResult)
	return out, nil
}

// BrowseCategories reads the children of a marketplace category; 0 is the root.
func (a *HoodAdapter) BrowseCategories(ctx context.Context, categoryID int) (domain.CategoryResult, error) {
	body, err := a.builder.CategoriesBrowse(categoryID)
	if err != nil {
		return domain.CategoryResult{}, err
	}
	return a.categories(ctx, domain.FunctionCategoriesBrowse, body, a.config.Timeout), nil
}

// ShopCategories reads the seller's own shop categories.
func (a *HoodAdapter) ShopCategories(ctx context.Context) (domain.CategoryResult, error) {
	body, err := a.builder.ShopCategories()
	if err != nil {
		return domain.CategoryResult{}, err
	}
	return a.categories(ctx, domain.FunctionShopCategories, body, a.config.Timeout), nil
}

// CheckConnection probes the API with a root categoriesBrowse and classifies the answer.
func (a *HoodAdapter) CheckConnection(ctx context.Context) domain.ConnectionStatus {
	body, err := a.builder.CategoriesBrowse(0)
	if err != nil {
		return domain.ConnectionStatus{State: domain.ConnectionError, Message: err.Error()}
	}

	raw, transport := a.post(ctx, domain.FunctionCategoriesBrowse, body, a.config.ProbeTimeout)
	status := domain.ConnectionStatus{
		HTTPStatus: transport.HTTPStatus,
		Excerpt:    protocol.Excerpt(raw, probeExcerptLength),
	}

	if !transport.Success {
		status.Message = transport.Error
		switch transport.Kind {
		case domain.KindTimeout:
			status.State = domain.ConnectionTimeout
		case domain.KindTLS:
			status.State = domain.ConnectionSSLError
		case domain.KindHTTPStatus:
			status.State = domain.ConnectionHTTPError
		default:
			status.State = domain.ConnectionError
		}
		return status
	}

	out := protocol.InterpretCategories(protocol.Parse(raw), string(raw))
	switch {
	case out.Success && len(out.Categories) > 0:
		status.State = domain.ConnectionConnected
		status.Connected = true
		status.Message = fmt.Sprintf("connected, %d categories visible", len(out.Categories))
	case out.Kind == domain.KindHTMLResponse:
		status.State = domain.ConnectionHTMLResponse
		status.Message = out.Error
	case out.Kind == domain.KindGlobalError:
		status.State = domain.ConnectionAPIError
		status.Message = out.Error
	case out.Kind == domain.KindParseError:
		status.State = domain.ConnectionParseError
		status.Message = out.Error
	default:
		status.State = domain.ConnectionInvalidResponse
		status.Message = "response contains no categories"
	}
	return status
}

// HealthCheck verifies that Hood.de is reachable and the credentials are accepted.
func (a *HoodAdapter) HealthCheck() error {
	status := a.CheckConnection(context.Background())
	if !status.Connected {
		return fmt.Errorf("hood health check failed (%s): %s", status.State, status.Message)
	}
	return nil
}

func (a *HoodAdapter) item(ctx context.Context, function string, body []byte) domain.UploadOutcome {
	raw, result := a.post(ctx, function, body, a.config.Timeout)
	if !result.Success {
		return domain.UploadOutcome{CallResult: result.CallResult}
	}
	out := protocol.InterpretItem(protocol.Parse(raw), string(raw))
	a.record(function, out.CallResult)
	return out
}

func (a *HoodAdapter) batch(ctx context.Context, function string, body []byte) domain.BatchOutcome {
	raw, result := a.post(ctx, function, body, a.config.Timeout)
	if !result.Success {
		return domain.BatchOutcome{CallResult: result.CallResult}
	}
	out := protocol.InterpretBatch(protocol.Parse(raw), string(raw))
	a.record(function, out.CallResult)
	return out
}

func (a *HoodAdapter) categories(ctx context.Context, function string, body []byte, timeout time.Duration) domain.CategoryResult {
	raw, result := a.post(ctx, function, body, timeout)
	if !result.Success {
		return domain.CategoryResult{CallResult: result.CallResult}
	}
	out := protocol.InterpretCategories(protocol.Parse(raw), string(raw))
	a.record(function, out.CallResult)
	return out
}

// transportResult is the outcome of the HTTP exchange alone.
type transportResult struct {
	domain.CallResult
	HTTPStatus int
}

// post sends one request and reads the whole body. A non-200 answer or a network failure is
// reported as a failed transportResult; interpretation is left to the caller.
func (a *HoodAdapter) post(ctx context.Context, function string, body []byte, timeout time.Duration) ([]byte, transportResult) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.HoodCallDuration.WithLabelValues(function).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.URL, bytes.NewReader(body))
	if err != nil {
		res := transportResult{CallResult: domain.Failed(domain.KindConnection, fmt.Sprintf("failed to create request: %v", err), "")}
		a.record(function, res.CallResult)
		return nil, res
	}
	req.Header.Set("Content-Type", "text/xml; charset=UTF-8")
	req.Header.Set("Accept", "text/xml, application/xml")

	resp, err := a.client.Do(req)
	if err != nil {
		res := transportResult{CallResult: domain.Failed(classify(ctx, err), err.Error(), "")}
		a.record(function, res.CallResult)
		return nil, res
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		res := transportResult{
			CallResult: domain.Failed(classify(ctx, err), fmt.Sprintf("failed to read response: %v", err), string(raw)),
			HTTPStatus: resp.StatusCode,
		}
		a.record(function, res.CallResult)
		return raw, res
	}

	if resp.StatusCode != http.StatusOK {
		res := transportResult{
			CallResult: domain.Failed(domain.KindHTTPStatus, fmt.Sprintf("hood API returned status: %d", resp.StatusCode), string(raw)),
			HTTPStatus: resp.StatusCode,
		}
		a.record(function, res.CallResult)
		return raw, res
	}

	return raw, transportResult{CallResult: domain.CallResult{Success: true}, HTTPStatus: resp.StatusCode}
}

// record counts the call and logs failures.
func (a *HoodAdapter) record(function string, result domain.CallResult) {
	metrics.HoodCalls.WithLabelValues(function, result.Kind.Label()).Inc()

	if result.Success {
		return
	}
	logger.Named("hood").Warn("Hood call failed",
		zap.String("function", function),
		zap.String("kind", string(result.Kind)),
		zap.Bool("retryable", result.Kind.Retryable()),
		zap.String("error", result.Error),
		zap.String("response_excerpt", protocol.Excerpt([]byte(result.RawResponse), protocol.ExcerptLength)),
	)
}

// classify maps a transport error to an ErrorKind.
func classify(ctx context.Context, err error) domain.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.KindTimeout
	}

	var (
		verifyErr   *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		unknownCA   x509.UnknownAuthorityError
		hostnameErr x509.HostnameError
		invalidCert x509.CertificateInvalidError
		alertErr    tls.AlertError
	)
	switch {
	case errors.As(err, &verifyErr), errors.As(err, &recordErr), errors.As(err, &unknownCA),
		errors.As(err, &hostnameErr), errors.As(err, &invalidCert), errors.As(err, &alertErr):
		return domain.KindTLS
	}

	return domain.KindConnection
}
