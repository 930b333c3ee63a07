package smoobu

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ar-vacations/pms-gateway/internal/config"
	"github.com/ar-vacations/pms-gateway/internal/domain"
	"github.com/ar-vacations/pms-gateway/internal/domain/pms"
	"github.com/ar-vacations/pms-gateway/internal/metrics"
	"go.uber.org/zap"
)

const apiKeyHeader = "Api-Key"

// Client implements pms.Provider against the Smoobu HTTP API.
type Client struct {
	cfg        config.PMSConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a Smoobu client from the injected PMS configuration.
func New(cfg config.PMSConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ListUnits fetches every apartment known to the Smoobu account.
func (c *Client) ListUnits(ctx context.Context) ([]pms.Unit, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.NewConfigError("SMOOBU_API_KEY missing")
	}

	body, err := c.get(ctx, "/api/apartments", nil)
	if err != nil {
		return nil, err
	}

	entries := decodeUnitList(body)
	units := make([]pms.Unit, 0, len(entries))
	for _, e := range entries {
		units = append(units, pms.Unit{ID: string(e.ID), Name: e.Name})
	}
	return units, nil
}

// Availability checks availability and pricing for the queried units.
func (c *Client) Availability(ctx context.Context, query pms.AvailabilityQuery) (*pms.Availability, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.NewConfigError("SMOOBU_API_KEY missing")
	}
	if c.cfg.CustomerID == "" {
		return nil, domain.NewConfigError("SMOOBU_CUSTOMER_ID missing")
	}

	reqBody := availabilityRequest{
		ArrivalDate:   query.Start,
		DepartureDate: query.End,
		Apartments:    query.UnitIDs,
		Adults:        query.Guests,
		Children:      0,
		CustomerID:    c.cfg.CustomerID,
	}

	raw, err := c.post(ctx, "/booking/checkApartmentAvailability", reqBody)
	if err != nil {
		return nil, err
	}

	return normalizeAvailability(raw), nil
}

// Rates fetches the per-day rate table for the given units and range.
func (c *Client) Rates(ctx context.Context, start, end string, unitIDs []string) (pms.RateTable, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.NewConfigError("SMOOBU_API_KEY missing")
	}

	params := url.Values{}
	for _, id := range unitIDs {
		params.Add("apartments[]", id)
	}
	params.Set("start_date", start)
	params.Set("end_date", end)

	body, err := c.get(ctx, "/api/rates", params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data pms.RateTable `json:"data"`
	}
	// Missing or malformed data degrades to an empty table.
	_ = json.Unmarshal(body, &payload)
	if payload.Data == nil {
		return pms.RateTable{}, nil
	}
	return payload.Data, nil
}

// Account fetches the Smoobu account behind the configured API key.
func (c *Client) Account(ctx context.Context) (*pms.Account, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.NewConfigError("SMOOBU_API_KEY missing")
	}

	body, err := c.get(ctx, "/api/me", nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		ID        int    `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	_ = json.Unmarshal(body, &payload)

	return &pms.Account{
		ID:    payload.ID,
		Name:  strings.TrimSpace(payload.FirstName + " " + payload.LastName),
		Email: payload.Email,
	}, nil
}

// BookingLink builds a deep link into the external booking engine.
func (c *Client) BookingLink(unitID string, params *pms.LinkParams) string {
	return pms.BuildBookingLink(c.cfg.BookingBase, unitID, params)
}

// --- Upstream transport ---

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.cfg.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to build upstream request", 0, err.Error())
	}
	req.Header.Set(apiKeyHeader, c.cfg.APIKey)

	return c.do(req, path)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to encode upstream request", 0, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewUpstreamError("failed to build upstream request", 0, err.Error())
	}
	req.Header.Set(apiKeyHeader, c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path)
}

// do executes the request and enforces the non-2xx error contract: the
// upstream status code and raw body are preserved for diagnostics.
func (c *Client) do(req *http.Request, path string) ([]byte, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(path, "error", time.Since(start).Seconds())
		return nil, domain.NewUpstreamError("upstream request failed", 0, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		metrics.ObserveUpstream(path, "error", time.Since(start).Seconds())
		return nil, domain.NewUpstreamError("failed to read upstream response", resp.StatusCode, readErr.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveUpstream(path, "upstream_error", time.Since(start).Seconds())
		c.logger.Warn("smoobu returned non-success status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, domain.NewUpstreamError("smoobu request failed", resp.StatusCode, string(body))
	}

	metrics.ObserveUpstream(path, "ok", time.Since(start).Seconds())
	return body, nil
}

// --- Response normalization ---

// flexibleID accepts unit identifiers that arrive as JSON strings or
// numbers and coerces them to strings.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexibleID(n.String())
		return nil
	}
	// Unknown shapes degrade to an empty ID rather than failing the
	// whole response.
	*f = ""
	return nil
}

type apartmentEntry struct {
	ID   flexibleID `json:"id"`
	Name string     `json:"name"`
}

// unitListShapes is the priority order of tolerated apartment-list
// payload shapes: a bare list, a list under "apartments", and a list
// under "data.apartments". The first shape that yields a list wins.
var unitListShapes = []struct {
	name   string
	decode func([]byte) ([]apartmentEntry, bool)
}{
	{"list", func(raw []byte) ([]apartmentEntry, bool) {
		var entries []apartmentEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, false
		}
		return entries, true
	}},
	{"apartments", func(raw []byte) ([]apartmentEntry, bool) {
		var payload struct {
			Apartments []apartmentEntry `json:"apartments"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil || payload.Apartments == nil {
			return nil, false
		}
		return payload.Apartments, true
	}},
	{"data.apartments", func(raw []byte) ([]apartmentEntry, bool) {
		var payload struct {
			Data struct {
				Apartments []apartmentEntry `json:"apartments"`
			} `json:"data"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil || payload.Data.Apartments == nil {
			return nil, false
		}
		return payload.Data.Apartments, true
	}},
}

// decodeUnitList tries each tolerated payload shape in priority order
// and returns an empty list when none match.
func decodeUnitList(raw []byte) []apartmentEntry {
	for _, shape := range unitListShapes {
		if entries, ok := shape.decode(raw); ok {
			return entries
		}
	}
	return nil
}

type availabilityRequest struct {
	ArrivalDate   string   `json:"arrivalDate"`
	DepartureDate string   `json:"departureDate"`
	Apartments    []string `json:"apartments"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	CustomerID    string   `json:"customerId"`
}

type priceElement struct {
	CurrencyCode string `json:"currencyCode"`
}

type priceInfo struct {
	Price         json.RawMessage `json:"price"`
	PriceElements []priceElement  `json:"priceElements"`
}

// total returns the numeric price, defaulting to 0 when the field is
// absent or non-numeric.
func (p priceInfo) total() float64 {
	var v float64
	if len(p.Price) == 0 || json.Unmarshal(p.Price, &v) != nil {
		return 0
	}
	return v
}

type availabilityResponse struct {
	AvailableApartments []flexibleID         `json:"availableApartments"`
	Prices              map[string]priceInfo `json:"prices"`
}

// normalizeAvailability maps the raw Smoobu response onto the internal
// contract. Quotes exist only for units the upstream pricing map knows;
// units missing from it are dropped rather than reported unavailable,
// matching the upstream contract. Currency is the last non-empty code
// seen while walking price elements in sorted unit-ID order, so the
// result is deterministic; USD is the fallback.
func normalizeAvailability(raw []byte) *pms.Availability {
	var resp availabilityResponse
	// Malformed payloads degrade to an empty result set.
	_ = json.Unmarshal(raw, &resp)

	available := make(map[string]struct{}, len(resp.AvailableApartments))
	for _, id := range resp.AvailableApartments {
		if id != "" {
			available[string(id)] = struct{}{}
		}
	}

	ids := make([]string, 0, len(resp.Prices))
	for id := range resp.Prices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	currency := "USD"
	quotes := make([]pms.Quote, 0, len(ids))
	for _, id := range ids {
		info := resp.Prices[id]
		for _, el := range info.PriceElements {
			if el.CurrencyCode != "" {
				currency = el.CurrencyCode
			}
		}
		_, isAvailable := available[id]
		quotes = append(quotes, pms.Quote{
			UnitID:    id,
			Available: isAvailable,
			Total:     roundCents(info.total()),
		})
	}

	return &pms.Availability{Currency: currency, Quotes: quotes}
}

// roundCents rounds to two decimal places, half away from zero on the
// cent boundary. Negative upstream prices collapse to zero, the same
// resting value an absent price gets.
func roundCents(v float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Round(v*100) / 100
}
