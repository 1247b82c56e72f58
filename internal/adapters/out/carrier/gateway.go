// Package carrier implements the outbound carrier gateway over HTTP.
//
// Rate quotes are non-committal and fail plainly. Label purchases commit cost
// with the carrier: a timeout on one is reported as an ambiguous gateway
// error, because the carrier may have billed before the response was lost.
// Calls run behind a circuit breaker so a misbehaving carrier endpoint sheds
// load quickly instead of tying up request handlers.
package carrier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	json "github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
)

const gatewayName = "carrier"

// Gateway is the HTTP implementation of ports.CarrierGateway.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// NewGateway creates a carrier gateway talking to baseURL. The timeout bounds
// every call; the circuit breaker opens after five consecutive failures and
// probes again after thirty seconds.
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    gatewayName,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Gateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
	}
}

type addressPayload struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type packagePayload struct {
	Quantity int     `json:"quantity"`
	WeightKg float64 `json:"weight_kg"`
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

type ratesRequest struct {
	Shipper     addressPayload   `json:"shipper"`
	Destination addressPayload   `json:"destination"`
	Packages    []packagePayload `json:"packages"`
}

type ratesResponse struct {
	Options []struct {
		ServiceCode string `json:"service_code"`
		ServiceName string `json:"service_name"`
		Amount      int64  `json:"amount"`
		Currency    string `json:"currency"`
		TransitDays int    `json:"transit_days"`
	} `json:"options"`
}

type labelRequest struct {
	ServiceCode string           `json:"service_code"`
	Shipper     addressPayload   `json:"shipper"`
	Destination addressPayload   `json:"destination"`
	Packages    []packagePayload `json:"packages"`
}

type labelResponse struct {
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
	LabelURL       string `json:"label_url"`
}

// GetRates quotes available services for the package set.
// All failures are plain gateway errors; nothing has been committed.
func (g *Gateway) GetRates(ctx context.Context, carrierID string, shipper, destination kernel.Address,
	packages []order.Package) ([]ports.RateOption, error) {
	payload := ratesRequest{
		Shipper:     addressFrom(shipper),
		Destination: addressFrom(destination),
		Packages:    packagesFrom(packages),
	}

	body, err := g.post(ctx, fmt.Sprintf("%s/carriers/%s/rates", g.baseURL, carrierID), payload)
	if err != nil {
		return nil, errs.NewGatewayError(gatewayName, "get_rates", err)
	}

	var decoded ratesResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, errs.NewGatewayError(gatewayName, "get_rates", err)
	}

	options := make([]ports.RateOption, 0, len(decoded.Options))
	for _, o := range decoded.Options {
		amount, moneyErr := kernel.NewMoney(o.Amount, o.Currency)
		if moneyErr != nil {
			return nil, errs.NewGatewayError(gatewayName, "get_rates", moneyErr)
		}
		options = append(options, ports.RateOption{
			ServiceCode: o.ServiceCode,
			ServiceName: o.ServiceName,
			Amount:      amount,
			TransitDays: o.TransitDays,
		})
	}

	return options, nil
}

// PurchaseLabel buys a label for the chosen service. A timeout here is
// ambiguous: the carrier may have committed the purchase before the response
// was lost, so the error is flagged for reconciliation instead of being
// treated as a plain failure. A rejected call (breaker open, connection
// refused, HTTP error status) is unambiguous.
func (g *Gateway) PurchaseLabel(ctx context.Context, carrierID, serviceCode string,
	shipper, destination kernel.Address, packages []order.Package) (ports.LabelPurchase, error) {
	payload := labelRequest{
		ServiceCode: serviceCode,
		Shipper:     addressFrom(shipper),
		Destination: addressFrom(destination),
		Packages:    packagesFrom(packages),
	}

	body, err := g.post(ctx, fmt.Sprintf("%s/carriers/%s/labels", g.baseURL, carrierID), payload)
	if err != nil {
		if isTimeout(err) {
			return ports.LabelPurchase{}, errs.NewAmbiguousGatewayError(gatewayName, "purchase_label", err)
		}
		return ports.LabelPurchase{}, errs.NewGatewayError(gatewayName, "purchase_label", err)
	}

	var decoded labelResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return ports.LabelPurchase{}, errs.NewGatewayError(gatewayName, "purchase_label", err)
	}
	if decoded.TrackingNumber == "" {
		return ports.LabelPurchase{}, errs.NewGatewayError(gatewayName, "purchase_label",
			errors.New("carrier response has no tracking number"))
	}

	return ports.LabelPurchase{
		TrackingNumber: decoded.TrackingNumber,
		TrackingURL:    decoded.TrackingURL,
		LabelURL:       decoded.LabelURL,
	}, nil
}

func (g *Gateway) post(ctx context.Context, url string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return g.breaker.Execute(func() ([]byte, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
		if reqErr != nil {
			return nil, reqErr
		}
		req.Header.Set("Content-Type", "application/json")

		resp, doErr := g.httpClient.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
		}

		return body, nil
	})
}

// isTimeout reports whether the call may have reached the carrier before the
// response was lost. Breaker rejections never reached it.
func isTimeout(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func addressFrom(a kernel.Address) addressPayload {
	return addressPayload{
		Line1:      a.Line1(),
		Line2:      a.Line2(),
		City:       a.City(),
		Region:     a.Region(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

func packagesFrom(packages []order.Package) []packagePayload {
	payloads := make([]packagePayload, 0, len(packages))
	for _, p := range packages {
		payloads = append(payloads, packagePayload{
			Quantity: p.Quantity,
			WeightKg: p.WeightKg,
			LengthCm: p.LengthCm,
			WidthCm:  p.WidthCm,
			HeightCm: p.HeightCm,
		})
	}
	return payloads
}
