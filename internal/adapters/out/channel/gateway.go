// Package channel implements the outbound sales-channel gateway over HTTP,
// plus a local no-op used for orders with no external record. Refund
// submissions commit money movement on the channel side, so their timeouts
// are reported as ambiguous; cancellation resolutions are safe to retry and
// fail plainly.
package channel

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
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	json "github.com/goccy/go-json"
)

const gatewayName = "channel"

// Gateway is the HTTP implementation of ports.ChannelGateway.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewGateway creates a channel gateway talking to baseURL with a bounded
// per-call timeout.
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	return &Gateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type refundRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Reason   string `json:"reason"`
	Comment  string `json:"comment,omitempty"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// Refund submits a refund for the channel's copy of the order. A timeout is
// ambiguous: the channel may have moved the money before the response was
// lost.
func (g *Gateway) Refund(ctx context.Context, channelOrderID string, amount kernel.Money,
	reason, comment string) error {
	payload := refundRequest{
		Amount:   amount.Amount(),
		Currency: amount.Currency(),
		Reason:   reason,
		Comment:  comment,
	}

	err := g.post(ctx, fmt.Sprintf("%s/orders/%s/refunds", g.baseURL, channelOrderID), payload)
	if err != nil {
		if isTimeout(err) {
			return errs.NewAmbiguousGatewayError(gatewayName, "refund", err)
		}
		return errs.NewGatewayError(gatewayName, "refund", err)
	}
	return nil
}

// ApproveCancellation confirms a cancellation with the channel.
func (g *Gateway) ApproveCancellation(ctx context.Context, channelOrderID string) error {
	err := g.post(ctx, fmt.Sprintf("%s/orders/%s/cancellation/approve", g.baseURL, channelOrderID), struct{}{})
	if err != nil {
		return errs.NewGatewayError(gatewayName, "approve_cancellation", err)
	}
	return nil
}

// RejectCancellation declines a cancellation with the channel.
func (g *Gateway) RejectCancellation(ctx context.Context, channelOrderID string, reason string) error {
	err := g.post(ctx, fmt.Sprintf("%s/orders/%s/cancellation/reject", g.baseURL, channelOrderID),
		rejectRequest{Reason: reason})
	if err != nil {
		return errs.NewGatewayError(gatewayName, "reject_cancellation", err)
	}
	return nil
}

func (g *Gateway) post(ctx context.Context, url string, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// LocalGateway is the no-op ChannelGateway for orders whose canonical record
// lives locally. Every mirror call trivially succeeds.
type LocalGateway struct{}

// NewLocalGateway creates the no-op gateway.
func NewLocalGateway() LocalGateway {
	return LocalGateway{}
}

// Refund is a no-op for local orders.
func (LocalGateway) Refund(_ context.Context, _ string, _ kernel.Money, _, _ string) error {
	return nil
}

// ApproveCancellation is a no-op for local orders.
func (LocalGateway) ApproveCancellation(_ context.Context, _ string) error {
	return nil
}

// RejectCancellation is a no-op for local orders.
func (LocalGateway) RejectCancellation(_ context.Context, _ string, _ string) error {
	return nil
}
