package channel_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/adapters/out/channel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount, "USD")
	require.NoError(t, err)
	return m
}

func TestRefund_SubmitsAmountAndReason(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := channel.NewGateway(server.URL, 2*time.Second)

	err := gateway.Refund(context.Background(), "AMZ-1042", usd(t, 7500), "damaged", "left panel cracked")

	require.NoError(t, err)
	assert.Equal(t, "/orders/AMZ-1042/refunds", gotPath)
	assert.InDelta(t, 7500, gotBody["amount"], 0.001)
	assert.Equal(t, "USD", gotBody["currency"])
	assert.Equal(t, "damaged", gotBody["reason"])
	assert.Equal(t, "left panel cracked", gotBody["comment"])
}

func TestRefund_Timeout_AmbiguousGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := channel.NewGateway(server.URL, 50*time.Millisecond)

	err := gateway.Refund(context.Background(), "AMZ-1042", usd(t, 7500), "damaged", "")

	require.Error(t, err)
	var gatewayErr *errs.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.True(t, gatewayErr.Ambiguous)
	assert.Equal(t, "refund", gatewayErr.Operation)
}

func TestRefund_ErrorStatus_PlainGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "order not refundable", http.StatusConflict)
	}))
	defer server.Close()

	gateway := channel.NewGateway(server.URL, 2*time.Second)

	err := gateway.Refund(context.Background(), "AMZ-1042", usd(t, 7500), "damaged", "")

	require.Error(t, err)
	var gatewayErr *errs.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.False(t, gatewayErr.Ambiguous)
}

func TestCancellationResolutions_HitExpectedEndpoints(t *testing.T) {
	var paths []string
	var lastBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&lastBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := channel.NewGateway(server.URL, 2*time.Second)

	require.NoError(t, gateway.ApproveCancellation(context.Background(), "AMZ-1042"))
	require.NoError(t, gateway.RejectCancellation(context.Background(), "AMZ-1042", "already shipped"))

	require.Equal(t, []string{
		"/orders/AMZ-1042/cancellation/approve",
		"/orders/AMZ-1042/cancellation/reject",
	}, paths)
	assert.Equal(t, "already shipped", lastBody["reason"])
}

func TestLocalGateway_AllCallsSucceed(t *testing.T) {
	gateway := channel.NewLocalGateway()
	ctx := context.Background()

	assert.NoError(t, gateway.Refund(ctx, "", usd(t, 100), "any", ""))
	assert.NoError(t, gateway.ApproveCancellation(ctx, ""))
	assert.NoError(t, gateway.RejectCancellation(ctx, "", "any"))
}
