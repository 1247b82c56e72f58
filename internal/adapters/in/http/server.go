// Package http exposes the order lifecycle over a JSON API. Every response
// uses the Envelope wrapper; failures map domain error classes to HTTP
// statuses so callers can distinguish bad input, missing orders, state
// conflicts and upstream gateway trouble.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/commands"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/queries"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	refundOrderHandler         commands.RefundOrderCommandHandler
	generateLabelHandler       commands.GenerateLabelCommandHandler
	markShippedHandler         commands.MarkShippedCommandHandler
	requestCancellationHandler commands.RequestCancellationCommandHandler
	approveCancellationHandler commands.ApproveCancellationCommandHandler
	rejectCancellationHandler  commands.RejectCancellationCommandHandler

	// Query handlers
	getShippingRatesHandler queries.GetShippingRatesQueryHandler
	getOrderSummaryHandler  queries.GetOrderSummaryQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	refundOrderHandler commands.RefundOrderCommandHandler,
	generateLabelHandler commands.GenerateLabelCommandHandler,
	markShippedHandler commands.MarkShippedCommandHandler,
	requestCancellationHandler commands.RequestCancellationCommandHandler,
	approveCancellationHandler commands.ApproveCancellationCommandHandler,
	rejectCancellationHandler commands.RejectCancellationCommandHandler,
	getShippingRatesHandler queries.GetShippingRatesQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		refundOrderHandler:         refundOrderHandler,
		generateLabelHandler:       generateLabelHandler,
		markShippedHandler:         markShippedHandler,
		requestCancellationHandler: requestCancellationHandler,
		approveCancellationHandler: approveCancellationHandler,
		rejectCancellationHandler:  rejectCancellationHandler,
		getShippingRatesHandler:    getShippingRatesHandler,
		getOrderSummaryHandler:     getOrderSummaryHandler,
		logger:                     logger.With("component", "http_server"),
	}
}

// RegisterRoutes binds all API routes on the echo instance. Requests are rate
// limited per client IP.
func (s *Server) RegisterRoutes(e *echo.Echo, requestsPerSecond float64) {
	e.Use(middleware.RateLimiter(
		middleware.NewRateLimiterMemoryStore(rate.Limit(requestsPerSecond)),
	))

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/:id/rates", s.QuoteShippingRates)
	api.POST("/orders/:id/label", s.GenerateLabel)
	api.POST("/orders/:id/mark-shipped", s.MarkShipped)
	api.POST("/orders/:id/refund", s.RefundOrder)
	api.POST("/orders/:id/cancellation", s.RequestCancellation)
	api.POST("/orders/:id/cancellation/approve", s.ApproveCancellation)
	api.POST("/orders/:id/cancellation/reject", s.RejectCancellation)
	api.GET("/orders/:id/summary", s.GetOrderSummary)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "ok"})
}

// QuoteShippingRates handles POST /api/v1/orders/:id/rates - quotes carrier
// services for the order's package set.
func (s *Server) QuoteShippingRates(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request RateQuoteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	overrides, err := overridesFromRequest(request.Overrides)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetShippingRatesQuery(orderID, request.CarrierID, overrides)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getShippingRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: rateQuoteResponseFrom(result)})
}

// GenerateLabel handles POST /api/v1/orders/:id/label - purchases a label and
// attaches the shipment to the order.
func (s *Server) GenerateLabel(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request GenerateLabelRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	overrides, err := overridesFromRequest(request.Overrides)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewGenerateLabelCommand(orderID, request.CarrierID, request.ServiceCode, overrides)
	if err != nil {
		return badRequest(ctx, err)
	}

	shipment, err := s.generateLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{Success: true, Data: shipmentResponseFrom(shipment)})
}

// MarkShipped handles POST /api/v1/orders/:id/mark-shipped - records shipping
// done outside any carrier integration.
func (s *Server) MarkShipped(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request MarkShippedRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkShippedCommand(orderID, request.CarrierName, request.TrackingNumber)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.markShippedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "order marked as shipped"})
}

// RefundOrder handles POST /api/v1/orders/:id/refund - applies a full or
// partial refund.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request RefundRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	var kind order.RefundKind
	switch request.Kind {
	case "full":
		kind = order.FullRefund
	case "partial":
		kind = order.PartialRefund
	default:
		return badRequest(ctx, errs.NewValueIsInvalidError("kind"))
	}

	var amount kernel.Money
	if kind == order.PartialRefund {
		amount, err = kernel.NewMoney(request.Amount, request.Currency)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	cmd, err := commands.NewRefundOrderCommand(orderID, kind, amount, request.Reason, request.Comment)
	if err != nil {
		return badRequest(ctx, err)
	}

	record, err := s.refundOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{Success: true, Data: refundResponseFrom(record)})
}

// RequestCancellation handles POST /api/v1/orders/:id/cancellation - opens a
// cancellation request on the order.
func (s *Server) RequestCancellation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request CancellationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRequestCancellationCommand(orderID, request.Reason, request.Requester)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.requestCancellationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{Success: true, Data: cancellationResponseFrom(result)})
}

// ApproveCancellation handles POST /api/v1/orders/:id/cancellation/approve -
// approves the pending cancellation request and cancels the order.
func (s *Server) ApproveCancellation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request ResolveCancellationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveCancellationCommand(orderID, request.Resolver)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.approveCancellationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: cancellationResponseFrom(result)})
}

// RejectCancellation handles POST /api/v1/orders/:id/cancellation/reject -
// rejects the pending cancellation request and restores the order's prior
// status.
func (s *Server) RejectCancellation(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request ResolveCancellationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRejectCancellationCommand(orderID, request.Reason, request.Resolver)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.rejectCancellationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: cancellationResponseFrom(result)})
}

// GetOrderSummary handles GET /api/v1/orders/:id/summary - returns the
// consolidated order read model with its display status.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: orderSummaryResponseFrom(result)})
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Envelope{Success: false, Message: err.Error()})
}

// respondError maps handler failures to HTTP statuses: invalid input to 400,
// missing orders to 404, lifecycle violations to 409, upstream gateway
// failures to 502. Anything unrecognized is a 500. An observed invariant
// violation means stored state is already inconsistent, so it is logged
// distinctly before the refusal goes out.
func (s *Server) respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	if errors.Is(err, errs.ErrInvariantViolation) {
		s.logger.ErrorContext(ctx.Request().Context(), "Invariant violation observed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
		return ctx.JSON(status, Envelope{Success: false, Message: err.Error()})
	}

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
	case errors.Is(err, queries.ErrEmptyRateSet):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrGatewayFailure):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, Envelope{Success: false, Message: err.Error()})
}
