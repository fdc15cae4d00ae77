// Package http is the inbound HTTP adapter. It translates JSON requests
// into commands and queries, extracts the caller's identity, and maps
// application errors onto HTTP statuses.
package http

import (
	"net/http"

	"swiftbid/internal/core/application/usecases/commands"
	"swiftbid/internal/core/application/usecases/queries"
	"swiftbid/internal/core/domain/model/kernel"
	"swiftbid/internal/observability"
	"swiftbid/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the authenticated caller's ID. Authentication itself
// happens upstream; this service trusts the header set by the gateway.
const userIDHeader = "X-User-ID"

// Server handles HTTP requests by coordinating between handlers and
// application use cases.
type Server struct {
	createDeliveryHandler      commands.CreateDeliveryCommandHandler
	cancelDeliveryHandler      commands.CancelDeliveryCommandHandler
	submitBidHandler           commands.SubmitBidCommandHandler
	withdrawBidHandler         commands.WithdrawBidCommandHandler
	acceptBidHandler           commands.AcceptBidCommandHandler
	startDeliveryHandler       commands.StartDeliveryCommandHandler
	completeDeliveryHandler    commands.CompleteDeliveryCommandHandler
	abortDeliveryHandler       commands.AbortDeliveryCommandHandler
	availableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler
	customerDeliveriesHandler  queries.GetCustomerDeliveriesQueryHandler
	riderBidsHandler           queries.GetRiderBidsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	submitBidHandler commands.SubmitBidCommandHandler,
	withdrawBidHandler commands.WithdrawBidCommandHandler,
	acceptBidHandler commands.AcceptBidCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	abortDeliveryHandler commands.AbortDeliveryCommandHandler,
	availableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler,
	customerDeliveriesHandler queries.GetCustomerDeliveriesQueryHandler,
	riderBidsHandler queries.GetRiderBidsQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:      createDeliveryHandler,
		cancelDeliveryHandler:      cancelDeliveryHandler,
		submitBidHandler:           submitBidHandler,
		withdrawBidHandler:         withdrawBidHandler,
		acceptBidHandler:           acceptBidHandler,
		startDeliveryHandler:       startDeliveryHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		abortDeliveryHandler:       abortDeliveryHandler,
		availableDeliveriesHandler: availableDeliveriesHandler,
		customerDeliveriesHandler:  customerDeliveriesHandler,
		riderBidsHandler:           riderBidsHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/available", s.GetAvailableDeliveries)
	api.GET("/deliveries/my", s.GetMyDeliveries)
	api.POST("/deliveries/:id/cancel", s.CancelDelivery)
	api.POST("/deliveries/:id/accept-bid", s.AcceptBid)
	api.POST("/deliveries/:id/start", s.StartDelivery)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
	api.POST("/deliveries/:id/abort", s.AbortDelivery)

	api.POST("/bids", s.SubmitBid)
	api.POST("/bids/:id/withdraw", s.WithdrawBid)
	api.GET("/bids/my", s.GetMyBids)
}

// CreateDelivery handles POST /api/v1/deliveries - publishes a new delivery
// request.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	var req NewDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewFieldError("body", "invalid request body"))
	}

	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, callerID, req.DeliveryType,
		req.Pickup.Address, req.Pickup.Latitude, req.Pickup.Longitude,
		req.Destination.Address, req.Destination.Latitude, req.Destination.Longitude,
		req.Package.Weight, req.Package.Length, req.Package.Width,
		req.Package.Height, req.Package.Description,
		req.PickupTime, req.Price,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	observability.DeliveriesCreatedTotal.Inc()

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// GetAvailableDeliveries handles GET /api/v1/deliveries/available - the
// rider feed of open deliveries.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	query := queries.NewGetAvailableDeliveriesQuery()

	rows, err := s.availableDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AvailableDelivery, len(rows))
	for i, row := range rows {
		response[i] = availableDeliveryFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyDeliveries handles GET /api/v1/deliveries/my - the caller's own
// deliveries with their visible bids.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerDeliveriesQuery(callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.customerDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CustomerDelivery, len(rows))
	for i, row := range rows {
		response[i] = customerDeliveryFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel - the customer
// withdraws a still-pending delivery.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptBid handles POST /api/v1/deliveries/:id/accept-bid - the customer
// selects the winning bid.
func (s *Server) AcceptBid(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req AcceptBidRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewFieldError("body", "invalid request body"))
	}

	bidID, err := kernel.UUIDFromString(req.BidID)
	if err != nil {
		return writeError(ctx, errs.NewFieldError("bidId", "must be a valid UUID"))
	}

	cmd, err := commands.NewAcceptBidCommand(deliveryID, bidID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	matched, winner, err := s.acceptBidHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	observability.MatchesTotal.Inc()

	return ctx.JSON(http.StatusOK, MatchResponse{
		DeliveryID:     matched.ID().String(),
		DeliveryStatus: matched.Status().String(),
		WinningBidID:   winner.ID().String(),
		RiderID:        winner.RiderID().String(),
		Amount:         winner.Amount(),
		EstimatedTime:  winner.EstimatedTime(),
	})
}

// StartDelivery handles POST /api/v1/deliveries/:id/start - the matched
// rider picks up the package.
func (s *Server) StartDelivery(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(deliveryID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete - the
// package has been dropped off.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AbortDelivery handles POST /api/v1/deliveries/:id/abort - the customer
// breaks off an already matched delivery.
func (s *Server) AbortDelivery(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAbortDeliveryCommand(deliveryID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.abortDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitBid handles POST /api/v1/bids - a rider places a bid on a pending
// delivery.
func (s *Server) SubmitBid(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	var req NewBidRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewFieldError("body", "invalid request body"))
	}

	deliveryID, err := kernel.UUIDFromString(req.DeliveryID)
	if err != nil {
		return writeError(ctx, errs.NewFieldError("deliveryId", "must be a valid UUID"))
	}

	bidID := kernel.NewUUID()

	cmd, err := commands.NewSubmitBidCommand(
		bidID, deliveryID, callerID, req.Amount, req.EstimatedTime, req.Message)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.submitBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	observability.BidsSubmittedTotal.Inc()

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: bidID.String()})
}

// WithdrawBid handles POST /api/v1/bids/:id/withdraw - a rider retracts a
// still-pending bid.
func (s *Server) WithdrawBid(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	bidID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewWithdrawBidCommand(bidID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.withdrawBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMyBids handles GET /api/v1/bids/my - the caller's bids joined with
// their deliveries.
func (s *Server) GetMyBids(ctx echo.Context) error {
	callerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRiderBidsQuery(callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.riderBidsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RiderBid, len(rows))
	for i, row := range rows {
		response[i] = riderBidFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// callerID extracts the caller's identity from the gateway header. The
// error result is already a written response.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		return kernel.UUID{}, writeUnauthenticated(ctx, "Missing "+userIDHeader+" header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, writeUnauthenticated(ctx, "Invalid "+userIDHeader+" header")
	}

	return id, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewFieldError(name, "must be a valid UUID")
	}

	return id, nil
}
