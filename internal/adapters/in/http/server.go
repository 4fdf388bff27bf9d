// Package http provides the inbound REST adapter. It translates echo requests
// into application commands and queries and maps domain errors to HTTP
// status codes.
package http

import (
	"net/http"

	"tendering/internal/core/application/usecases/commands"
	"tendering/internal/core/application/usecases/queries"
	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCascadeHandler commands.CreateCascadeCommandHandler
	createTenderHandler  commands.CreateTenderCommandHandler
	openTenderHandler    commands.OpenTenderCommandHandler
	closeTenderHandler   commands.CloseTenderCommandHandler
	cancelTenderHandler  commands.CancelTenderCommandHandler
	submitOfferHandler   commands.SubmitOfferCommandHandler
	withdrawOfferHandler commands.WithdrawOfferCommandHandler
	acceptOfferHandler   commands.AcceptOfferCommandHandler
	rejectOfferHandler   commands.RejectOfferCommandHandler
	awardTenderHandler   commands.AwardTenderCommandHandler

	// Query handlers
	getCascadeHandler     queries.GetCascadeQueryHandler
	getOpenTendersHandler queries.GetOpenTendersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCascadeHandler commands.CreateCascadeCommandHandler,
	createTenderHandler commands.CreateTenderCommandHandler,
	openTenderHandler commands.OpenTenderCommandHandler,
	closeTenderHandler commands.CloseTenderCommandHandler,
	cancelTenderHandler commands.CancelTenderCommandHandler,
	submitOfferHandler commands.SubmitOfferCommandHandler,
	withdrawOfferHandler commands.WithdrawOfferCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	rejectOfferHandler commands.RejectOfferCommandHandler,
	awardTenderHandler commands.AwardTenderCommandHandler,
	getCascadeHandler queries.GetCascadeQueryHandler,
	getOpenTendersHandler queries.GetOpenTendersQueryHandler,
) *Server {
	return &Server{
		createCascadeHandler:  createCascadeHandler,
		createTenderHandler:   createTenderHandler,
		openTenderHandler:     openTenderHandler,
		closeTenderHandler:    closeTenderHandler,
		cancelTenderHandler:   cancelTenderHandler,
		submitOfferHandler:    submitOfferHandler,
		withdrawOfferHandler:  withdrawOfferHandler,
		acceptOfferHandler:    acceptOfferHandler,
		rejectOfferHandler:    rejectOfferHandler,
		awardTenderHandler:    awardTenderHandler,
		getCascadeHandler:     getCascadeHandler,
		getOpenTendersHandler: getOpenTendersHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/cascades", s.CreateCascade)
	api.GET("/tenders/open", s.GetOpenTenders)
	api.POST("/tenders", s.CreateTender)
	api.POST("/tenders/:id/open", s.OpenTender)
	api.POST("/tenders/:id/close", s.CloseTender)
	api.POST("/tenders/:id/cancel", s.CancelTender)
	api.POST("/tenders/:id/award", s.AwardTender)
	api.GET("/tenders/:id/cascade", s.GetCascade)
	api.POST("/tenders/:id/offers", s.SubmitOffer)
	api.DELETE("/tenders/:id/offers/:carrierId", s.WithdrawOffer)
	api.POST("/offers/:id/accept", s.AcceptOffer)
	api.POST("/offers/:id/reject", s.RejectOffer)
}

// CreateCascade handles POST /api/v1/cascades - starts a tiered bidding cascade.
func (s *Server) CreateCascade(ctx echo.Context) error {
	var req CreateCascadeRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	brokerID, err := kernel.UUIDFromString(req.BrokerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid broker id: "+err.Error())
	}

	shipmentID, err := optionalUUID(req.ShipmentID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid shipment id: "+err.Error())
	}

	mode, err := tender.ParseMode(req.Mode)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid cascade mode: "+err.Error())
	}

	tiers := make([]services.TierRequest, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		filter, filterErr := parseUUIDs(t.CarrierFilter)
		if filterErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid carrier filter: "+filterErr.Error())
		}
		tiers = append(tiers, services.TierRequest{
			Tier:                 t.Tier,
			CarrierFilter:        filter,
			OfferDeadlineMinutes: t.OfferDeadlineMinutes,
		})
	}

	cmd, err := commands.NewCreateCascadeCommand(orderID, shipmentID, brokerID, mode, tiers)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid cascade request: "+err.Error())
	}

	result, err := s.createCascadeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	created := make([]string, len(result.CreatedTenderIDs))
	for i, id := range result.CreatedTenderIDs {
		created[i] = id.String()
	}

	return ctx.JSON(http.StatusCreated, CreateCascadeResponse{
		RootTenderID:     result.RootTenderID.String(),
		CreatedTenderIDs: created,
		TotalTiers:       result.TotalTiers,
	})
}

// CreateTender handles POST /api/v1/tenders - creates a stand-alone tender
// with an explicit carrier list.
func (s *Server) CreateTender(ctx echo.Context) error {
	var req CreateTenderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	shipmentID, err := optionalUUID(req.ShipmentID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid shipment id: "+err.Error())
	}

	carriers, err := parseUUIDs(req.Carriers)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid carrier id: "+err.Error())
	}

	cmd, err := commands.NewCreateTenderCommand(orderID, shipmentID, carriers, req.OfferDeadline)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tender data: "+err.Error())
	}

	tenderID, err := s.createTenderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.JSON(http.StatusCreated, CreateTenderResponse{ID: tenderID.String()})
}

// OpenTender handles POST /api/v1/tenders/:id/open - starts accepting offers.
func (s *Server) OpenTender(ctx echo.Context) error {
	tenderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tender id: "+err.Error())
	}

	cmd, err := commands.NewOpenTenderCommand(tenderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.openTenderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseTender handles POST /api/v1/tenders/:id/close - ends the bidding window.
func (s *Server) CloseTender(ctx echo.Context) error {
	tenderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tender id: "+err.Error())
	}

	cmd, err := commands.NewCloseTenderCommand(tenderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.closeTenderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelTender handles POST /api/v1/tenders/:id/cancel - withdraws the tender.
func (s *Server) CancelTender(ctx echo.Context) error {
	tenderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tender id: "+err.Error())
	}

	cmd, err := commands.NewCancelTenderCommand(tenderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.cancelTenderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOffer handles POST /api/v1/tenders/:id/offers - places a carrier bid.
func (s *Server) SubmitOffer(ctx echo.Context) error {
	tenderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tender id: "+err.Error())
	}

	var req SubmitOfferRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid carrier id: "+err.Error())
	}

	price, err := kernel.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewSubmitOfferCommand(tenderID, carrierID, price, req.ValidUntil, req.Conditions)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid bid: "+err.Error())
	}

	if err := s.submitOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusCreated)
}

// WithdrawOffer handles DELETE /api/v1/tenders/:id/offers/:carrierId - retracts
// a carrier's submitted bid.
func (s *Server) WithdrawOffer(ctx echo.Context) error {
	tenderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tender id: "+err.Error())
	}

	carrierID, err := kernel.UUIDFromString(ctx.Param("carrierId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid carrier id: "+err.Error())
	}

	cmd, err := commands.NewWithdrawOfferCommand(tenderID, carrierID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.withdrawOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOffer handles POST /api/v1/offers/:id/accept - marks a bid as the
// preferred one on its closed tender.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	offerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid offer id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOfferCommand(offerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOffer handles POST /api/v1/offers/:id/reject - declines a submitted bid.
func (s *Server) RejectOffer(ctx echo.Context) error {
	offerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid offer id: "+err.Error())
	}

	cmd, err := commands.NewRejectOfferCommand(offerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.rejectOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AwardTender handles POST /api/v1/tenders/:id/award - resolves the tender to
// the winning offer.
func (s *Server) AwardTender(ctx echo.Context) error {
	tenderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tender id: "+err.Error())
	}

	var req AwardTenderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	offerID, err := kernel.UUIDFromString(req.OfferID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid offer id: "+err.Error())
	}

	cmd, err := commands.NewAwardTenderCommand(tenderID, offerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.awardTenderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCascade handles GET /api/v1/tenders/:id/cascade - returns the whole
// cascade the tender belongs to, root first.
func (s *Server) GetCascade(ctx echo.Context) error {
	tenderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tender id: "+err.Error())
	}

	query, err := queries.NewGetCascadeQuery(tenderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cascade, err := s.getCascadeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, statusFromError(err), err.Error())
	}

	response := make([]Tender, len(cascade))
	for i, t := range cascade {
		response[i] = Tender{
			ID:              t.ID.String(),
			Number:          t.Number,
			Status:          t.Status,
			Mode:            t.Mode,
			Tier:            t.Tier,
			OfferDeadline:   t.OfferDeadline,
			TotalOffers:     t.TotalOffers,
			SubmittedOffers: t.SubmittedOffers,
		}
		if t.ParentTenderID != nil {
			parentID := t.ParentTenderID.String()
			response[i].ParentTenderID = &parentID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOpenTenders handles GET /api/v1/tenders/open - lists tenders accepting
// offers, most urgent deadline first.
func (s *Server) GetOpenTenders(ctx echo.Context) error {
	tenders, err := s.getOpenTendersHandler.Handle(ctx.Request().Context(), queries.NewGetOpenTendersQuery())
	if err != nil {
		return errorResponse(ctx, statusFromError(err), "Failed to retrieve open tenders")
	}

	response := make([]Tender, len(tenders))
	for i, t := range tenders {
		response[i] = Tender{
			ID:              t.ID.String(),
			Number:          t.Number,
			OrderID:         t.OrderID.String(),
			Tier:            t.Tier,
			OfferDeadline:   t.OfferDeadline,
			TotalOffers:     t.TotalOffers,
			SubmittedOffers: t.SubmittedOffers,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func optionalUUID(s *string) (*kernel.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseUUIDs(ss []string) ([]kernel.UUID, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	ids := make([]kernel.UUID, 0, len(ss))
	for _, s := range ss {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
