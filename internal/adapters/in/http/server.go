// Package http is the inbound HTTP adapter of the dispatch service.
// It validates the wire format (time tokens, enum tags, unique regions and
// batch ids) and hands only well-typed values to the application layer.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the dispatch API over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	importCouriersHandler commands.ImportCouriersCommandHandler
	importOrdersHandler   commands.ImportOrdersCommandHandler
	updateCourierHandler  commands.UpdateCourierCommandHandler

	// Query handlers
	getCourierHandler queries.GetCourierQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	importCouriersHandler commands.ImportCouriersCommandHandler,
	importOrdersHandler commands.ImportOrdersCommandHandler,
	updateCourierHandler commands.UpdateCourierCommandHandler,
	getCourierHandler queries.GetCourierQueryHandler,
) *Server {
	return &Server{
		importCouriersHandler: importCouriersHandler,
		importOrdersHandler:   importOrdersHandler,
		updateCourierHandler:  updateCourierHandler,
		getCourierHandler:     getCourierHandler,
	}
}

// RegisterRoutes binds the API endpoints to the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/couriers", s.PostCouriers)
	e.PATCH("/couriers/:courier_id", s.PatchCourier)
	e.GET("/couriers/:courier_id", s.GetCourier)
	e.POST("/orders", s.PostOrders)
	e.GET("/health", s.Health)
}

// PostCouriers handles POST /couriers - bulk courier import.
// The whole batch is inserted atomically: an id collision with a stored
// courier rejects the batch with 409 and nothing is written.
func (s *Server) PostCouriers(ctx echo.Context) error {
	var request PostCouriersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	couriers := make([]*courier.Courier, 0, len(request.Data))
	for _, payload := range request.Data {
		aggregate, err := courierFromPayload(payload)
		if err != nil {
			return badRequest(ctx, "invalid courier data: "+err.Error())
		}
		couriers = append(couriers, aggregate)
	}

	cmd, err := commands.NewImportCouriersCommand(couriers)
	if err != nil {
		return badRequest(ctx, "invalid courier batch: "+err.Error())
	}

	if err := s.importCouriersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err, "failed to import couriers")
	}

	response := PostCouriersResponse{Couriers: make([]CourierIDPayload, 0, len(couriers))}
	for _, aggregate := range couriers {
		response.Couriers = append(response.Couriers, CourierIDPayload{ID: int64(aggregate.ID())})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// PatchCourier handles PATCH /couriers/:courier_id - partial profile update.
// Orders the new profile disqualifies are evicted back to the unassigned pool
// in the same transaction; the response carries the updated profile.
func (s *Server) PatchCourier(ctx echo.Context) error {
	courierID, err := parseID(ctx.Param("courier_id"))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	var request PatchCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	patch, err := patchFromRequest(request)
	if err != nil {
		return badRequest(ctx, "invalid courier data: "+err.Error())
	}

	cmd, err := commands.NewUpdateCourierCommand(courier.ID(courierID), patch)
	if err != nil {
		return badRequest(ctx, "invalid courier data: "+err.Error())
	}

	updated, err := s.updateCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err, "failed to update courier")
	}

	return ctx.JSON(http.StatusOK, CourierResponse{Data: courierToPayload(updated)})
}

// GetCourier handles GET /couriers/:courier_id - courier profile view.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := parseID(ctx.Param("courier_id"))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	query, err := queries.NewGetCourierQuery(courier.ID(courierID))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	view, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "courier not found")
		}
		return internalError(ctx, "failed to retrieve courier")
	}

	return ctx.JSON(http.StatusOK, CourierResponse{Data: CourierPayload{
		CourierID:    view.ID,
		CourierType:  view.TransportType,
		Regions:      view.Regions,
		WorkingHours: view.WorkingHours,
		Rating:       view.Rating,
		Earnings:     view.Earnings,
	}})
}

// PostOrders handles POST /orders - bulk order import, the mirror of PostCouriers.
func (s *Server) PostOrders(ctx echo.Context) error {
	var request PostOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orders := make([]*order.Order, 0, len(request.Data))
	for _, payload := range request.Data {
		aggregate, err := orderFromPayload(payload)
		if err != nil {
			return badRequest(ctx, "invalid order data: "+err.Error())
		}
		orders = append(orders, aggregate)
	}

	cmd, err := commands.NewImportOrdersCommand(orders)
	if err != nil {
		return badRequest(ctx, "invalid order batch: "+err.Error())
	}

	if err := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCommandError(ctx, err, "failed to import orders")
	}

	response := PostOrdersResponse{Orders: make([]OrderIDPayload, 0, len(orders))}
	for _, aggregate := range orders {
		response.Orders = append(response.Orders, OrderIDPayload{ID: int64(aggregate.ID())})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// courierFromPayload builds the courier aggregate from its wire form.
func courierFromPayload(payload CourierPayload) (*courier.Courier, error) {
	transportType, err := courier.NewTransportType(payload.CourierType)
	if err != nil {
		return nil, err
	}

	workingHours, err := kernel.ParseTimeWindows(payload.WorkingHours)
	if err != nil {
		return nil, err
	}

	return courier.NewCourier(
		courier.ID(payload.CourierID),
		transportType,
		payload.Regions,
		workingHours,
	)
}

// patchFromRequest converts the partial update body into a domain patch,
// preserving the absent-field semantics.
func patchFromRequest(request PatchCourierRequest) (courier.Patch, error) {
	var patch courier.Patch

	if request.CourierType != nil {
		transportType, err := courier.NewTransportType(*request.CourierType)
		if err != nil {
			return courier.Patch{}, err
		}
		patch.TransportType = &transportType
	}

	patch.Regions = request.Regions

	if request.WorkingHours != nil {
		workingHours, err := kernel.ParseTimeWindows(request.WorkingHours)
		if err != nil {
			return courier.Patch{}, err
		}
		patch.WorkingHours = workingHours
	}

	patch.Earnings = request.Earnings

	return patch, nil
}

// orderFromPayload builds the order aggregate from its wire form.
func orderFromPayload(payload OrderPayload) (*order.Order, error) {
	deliveryHours, err := kernel.ParseTimeWindows(payload.DeliveryHours)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		order.ID(payload.OrderID),
		payload.Weight,
		payload.Region,
		deliveryHours,
	)
}

// courierToPayload converts a courier aggregate to its wire form.
func courierToPayload(aggregate *courier.Courier) CourierPayload {
	return CourierPayload{
		CourierID:    int64(aggregate.ID()),
		CourierType:  aggregate.TransportType().String(),
		Regions:      aggregate.Regions(),
		WorkingHours: kernel.FormatTimeWindows(aggregate.WorkingHours()),
		Rating:       aggregate.Rating(),
		Earnings:     aggregate.Earnings(),
	}
}

// parseID parses a non-negative integer path parameter.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, errors.New("id must be non-negative")
	}
	return id, nil
}

// mapCommandError translates application errors into HTTP statuses.
// Transient store failures (lock timeouts, deadlocks, serialization
// conflicts) come back as 503 so clients know the request is retryable.
func mapCommandError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, message+": not found")
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return conflict(ctx, message+": id already exists")
	case postgres.IsTransient(err):
		return serviceUnavailable(ctx, message+": temporary failure, retry later")
	default:
		return internalError(ctx, message)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, "bad_request", message)
}

func notFound(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusNotFound, "not_found", message)
}

func conflict(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusConflict, "conflict", message)
}

func serviceUnavailable(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusServiceUnavailable, "service_unavailable", message)
}

func internalError(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusInternalServerError, "internal_error", message)
}

func errorJSON(ctx echo.Context, status int, code string, message string) error {
	return ctx.JSON(status, ErrorResponse{Error: ErrorPayload{Code: code, Message: message}})
}
