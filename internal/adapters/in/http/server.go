package http

import (
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = &Server{}

// UseCases groups the command and query handlers the HTTP server delegates to.
type UseCases struct {
	// Courier registry
	CreateItem           commands.CreateItemCommandHandler
	ForwardItem          commands.ForwardItemCommandHandler
	AddItemCheckpoint    commands.AddItemCheckpointCommandHandler
	CompleteItemShipment commands.CompleteItemShipmentCommandHandler
	SetItemAsMissing     commands.SetItemAsMissingCommandHandler
	GetItem              queries.GetItemQueryHandler
	GetItemStatus        queries.GetItemStatusQueryHandler
	GetItemCheckpoints   queries.GetItemCheckpointsQueryHandler
	GetTotalItems        queries.GetTotalItemsQueryHandler

	// Container registry
	CreateContainer           commands.CreateContainerCommandHandler
	InitContainerShipment     commands.InitContainerShipmentCommandHandler
	CompleteContainerShipment commands.CompleteContainerShipmentCommandHandler
	EnqueuePendingItem        commands.EnqueuePendingItemCommandHandler
	GetContainer              queries.GetContainerQueryHandler
	GetPendingItems           queries.GetPendingItemsQueryHandler
	GetTotalContainers        queries.GetTotalContainersQueryHandler

	// Escrow
	GetBalance queries.GetBalanceQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	uc UseCases
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(uc UseCases) *Server {
	return &Server{uc: uc}
}

// CreateItem handles POST /api/v1/items - registers a new item.
func (s *Server) CreateItem(ctx echo.Context) error {
	var body servers.NewItem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	shipmentType, err := toShipmentType(body.ShipmentType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateItemCommand(
		shipmentType,
		body.Destination,
		body.Receiver,
		deref(body.ReceiverLocation),
		body.Payee,
		body.Price,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.uc.CreateItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toWireID(id)})
}

// GetTotalItems handles GET /api/v1/items/total.
func (s *Server) GetTotalItems(ctx echo.Context) error {
	total, err := s.uc.GetTotalItems.Handle(ctx.Request().Context(), queries.NewGetTotalItemsQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Total{Total: toWireID(total)})
}

// GetItem handles GET /api/v1/items/{id}.
func (s *Server) GetItem(ctx echo.Context, id servers.ID) error {
	query, err := queries.NewGetItemQuery(fromWireID(id))
	if err != nil {
		return writeError(ctx, err)
	}

	it, err := s.uc.GetItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Item{
		Id:               toWireID(it.ID),
		Registry:         it.Registry.String(),
		ShipmentType:     int(it.ShipmentType),
		Destination:      it.Destination.String(),
		Receiver:         it.Receiver.String(),
		ReceiverLocation: it.ReceiverLocation,
		Payee:            it.Payee.String(),
		Price:            it.Price,
		Status:           servers.ItemStatus(it.Status.String()),
		StatusCode:       int(it.Status),
		CheckpointCount:  it.CheckpointCount,
	})
}

// GetItemStatus handles GET /api/v1/items/{id}/status.
func (s *Server) GetItemStatus(ctx echo.Context, id servers.ID) error {
	query, err := queries.NewGetItemStatusQuery(fromWireID(id))
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := s.uc.GetItemStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusResponse{Status: status.String(), StatusCode: int(status)})
}

// GetItemCheckpoints handles GET /api/v1/items/{id}/checkpoints.
func (s *Server) GetItemCheckpoints(ctx echo.Context, id servers.ID) error {
	query, err := queries.NewGetItemCheckpointsQuery(fromWireID(id))
	if err != nil {
		return writeError(ctx, err)
	}

	checkpoints, err := s.uc.GetItemCheckpoints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCheckpoints(checkpoints))
}

// AddItemCheckpoint handles POST /api/v1/items/{id}/checkpoints.
func (s *Server) AddItemCheckpoint(ctx echo.Context, id servers.ID) error {
	var body servers.NewItemCheckpoint
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewAddItemCheckpointCommand(
		fromWireID(id),
		body.StatusLabel,
		deref(body.Description),
		deref(body.Handler),
		deref(body.Location),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.uc.AddItemCheckpoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ForwardItem handles POST /api/v1/items/{id}/forward - hands the item to a container registry.
func (s *Server) ForwardItem(ctx echo.Context, id servers.ID) error {
	var body servers.ForwardItem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewForwardItemCommand(
		fromWireID(id),
		body.TargetRegistry,
		body.Destination,
		body.StatusLabel,
		deref(body.Description),
		deref(body.Location),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.uc.ForwardItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteItemShipment handles POST /api/v1/items/{id}/complete.
func (s *Server) CompleteItemShipment(ctx echo.Context, id servers.ID) error {
	var body servers.CompleteItem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCompleteItemShipmentCommand(
		fromWireID(id),
		body.StatusLabel,
		deref(body.Description),
		deref(body.Location),
		body.Payment,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.uc.CompleteItemShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetItemAsMissing handles POST /api/v1/items/{id}/missing.
func (s *Server) SetItemAsMissing(ctx echo.Context, id servers.ID) error {
	cmd, err := commands.NewSetItemAsMissingCommand(fromWireID(id))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.uc.SetItemAsMissing.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateContainer handles POST /api/v1/containers - opens a container with the pending items.
func (s *Server) CreateContainer(ctx echo.Context) error {
	var body servers.NewContainer
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	shipmentType, err := toShipmentType(body.ShipmentType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateContainerCommand(
		shipmentType,
		body.Destination,
		body.Receiver,
		deref(body.LocationName),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.uc.CreateContainer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toWireID(id)})
}

// GetTotalContainers handles GET /api/v1/containers/total.
func (s *Server) GetTotalContainers(ctx echo.Context) error {
	total, err := s.uc.GetTotalContainers.Handle(ctx.Request().Context(), queries.NewGetTotalContainersQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Total{Total: toWireID(total)})
}

// GetContainer handles GET /api/v1/containers/{id}.
func (s *Server) GetContainer(ctx echo.Context, id servers.ID) error {
	query, err := queries.NewGetContainerQuery(fromWireID(id))
	if err != nil {
		return writeError(ctx, err)
	}

	c, err := s.uc.GetContainer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Container{
		Id:              toWireID(c.ID),
		Registry:        c.Registry.String(),
		ShipmentType:    int(c.ShipmentType),
		Destination:     c.Destination.String(),
		Receiver:        c.Receiver.String(),
		LocationName:    c.LocationName,
		Status:          servers.ContainerStatus(c.Status.String()),
		StatusCode:      int(c.Status),
		ItemCount:       c.ItemCount,
		CheckpointCount: c.CheckpointCount,
	})
}

// GetContainerItems handles GET /api/v1/containers/{id}/items.
func (s *Server) GetContainerItems(ctx echo.Context, id servers.ID) error {
	query, err := queries.NewGetContainerItemsQuery(fromWireID(id))
	if err != nil {
		return writeError(ctx, err)
	}

	refs, err := s.uc.GetContainer.HandleItems(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.ItemRef, len(refs))
	for i, ref := range refs {
		response[i] = servers.ItemRef{
			OriginRegistry: ref.OriginRegistry.String(),
			OriginItemId:   toWireID(ref.OriginItemID),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetContainerCheckpoints handles GET /api/v1/containers/{id}/checkpoints.
func (s *Server) GetContainerCheckpoints(ctx echo.Context, id servers.ID) error {
	query, err := queries.NewGetContainerCheckpointsQuery(fromWireID(id))
	if err != nil {
		return writeError(ctx, err)
	}

	checkpoints, err := s.uc.GetContainer.HandleCheckpoints(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCheckpoints(checkpoints))
}

// InitContainerShipment handles POST /api/v1/containers/{id}/init.
func (s *Server) InitContainerShipment(ctx echo.Context, id servers.ID) error {
	var body servers.NewContainerCheckpoint
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewInitContainerShipmentCommand(
		fromWireID(id),
		body.StatusLabel,
		deref(body.Description),
		deref(body.Location),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.uc.InitContainerShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteContainerShipment handles POST /api/v1/containers/{id}/complete.
func (s *Server) CompleteContainerShipment(ctx echo.Context, id servers.ID) error {
	var body servers.NewContainerCheckpoint
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCompleteContainerShipmentCommand(
		fromWireID(id),
		body.StatusLabel,
		deref(body.Description),
		deref(body.Location),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.uc.CompleteContainerShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EnqueuePendingItem handles POST /api/v1/pending-items - the handoff entry point called
// by courier registries.
func (s *Server) EnqueuePendingItem(ctx echo.Context) error {
	var body servers.PendingItem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewEnqueuePendingItemCommand(
		body.Destination,
		body.OriginRegistry,
		fromWireID(body.OriginItemId),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.uc.EnqueuePendingItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingItems handles GET /api/v1/pending-items.
func (s *Server) GetPendingItems(ctx echo.Context, params servers.GetPendingItemsParams) error {
	query, err := queries.NewGetPendingItemsQuery(deref(params.Destination))
	if err != nil {
		return writeError(ctx, err)
	}

	pending, err := s.uc.GetPendingItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.PendingItem, len(pending))
	for i, p := range pending {
		response[i] = servers.PendingItem{
			Destination:    p.Destination.String(),
			OriginRegistry: p.OriginRegistry.String(),
			OriginItemId:   toWireID(p.OriginItemID),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetBalance handles GET /api/v1/accounts/{address}/balance.
func (s *Server) GetBalance(ctx echo.Context, address string) error {
	query, err := queries.NewGetBalanceQuery(address)
	if err != nil {
		return writeError(ctx, err)
	}

	balance, err := s.uc.GetBalance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Balance{Address: query.Address().String(), Balance: balance})
}

func toCheckpoints(checkpoints []queries.CheckpointResponse) []servers.Checkpoint {
	response := make([]servers.Checkpoint, len(checkpoints))
	for i, cp := range checkpoints {
		response[i] = servers.Checkpoint{
			StatusLabel: cp.StatusLabel,
			Description: cp.Description,
			Handler:     cp.Handler.String(),
			Location:    cp.Location,
			RecordedAt:  cp.RecordedAt,
		}
	}
	return response
}
