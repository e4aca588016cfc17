// Package http is the echo inbound adapter. It turns requests into commands
// and queries, runs them and maps results and domain errors to JSON.
package http

import (
	"context"
	"net/http"

	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/application/usecases/queries"
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type (
	CreateCampaignHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCampaignCommand) error
	}
	CreateItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateItemCommand) error
	}
	CreateDealerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDealerCommand) error
	}
	AddToBasketHandler interface {
		Handle(ctx context.Context, cmd commands.AddToBasketCommand) (*basket.BasketItem, error)
	}
	SetBasketItemQuantityHandler interface {
		Handle(ctx context.Context, cmd commands.SetBasketItemQuantityCommand) (*basket.BasketItem, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, []*basket.BasketItem, error)
	}
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}
	ApproveOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveOrderCommand) (*order.Order, error)
	}
	DispatchOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DispatchOrderCommand) (*order.Order, error)
	}

	GetCampaignsHandler interface {
		Handle(ctx context.Context, query queries.GetCampaignsQuery) ([]queries.CampaignView, error)
	}
	GetCampaignItemsHandler interface {
		Handle(ctx context.Context, query queries.GetCampaignItemsQuery) ([]queries.ItemView, error)
	}
	GetMyOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetMyOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetOrderDetailsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error)
	}
	GetOrdersAwaitingApprovalHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersAwaitingApprovalQuery) ([]queries.OrderSummary, error)
	}
	GetOrdersAwaitingDispatchHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersAwaitingDispatchQuery) ([]queries.OrderSummary, error)
	}
	GetOrderSheetHandler interface {
		Handle(ctx context.Context, query queries.GetOrderSheetQuery) (queries.OrderSheet, error)
	}
)

// Handlers bundles the use cases served over HTTP.
type Handlers struct {
	CreateCampaign        CreateCampaignHandler
	CreateItem            CreateItemHandler
	CreateDealer          CreateDealerHandler
	AddToBasket           AddToBasketHandler
	SetBasketItemQuantity SetBasketItemQuantityHandler
	CreateOrder           CreateOrderHandler
	PlaceOrder            PlaceOrderHandler
	ApproveOrder          ApproveOrderHandler
	DispatchOrder         DispatchOrderHandler

	GetCampaigns              GetCampaignsHandler
	GetCampaignItems          GetCampaignItemsHandler
	GetMyOrders               GetMyOrdersHandler
	GetOrderDetails           GetOrderDetailsHandler
	GetOrdersAwaitingApproval GetOrdersAwaitingApprovalHandler
	GetOrdersAwaitingDispatch GetOrdersAwaitingDispatchHandler
	GetOrderSheet             GetOrderSheetHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// Register mounts /health and the /api/v1 routes. Every /api/v1 route
// requires the X-User-ID header.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", RequireUser)

	api.GET("/campaigns", s.GetCampaigns)
	api.POST("/campaigns", s.CreateCampaign)
	api.GET("/campaigns/:id/items", s.GetCampaignItems)
	api.POST("/campaigns/:id/items", s.CreateItem)
	api.POST("/campaigns/:id/orders", s.CreateOrder)

	api.POST("/dealers", s.CreateDealer)

	api.POST("/basket", s.AddToBasket)
	api.PUT("/basket/:id", s.SetBasketItemQuantity)

	api.GET("/orders", s.GetMyOrders)
	api.GET("/orders/approval", s.GetOrdersAwaitingApproval)
	api.GET("/orders/dispatch", s.GetOrdersAwaitingDispatch)
	api.GET("/orders/:id", s.GetOrderDetails)
	api.GET("/orders/:id/sheet", s.GetOrderSheet)
	api.POST("/orders/:id/place", s.PlaceOrder)
	api.POST("/orders/:id/approve", s.ApproveOrder)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
}
