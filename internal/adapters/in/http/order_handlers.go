package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type orderLineRequest struct {
	MenuItemID openapi_types.UUID `json:"menuItemId"`
	Quantity   *int               `json:"quantity"`
}

type placeOrderRequest struct {
	Items         []orderLineRequest  `json:"items"`
	PaymentMethod string              `json:"paymentMethod"`
	AddressID     *openapi_types.UUID `json:"addressId"`
}

func (r placeOrderRequest) items() ([]order.Item, error) {
	items := make([]order.Item, 0, len(r.Items))
	for _, line := range r.Items {
		menuItemID, err := kernel.UUIDFromGoogle(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		quantity := order.DefaultQuantity
		if line.Quantity != nil {
			quantity = *line.Quantity
		}
		item, err := order.NewItem(menuItemID, quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Server) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	items, err := req.items()
	if err != nil {
		return err
	}
	method, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return err
	}
	var addressID *kernel.UUID
	if req.AddressID != nil {
		id, err := kernel.UUIDFromGoogle(*req.AddressID)
		if err != nil {
			return err
		}
		addressID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, principal(c).UserID, items, method, addressID)
	if err != nil {
		return err
	}
	if err := s.commands.PlaceOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.orderCreated(c, orderID, "Order placed successfully")
}

func (s *Server) Reorder(c echo.Context) error {
	sourceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewReorderCommand(orderID, sourceID, principal(c).UserID)
	if err != nil {
		return err
	}
	if err := s.commands.Reorder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.orderCreated(c, orderID, "Order placed again successfully")
}

func (s *Server) orderCreated(c echo.Context, orderID kernel.UUID, message string) error {
	details, err := s.orderDetails(c, orderID, false)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, message, echo.Map{"order": details})
}

func (s *Server) orderDetails(c echo.Context, orderID kernel.UUID, asAdmin bool) (queries.GetOrderDetailsQueryResponse, error) {
	query, err := queries.NewGetOrderDetailsQuery(orderID, principal(c).UserID, asAdmin)
	if err != nil {
		return queries.GetOrderDetailsQueryResponse{}, err
	}
	return s.queries.OrderDetails.Handle(c.Request().Context(), query)
}

func (s *Server) OrderDetails(c echo.Context) error {
	return s.showOrder(c, false)
}

func (s *Server) AdminOrderDetails(c echo.Context) error {
	return s.showOrder(c, true)
}

func (s *Server) showOrder(c echo.Context, asAdmin bool) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	details, err := s.orderDetails(c, orderID, asAdmin)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order fetched", echo.Map{"order": details})
}

func (s *Server) OrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderStatusQuery(orderID, principal(c).UserID)
	if err != nil {
		return err
	}
	status, err := s.queries.OrderStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, status.Message, echo.Map{"status": status.Status, "orderStatus": status.Message})
}

func (s *Server) MyOrders(c echo.Context) error {
	query, err := queries.NewListMyOrdersQuery(principal(c).UserID)
	if err != nil {
		return err
	}
	return s.listOrders(c, query)
}

func (s *Server) AllOrders(c echo.Context) error {
	day, err := optionalDate(c, "date")
	if err != nil {
		return err
	}
	return s.listOrders(c, queries.NewListAllOrdersQuery(day))
}

func (s *Server) listOrders(c echo.Context, query queries.ListOrdersQuery) error {
	list, err := s.queries.Orders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Orders fetched", echo.Map{"count": len(list), "orders": list})
}

func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(orderID, principal(c).UserID)
	if err != nil {
		return err
	}
	refund, err := s.commands.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	details, err := s.orderDetails(c, orderID, false)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order cancelled successfully", echo.Map{
		"order":  details,
		"refund": refund.Decimal(),
	})
}

func (s *Server) DeleteOrder(c echo.Context) error {
	return s.deleteOrder(c, false)
}

func (s *Server) AdminDeleteOrder(c echo.Context) error {
	return s.deleteOrder(c, true)
}

func (s *Server) deleteOrder(c echo.Context, asAdmin bool) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(orderID, principal(c).UserID, asAdmin)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order deleted successfully", echo.Map{"id": orderID.String()})
}

func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	status, err := optionalQuery[string](c, "status")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, deref(status))
	if err != nil {
		return err
	}
	if err := s.commands.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	details, err := s.orderDetails(c, orderID, true)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order status updated", echo.Map{"order": details})
}

func (s *Server) OrderStats(c echo.Context) error {
	lastXDays, err := optionalQuery[int](c, "lastXDays")
	if err != nil {
		return err
	}
	days := 0
	if lastXDays != nil {
		days = *lastXDays
	}

	query, err := queries.NewGetOrderStatsQuery(days, s.now())
	if err != nil {
		return err
	}
	stats, err := s.queries.OrderStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order stats fetched", echo.Map{
		"stats":          stats.Stats,
		"lastXDaysStats": stats.LastXDaysStats,
		"lastXDays":      query.LastXDays(),
	})
}

func (s *Server) DashboardStats(c echo.Context) error {
	stats, err := s.queries.DashboardStats.Handle(c.Request().Context(), queries.NewGetDashboardStatsQuery(s.now()))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Dashboard stats fetched", echo.Map{"stats": stats})
}
