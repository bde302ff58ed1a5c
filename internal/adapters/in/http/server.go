package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Commands groups the write use cases the HTTP API exposes.
type Commands struct {
	Register          commands.RegisterUserCommandHandler
	Login             commands.LoginCommandHandler
	AdminLogin        commands.AdminLoginCommandHandler
	ChangePassword    commands.ChangePasswordCommandHandler
	UpdateProfile     commands.UpdateProfileCommandHandler
	ChangeUserRole    commands.ChangeUserRoleCommandHandler
	SetUserStatus     commands.SetUserStatusCommandHandler
	DeleteUser        commands.DeleteUserCommandHandler
	CreateAddress     commands.CreateAddressCommandHandler
	UpdateAddress     commands.UpdateAddressCommandHandler
	DeleteAddress     commands.DeleteAddressCommandHandler
	SetDefault        commands.SetDefaultAddressCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	ToggleMenuItem    commands.ToggleMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	Reorder           commands.ReorderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
}

// Queries groups the read models the HTTP API exposes.
type Queries struct {
	UserProfile    queries.GetUserProfileQueryHandler
	ListUsers      queries.ListUsersQueryHandler
	Addresses      queries.ListAddressesQueryHandler
	MenuItems      queries.ListMenuItemsQueryHandler
	OrderDetails   queries.GetOrderDetailsQueryHandler
	OrderStatus    queries.GetOrderStatusQueryHandler
	Orders         queries.ListOrdersQueryHandler
	OrderStats     queries.GetOrderStatsQueryHandler
	DashboardStats queries.GetDashboardStatsQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	commands Commands
	queries  Queries
	tokens   *TokenIssuer
	cookies  CookieSettings
	now      func() time.Time
}

func NewServer(cmds Commands, qs Queries, tokens *TokenIssuer, cookies CookieSettings) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		tokens:   tokens,
		cookies:  cookies,
		now:      time.Now,
	}
}

// Register mounts the API under /api/v1 plus a health probe.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", s.RegisterUser)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)

	me := api.Group("/user", s.requireAuth)
	me.GET("/me", s.Me)
	me.PUT("/change-password", s.ChangePassword)
	me.PUT("/update-profile", s.UpdateProfile)

	addresses := api.Group("/address", s.requireAuth)
	addresses.POST("/create", s.CreateAddress)
	addresses.GET("/all", s.ListAddresses)
	addresses.GET("/default", s.GetDefaultAddress)
	addresses.PUT("/update/:id", s.UpdateAddress)
	addresses.PUT("/:id/default", s.SetDefaultAddress)
	addresses.DELETE("/delete/:id", s.DeleteAddress)

	menu := api.Group("/menu-item")
	menu.GET("/all", s.ListMenuItems)
	menu.GET("/item/:id", s.GetMenuItem)
	menu.GET("/popular", s.PopularMenuItems)
	menu.GET("/new", s.NewMenuItems)
	menu.GET("/price-range", s.MenuItemsByPriceRange)
	menu.GET("/category/:category", s.MenuItemsByCategory)
	menu.GET("/most-rated/:rating", s.MostRatedMenuItems)

	orders := api.Group("/order", s.requireAuth)
	orders.POST("/place-new", s.PlaceOrder)
	orders.GET("/my-orders", s.MyOrders)
	orders.GET("/status/:id", s.OrderStatus)
	orders.GET("/details/:id", s.OrderDetails)
	orders.PATCH("/cancel/:id", s.CancelOrder)
	orders.DELETE("/delete/:id", s.DeleteOrder)
	orders.POST("/re-order/:id", s.Reorder)

	admin := api.Group("/admin")
	admin.POST("/login", s.AdminLogin)

	restricted := admin.Group("", s.requireAuth, s.requireAdmin)
	restricted.GET("/user/all", s.ListUsers)
	restricted.GET("/user/customers", s.ListCustomers)
	restricted.GET("/user/:id", s.GetUser)
	restricted.PATCH("/user/:id/block", s.BlockUser)
	restricted.PATCH("/user/:id/unblock", s.UnblockUser)
	restricted.PATCH("/user/:id/role", s.ChangeUserRole)
	restricted.DELETE("/user/:id/delete-profile", s.DeleteUser)

	restricted.POST("/menu-item/create", s.CreateMenuItem)
	restricted.GET("/menu-item/all", s.AdminListMenuItems)
	restricted.GET("/menu-item/:id", s.AdminGetMenuItem)
	restricted.PATCH("/menu-item/update/:id", s.UpdateMenuItem)
	restricted.PATCH("/menu-item/toggle/:id", s.ToggleMenuItem)
	restricted.DELETE("/menu-item/delete/:id", s.DeleteMenuItem)

	restricted.GET("/order/all", s.AllOrders)
	restricted.GET("/order/:id", s.AdminOrderDetails)
	restricted.PATCH("/order/update-status/:id", s.UpdateOrderStatus)
	restricted.DELETE("/order/delete/:id", s.AdminDeleteOrder)
	restricted.GET("/orders/stats", s.OrderStats)
	restricted.GET("/stats/all", s.DashboardStats)
}
