package cmd

import (
	"log/slog"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/password"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	hasher     password.BcryptHasher
	publisher  ports.OrderEventPublisher
	kafka      *kafka.OrderEventPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hasher:     password.NewBcryptHasher(bcrypt.DefaultCost),
	}
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		c.kafka = kafka.NewOrderEventPublisher(brokers, config.KafkaOrderChangedTopic)
		c.publisher = c.kafka
	} else {
		logger.Warn("KAFKA_HOST is not set, order events will not be published")
	}
	return c
}

// Close releases the resources the root owns.
func (c *CompositionRoot) Close() error {
	if c.kafka != nil {
		return c.kafka.Close()
	}
	return nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCommands() httpadapter.Commands {
	users := c.userUoWFactory()
	addresses := c.addressUoWFactory()
	menus := c.menuUoWFactory()
	orders := c.orderUoWFactory()
	all := c.uowFactoryAll()

	return httpadapter.Commands{
		Register: commands.NewRegisterUserCommandHandler(
			users, c.hasher, services.NewRandomReferralCodeGenerator(), c.logger,
		),
		Login:             commands.NewLoginCommandHandler(users, c.hasher),
		AdminLogin:        commands.NewAdminLoginCommandHandler(users, c.hasher, c.config.AdminSecretKey),
		ChangePassword:    commands.NewChangePasswordCommandHandler(users, c.hasher),
		UpdateProfile:     commands.NewUpdateProfileCommandHandler(users),
		ChangeUserRole:    commands.NewChangeUserRoleCommandHandler(users),
		SetUserStatus:     commands.NewSetUserStatusCommandHandler(users),
		DeleteUser:        commands.NewDeleteUserCommandHandler(users),
		CreateAddress:     commands.NewCreateAddressCommandHandler(addresses),
		UpdateAddress:     commands.NewUpdateAddressCommandHandler(addresses),
		DeleteAddress:     commands.NewDeleteAddressCommandHandler(addresses),
		SetDefault:        commands.NewSetDefaultAddressCommandHandler(addresses),
		CreateMenuItem:    commands.NewCreateMenuItemCommandHandler(menus),
		UpdateMenuItem:    commands.NewUpdateMenuItemCommandHandler(menus),
		ToggleMenuItem:    commands.NewToggleMenuItemCommandHandler(menus),
		DeleteMenuItem:    commands.NewDeleteMenuItemCommandHandler(menus),
		PlaceOrder:        commands.NewPlaceOrderCommandHandler(all, c.publisher, c.logger),
		CancelOrder:       commands.NewCancelOrderCommandHandler(all, c.publisher, c.logger),
		DeleteOrder:       commands.NewDeleteOrderCommandHandler(orders, c.publisher, c.logger),
		Reorder:           commands.NewReorderCommandHandler(orders, c.publisher, c.logger),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(orders, c.publisher, c.logger),
	}
}

func (c *CompositionRoot) CreateQueries() httpadapter.Queries {
	return httpadapter.Queries{
		UserProfile:    queries.NewGetUserProfileQueryHandler(c.gormDB),
		ListUsers:      queries.NewListUsersQueryHandler(c.gormDB),
		Addresses:      queries.NewListAddressesQueryHandler(c.gormDB),
		MenuItems:      queries.NewListMenuItemsQueryHandler(c.gormDB),
		OrderDetails:   queries.NewGetOrderDetailsQueryHandler(c.gormDB),
		OrderStatus:    queries.NewGetOrderStatusQueryHandler(c.gormDB),
		Orders:         queries.NewListOrdersQueryHandler(c.gormDB),
		OrderStats:     queries.NewGetOrderStatsQueryHandler(c.gormDB),
		DashboardStats: queries.NewGetDashboardStatsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateServer() (*httpadapter.Server, error) {
	tokens, err := httpadapter.NewTokenIssuer(c.config.JWTSecret, c.config.SessionTTL)
	if err != nil {
		return nil, err
	}
	return httpadapter.NewServer(
		c.CreateCommands(),
		c.CreateQueries(),
		tokens,
		httpadapter.CookieSettings{Secure: c.config.CookieSecure},
	), nil
}

func (c *CompositionRoot) CreatePurgeCancelledOrdersCommandHandler() commands.PurgeCancelledOrdersCommandHandler {
	return commands.NewPurgeCancelledOrdersCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeCancelledOrdersCommandHandler(),
		c.config.OrderPurgeSchedule,
		c.config.CancelledOrderMaxAge,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
