package cmd

import (
	"net"

	httpadapter "dealerorders/internal/adapters/in/http"
	"dealerorders/internal/adapters/out/notify"
	"dealerorders/internal/adapters/out/postgres"
	"dealerorders/internal/adapters/out/redislocker"
	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/application/usecases/queries"
	"dealerorders/internal/core/ports"
	"dealerorders/internal/jobs"

	"cloud.google.com/go/pubsub"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	locker     ports.Locker
	notifier   ports.Notifier
	log        logrus.FieldLogger
}

// NewCompositionRoot wires the adapters. redisClient and topic may be nil,
// in which case an in-process locker is used and no events are published.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	topic *pubsub.Topic,
	log logrus.FieldLogger,
) (CompositionRoot, error) {
	var locker ports.Locker
	if redisClient != nil {
		locker = redislocker.NewRedisLocker(redisClient, cfg.LockTTL, cfg.LockWait, log)
	} else {
		log.Warn("REDIS_ADDR is not set, order creation is serialized per process only")
		locker = redislocker.NewLocalLocker()
	}

	notifiers := []ports.Notifier{notify.NewLogNotifier(log)}
	if topic != nil {
		notifiers = append(notifiers, notify.NewPubSubNotifier(topic))
	}
	if cfg.SMTPHost != "" {
		mail, err := notify.NewMailNotifier(notify.MailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
			To:       cfg.MailTo,
		}, nil)
		if err != nil {
			return CompositionRoot{}, err
		}
		notifiers = append(notifiers, mail)
		log.WithField("smtp", net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort)).Info("mail notifications enabled")
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		locker:     locker,
		notifier:   notify.NewFanout(notifiers...),
		log:        log,
	}, nil
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dealerUoWFactory() commands.DealerUoWFactory {
	return FuncDealerUoWFactory(func() commands.DealerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) basketUoWFactory() commands.BasketUoWFactory {
	return FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCampaignCommandHandler() commands.CreateCampaignCommandHandler {
	return commands.NewCreateCampaignCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateDealerCommandHandler() commands.CreateDealerCommandHandler {
	return commands.NewCreateDealerCommandHandler(c.dealerUoWFactory())
}

func (c *CompositionRoot) CreateAddToBasketCommandHandler() commands.AddToBasketCommandHandler {
	return commands.NewAddToBasketCommandHandler(c.basketUoWFactory())
}

func (c *CompositionRoot) CreateSetBasketItemQuantityCommandHandler() commands.SetBasketItemQuantityCommandHandler {
	return commands.NewSetBasketItemQuantityCommandHandler(c.basketUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.log)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.log)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.log)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers builds every use case served by the HTTP adapter.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateCampaign:        c.CreateCreateCampaignCommandHandler(),
		CreateItem:            c.CreateCreateItemCommandHandler(),
		CreateDealer:          c.CreateCreateDealerCommandHandler(),
		AddToBasket:           c.CreateAddToBasketCommandHandler(),
		SetBasketItemQuantity: c.CreateSetBasketItemQuantityCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		PlaceOrder:            c.CreatePlaceOrderCommandHandler(),
		ApproveOrder:          c.CreateApproveOrderCommandHandler(),
		DispatchOrder:         c.CreateDispatchOrderCommandHandler(),

		GetCampaigns:              queries.NewGetCampaignsQueryHandler(c.gormDB),
		GetCampaignItems:          queries.NewGetCampaignItemsQueryHandler(c.gormDB),
		GetMyOrders:               queries.NewGetMyOrdersQueryHandler(c.gormDB),
		GetOrderDetails:           queries.NewGetOrderDetailsQueryHandler(c.gormDB),
		GetOrdersAwaitingApproval: queries.NewGetOrdersAwaitingApprovalQueryHandler(c.gormDB),
		GetOrdersAwaitingDispatch: queries.NewGetOrdersAwaitingDispatchQueryHandler(c.gormDB),
		GetOrderSheet:             queries.NewGetOrderSheetQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewLowStockAlertJob(c.CreateGetLowStockItemsQueryHandler(), c.cfg.LowStockCron, c.log),
	)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncDealerUoWFactory func() commands.DealerUoW

func (f FuncDealerUoWFactory) Create() commands.DealerUoW {
	return f()
}

type FuncBasketUoWFactory func() commands.BasketUoW

func (f FuncBasketUoWFactory) Create() commands.BasketUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
