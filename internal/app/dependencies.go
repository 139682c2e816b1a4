package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/internal/config"
	"github.com/vacaytracker/vacaytracker/internal/events"
	"github.com/vacaytracker/vacaytracker/internal/storage"
	"github.com/vacaytracker/vacaytracker/internal/utils"
	"github.com/vacaytracker/vacaytracker/pkg/account"
	"github.com/vacaytracker/vacaytracker/pkg/budget"
	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/expense"
	"github.com/vacaytracker/vacaytracker/pkg/export"
	"github.com/vacaytracker/vacaytracker/pkg/notification"
	"github.com/vacaytracker/vacaytracker/pkg/stats"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	Bus      *events.Bus
	Resolver *category.Resolver

	NotificationCenter  *notification.Center
	NotificationHandler *notification.Handler

	CategoryHandler *category.Handler

	TripRepo    trip.Repo
	TripService *trip.ServiceImpl
	TripHandler *trip.Handler

	ExpenseService *expense.ServiceImpl
	ExpenseHandler *expense.Handler

	BudgetService *budget.ServiceImpl
	BudgetHandler *budget.Handler

	StatsService *stats.ServiceImpl
	StatsHandler *stats.Handler

	CSVRenderer   *export.CSVRenderer
	JSONRenderer  *export.JSONRenderer
	PDFRenderer   *export.PDFRenderer
	ExportService *export.ServiceImpl
	ExportHandler *export.Handler

	AccountGateway *account.SimulatedGateway
	AccountService *account.ServiceImpl
	AccountHandler *account.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(store *storage.LocalStore, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}
	deps.Bus = events.NewBus()
	deps.Resolver = category.NewResolver(category.Defaults())

	ttl := time.Duration(cfg.Notifications.TTLSeconds) * time.Second
	deps.NotificationCenter = notification.NewCenter(deps.Clock, ttl)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationCenter)

	deps.CategoryHandler = category.NewHandler(deps.Resolver)

	tripRepo, err := trip.NewStoreRepo(context.Background(), store)
	if err != nil {
		return nil, fmt.Errorf("initialize trip repository: %w", err)
	}
	deps.TripRepo = tripRepo
	deps.TripService = trip.NewServiceImpl(deps.TripRepo, deps.Resolver.Catalog(), deps.NotificationCenter, deps.Bus, deps.Clock)
	deps.TripHandler = trip.NewHandler(deps.TripService)

	deps.ExpenseService = expense.NewServiceImpl(deps.TripRepo, deps.Resolver, deps.NotificationCenter, deps.Bus, deps.Clock)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.BudgetService = budget.NewServiceImpl(deps.TripRepo, deps.NotificationCenter, deps.Bus)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.StatsService = stats.NewServiceImpl(deps.TripRepo, deps.Resolver)
	deps.StatsHandler = stats.NewHandler(deps.StatsService)

	deps.CSVRenderer = export.NewCSVRenderer(deps.Resolver)
	deps.JSONRenderer = export.NewJSONRenderer(deps.Resolver)
	deps.PDFRenderer = export.NewPDFRenderer(deps.Resolver)
	deps.ExportService = export.NewServiceImpl(deps.TripRepo, deps.CSVRenderer, deps.JSONRenderer, deps.PDFRenderer, cfg.Currency, deps.NotificationCenter, deps.Bus)
	deps.ExportHandler = export.NewHandler(deps.ExportService)

	latency := time.Duration(cfg.Gateway.LatencyMs) * time.Millisecond
	deps.AccountGateway = account.NewSimulatedGateway(latency)
	deps.AccountService = account.NewServiceImpl(deps.AccountGateway, deps.NotificationCenter)
	deps.AccountHandler = account.NewHandler(deps.AccountService)

	// Audit log of every domain event.
	deps.Bus.Subscribe("", func(e events.Event) {
		log.WithField("event", e.Type).Debugf("domain event: %+v", e.Data)
	})

	return deps, nil
}
