package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/tg-bots/natal-bot/internal/adapters/primary/http"
	healthcheckController "github.com/admin/tg-bots/natal-bot/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/admin/tg-bots/natal-bot/internal/adapters/primary/http/controllers/telegram"
	alerterAdapter "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/alerter"
	astroApiAdapter "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/astroApi"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/nominatim"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/inmemory"
	redisAdapter "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/redis"
	tgAdapter "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/tzfinder"
	"github.com/admin/tg-bots/natal-bot/internal/ports/cache"
	"github.com/admin/tg-bots/natal-bot/internal/ports/repository"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
	alerterService "github.com/admin/tg-bots/natal-bot/internal/services/alerter"
	astroApiService "github.com/admin/tg-bots/natal-bot/internal/services/astroApi"
	jobScheduler "github.com/admin/tg-bots/natal-bot/internal/services/jobs"
	placeService "github.com/admin/tg-bots/natal-bot/internal/services/place"
	telegramService "github.com/admin/tg-bots/natal-bot/internal/services/telegram"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/chart"
)

type Dependencies struct {
	HTTPServer      *http.Server
	TelegramService *telegramService.Service
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller
	Cache           cache.Cache // nil, если redis выключен
	JobScheduler    *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	sharedCache := a.initRedis(ctx)
	alerterSvc := alerterService.New(alerterAdapter.NewClient(a.Cfg.Alerter, a.Log), a.Name, a.Log)

	resolver, err := a.initPlaceResolver(sharedCache)
	if err != nil {
		return nil, fmt.Errorf("failed to init place resolver: %w", err)
	}

	astroAPIClient := astroApiAdapter.NewClient(a.Cfg.AstroAPI, a.Log)
	chartEngine := chart.New(astroApiService.New(astroAPIClient))

	sessions := inmemory.NewSessionStore()

	tgClient := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)
	if err := a.registerBotCommands(ctx, tgClient); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	tgService := telegramService.New(tgClient, a.Log)
	natalUseCase := natal.New(sessions, resolver, chartEngine, tgService, alerterSvc, a.Log)
	tgService.SetBotService(natalUseCase)

	httpServer := a.initHTTP(tgService, sharedCache)
	poller, err := a.initTelegramMode(ctx, tgService, tgClient)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram mode: %w", err)
	}

	scheduler := a.initJobScheduler(alerterSvc, sessions, resolver)

	return &Dependencies{
		HTTPServer:      httpServer,
		TelegramService: tgService,
		TelegramClient:  tgClient,
		TelegramPoller:  poller,
		Cache:           sharedCache,
		JobScheduler:    scheduler,
	}, nil
}

// initRedis общий кэш мест, опциональный: без него работает только локальный
func (a *App) initRedis(ctx context.Context) cache.Cache {
	if a.Cfg.Redis == nil || !a.Cfg.Redis.Enabled {
		return nil
	}

	redisClient, err := a.Cfg.Redis.NewConnection(ctx)
	if err != nil {
		a.Log.Warn("failed to init redis cache, continuing without shared cache", "error", err)
		return nil
	}

	a.Log.Info("redis cache connected successfully")
	return redisAdapter.NewClient(redisClient)
}

// initPlaceResolver собирает геокодер, поиск зоны и кэш мест
func (a *App) initPlaceResolver(sharedCache cache.Cache) (*placeService.Resolver, error) {
	finder, err := tzfinder.New(a.Log)
	if err != nil {
		return nil, err
	}

	var placeCache cache.IPlaceCache = inmemory.NewPlaceCache()
	if sharedCache != nil {
		placeCache = placeService.NewLayeredCache(placeCache, sharedCache, a.Log)
	}

	geocoder := nominatim.NewClient(a.Cfg.Nominatim, a.Log)

	return placeService.New(placeCache, geocoder, finder, a.Cfg.Nominatim.Timeout, a.Log), nil
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(tgService *telegramService.Service, sharedCache cache.Cache) *http.Server {
	var pinger healthcheckController.Pinger // nil-интерфейс, если redis выключен
	if sharedCache != nil {
		pinger = sharedCache
	}

	controllers := []server.Controller{
		healthcheckController.New(a.Name, pinger, a.Log),
		telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initTelegramMode инициализирует режим работы Telegram (webhook или polling)
func (a *App) initTelegramMode(
	ctx context.Context,
	tgService *telegramService.Service,
	tgClient *tgAdapter.Client,
) (*tgAdapter.Poller, error) {
	a.Log.Info("telegram configuration",
		"use_webhook", a.Cfg.Telegram.IsWebhookEnabled(),
		"webhook_url", a.Cfg.Telegram.WebhookURL,
	)

	if a.Cfg.Telegram.IsWebhookEnabled() {
		if err := a.setupWebhook(ctx, tgClient); err != nil {
			return nil, fmt.Errorf("failed to setup webhook: %w", err)
		}
		return nil, nil // webhook режим, poller не нужен
	}

	a.Log.Warn("polling mode enabled - this should only be used for local development")
	return tgAdapter.NewPoller(tgClient, a.Cfg.Telegram, tgService.HandleUpdate, a.Log), nil
}

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(
	alerterSvc service.IAlerterService,
	sessions repository.ISessionRepo,
	resolver *placeService.Resolver,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerterSvc)

	scheduler.Register(jobScheduler.NewSessionExpirer(sessions, a.Cfg.SessionTTL, a.Log))
	a.Log.Info("session expirer job registered", "ttl", a.Cfg.SessionTTL)

	scheduler.Register(jobScheduler.NewPlaceCacheReporter(resolver, a.Log))
	a.Log.Info("place cache reporter job registered")

	return scheduler
}

// setupWebhook устанавливает webhook бота
func (a *App) setupWebhook(ctx context.Context, tgClient *tgAdapter.Client) error {
	webhookURL := fmt.Sprintf("%s/webhook/", a.Cfg.Telegram.WebhookURL)

	if err := tgClient.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
		a.Log.Error("failed to set webhook", "error", err, "webhook_url", webhookURL)
		return err
	}

	a.Log.Info("webhook set successfully", "webhook_url", webhookURL)
	return nil
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Build a natal chart"},
		{Command: "help", Description: "How the bot works"},
		{Command: "cancel", Description: "Cancel the current dialogue"},
	}

	return client.SetMyCommands(ctx, commands)
}
