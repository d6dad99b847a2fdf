package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout      = 5 * time.Second
	deleteWebhookTimeout = 10 * time.Second
)

// runServices блокирует до отмены ctx или первой фатальной ошибки
func (a *App) runServices(ctx context.Context, deps *Dependencies) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.serveHTTP(deps.HTTPServer)
	})

	if deps.TelegramPoller != nil {
		g.Go(func() error {
			return a.runPolling(gCtx, deps)
		})
	} else {
		a.Log.Info("telegram updates mode: webhook", "webhook_url", a.Cfg.Telegram.WebhookURL)
	}

	if err := deps.JobScheduler.Start(gCtx); err != nil {
		a.Log.Error("failed to start job scheduler", "error", err)
	}

	g.Go(func() error {
		<-gCtx.Done()
		a.shutdown(deps)
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}
	return nil
}

func (a *App) serveHTTP(srv *http.Server) error {
	a.Log.Info("starting http server", "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// shutdown порядок важен: сначала перестаём принимать обновления, потом ждём джобы
func (a *App) shutdown(deps *Dependencies) {
	a.Log.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := deps.HTTPServer.Shutdown(ctx); err != nil {
		a.Log.Error("failed to shutdown http server", "error", err)
	}

	deps.JobScheduler.Wait()

	if deps.Cache != nil {
		if err := deps.Cache.Close(); err != nil {
			a.Log.Error("failed to close cache", "error", err)
		}
	}

	a.Log.Info("application shutdown completed")
}

// runPolling режим для локальной разработки. Webhook снимается заранее,
// иначе getUpdates отвечает 409.
func (a *App) runPolling(ctx context.Context, deps *Dependencies) error {
	deleteCtx, cancel := context.WithTimeout(ctx, deleteWebhookTimeout)
	err := deps.TelegramClient.DeleteWebhook(deleteCtx)
	cancel()

	if err != nil {
		a.Log.Warn("failed to delete webhook, continuing anyway", "error", err)
	}

	if err := deps.TelegramPoller.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("telegram polling error: %w", err)
	}
	return nil
}
