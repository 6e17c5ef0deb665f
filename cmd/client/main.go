package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Totarae/URLShortenerClient/internal/client"
	"github.com/Totarae/URLShortenerClient/internal/clipboard"
	"github.com/Totarae/URLShortenerClient/internal/config"
	"github.com/Totarae/URLShortenerClient/internal/controller"
	"github.com/Totarae/URLShortenerClient/internal/handlers"
	"github.com/Totarae/URLShortenerClient/internal/logger"
	"github.com/Totarae/URLShortenerClient/internal/router"
	"github.com/Totarae/URLShortenerClient/internal/tui"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// listen открывает слушатель веб-интерфейса.
var listen = net.Listen

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("Ошибка инициализации логгера", zap.Error(err))
	}
	defer log.Sync()

	log.Info("Клиент запущен",
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.String("ui_mode", cfg.UIMode),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Клиент остановлен с ошибкой", zap.Error(err))
		return
	}
	log.Info("Клиент остановлен")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	api := client.New(cfg.APIBaseURL, log)
	probeBackend(ctx, api, log)

	ctrl := controller.New(api, clipboard.NewSystem(), log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = ctrl.Run(ctx)
	}()

	var err error
	switch cfg.UIMode {
	case config.ModeWeb:
		var ln net.Listener
		ln, err = listen("tcp", cfg.ListenAddress)
		if err != nil {
			break
		}
		log.Info("Веб-интерфейс доступен", zap.String("address", ln.Addr().String()))
		err = serveWeb(ctx, ln, router.NewRouter(handlers.NewHandler(ctrl, log), log), log)
	default:
		err = tui.Run(ctx, ctrl)
	}

	cancel()
	<-loopDone
	return err
}

// probeBackend только пишет в лог, доступен ли сервис; работу клиента не блокирует.
func probeBackend(ctx context.Context, api *client.Client, log *zap.Logger) {
	health, err := api.Health(ctx)
	if err != nil {
		log.Warn("Сервис сокращения недоступен", zap.Error(err))
		return
	}
	log.Info("Сервис сокращения доступен",
		zap.String("status", health.Status),
		zap.String("storage", health.Storage),
	)
}

// serveWeb обслуживает ln до отмены ctx, затем корректно останавливает сервер.
func serveWeb(ctx context.Context, ln net.Listener, handler http.Handler, log *zap.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Остановка веб-интерфейса")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
