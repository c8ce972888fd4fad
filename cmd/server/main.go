package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/di"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app, err := di.InitializeApp()
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = serve(ctx, app)
	stop()
	app.Close()

	if err != nil {
		app.Logger.Error("http_server_failed", "err", err)
		os.Exit(1)
	}
}

// serve 는 ctx 가 취소될 때까지 서버를 돌리고, 취소되면 진행 중인 요청을 마무리한 뒤 반환한다.
func serve(ctx context.Context, app *di.App) error {
	config.LogEnvStatus(app.Config, app.Logger)
	app.Logger.Info(
		"http_server_start",
		"addr", app.Server.Addr,
		"http2", app.Config.HTTP.HTTP2Enabled,
		"leetcode_url", app.Config.LeetCode.GraphQLURL,
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return ignoreClosed(err)
	case <-ctx.Done():
	}

	app.Logger.Info("http_server_shutdown_signal", "cause", context.Cause(ctx))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("http_server_shutdown_failed", "err", err)
		_ = app.Server.Close()
	}

	return ignoreClosed(<-serverErr)
}

func ignoreClosed(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("listen: %w", err)
}
