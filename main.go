package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/api/handlers"
	"github.com/linesmerrill/emergency-dashboard/api/scheduler"
	"github.com/linesmerrill/emergency-dashboard/config"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	//initialize token store, session and router
	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}

	s := scheduler.NewScheduler(
		a.Config.NotificationPollInterval,
		a.Session,
		viewmodels.NewNotifications(a.Gateway),
		a.Hub,
		a.Limiter,
	)
	s.Start()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", a.Config.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infow("emergency-dashboard is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
			"api", a.Config.APIBaseURL,
			"operator_auth", a.Config.OperatorAuthEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s.Stop()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("failed to shut down cleanly", "error", err)
	}
	a.Close(ctx)
	zap.S().Info("emergency-dashboard stopped")
}
