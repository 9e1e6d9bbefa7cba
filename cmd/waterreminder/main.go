package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"waterreminder/internal/app"
	"waterreminder/internal/app/deps"
	"waterreminder/internal/app/services"
	"waterreminder/internal/core/domain/reminder"
	sendreminder "waterreminder/internal/core/services/send_reminder"
	"waterreminder/internal/scheduler"

	dl "waterreminder/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	repeatScheduler := scheduler.New(
		deps.Logger,
		services.CheckReminder,
		services.SendReminder,
		reminder.Number(deps.Config.ReminderNumber),
		deps.Config.ReminderCronSpec,
		deps.Config.Location(),
	)
	if err := repeatScheduler.Start(); err != nil {
		panic(err)
	}

	if deps.Config.SendOnStart {
		go sendInitialReminder(deps, services)
	}

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, repeatScheduler, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("reminderNumber", deps.Config.ReminderNumber),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func sendInitialReminder(deps *deps.Deps, services *services.Services) {
	_, err := services.SendReminder.Run(
		context.Background(),
		sendreminder.Input{Number: reminder.Number(deps.Config.ReminderNumber)},
	)
	if err != nil {
		// The send service already logged the failure; the process keeps
		// serving webhooks either way.
		return
	}
}

func shutdown(
	ctx context.Context,
	server *http.Server,
	repeatScheduler *scheduler.Scheduler,
	deps *deps.Deps,
	shutDownDeps func(),
) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}
	repeatScheduler.Stop()

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
