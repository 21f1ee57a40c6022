package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flavor-fusion-server/config"
	"flavor-fusion-server/database"
	"flavor-fusion-server/routes"
	"flavor-fusion-server/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.DBInstance(ctx, cfg.DatabaseURI())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("database: disconnect: %v", err)
		}
	}()

	if err := database.EnsureIndexes(ctx, client, cfg.DBName); err != nil {
		log.Fatalf("database: %v", err)
	}

	store := database.NewStore(client, cfg.DBName)
	router := routes.SetupRouter(cfg, store, services.NewOrderService(store))

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	if err := serve(ctx, srv); err != nil {
		log.Printf("server: %v", err)
	}
}

// serve runs srv until ctx is done or it fails to listen, then shuts it down.
func serve(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server started on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	var err error
	select {
	case <-ctx.Done():
		log.Println("shutting down")
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Printf("server: shutdown: %v", shutdownErr)
	}
	return err
}
