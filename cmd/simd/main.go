// Command simd serves headless simulation sessions over gRPC.
package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"google.golang.org/grpc"

	pb "github.com/jpritikin/urbb-web-sub002/gen/simpb"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/session"
	"github.com/jpritikin/urbb-web-sub002/internal/simserver"
)

// #region config

type config struct {
	ListenAddr string `env:"SIM_LISTEN_ADDR" envDefault:"localhost:50061"`
	DBPath     string `env:"SIM_DB" envDefault:"sessions.db"`
	// Persist controls whether closed sessions are written to the DB.
	Persist bool `env:"SIM_PERSIST" envDefault:"true"`
}

// #endregion config

// #region main

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	var store *session.Store
	if cfg.Persist {
		var err error
		store, err = session.NewStore(cfg.DBPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer store.Close()
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.ListenAddr, err)
	}

	srv := grpc.NewServer()
	pb.RegisterSimServiceServer(srv, simserver.New(headless.DefaultConfig(), store))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("[SIMD] shutting down")
		srv.GracefulStop()
	}()

	log.Printf("[SIMD] listening on %s (db=%s persist=%v)", cfg.ListenAddr, cfg.DBPath, cfg.Persist)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main
