package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/goydb/alldocs/pkg/goydb"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := goydb.NewConfig()
	if err != nil {
		return err
	}
	cfg.ParseFlags()

	gdb, err := cfg.BuildDatabase()
	if err != nil {
		return err
	}
	defer gdb.Close()
	gdb.Handler = handlers.CombinedLoggingHandler(os.Stdout, gdb.Handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		return err
	}

	log.Printf("Listening on %s...", l.Addr())
	err = gdb.Serve(ctx, l)
	log.Printf("Stopped serving %s", gdb.Storage)
	return err
}
