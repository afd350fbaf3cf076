package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mltpascual/ordertaker/pkg/runtime/terminal"
	"github.com/mltpascual/ordertaker/pkg/services/config"
	menusvc "github.com/mltpascual/ordertaker/pkg/services/menu"
	reportsvc "github.com/mltpascual/ordertaker/pkg/services/report"
	mongodb "github.com/mltpascual/ordertaker/pkg/store/mongo"
	menustore "github.com/mltpascual/ordertaker/pkg/store/mongo/menu"
	ordersstore "github.com/mltpascual/ordertaker/pkg/store/mongo/orders"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := mongodb.NewDB(ctx, mongodb.Settings{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() { _ = db.Close(context.Background()) }()

	menuService := menusvc.NewService(menustore.NewStore(db))
	reportService := reportsvc.NewService(ordersstore.NewStore(db), menuService, nil)

	cli := terminal.NewCLI(terminal.Options{
		Reports: reportService,
		Output:  os.Stdout,
	})

	return cli.Execute()
}
