package main

import (
	"fmt"
	"os"

	"github.com/mltpascual/ordertaker/pkg/server"
	"github.com/mltpascual/ordertaker/pkg/services/config"
	menusvc "github.com/mltpascual/ordertaker/pkg/services/menu"
	orderssvc "github.com/mltpascual/ordertaker/pkg/services/orders"
	reportsvc "github.com/mltpascual/ordertaker/pkg/services/report"
	mongodb "github.com/mltpascual/ordertaker/pkg/store/mongo"
	menustore "github.com/mltpascual/ordertaker/pkg/store/mongo/menu"
	ordersstore "github.com/mltpascual/ordertaker/pkg/store/mongo/orders"
	rediscache "github.com/mltpascual/ordertaker/pkg/store/redis"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the order taker API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the yaml config file (environment variables used when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	return run(cmd, logger, cfg)
}

func run(cmd *cobra.Command, logger zerolog.Logger, cfg *config.Config) error {
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		logger = logger.Level(level)
	}

	ctx := logger.WithContext(cmd.Context())

	db, err := mongodb.NewDB(ctx, mongodb.Settings{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		if err := db.Close(ctx); err != nil {
			logger.Warn().Err(err).Msg("mongo close failed")
		}
	}()

	ordersStore := ordersstore.NewStore(db)
	menuStore := menustore.NewStore(db)

	orderService := orderssvc.NewService(ordersStore)
	menuService := menusvc.NewService(menuStore)

	var cache reportsvc.Cache
	if cfg.Redis.Enabled {
		redisCache := rediscache.NewCache(rediscache.Settings{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, report caching disabled")
		} else {
			cache = redisCache
			defer func() {
				if err := redisCache.Close(); err != nil {
					logger.Warn().Err(err).Msg("redis close failed")
				}
			}()
		}
	}

	reportService := reportsvc.NewService(ordersStore, menuService, cache)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Orders:  orderService,
			Menu:    menuService,
			Reports: reportService,
		},
	})

	return api.Start()
}
