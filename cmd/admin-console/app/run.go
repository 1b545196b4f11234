package app

import (
	"context"
	"time"

	"github.com/Brayan008/cuack-stores/configs"
	adminhttp "github.com/Brayan008/cuack-stores/internal/adapter/http"
	"github.com/Brayan008/cuack-stores/internal/adapter/rest"
	"github.com/Brayan008/cuack-stores/internal/adapter/storage"
	"github.com/Brayan008/cuack-stores/internal/auth"
	"github.com/Brayan008/cuack-stores/internal/logging"
	"github.com/Brayan008/cuack-stores/internal/service"
	"github.com/Brayan008/cuack-stores/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init("admin-console", cfg.App.LogFile)

	// durable session storage: redis when configured, else process-local
	var sessions storage.SessionStore
	cleanup := func() {}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			return nil, nil, err
		}
		sessions = storage.NewRedisSessionStore(rdb)
		cleanup = func() { _ = rdb.Close() }
	} else {
		logger.Warn("no redis configured, sessions will not survive restarts")
		sessions = storage.NewMemorySessionStore()
	}

	st := store.New(sessions)

	ctrl := auth.NewController(auth.Auth0Config{
		Domain:      cfg.Auth0.Domain,
		ClientID:    cfg.Auth0.ClientID,
		RedirectURI: cfg.Auth0.RedirectURI,
		Scopes:      cfg.Auth0.Scopes,
	}, st, sessions)

	// rehydrate an existing session; expiry surfaces via the next 401
	if ctrl.Rehydrate(context.Background()) {
		logger.Info("session restored from storage", "user", st.Session().User.Email)
	}

	// gateway client: the store is both token source and the state any 401
	// must tear down
	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout, st, func() {
		st.Logout(context.Background())
	})

	inventory := service.NewInventory(client)
	orders := service.NewOrders(client)
	actions := store.NewActions(st, inventory, orders)

	router := adminhttp.NewRouter(
		adminhttp.NewHomeHandler(st),
		adminhttp.NewAuthHandler(ctrl),
		adminhttp.NewProductsHandler(st, actions, inventory, cfg.Inventory.LowStockThreshold),
		adminhttp.NewOrderFormHandler(st, actions),
		adminhttp.NewOrdersHandler(st, actions, orders, cfg.Orders.PageSize),
		st,
	)

	return &App{Router: router}, cleanup, nil
}
