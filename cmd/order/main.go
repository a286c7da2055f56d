package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shop_system/custom/catalog"
	"shop_system/custom/order"
	"shop_system/custom/util"
	"shop_system/model"
)

func main() {
	serverConfig := util.ServerConfig{}
	serverConfig.GetConf("./config/config.yaml")
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		serverConfig.Postgres.Host, serverConfig.Postgres.Port, serverConfig.Postgres.Username, serverConfig.Postgres.Password, serverConfig.Postgres.Database)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database" + err.Error())
	}
	sqlDB, _ := db.DB()
	if sqlDB != nil {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// Auto migrate table schemas
	err = db.AutoMigrate(model.ALL_ORDER_TABLES...)
	if err != nil {
		panic("failed to migrate database" + err.Error())
	}

	// Initialize handler context. Product references resolve against the
	// product service, not the external catalog directly.
	orderCtx := order.HandlerContext{}
	orderCtx.InitialHandlerContext(db, catalog.NewClient(serverConfig.Product_service_url))

	// Start REST APIs
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/orders", orderCtx.CreateOrder)
	r.Get("/orders", orderCtx.ListOrders)
	r.Get("/orders/{id}", orderCtx.GetOrder)
	r.Put("/orders/{id}", orderCtx.UpdateOrder)
	r.Delete("/orders/{id}", orderCtx.DeleteOrder)

	log.Fatal(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", serverConfig.Order_port), r))
}
