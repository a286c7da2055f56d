package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shop_system/custom/catalog"
	"shop_system/custom/product"
	"shop_system/custom/util"
)

func main() {
	serverConfig := util.ServerConfig{}
	serverConfig.GetConf("./config/config.yaml")

	// Pure proxy, no database. All reads go to the external catalog API.
	productCtx := product.HandlerContext{}
	productCtx.InitialHandlerContext(catalog.NewClient(serverConfig.Catalog_api_url))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/products", productCtx.ListProducts)
	r.Get("/products/{id}", productCtx.GetProduct)

	log.Fatal(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", serverConfig.Product_port), r))
}
