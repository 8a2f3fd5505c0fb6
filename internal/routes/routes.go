package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"leiriarte-backend/internal/config"
	"leiriarte-backend/internal/handlers"
	"leiriarte-backend/internal/store"
)

func RegisterRoutes(router *gin.Engine, st store.Store, status handlers.StatusSource, cfg *config.Config) {
	router.Use(cors.Default())

	health := handlers.NewHealthHandler(status, cfg)
	products := handlers.NewProductHandler(st)
	orders := handlers.NewOrderHandler(st)

	router.GET("/", health.Root)
	router.GET("/test", health.Test)

	api := router.Group("/api")
	{
		api.GET("/products", products.ListProducts)
		api.POST("/products", products.CreateProduct)
		api.POST("/orders", orders.CreateOrder)
	}
}
