package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lmdupont/boutique-api/internal/httpx"
	"github.com/lmdupont/boutique-api/internal/order"
	"github.com/lmdupont/boutique-api/internal/product"
	"github.com/lmdupont/boutique-api/internal/review"
)

func newRouter(log *slog.Logger, products product.Repository, orders order.Repository, reviews review.Repository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/products", listProductsHandler(products))
	r.GET("/products/:id", getProductHandler(products, reviews))
	r.POST("/products", createProductHandler(products))
	r.PATCH("/products/:id", patchProductHandler(products))
	r.DELETE("/products/:id", deleteProductHandler(products))

	r.GET("/orders", listOrdersHandler(orders))
	r.GET("/orders/:id", getOrderHandler(orders))
	r.POST("/orders", createOrderHandler(orders, products))
	r.PATCH("/orders/:id", patchOrderHandler(orders))
	r.DELETE("/orders/:id", deleteOrderHandler(orders))

	r.GET("/reviews", listReviewsHandler(reviews))
	r.GET("/reviews/:id", getReviewHandler(reviews))
	r.POST("/reviews", createReviewHandler(reviews))
	r.PATCH("/reviews/:id", patchReviewHandler(reviews))
	r.DELETE("/reviews/:id", deleteReviewHandler(reviews))

	r.GET("/soap", wsdlHandler())
	r.POST("/soap", soapCreateProductHandler(products))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
