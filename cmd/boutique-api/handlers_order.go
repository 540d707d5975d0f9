package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmdupont/boutique-api/internal/apperr"
	"github.com/lmdupont/boutique-api/internal/httpx"
	"github.com/lmdupont/boutique-api/internal/order"
	"github.com/lmdupont/boutique-api/internal/product"
)

// createOrderHandler godoc
// @Summary  Crée une commande
// @Description  Le total vaut la somme des prix unitaires (un par unité commandée) majorée de 20% de TVA, figée à la création.
// @Accept   json
// @Produce  json
// @Param    payload  body  order.CreateOrderRequest  true  "commande"
// @Success  201  {object}  order.Order
// @Failure  400  {object}  product.HTTPError
// @Failure  404  {object}  product.HTTPError
// @Router   /orders [post]
func createOrderHandler(orders order.Repository, products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, apperr.MsgInvalid)
			return
		}
		if err := order.ValidateCreate(req); err != nil {
			writeError(c, err)
			return
		}

		prices, err := products.PricesByID(c.Request.Context(), req.ProductIDs)
		if err != nil {
			writeError(c, err)
			return
		}
		total, err := order.ComputeTotal(req.ProductIDs, prices)
		if err != nil {
			writeError(c, err)
			return
		}

		o := &order.Order{UserID: *req.UserID, ProductIDs: req.ProductIDs, Total: total}
		if err := orders.Create(c.Request.Context(), o); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// listOrdersHandler godoc
// @Summary  Liste les commandes
// @Produce  json
// @Success  200  {array}  order.Order
// @Router   /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if items == nil {
			items = []order.Order{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// getOrderHandler godoc
// @Summary  Récupère une commande
// @Param    id  path  int  true  "id de la commande"
// @Produce  json
// @Success  200  {object}  order.Order
// @Failure  404  {object}  product.HTTPError
// @Router   /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// patchOrderHandler godoc
// @Summary  Met à jour le paiement d'une commande
// @Accept   json
// @Produce  json
// @Param    id       path  int                       true  "id de la commande"
// @Param    payload  body  order.UpdateOrderRequest  true  "paiement"
// @Success  200  {object}  order.Order
// @Failure  400  {object}  product.HTTPError
// @Failure  404  {object}  product.HTTPError
// @Router   /orders/{id} [patch]
func patchOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req order.UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, apperr.MsgInvalid)
			return
		}
		if err := order.ValidateUpdate(req); err != nil {
			writeError(c, err)
			return
		}

		o, err := repo.UpdatePayment(c.Request.Context(), id, *req.Payment)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// deleteOrderHandler godoc
// @Summary  Supprime une commande
// @Param    id  path  int  true  "id de la commande"
// @Success  204
// @Failure  404  {object}  product.HTTPError
// @Router   /orders/{id} [delete]
func deleteOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if !deleted {
			httpx.Error(c, http.StatusNotFound, apperr.MsgOrderNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
