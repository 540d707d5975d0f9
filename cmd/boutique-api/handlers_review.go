package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmdupont/boutique-api/internal/apperr"
	"github.com/lmdupont/boutique-api/internal/httpx"
	"github.com/lmdupont/boutique-api/internal/review"
)

// createReviewHandler godoc
// @Summary  Crée un avis
// @Description  Recalcule la moyenne des scores du produit dans la même transaction.
// @Accept   json
// @Produce  json
// @Param    payload  body  review.CreateReviewRequest  true  "avis"
// @Success  201  {object}  review.Review
// @Failure  400  {object}  product.HTTPError
// @Failure  404  {object}  product.HTTPError
// @Router   /reviews [post]
func createReviewHandler(repo review.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req review.CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, apperr.MsgInvalid)
			return
		}
		if err := review.ValidateCreate(req); err != nil {
			writeError(c, err)
			return
		}

		rv := &review.Review{
			UserID:    *req.UserID,
			ProductID: *req.ProductID,
			Score:     *req.Score,
			Content:   *req.Content,
		}
		if err := repo.Create(c.Request.Context(), rv); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rv)
	}
}

// listReviewsHandler godoc
// @Summary  Liste les avis
// @Produce  json
// @Success  200  {array}  review.Review
// @Router   /reviews [get]
func listReviewsHandler(repo review.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if items == nil {
			items = []review.Review{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// getReviewHandler godoc
// @Summary  Récupère un avis
// @Param    id  path  int  true  "id de l'avis"
// @Produce  json
// @Success  200  {object}  review.Review
// @Failure  404  {object}  product.HTTPError
// @Router   /reviews/{id} [get]
func getReviewHandler(repo review.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		rv, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rv)
	}
}

// patchReviewHandler godoc
// @Summary  Met à jour un avis (partiel)
// @Description  Recalcule la moyenne des scores du produit dans la même transaction.
// @Accept   json
// @Produce  json
// @Param    id       path  int                         true  "id de l'avis"
// @Param    payload  body  review.UpdateReviewRequest  true  "champs à modifier"
// @Success  200  {object}  review.Review
// @Failure  400  {object}  product.HTTPError
// @Failure  404  {object}  product.HTTPError
// @Router   /reviews/{id} [patch]
func patchReviewHandler(repo review.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req review.UpdateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, apperr.MsgInvalid)
			return
		}
		if err := review.ValidateUpdate(req); err != nil {
			writeError(c, err)
			return
		}

		rv, err := repo.Update(c.Request.Context(), id, req.Score, req.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rv)
	}
}

// deleteReviewHandler godoc
// @Summary  Supprime un avis
// @Description  Retire l'id de review_ids du produit et recalcule la moyenne dans la même transaction.
// @Param    id  path  int  true  "id de l'avis"
// @Success  204
// @Failure  404  {object}  product.HTTPError
// @Router   /reviews/{id} [delete]
func deleteReviewHandler(repo review.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := repo.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
