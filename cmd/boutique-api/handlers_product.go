package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lmdupont/boutique-api/internal/apperr"
	"github.com/lmdupont/boutique-api/internal/httpx"
	"github.com/lmdupont/boutique-api/internal/product"
	"github.com/lmdupont/boutique-api/internal/review"
)

// productDetail is the GET /products/:id shape: the product row plus its
// reviews and the distinct ids of the users who wrote them.
type productDetail struct {
	product.Product
	Reviews   []review.Review `json:"reviews"`
	Reviewers []int64         `json:"reviewers"`
}

// listProductsHandler godoc
// @Summary  Liste les produits
// @Param    name   query  string  false  "filtre par nom (sous-chaîne)"
// @Param    about  query  string  false  "filtre par description (sous-chaîne)"
// @Param    price  query  number  false  "prix maximum"
// @Produce  json
// @Success  200  {array}   product.Product
// @Failure  500  {object}  product.HTTPError
// @Router   /products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := product.Filter{Name: c.Query("name"), About: c.Query("about")}
		if raw := c.Query("price"); raw != "" {
			maxPrice, err := decimal.NewFromString(raw)
			if err != nil {
				httpx.Error(c, http.StatusBadRequest, apperr.MsgInvalid)
				return
			}
			f.MaxPrice = &maxPrice
		}

		items, err := repo.List(c.Request.Context(), f)
		if err != nil {
			writeError(c, err)
			return
		}
		if items == nil {
			items = []product.Product{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// getProductHandler godoc
// @Summary  Récupère un produit avec ses avis
// @Param    id  path  int  true  "id du produit"
// @Produce  json
// @Success  200  {object}  productDetail
// @Failure  404  {object}  product.HTTPError
// @Router   /products/{id} [get]
func getProductHandler(products product.Repository, reviews review.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		p, err := products.GetByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		rvs, err := reviews.ListByProduct(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if rvs == nil {
			rvs = []review.Review{}
		}

		reviewers := make([]int64, 0, len(rvs))
		seen := make(map[int64]bool, len(rvs))
		for _, rv := range rvs {
			if !seen[rv.UserID] {
				seen[rv.UserID] = true
				reviewers = append(reviewers, rv.UserID)
			}
		}

		c.JSON(http.StatusOK, productDetail{Product: *p, Reviews: rvs, Reviewers: reviewers})
	}
}

// createProductHandler godoc
// @Summary  Crée un produit
// @Accept   json
// @Produce  json
// @Param    payload  body  product.CreateProductRequest  true  "produit"
// @Success  201  {object}  product.Product
// @Failure  400  {object}  product.HTTPError
// @Router   /products [post]
func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, apperr.MsgInvalid)
			return
		}
		if err := product.ValidateCreate(req); err != nil {
			writeError(c, err)
			return
		}

		p := &product.Product{Name: req.Name, About: req.About, Price: *req.Price}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// patchProductHandler godoc
// @Summary  Met à jour un produit (partiel)
// @Accept   json
// @Produce  json
// @Param    id       path  int                           true  "id du produit"
// @Param    payload  body  product.UpdateProductRequest  true  "champs à modifier"
// @Success  200  {object}  product.Product
// @Failure  400  {object}  product.HTTPError
// @Failure  404  {object}  product.HTTPError
// @Router   /products/{id} [patch]
func patchProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req product.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, apperr.MsgInvalid)
			return
		}
		if err := product.ValidateUpdate(req); err != nil {
			writeError(c, err)
			return
		}

		p, err := repo.Update(c.Request.Context(), id, req.Name, req.Price)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// deleteProductHandler godoc
// @Summary  Supprime un produit
// @Param    id  path  int  true  "id du produit"
// @Success  204
// @Failure  404  {object}  product.HTTPError
// @Router   /products/{id} [delete]
func deleteProductHandler(repo product.Repository) gin.HandlerFunc {
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
			httpx.Error(c, http.StatusNotFound, apperr.MsgProductNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
