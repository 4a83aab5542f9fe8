package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hasselmann007-dev/pink-store-v2/catalog"
)

// ProductController serves the read-only product catalog.
type ProductController struct {
	catalog *catalog.Catalog
}

// NewProductController creates a new ProductController.
func NewProductController(cat *catalog.Catalog) *ProductController {
	return &ProductController{catalog: cat}
}

// ListProducts handles GET /api/products
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "products": pc.catalog.List()})
}

// GetProduct handles GET /api/products/:id
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	product, err := pc.catalog.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Produto não encontrado"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Erro interno no servidor"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "product": product})
}
