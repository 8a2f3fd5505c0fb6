package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"leiriarte-backend/internal/models"
	"leiriarte-backend/internal/store"
)

type ProductHandler struct {
	store store.Store
}

func NewProductHandler(st store.Store) *ProductHandler {
	return &ProductHandler{store: st}
}

// ListProducts handles GET /api/products. Optional category and featured
// query params are ANDed into an exact-match filter; raw documents are
// mapped to products field by field so a partial document never fails
// the whole listing.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := bson.M{}

	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if featured := c.Query("featured"); featured != "" {
		value, err := strconv.ParseBool(featured)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "featured must be a boolean"})
			return
		}
		filter["featured"] = value
	}

	docs, err := h.store.GetDocuments(c.Request.Context(), store.ProductCollection, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, models.ProductFromDocument(doc))
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	product := in.ToProduct()
	if err := h.store.CreateDocument(c.Request.Context(), store.ProductCollection, product); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{OK: true})
}
