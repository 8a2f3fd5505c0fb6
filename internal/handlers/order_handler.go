package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leiriarte-backend/internal/models"
	"leiriarte-backend/internal/store"
)

type OrderHandler struct {
	store store.Store
}

func NewOrderHandler(st store.Store) *OrderHandler {
	return &OrderHandler{store: st}
}

// CreateOrder handles POST /api/orders. The order is persisted as
// submitted: the total is not recomputed from the items and product
// references are not checked against the catalog.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var in models.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	order := in.ToOrder()
	if err := h.store.CreateDocument(c.Request.Context(), store.OrderCollection, order); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{OK: true})
}
