package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodorder/internal/apperr"
	"foodorder/internal/services"
)

type FoodHandler struct {
	catalogService services.CatalogService
	orderService   services.OrderService
	production     bool
}

func NewFoodHandler(catalogService services.CatalogService, orderService services.OrderService, production bool) *FoodHandler {
	return &FoodHandler{
		catalogService: catalogService,
		orderService:   orderService,
		production:     production,
	}
}

// GetItems lists the currently available catalog, any authenticated caller.
func (h *FoodHandler) GetItems(c *gin.Context) {
	items, err := h.catalogService.ListAvailable()
	if err != nil {
		writeError(c, err, h.production)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *FoodHandler) CreateItem(c *gin.Context) {
	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}
	if req.Name == "" || req.Price == nil {
		writeError(c, apperr.New(apperr.Validation, "Name and price are required"), h.production)
		return
	}

	item, err := h.catalogService.Create(CurrentClaims(c), req.Name, req.Description, *req.Price)
	if err != nil {
		writeError(c, err, h.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food item added successfully",
		"item":    item,
	})
}

func (h *FoodHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Available   *bool    `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	update := services.FoodItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available,
	}
	if err := h.catalogService.Update(CurrentClaims(c), id, update); err != nil {
		writeError(c, err, h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully"})
}

func (h *FoodHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Items []struct {
			FoodItemID uint `json:"food_item_id"`
			Quantity   int  `json:"quantity"`
		} `json:"items"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{FoodItemID: item.FoodItemID, Quantity: item.Quantity})
	}

	order, err := h.orderService.PlaceOrder(CurrentClaims(c), lines, req.PaymentMethod)
	if err != nil {
		writeError(c, err, h.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

func (h *FoodHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(CurrentClaims(c))
	if err != nil {
		writeError(c, err, h.production)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *FoodHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	if err := h.orderService.UpdateStatus(CurrentClaims(c), id, req.Status); err != nil {
		writeError(c, err, h.production)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}

func (h *FoodHandler) UpdateOrderPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	if err := h.orderService.UpdatePaymentMethod(CurrentClaims(c), id, req.PaymentMethod); err != nil {
		writeError(c, err, h.production)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method updated successfully"})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
