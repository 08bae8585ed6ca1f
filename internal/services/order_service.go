package services

import (
	"foodorder/internal/apperr"
	"foodorder/internal/models"
	"foodorder/internal/policy"
	"foodorder/internal/repository"
	"foodorder/internal/token"
)

// OrderLine is one requested line of a new order.
type OrderLine struct {
	FoodItemID uint
	Quantity   int
}

type OrderService interface {
	PlaceOrder(claims *token.Claims, lines []OrderLine, paymentMethod string) (*models.Order, error)
	ListOrders(claims *token.Claims) ([]models.Order, error)
	UpdateStatus(claims *token.Claims, orderID uint, status string) error
	UpdatePaymentMethod(claims *token.Claims, orderID uint, method string) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	foodRepo  repository.FoodItemRepository
}

func NewOrderService(orderRepo repository.OrderRepository, foodRepo repository.FoodItemRepository) OrderService {
	return &orderService{orderRepo: orderRepo, foodRepo: foodRepo}
}

// PlaceOrder validates the cart, freezes unit prices, and persists the order
// with its line items atomically. Every line must resolve to a currently
// available food item before anything is written.
func (s *orderService) PlaceOrder(claims *token.Claims, lines []OrderLine, paymentMethod string) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, apperr.New(apperr.Validation, "Order items are required")
	}
	if paymentMethod == "" {
		return nil, apperr.New(apperr.Validation, "Payment method is required")
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, apperr.Newf(apperr.Validation, "Quantity for food item %d must be at least 1", line.FoodItemID)
		}
	}

	if !policy.CanAccessCartAndPayment(policy.Role(claims.Role), policy.Location(claims.Location)) {
		return nil, apperr.New(apperr.Forbidden, "Team Members from America and Wakanda do not have access to cart and payment features.")
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.FoodItemID)
	}
	available, err := s.foodRepo.GetAvailableByIDs(ids)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to load food items", err)
	}
	byID := make(map[uint]models.FoodItem, len(available))
	for _, item := range available {
		byID[item.ID] = item
	}

	var total float64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		foodItem, ok := byID[line.FoodItemID]
		if !ok {
			return nil, apperr.Newf(apperr.NotFound, "Food item %d not found or unavailable", line.FoodItemID)
		}
		total += foodItem.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			FoodItemID: foodItem.ID,
			Quantity:   line.Quantity,
			Price:      foodItem.Price,
		})
	}

	order := &models.Order{
		UserID:        claims.UserID,
		Status:        string(models.OrderPending),
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		Items:         items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create order", err)
	}

	for i := range order.Items {
		if foodItem, ok := byID[order.Items[i].FoodItemID]; ok {
			order.Items[i].Name = foodItem.Name
			order.Items[i].Description = foodItem.Description
		}
	}
	return order, nil
}

// ListOrders returns the caller's visible orders newest first, line items
// joined with their current catalog name and description.
func (s *orderService) ListOrders(claims *token.Claims) ([]models.Order, error) {
	scope := policy.OrderVisibility(policy.Role(claims.Role), claims.UserID)

	var (
		orders []models.Order
		err    error
	)
	if scope.All {
		orders, err = s.orderRepo.GetAll()
	} else {
		orders, err = s.orderRepo.GetByUserID(scope.OwnerID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to load orders", err)
	}

	if err := s.attachItemDetails(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(claims *token.Claims, orderID uint, status string) error {
	if status == "" {
		return apperr.New(apperr.Validation, "Status is required")
	}
	if !policy.CanManageOrderStatus(policy.Role(claims.Role)) {
		return apperr.New(apperr.Forbidden, "Access denied. Insufficient permissions.")
	}

	rows, err := s.orderRepo.UpdateStatus(orderID, status)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "Failed to update order status", err)
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Order not found")
	}
	return nil
}

// UpdatePaymentMethod changes an order's payment label. Members may only
// touch their own orders; a non-owned order reports not found, the same as a
// missing one.
func (s *orderService) UpdatePaymentMethod(claims *token.Claims, orderID uint, method string) error {
	if method == "" {
		return apperr.New(apperr.Validation, "Payment method is required")
	}
	if !policy.CanAccessCartAndPayment(policy.Role(claims.Role), policy.Location(claims.Location)) {
		return apperr.New(apperr.Forbidden, "Team Members from America and Wakanda do not have access to cart and payment features.")
	}

	var (
		rows int64
		err  error
	)
	scope := policy.OrderVisibility(policy.Role(claims.Role), claims.UserID)
	if scope.All {
		rows, err = s.orderRepo.UpdatePaymentMethod(orderID, method)
	} else {
		rows, err = s.orderRepo.UpdatePaymentMethodOwned(orderID, method, scope.OwnerID)
	}
	if err != nil {
		return apperr.Wrap(apperr.Storage, "Failed to update payment method", err)
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Order not found")
	}
	return nil
}

// attachItemDetails fills line items with the referenced food item's name and
// description. Items disabled after the order was placed still resolve; only
// the unit price is frozen.
func (s *orderService) attachItemDetails(orders []models.Order) error {
	idSet := map[uint]struct{}{}
	for _, order := range orders {
		for _, item := range order.Items {
			idSet[item.FoodItemID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	foodItems, err := s.foodRepo.GetByIDs(ids)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "Failed to load order items", err)
	}
	byID := make(map[uint]models.FoodItem, len(foodItems))
	for _, item := range foodItems {
		byID[item.ID] = item
	}

	for i := range orders {
		for j := range orders[i].Items {
			if foodItem, ok := byID[orders[i].Items[j].FoodItemID]; ok {
				orders[i].Items[j].Name = foodItem.Name
				orders[i].Items[j].Description = foodItem.Description
			}
		}
	}
	return nil
}
