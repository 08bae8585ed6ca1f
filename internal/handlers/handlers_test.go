package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodorder/internal/handlers"
	"foodorder/internal/migrations"
	"foodorder/internal/repository"
	"foodorder/internal/services"
	"foodorder/internal/token"
)

// setupAPI builds the full router over an in-memory database loaded with the
// default seed users and menu.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db, true))

	tokens := token.NewService("test_secret")
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	catalogService := services.NewCatalogService(foodRepo, nil)
	orderService := services.NewOrderService(orderRepo, foodRepo)

	authHandler := handlers.NewAuthHandler(authService, false)
	foodHandler := handlers.NewFoodHandler(catalogService, orderService, false)

	router := gin.New()
	handlers.RegisterRoutes(router, tokens, authHandler, foodHandler)
	return router
}

func doJSON(router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(req, rec)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

// loginAs exchanges a seeded user's credentials for a token.
func loginAs(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, "login as %s: %s", email, rec.Body.String())
	tok, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestCORSPreflight(t *testing.T) {
	router := setupAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(req, rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthRequired(t *testing.T) {
	router := setupAPI(t)

	rec := doJSON(router, http.MethodGet, "/food/items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token required", decode(t, rec)["message"])

	rec = doJSON(router, http.MethodGet, "/food/items", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", decode(t, rec)["message"])
}

func TestLoginEndpoint(t *testing.T) {
	router := setupAPI(t)

	rec := doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"email": "thanos@nick.fury", "password": "password123"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Member", user["role"])
	assert.Equal(t, "India", user["location"])
	assert.NotContains(t, rec.Body.String(), "password")

	// Wrong password and unknown email are the same response.
	wrong := doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"email": "thanos@nick.fury", "password": "nope"})
	unknown := doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"email": "nobody@nick.fury", "password": "password123"})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())

	missing := doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"email": "thanos@nick.fury"})
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupAPI(t)

	rec := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Nick Fury", "email": "fury@shield.org", "password": "password123",
		"role": "Manager", "location": "India",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	badRole := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"name": "X", "email": "x@x.org", "password": "p", "role": "SuperAdmin", "location": "India",
	})
	assert.Equal(t, http.StatusBadRequest, badRole.Code)

	badLocation := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"name": "X", "email": "x@x.org", "password": "p", "role": "Member", "location": "Narnia",
	})
	assert.Equal(t, http.StatusBadRequest, badLocation.Code)

	duplicate := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Thanos Again", "email": "thanos@nick.fury", "password": "p", "role": "Member", "location": "India",
	})
	assert.Equal(t, http.StatusConflict, duplicate.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router := setupAPI(t)
	admin := loginAs(t, router, "marvel@nick.fury")
	member := loginAs(t, router, "thanos@nick.fury")

	rec := doJSON(router, http.MethodGet, "/food/items", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode(t, rec)["items"].([]interface{})
	assert.Len(t, items, 8)

	created := doJSON(router, http.MethodPost, "/food/items", admin, gin.H{
		"name": "Shawarma", "description": "Post-battle special", "price": 9.99,
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	forbidden := doJSON(router, http.MethodPost, "/food/items", member, gin.H{"name": "Nope", "price": 1.00})
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	noPrice := doJSON(router, http.MethodPost, "/food/items", admin, gin.H{"name": "Mystery Dish"})
	assert.Equal(t, http.StatusBadRequest, noPrice.Code)

	update := doJSON(router, http.MethodPut, "/food/items/1", admin, gin.H{"price": 13.49})
	assert.Equal(t, http.StatusOK, update.Code)

	missing := doJSON(router, http.MethodPut, "/food/items/9999", admin, gin.H{"price": 1.00})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestOrderEndpoints(t *testing.T) {
	router := setupAPI(t)
	manager := loginAs(t, router, "america@nick.fury") // Manager, America
	thanos := loginAs(t, router, "thanos@nick.fury")   // Member, India
	travis := loginAs(t, router, "travis@nick.fury")   // Member, America

	orderBody := gin.H{
		"items":          []gin.H{{"food_item_id": 1, "quantity": 2}, {"food_item_id": 2, "quantity": 1}},
		"payment_method": "credit_card",
	}

	// Members outside India are locked out of the cart.
	blocked := doJSON(router, http.MethodPost, "/food/orders", travis, orderBody)
	assert.Equal(t, http.StatusForbidden, blocked.Code)

	// A Manager in America is not.
	managerOrder := doJSON(router, http.MethodPost, "/food/orders", manager, orderBody)
	require.Equal(t, http.StatusCreated, managerOrder.Code, managerOrder.Body.String())

	placed := doJSON(router, http.MethodPost, "/food/orders", thanos, orderBody)
	require.Equal(t, http.StatusCreated, placed.Code, placed.Body.String())
	order := decode(t, placed)["order"].(map[string]interface{})
	assert.InDelta(t, 34.97, order["total_amount"].(float64), 0.001)
	orderID := uint(order["id"].(float64))

	unavailable := doJSON(router, http.MethodPost, "/food/orders", thanos, gin.H{
		"items":          []gin.H{{"food_item_id": 9999, "quantity": 1}},
		"payment_method": "cash",
	})
	assert.Equal(t, http.StatusNotFound, unavailable.Code)

	empty := doJSON(router, http.MethodPost, "/food/orders", thanos, gin.H{"items": []gin.H{}, "payment_method": "cash"})
	assert.Equal(t, http.StatusBadRequest, empty.Code)

	// Thanos sees only his own order; the Manager sees both.
	mine := doJSON(router, http.MethodGet, "/food/orders", thanos, nil)
	require.Equal(t, http.StatusOK, mine.Code)
	assert.Len(t, decode(t, mine)["orders"].([]interface{}), 1)

	all := doJSON(router, http.MethodGet, "/food/orders", manager, nil)
	require.Equal(t, http.StatusOK, all.Code)
	assert.Len(t, decode(t, all)["orders"].([]interface{}), 2)

	// Status changes are Admin/Manager only.
	statusPath := fmt.Sprintf("/food/orders/%d", orderID)
	denied := doJSON(router, http.MethodPatch, statusPath, thanos, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusForbidden, denied.Code)

	updated := doJSON(router, http.MethodPatch, statusPath, manager, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusOK, updated.Code)

	// Travis cannot reach the payment endpoint at all; Thanos can change his
	// own but gets not-found on anyone else's.
	paymentPath := fmt.Sprintf("/food/orders/%d/payment", orderID)
	gated := doJSON(router, http.MethodPatch, paymentPath, travis, gin.H{"payment_method": "cash"})
	assert.Equal(t, http.StatusForbidden, gated.Code)

	own := doJSON(router, http.MethodPatch, paymentPath, thanos, gin.H{"payment_method": "upi"})
	assert.Equal(t, http.StatusOK, own.Code)

	managerOrderID := uint(decode(t, managerOrder)["order"].(map[string]interface{})["id"].(float64))
	foreign := doJSON(router, http.MethodPatch, fmt.Sprintf("/food/orders/%d/payment", managerOrderID), thanos, gin.H{"payment_method": "upi"})
	assert.Equal(t, http.StatusNotFound, foreign.Code)
}
