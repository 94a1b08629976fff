package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Transaction{}, &model.TransactionDetail{}))

	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	svc := service.NewPOSService(productRepo, txRepo, db)

	app := fiber.New()
	SetupRoutes(app, NewProductHandler(svc), NewPurchaseHandler(svc), NewTransactionHandler(svc))
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHealthCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "POS System API is running", body["message"])
}

func TestProductSearchFound(t *testing.T) {
	app, db := setupTestApp(t)
	require.NoError(t, db.Create(&model.Product{Code: "4901085", Name: "Green Tea", Price: 150}).Error)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/product/4901085", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.ProductSearchResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.NotNil(t, body.PrdID)
	require.Equal(t, "4901085", *body.Code)
	require.Equal(t, "Green Tea", *body.Name)
	require.Equal(t, int64(150), *body.Price)
}

func TestProductSearchMissingIsNullNot404(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/product/ZZZ", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, field := range []string{"PRD_ID", "CODE", "NAME", "PRICE"} {
		require.Contains(t, body, field)
		require.Equal(t, "null", string(body[field]))
	}
}

func TestPurchaseEndToEnd(t *testing.T) {
	app, db := setupTestApp(t)

	body := `{"EMP_CD":"0000000001","items":[
		{"PRD_ID":1,"PRD_CODE":"A","PRD_NAME":"Item A","PRD_PRICE":100},
		{"PRD_ID":2,"PRD_CODE":"B","PRD_NAME":"Item B","PRD_PRICE":250}
	]}`
	resp, raw := doJSON(t, app, http.MethodPost, "/api/purchase", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out model.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.True(t, out.Success)
	require.Equal(t, int64(350), out.TotalAmount)
	require.NotNil(t, out.TransactionID)

	var details []model.TransactionDetail
	require.NoError(t, db.Order("DTL_ID").Find(&details, "TRD_ID = ?", *out.TransactionID).Error)
	require.Len(t, details, 2)
	require.Equal(t, "B", details[1].PrdCode)
}

func TestPurchaseMissingItemFieldRejected(t *testing.T) {
	app, db := setupTestApp(t)

	body := `{"items":[{"PRD_ID":1,"PRD_CODE":"A","PRD_PRICE":100}]}`
	resp, raw := doJSON(t, app, http.MethodPost, "/api/purchase", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Contains(t, out["detail"], "Validation failed")

	var headerCount int64
	db.Model(&model.Transaction{}).Count(&headerCount)
	require.Zero(t, headerCount)
}

func TestPurchaseZeroPriceItemAccepted(t *testing.T) {
	app, _ := setupTestApp(t)

	// Presence is required; an explicit zero price is valid.
	body := `{"items":[{"PRD_ID":1,"PRD_CODE":"A","PRD_NAME":"Freebie","PRD_PRICE":0}]}`
	resp, raw := doJSON(t, app, http.MethodPost, "/api/purchase", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out model.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.True(t, out.Success)
	require.Zero(t, out.TotalAmount)
}

func TestPurchaseInvalidJSON(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/purchase", `{"items": [`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransactionsListAndLimit(t *testing.T) {
	app, _ := setupTestApp(t)

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"items":[{"PRD_ID":1,"PRD_CODE":"A","PRD_NAME":"Item A","PRD_PRICE":%d}]}`, (i+1)*100)
		resp, _ := doJSON(t, app, http.MethodPost, "/api/purchase", body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/api/transactions?limit=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Transactions, 2)

	// Default limit
	resp, raw = doJSON(t, app, http.MethodGet, "/api/transactions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Transactions, 3)

	// Limit 0 returns an empty array, not null
	_, raw = doJSON(t, app, http.MethodGet, "/api/transactions?limit=0", "")
	var shape map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &shape))
	require.Equal(t, "[]", string(shape["transactions"]))
}

func TestDatabaseFailureIsDetail500(t *testing.T) {
	app, db := setupTestApp(t)
	require.NoError(t, db.Migrator().DropTable(&model.Transaction{}))

	resp, raw := doJSON(t, app, http.MethodGet, "/api/transactions", "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Contains(t, out["detail"], "Database error:")

	resp, raw = doJSON(t, app, http.MethodPost, "/api/purchase", `{"items":[]}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Contains(t, out["detail"], "Purchase failed:")
}
