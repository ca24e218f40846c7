package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Hasnainlakhani01/business-management/database"
	"github.com/Hasnainlakhani01/business-management/routers"
	"github.com/Hasnainlakhani01/business-management/store"
	"github.com/Hasnainlakhani01/business-management/templates"
)

// setupTestServer builds the full router over a fresh temp database, the
// same wiring main uses.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.SetupDatabaseConnection(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(templates.Must())
	routers.SetupRouter(r, store.New(db))
	return r
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(r, req)
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	return do(r, httptest.NewRequest(http.MethodGet, path, nil))
}

func purchaseForm(item, quantity, price, date string) url.Values {
	return url.Values{
		"item":     {item},
		"quantity": {quantity},
		"price":    {price},
		"date":     {date},
	}
}

type listResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Data   []struct {
		PurchaseID uint            `json:"purchase_id"`
		SaleID     uint            `json:"sale_id"`
		Item       string          `json:"item"`
		Quantity   uint            `json:"quantity"`
		Price      decimal.Decimal `json:"price"`
	} `json:"data"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreatePurchase_FormRoundTrip(t *testing.T) {
	r := setupTestServer(t)

	w := postForm(r, "/purchases", purchaseForm("rice", "2", "10.50", "2024-01-15"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/purchases", w.Header().Get("Location"))

	w = get(r, "/purchases")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "rice")
	require.Contains(t, w.Body.String(), "2024-01-15")

	resp := decodeList(t, get(r, "/api/purchases"))
	require.Equal(t, 1, resp.Count)
	require.Equal(t, "rice", resp.Data[0].Item)
	require.Equal(t, uint(2), resp.Data[0].Quantity)
	require.True(t, resp.Data[0].Price.Equal(decimal.RequireFromString("10.50")))
}

func TestCreatePurchase_InvalidNumbers(t *testing.T) {
	r := setupTestServer(t)

	for name, form := range map[string]url.Values{
		"bad quantity":      purchaseForm("rice", "two", "10.50", "2024-01-15"),
		"negative quantity": purchaseForm("rice", "-1", "10.50", "2024-01-15"),
		"bad price":         purchaseForm("rice", "2", "cheap", "2024-01-15"),
		"bad date":          purchaseForm("rice", "2", "10.50", "yesterday"),
	} {
		w := postForm(r, "/purchases", form)
		require.Equal(t, http.StatusBadRequest, w.Code, name)
	}

	resp := decodeList(t, get(r, "/api/purchases"))
	require.Zero(t, resp.Count, "rejected submissions must not create records")
}

func TestPurchases_SubmissionOrderAndIDs(t *testing.T) {
	r := setupTestServer(t)

	items := []string{"rice", "sugar", "flour"}
	for _, item := range items {
		w := postForm(r, "/purchases", purchaseForm(item, "1", "5", "2024-01-15"))
		require.Equal(t, http.StatusSeeOther, w.Code)
	}

	resp := decodeList(t, get(r, "/api/purchases"))
	require.Equal(t, len(items), resp.Count)
	var last uint
	for i, row := range resp.Data {
		require.Equal(t, items[i], row.Item)
		require.Greater(t, row.PurchaseID, last)
		last = row.PurchaseID
	}
}

func TestSaleDoesNotAffectPurchases(t *testing.T) {
	r := setupTestServer(t)

	w := postForm(r, "/sales", purchaseForm("rice", "1", "20", "2024-01-15"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/sales", w.Header().Get("Location"))

	require.Zero(t, decodeList(t, get(r, "/api/purchases")).Count)
	require.Equal(t, 1, decodeList(t, get(r, "/api/sales")).Count)
}

func TestAPICreatePurchase(t *testing.T) {
	r := setupTestServer(t)

	body := `{"item":"rice","quantity":3,"price":"7.25","date":"2024-02-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/purchases", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := do(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeList(t, get(r, "/api/purchases"))
	require.Equal(t, 1, resp.Count)
	require.Equal(t, "rice", resp.Data[0].Item)
}

func TestAPICreatePurchase_BadDate(t *testing.T) {
	r := setupTestServer(t)

	body := `{"item":"rice","quantity":3,"price":"7.25","date":"01/02/2024"}`
	req := httptest.NewRequest(http.MethodPost, "/api/purchases", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	require.Equal(t, http.StatusBadRequest, do(r, req).Code)
}

func TestSupplierEditFlow(t *testing.T) {
	r := setupTestServer(t)

	w := postForm(r, "/suppliers", url.Values{"name": {"Acme Traders"}, "contact": {"555-0101"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = get(r, "/suppliers/edit/1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Acme Traders")

	w = postForm(r, "/suppliers/edit/1", url.Values{"name": {"Acme Wholesale"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = get(r, "/suppliers")
	require.Contains(t, w.Body.String(), "Acme Wholesale")
	require.NotContains(t, w.Body.String(), "Acme Traders")
}

func TestEditSupplier_MissingRedirects(t *testing.T) {
	r := setupTestServer(t)

	w := get(r, "/suppliers/edit/99")
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/suppliers", w.Header().Get("Location"))
}

func TestPaymentFlow(t *testing.T) {
	r := setupTestServer(t)

	w := postForm(r, "/suppliers", url.Values{"name": {"Acme Traders"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = get(r, "/payments/new/1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Acme Traders")

	w = postForm(r, "/payments", url.Values{
		"supplier_id":  {"1"},
		"date":         {"2024-02-01"},
		"amount":       {"99.99"},
		"payment_mode": {"bank"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = get(r, "/payments")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Acme Traders")
	require.Contains(t, w.Body.String(), "99.99")
}

func TestReceiptFlow(t *testing.T) {
	r := setupTestServer(t)

	w := postForm(r, "/customers", url.Values{"name": {"Corner Shop"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = postForm(r, "/receipts", url.Values{
		"customer_id":  {"1"},
		"date":         {"2024-02-02"},
		"amount":       {"40"},
		"payment_mode": {"cash"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/customers", w.Header().Get("Location"))

	w = get(r, "/receipts")
	require.Contains(t, w.Body.String(), "Corner Shop")
}

func TestDashboard(t *testing.T) {
	r := setupTestServer(t)

	postForm(r, "/purchases", purchaseForm("rice", "2", "10", "2024-01-15"))

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "rice")
	require.Contains(t, w.Body.String(), "20") // 2 × 10 total value
}

func TestEntryForms_Render(t *testing.T) {
	r := setupTestServer(t)

	for _, path := range []string{"/purchases/new", "/sales/new", "/suppliers/new", "/customers/new"} {
		w := get(r, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		require.Contains(t, w.Body.String(), "<form", path)
	}
}
