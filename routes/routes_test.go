package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/configs"
	"github.com/phonkluver/forel-app-sub000/entity"
	"github.com/phonkluver/forel-app-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	orders       int
	reservations int
	reviews      int
	inquiries    int
	fail         bool
}

func (f *fakeNotifier) NotifyOrder(*entity.Order, []entity.OrderLine) bool {
	f.orders++
	return !f.fail
}
func (f *fakeNotifier) NotifyReservation(*entity.Reservation) bool {
	f.reservations++
	return !f.fail
}
func (f *fakeNotifier) NotifyReview(*entity.Review) bool {
	f.reviews++
	return !f.fail
}
func (f *fakeNotifier) NotifyInquiry(string, string, string) bool {
	f.inquiries++
	return !f.fail
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func testSetup(t *testing.T) (*gin.Engine, *gorm.DB, *configs.Config, *fakeNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))

	cfg := &configs.Config{
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
		AdminSecret:   "letmein",
		UploadDir:     t.TempDir(),
		MaxUploadSize: 5 << 20,
		PublicBaseURL: "http://localhost:8000",
		DeliveryFee:   15,
	}

	notify := &fakeNotifier{}
	r := gin.New()
	RegisterRoutes(r, db, cfg, notify)
	return r, db, cfg, notify
}

func adminToken(t *testing.T, cfg *configs.Config) string {
	t.Helper()
	token, err := utils.GenerateToken("admin", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(b)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func seedMenuFixture(t *testing.T, db *gorm.DB) entity.MenuItem {
	t.Helper()
	require.NoError(t, db.Create(&entity.Category{
		ID: "kebab", Name: entity.Localized{RU: "Шашлыки", EN: "Kebabs", TJ: "Сихкабобҳо", UZ: "Shashliklar"},
		SortOrder: 1, IsActive: true,
	}).Error)
	item := entity.MenuItem{
		Name:       entity.Localized{RU: "Люля-кебаб", EN: "Lula kebab", TJ: "Люля", UZ: "Lula"},
		Price:      50,
		CategoryID: "kebab",
		SortOrder:  1,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestHealth(t *testing.T) {
	r, _, _, _ := testSetup(t)
	w, env := doJSON(t, r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestAdminLogin(t *testing.T) {
	r, _, _, _ := testSetup(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/admin", gin.H{"secret": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/admin", gin.H{"secret": "letmein"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.NotEmpty(t, body.Token)

	// Issued token opens the admin surface.
	w, env := doJSON(t, r, http.MethodGet, "/api/admin/categories", nil, body.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestAdminWriteRequiresCredential(t *testing.T) {
	r, db, _, _ := testSetup(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/admin/categories", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAdminWriteRejectsBadTokens(t *testing.T) {
	r, _, cfg, _ := testSetup(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/admin/orders", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired, err := utils.GenerateToken("admin", cfg.JWTSecret, -time.Hour)
	require.NoError(t, err)
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/orders", nil, expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	viewer, err := utils.GenerateToken("viewer", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/orders", nil, viewer)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateCategoryMultipart(t *testing.T) {
	r, db, cfg, _ := testSetup(t)
	token := adminToken(t, cfg)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	for field, value := range map[string]string{
		"name_ru": "Десерты", "name_en": "Desserts", "name_tj": "Ширинӣ", "name_uz": "Shirinliklar",
		"sortOrder": "12",
	} {
		require.NoError(t, form.WriteField(field, value))
	}
	require.NoError(t, form.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/categories", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateCategoryRequiresAllLanguages(t *testing.T) {
	r, _, cfg, _ := testSetup(t)
	token := adminToken(t, cfg)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("name_ru", "Десерты"))
	require.NoError(t, form.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/categories", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCategoryRejectsMalformedFields(t *testing.T) {
	r, db, cfg, _ := testSetup(t)
	token := adminToken(t, cfg)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	for field, value := range map[string]string{
		"name_ru": "Десерты", "name_en": "Desserts", "name_tj": "Ширинӣ", "name_uz": "Shirinliklar",
		"sortOrder": "abc",
	} {
		require.NoError(t, form.WriteField(field, value))
	}
	require.NoError(t, form.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/categories", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateOrderPersistsAndNotifies(t *testing.T) {
	r, db, _, notify := testSetup(t)
	item := seedMenuFixture(t, db)

	w, env := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"customerName":   "Далер",
		"customerPhone":  "+992900000000",
		"address":        "ул. Рудаки 1",
		"deliveryMethod": "delivery",
		"paymentMethod":  "cash",
		"items":          []gin.H{{"menuItemId": item.ID, "quantity": 2}},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		ID       string  `json:"id"`
		Total    float64 `json:"total"`
		Notified bool    `json:"notified"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 115.0, data.Total) // 2×50 + 15 delivery
	assert.True(t, data.Notified)
	assert.Equal(t, 1, notify.orders)

	var order entity.Order
	require.NoError(t, db.Where("id = ?", data.ID).First(&order).Error)
	assert.Equal(t, entity.OrderPending, order.Status)

	lines, err := order.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, item.ID, lines[0].MenuItemID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCreateOrderUnknownItem(t *testing.T) {
	r, db, _, notify := testSetup(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"customerName":   "Далер",
		"customerPhone":  "+992900000000",
		"deliveryMethod": "pickup",
		"paymentMethod":  "cash",
		"items":          []gin.H{{"menuItemId": "ghost", "quantity": 1}},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, notify.orders)

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateOrderRejectsBadQuantity(t *testing.T) {
	r, db, _, notify := testSetup(t)
	item := seedMenuFixture(t, db)

	w, _ := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"customerName":   "Далер",
		"customerPhone":  "+992900000000",
		"deliveryMethod": "pickup",
		"paymentMethod":  "cash",
		"items":          []gin.H{{"menuItemId": item.ID, "quantity": -3}},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, notify.orders)

	// No negative-total order sneaks into the store.
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestOrderStatusTransitions(t *testing.T) {
	r, db, cfg, _ := testSetup(t)
	token := adminToken(t, cfg)

	order := entity.Order{CustomerName: "Далер", CustomerPhone: "+992", Status: entity.OrderPending}
	require.NoError(t, db.Create(&order).Error)

	w, _ := doJSON(t, r, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status",
		gin.H{"status": "confirmed"}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// confirmed cannot jump straight to delivered
	w, _ = doJSON(t, r, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status",
		gin.H{"status": "delivered"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPatch, "/api/admin/orders/missing/status",
		gin.H{"status": "confirmed"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBannerRoundTrip(t *testing.T) {
	r, db, _, _ := testSetup(t)

	require.NoError(t, db.Create(&entity.Banner{
		Image: "/uploads/spring.webp", IsActive: true, SortOrder: 3,
	}).Error)

	w, env := doJSON(t, r, http.MethodGet, "/api/banners/active", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var banners []entity.Banner
	require.NoError(t, json.Unmarshal(env.Data, &banners))
	require.Len(t, banners, 1)
	assert.Equal(t, true, banners[0].IsActive)
	assert.Equal(t, 3, banners[0].SortOrder)
	assert.Equal(t, "/uploads/spring.webp", banners[0].Image)
}

func TestReviewApprovalFlow(t *testing.T) {
	r, _, cfg, notify := testSetup(t)
	token := adminToken(t, cfg)

	w, env := doJSON(t, r, http.MethodPost, "/api/reviews", gin.H{
		"customerName": "Мадина", "rating": 5, "comment": "Очень вкусно!",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, notify.reviews)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// Unapproved reviews stay off the public listing.
	_, env = doJSON(t, r, http.MethodGet, "/api/reviews", nil, "")
	var public []entity.Review
	require.NoError(t, json.Unmarshal(env.Data, &public))
	assert.Empty(t, public)

	w, _ = doJSON(t, r, http.MethodPatch, "/api/admin/reviews/"+created.ID+"/approve", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	_, env = doJSON(t, r, http.MethodGet, "/api/reviews", nil, "")
	require.NoError(t, json.Unmarshal(env.Data, &public))
	require.Len(t, public, 1)
	assert.True(t, public[0].IsApproved)
}

func TestReservationValidation(t *testing.T) {
	r, db, _, notify := testSetup(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/reservations", gin.H{
		"customerName": "Сухроб", "customerPhone": "+992", "date": "tomorrow", "time": "19:00", "guests": 4,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/reservations", gin.H{
		"customerName": "Сухроб", "customerPhone": "+992", "date": "2026-09-05", "time": "19:00", "guests": 4,
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, notify.reservations)

	var res entity.Reservation
	require.NoError(t, db.First(&res).Error)
	assert.Equal(t, entity.ReservationPending, res.Status)
}

func TestMenuByCategoryNotFound(t *testing.T) {
	r, _, _, _ := testSetup(t)
	w, _ := doJSON(t, r, http.MethodGet, "/api/menu/category/no-such", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuQRMatchesItemVisibility(t *testing.T) {
	r, db, _, _ := testSetup(t)
	item := seedMenuFixture(t, db)

	req, _ := http.NewRequest(http.MethodGet, "/api/menu/item/"+item.ID+"/qr", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	// A hidden item gets no code; its public page would 404 anyway.
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("is_active", false).Error)

	w, _ = doJSON(t, r, http.MethodGet, "/api/menu/item/"+item.ID+"/qr", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInquiryRelaysOnly(t *testing.T) {
	r, _, _, notify := testSetup(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/inquiries", gin.H{
		"customerName": "Фируза", "customerPhone": "+992", "message": "Свадьба на 200 гостей",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, notify.inquiries)

	var data struct {
		Notified bool `json:"notified"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Notified)
}
