package httpHandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aestheti-qr-server/entities"
	httpHandler "aestheti-qr-server/handlers/http"
	"aestheti-qr-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQRCodeUseCase is a mock implementation of the handler's use case interface.
type MockQRCodeUseCase struct {
	mock.Mock
}

func (m *MockQRCodeUseCase) Create(userID, imageURL, name string) (*entities.QRCode, error) {
	args := m.Called(userID, imageURL, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.QRCode), args.Error(1)
}

func (m *MockQRCodeUseCase) ListAll(userID string, random bool) ([]entities.QRCode, error) {
	args := m.Called(userID, random)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.QRCode), args.Error(1)
}

func (m *MockQRCodeUseCase) Search(userID, name string) ([]entities.QRCode, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.QRCode), args.Error(1)
}

// MockLibraryNotifier records pushed codes.
type MockLibraryNotifier struct {
	mock.Mock
}

func (m *MockLibraryNotifier) QRCodeCreated(code *entities.QRCode) {
	m.Called(code)
}

func newQRCodeRouter(uc httpHandler.QRCodeUseCase, notifier httpHandler.LibraryNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := httpHandler.NewQRCodeHandler(uc, notifier)
	r.POST("/api/qrcode/addQrcode", h.AddQRCode)
	r.GET("/api/qrcode/searchQrcode", h.SearchQRCode)
	r.POST("/api/qrcode/getQrcodeAll", h.GetQRCodeAll)
	return r
}

func TestAddQRCode(t *testing.T) {
	t.Run("created with name and notifies live session", func(t *testing.T) {
		saved := &entities.QRCode{ID: "q1", UserID: "u1", ImageURL: "data:image/png;base64,abc", QRCodeName: "Home"}
		uc := new(MockQRCodeUseCase)
		uc.On("Create", "u1", "data:image/png;base64,abc", "Home").Return(saved, nil)
		notifier := new(MockLibraryNotifier)
		notifier.On("QRCodeCreated", saved).Return()

		router := newQRCodeRouter(uc, notifier)
		req := httptest.NewRequest(http.MethodPost, "/api/qrcode/addQrcode",
			strings.NewReader(`{"userId":"u1","qrcodeUrl":"data:image/png;base64,abc","qrcodeName":"Home"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, true, got["success"])
		data := got["data"].(map[string]interface{})
		assert.Equal(t, "Home", data["qrcodeName"])
		notifier.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := new(MockQRCodeUseCase)
		uc.On("Create", "u1", "", "").Return(nil, usecases.ErrQRCodeFieldsRequired)
		notifier := new(MockLibraryNotifier)

		router := newQRCodeRouter(uc, notifier)
		req := httptest.NewRequest(http.MethodPost, "/api/qrcode/addQrcode",
			strings.NewReader(`{"userId":"u1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"User ID and QR code are required"}`, w.Body.String())
		notifier.AssertNotCalled(t, "QRCodeCreated", mock.Anything)
	})

	t.Run("nil notifier is fine", func(t *testing.T) {
		saved := &entities.QRCode{ID: "q1", UserID: "u1", ImageURL: "data:image/png;base64,abc"}
		uc := new(MockQRCodeUseCase)
		uc.On("Create", "u1", "data:image/png;base64,abc", "").Return(saved, nil)

		router := newQRCodeRouter(uc, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/qrcode/addQrcode",
			strings.NewReader(`{"userId":"u1","qrcodeUrl":"data:image/png;base64,abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestSearchQRCode(t *testing.T) {
	uc := new(MockQRCodeUseCase)
	uc.On("Search", "u1", "cat").Return([]entities.QRCode{
		{ID: "q3", UserID: "u1", QRCodeName: "Cat QR"},
		{ID: "q4", UserID: "u1", QRCodeName: "CATalog"},
	}, nil)

	router := newQRCodeRouter(uc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/qrcode/searchQrcode?userId=u1&qrcodeName=cat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	data := got["data"].([]interface{})
	assert.Len(t, data, 2)
	uc.AssertExpectations(t)
}

func TestGetQRCodeAll(t *testing.T) {
	t.Run("with owner filter and random order", func(t *testing.T) {
		uc := new(MockQRCodeUseCase)
		uc.On("ListAll", "u1", true).Return([]entities.QRCode{{ID: "q1", UserID: "u1"}}, nil)

		router := newQRCodeRouter(uc, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/qrcode/getQrcodeAll",
			strings.NewReader(`{"userId":"u1","random":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("empty body lists everything", func(t *testing.T) {
		uc := new(MockQRCodeUseCase)
		uc.On("ListAll", "", false).Return([]entities.QRCode{}, nil)

		router := newQRCodeRouter(uc, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/qrcode/getQrcodeAll", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
		uc.AssertExpectations(t)
	})
}
