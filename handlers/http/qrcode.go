package httpHandler

import (
	"errors"
	"io"
	"net/http"

	"aestheti-qr-server/entities"
	"aestheti-qr-server/usecases"

	"github.com/gin-gonic/gin"
)

type QRCodeUseCase interface {
	Create(userID, imageURL, name string) (*entities.QRCode, error)
	ListAll(userID string, random bool) ([]entities.QRCode, error)
	Search(userID, name string) ([]entities.QRCode, error)
}

// LibraryNotifier pushes saved codes to live library sessions.
type LibraryNotifier interface {
	QRCodeCreated(code *entities.QRCode)
}

type QRCodeHandler struct {
	useCase  QRCodeUseCase
	notifier LibraryNotifier
}

func NewQRCodeHandler(useCase QRCodeUseCase, notifier LibraryNotifier) *QRCodeHandler {
	return &QRCodeHandler{
		useCase:  useCase,
		notifier: notifier,
	}
}

type addQRCodeRequest struct {
	UserID     string `json:"userId"`
	QRCodeURL  string `json:"qrcodeUrl"`
	QRCodeName string `json:"qrcodeName"`
}

type listQRCodesRequest struct {
	UserID string `json:"userId"`
	Random bool   `json:"random"`
}

// AddQRCode handles POST /api/qrcode/addQrcode
func (h *QRCodeHandler) AddQRCode(c *gin.Context) {
	var req addQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": usecases.ErrQRCodeFieldsRequired.Error(),
		})
		return
	}

	code, err := h.useCase.Create(req.UserID, req.QRCodeURL, req.QRCodeName)
	if err != nil {
		if usecases.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if h.notifier != nil {
		h.notifier.QRCodeCreated(code)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": code})
}

// SearchQRCode handles GET /api/qrcode/searchQrcode
func (h *QRCodeHandler) SearchQRCode(c *gin.Context) {
	userID := c.Query("userId")
	name := c.Query("qrcodeName")

	codes, err := h.useCase.Search(userID, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": codes})
}

// GetQRCodeAll handles POST /api/qrcode/getQrcodeAll
func (h *QRCodeHandler) GetQRCodeAll(c *gin.Context) {
	var req listQRCodesRequest
	// An empty body means no filters, which is a valid request here.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	codes, err := h.useCase.ListAll(req.UserID, req.Random)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": codes})
}
