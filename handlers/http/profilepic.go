package httpHandler

import (
	"errors"
	"net/http"

	"aestheti-qr-server/entities"
	"aestheti-qr-server/usecases"

	"github.com/gin-gonic/gin"
)

type ProfilePicUseCase interface {
	Create(userID, imageURL string) (*entities.ProfilePic, error)
	Get(userID string) (*entities.ProfilePic, error)
	Update(userID, imageURL string) (*entities.ProfilePic, error)
	Delete(userID string) error
}

type ProfilePicHandler struct {
	useCase ProfilePicUseCase
}

func NewProfilePicHandler(useCase ProfilePicUseCase) *ProfilePicHandler {
	return &ProfilePicHandler{
		useCase: useCase,
	}
}

type createProfilePicRequest struct {
	UserID   string `json:"userId"`
	ImageURL string `json:"imageUrl"`
}

type updateProfilePicRequest struct {
	ImageURL string `json:"imageUrl"`
}

// CreateProfilePic handles POST /api/profilepic
func (h *ProfilePicHandler) CreateProfilePic(c *gin.Context) {
	var req createProfilePicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": usecases.ErrProfilePicFieldsRequired.Error(),
		})
		return
	}

	pic, err := h.useCase.Create(req.UserID, req.ImageURL)
	if err != nil {
		if usecases.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": pic})
}

// GetProfilePic handles GET /api/profilepic/:userId
func (h *ProfilePicHandler) GetProfilePic(c *gin.Context) {
	userID := c.Param("userId")

	pic, err := h.useCase.Get(userID)
	if err != nil {
		if errors.Is(err, usecases.ErrProfilePicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pic})
}

// UpdateProfilePic handles PUT /api/profilepic/:userId
func (h *ProfilePicHandler) UpdateProfilePic(c *gin.Context) {
	userID := c.Param("userId")

	var req updateProfilePicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": usecases.ErrProfilePicImageRequired.Error(),
		})
		return
	}

	pic, err := h.useCase.Update(userID, req.ImageURL)
	if err != nil {
		switch {
		case usecases.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecases.ErrProfilePicNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pic})
}

// DeleteProfilePic handles DELETE /api/profilepic/:userId
func (h *ProfilePicHandler) DeleteProfilePic(c *gin.Context) {
	userID := c.Param("userId")

	if err := h.useCase.Delete(userID); err != nil {
		if errors.Is(err, usecases.ErrProfilePicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile picture deleted"})
}
