package controllers

import (
	"net/http"
	"strconv"

	"github.com/amandier/restaurant-backend/live"
	"github.com/amandier/restaurant-backend/models"
	"github.com/amandier/restaurant-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// SubmitContactForm handles the public contact form.
// Endpoint: POST /api/contact
func (cc *ContactController) SubmitContactForm(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Email   string  `json:"email" binding:"required,email"`
		Phone   *string `json:"phone"`
		Subject string  `json:"subject" binding:"required"`
		Message string  `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondAPIError(c, http.StatusBadRequest, err)
		return
	}

	if req.Phone != nil {
		normalized := utils.NormalizePhone(*req.Phone)
		req.Phone = &normalized
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.MessageNew,
	}
	if err := cc.DB.Create(&message).Error; err != nil {
		utils.RespondAPIError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("New contact message from %s: %s", message.Email, message.Subject)
	live.Broadcast(live.EventMessageUpdate, message)

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"messageId": message.ID,
		"message":   "Message sent successfully",
	})
}

// GetContactMessages lists messages for triage, newest first.
func (cc *ContactController) GetContactMessages(c *gin.Context) {
	query := cc.DB.Order("id DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of contact messages", messages)
}

// UpdateMessageStatus overwrites the triage status with the supplied
// value. No ordering is enforced between new, read and replied.
func (cc *ContactController) UpdateMessageStatus(c *gin.Context) {
	idStr := c.Param("message_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Status string `json:"status" binding:"required,oneof=new read replied"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var message models.ContactMessage
	if err := cc.DB.First(&message, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	message.Status = body.Status
	if err := cc.DB.Save(&message).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventMessageUpdate, message)
	utils.RespondJSON(c, http.StatusOK, "Message status updated", message)
}

// GetMessageStats returns triage counts per status.
func (cc *ContactController) GetMessageStats(c *gin.Context) {
	var stats struct {
		Total   int64 `json:"total"`
		New     int64 `json:"new"`
		Read    int64 `json:"read"`
		Replied int64 `json:"replied"`
	}

	cc.DB.Model(&models.ContactMessage{}).Count(&stats.Total)
	cc.DB.Model(&models.ContactMessage{}).Where("status = ?", models.MessageNew).Count(&stats.New)
	cc.DB.Model(&models.ContactMessage{}).Where("status = ?", models.MessageRead).Count(&stats.Read)
	cc.DB.Model(&models.ContactMessage{}).Where("status = ?", models.MessageReplied).Count(&stats.Replied)

	utils.RespondJSON(c, http.StatusOK, "Message stats", stats)
}
