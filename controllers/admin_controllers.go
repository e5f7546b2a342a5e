package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/amandier/restaurant-backend/live"
	"github.com/amandier/restaurant-backend/models"
	"github.com/amandier/restaurant-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// defaultSettings back every key the dashboard shows; stored values
// take precedence when present.
var defaultSettings = map[string]string{
	"restaurantName": "Amandier Restaurant",
	"phone":          "+1 (555) 123-4567",
	"email":          "info@amandier.com",
	"address":        "123 Main Street, City, State 12345",
	"openingHours":   "11:00 AM - 10:00 PM",
	"maxCapacity":    "50",
}

// GetDashboardStats computes the dashboard counters fresh on every call.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		Reservations struct {
			Total     int64 `json:"total"`
			Today     int64 `json:"today"`
			Pending   int64 `json:"pending"`
			Confirmed int64 `json:"confirmed"`
		} `json:"reservations"`
		Messages struct {
			Total   int64 `json:"total"`
			New     int64 `json:"new"`
			Read    int64 `json:"read"`
			Replied int64 `json:"replied"`
		} `json:"messages"`
		Menu struct {
			Total       int64 `json:"total"`
			Available   int64 `json:"available"`
			Unavailable int64 `json:"unavailable"`
		} `json:"menu"`
	}

	ac.DB.Model(&models.Reservation{}).Count(&stats.Reservations.Total)
	ac.DB.Model(&models.Reservation{}).Where("date = ?", today).Count(&stats.Reservations.Today)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationPending).Count(&stats.Reservations.Pending)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationConfirmed).Count(&stats.Reservations.Confirmed)

	ac.DB.Model(&models.ContactMessage{}).Count(&stats.Messages.Total)
	ac.DB.Model(&models.ContactMessage{}).Where("status = ?", models.MessageNew).Count(&stats.Messages.New)
	ac.DB.Model(&models.ContactMessage{}).Where("status = ?", models.MessageRead).Count(&stats.Messages.Read)
	ac.DB.Model(&models.ContactMessage{}).Where("status = ?", models.MessageReplied).Count(&stats.Messages.Replied)

	ac.DB.Model(&models.MenuItem{}).Count(&stats.Menu.Total)
	ac.DB.Model(&models.MenuItem{}).Where("available = ?", true).Count(&stats.Menu.Available)
	stats.Menu.Unavailable = stats.Menu.Total - stats.Menu.Available

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// GetRecentActivity returns the 5 newest reservations and messages.
func (ac *AdminController) GetRecentActivity(c *gin.Context) {
	var reservations []models.Reservation
	if err := ac.DB.Order("id DESC").Limit(5).Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var messages []models.ContactMessage
	if err := ac.DB.Order("id DESC").Limit(5).Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recent activity", gin.H{
		"reservations": reservations,
		"messages":     messages,
	})
}

// GetRestaurantSettings merges stored key/value pairs over the defaults.
func (ac *AdminController) GetRestaurantSettings(c *gin.Context) {
	var settings []models.Setting
	if err := ac.DB.Find(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	merged := make(map[string]string, len(defaultSettings))
	for key, value := range defaultSettings {
		merged[key] = value
	}
	for _, setting := range settings {
		merged[setting.Key] = setting.Value
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant settings", merged)
}

// UpdateRestaurantSetting upserts a setting by key.
func (ac *AdminController) UpdateRestaurantSetting(c *gin.Context) {
	var body struct {
		Key   string  `json:"key" binding:"required"`
		Value *string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var setting models.Setting
	err := ac.DB.Where("`key` = ?", body.Key).First(&setting).Error
	switch {
	case err == nil:
		setting.Value = *body.Value
		err = ac.DB.Save(&setting).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.Setting{Key: body.Key, Value: *body.Value}
		err = ac.DB.Create(&setting).Error
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventSettingsUpdate, setting)
	utils.RespondJSON(c, http.StatusOK, "Setting updated", setting)
}
