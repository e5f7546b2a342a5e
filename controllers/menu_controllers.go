package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/amandier/restaurant-backend/live"
	"github.com/amandier/restaurant-backend/models"
	"github.com/amandier/restaurant-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenuItems returns the catalog for public browsing, sorted by name.
// Endpoint: GET /api/menu?category=...&availableOnly=true
func (mc *MenuController) GetMenuItems(c *gin.Context) {
	query := mc.DB.Model(&models.MenuItem{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("availableOnly") == "true" {
		query = query.Where("available = ?", true)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondAPIError(c, http.StatusInternalServerError, err)
		return
	}

	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"menuItems": items,
	})
}

// GetMenuCategories returns the distinct categories present, sorted.
// Endpoint: GET /api/menu/categories
func (mc *MenuController) GetMenuCategories(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Find(&items).Error; err != nil {
		utils.RespondAPIError(c, http.StatusInternalServerError, err)
		return
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// CreateMenuItem adds a catalog entry. New items are available by default.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Price       *float64 `json:"price" binding:"required,gte=0"`
		Category    string   `json:"category" binding:"required"`
		ImageURL    *string  `json:"image_url"`
		Allergens   []string `json:"allergens"`
		IsSpecial   bool     `json:"is_special"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Available:   true,
		IsSpecial:   req.IsSpecial,
	}
	if err := item.SetAllergens(req.Allergens); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventMenuUpdate, item)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem applies a partial update. Only fields present in the
// body are touched; nil pointers leave the stored value alone.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var req struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		Price       *float64  `json:"price" binding:"omitempty,gte=0"`
		Category    *string   `json:"category"`
		ImageURL    *string   `json:"image_url"`
		Available   *bool     `json:"available"`
		Allergens   *[]string `json:"allergens"`
		IsSpecial   *bool     `json:"is_special"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.ImageURL != nil {
		item.ImageURL = req.ImageURL
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.Allergens != nil {
		if err := item.SetAllergens(*req.Allergens); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}
	if req.IsSpecial != nil {
		item.IsSpecial = *req.IsSpecial
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventMenuUpdate, item)
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem removes a catalog entry.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventMenuUpdate, gin.H{"deleted": item.ID})
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": item.ID})
}

// ToggleItemAvailability reads the current flag and writes its negation.
// A read-then-write on the same row, no compare-and-swap.
func (mc *MenuController) ToggleItemAvailability(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	item.Available = !item.Available
	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventMenuUpdate, item)
	utils.RespondJSON(c, http.StatusOK, "Menu item availability toggled", gin.H{
		"item_id":   item.ID,
		"available": item.Available,
	})
}
