package models

import (
	"encoding/json"
	"time"
)

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string    `gorm:"type:varchar(100);not null;index:idx_menu_items_category" json:"category"` // appetizers, mains, desserts, beverages
	ImageURL    *string   `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	Available   bool      `gorm:"not null;default:true;index:idx_menu_items_available" json:"available"`
	Allergens   string    `gorm:"type:text" json:"-"`
	IsSpecial   bool      `gorm:"not null;default:false" json:"is_special"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// SetAllergens stores the allergen list as a JSON string column.
func (m *MenuItem) SetAllergens(allergens []string) error {
	if allergens == nil {
		m.Allergens = "[]"
		return nil
	}
	data, err := json.Marshal(allergens)
	if err != nil {
		return err
	}
	m.Allergens = string(data)
	return nil
}

// GetAllergens returns the decoded allergen list, empty on bad data.
func (m *MenuItem) GetAllergens() []string {
	var allergens []string
	if m.Allergens == "" {
		return []string{}
	}
	if err := json.Unmarshal([]byte(m.Allergens), &allergens); err != nil {
		return []string{}
	}
	return allergens
}

// MarshalJSON exposes allergens as an array instead of the raw column.
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type alias MenuItem
	return json.Marshal(struct {
		alias
		AllergenList []string `json:"allergens"`
	}{
		alias:        alias(m),
		AllergenList: m.GetAllergens(),
	})
}
