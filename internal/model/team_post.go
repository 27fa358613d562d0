package model

import (
	"time"
)

type TeamPost struct {
	PostID            uint64    `gorm:"primaryKey;column:post_id" json:"post_id"`
	UserID            uint64    `gorm:"not null;index:idx_team_user_id" json:"user_id"`
	Title             string    `gorm:"type:varchar(255);not null" json:"title"`
	Description       string    `gorm:"type:text" json:"description"`
	StartLocation     string    `gorm:"type:varchar(255)" json:"start_location"`
	EndLocation       string    `gorm:"type:varchar(255)" json:"end_location"`
	DurationDay       int       `gorm:"not null;default:1" json:"duration_day"`
	TeamSize          int       `gorm:"not null;default:0" json:"team_size"`
	EstimatedExpense  float64   `gorm:"type:decimal(10,2);default:0" json:"estimated_expense"`
	GenderRequirement string    `gorm:"type:varchar(20)" json:"gender_requirement"`
	PaymentMethod     string    `gorm:"type:varchar(50)" json:"payment_method"`
	ThemeID           uint64    `gorm:"index:idx_team_theme_id" json:"theme_id"`
	Status            int8      `gorm:"not null;default:2" json:"status"` // 0:未通过 1:已通过 2:待审核/已下架
	CreatedAt         time.Time `json:"created_at"`
}

func (TeamPost) TableName() string {
	return "team_posts"
}

type TeamPostImage struct {
	ImageID   uint64    `gorm:"primaryKey;column:image_id" json:"image_id"`
	PostID    uint64    `gorm:"not null;index:idx_team_image_post_id" json:"post_id"`
	ImageURL  string    `gorm:"type:varchar(255);not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (TeamPostImage) TableName() string {
	return "team_post_images"
}

// Itinerary 行程图，每条组队帖至多关注第一张
type Itinerary struct {
	ItineraryID uint64    `gorm:"primaryKey;column:itinerary_id" json:"itinerary_id"`
	PostID      uint64    `gorm:"not null;index:idx_itinerary_post_id" json:"post_id"`
	ImageURL    string    `gorm:"type:varchar(255);not null" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}

type TeamTheme struct {
	ThemeID   uint64    `gorm:"primaryKey;column:theme_id" json:"theme_id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_theme_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (TeamTheme) TableName() string {
	return "team_themes"
}
