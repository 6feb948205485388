package models

type Feedback struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Rating     int      `gorm:"not null" json:"rating"`
	Feedback   string   `gorm:"type:text" json:"feedback"`
	BusinessID uint     `gorm:"not null;index" json:"businessId"`
	Business   Business `gorm:"foreignKey:BusinessID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
