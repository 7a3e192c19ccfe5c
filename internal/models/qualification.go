package models

import "time"

// Qualification rows are created only inside the registration transaction,
// one per submitted entry, and are never mutated afterwards. They go away
// with their owning user via the FK cascade.
type Qualification struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	UserID        uint64    `gorm:"not null;index" json:"user_id"`
	Qualification string    `gorm:"type:varchar(100);not null" json:"qualification"`
	DegreeName    string    `gorm:"type:varchar(255)" json:"degree_name"`
	PassingYear   string    `gorm:"type:varchar(10)" json:"passing_year"`
	Percentage    string    `gorm:"type:varchar(10)" json:"percentage"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
