package faq

import "time"

// Entry is one FAQ record. Seq is the storage primary key and defines the
// store iteration order (insertion order); ID is the stable external
// identifier.
type Entry struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  string    `gorm:"type:varchar(64);index;not null" json:"category"`
	Keywords  string    `gorm:"type:text;not null" json:"keywords"`
	IsPopular bool      `gorm:"index;not null" json:"is_popular"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string { return "faqs" }
