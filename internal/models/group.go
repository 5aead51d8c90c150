package models

import (
	"time"

	"gorm.io/gorm"
)

// Group is a topical community posts can be filed under. Groups are created
// by operators (seed/admin tooling), not through the public API.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:20;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Posts       []Post    `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM.
func (Group) TableName() string {
	return "groups"
}

// BeforeDelete detaches posts from the group instead of deleting them.
// A post outlives its group; only the reference is cleared.
func (g *Group) BeforeDelete(tx *gorm.DB) error {
	sess := tx.Session(&gorm.Session{NewDB: true})
	return sess.Model(&Post{}).Where("group_id = ?", g.ID).Update("group_id", nil).Error
}
