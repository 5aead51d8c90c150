package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a text entry on an author's page, optionally filed under a group
// and optionally carrying an image reference.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Text    string `gorm:"type:text;not null" json:"text"`
	Image   string `json:"image,omitempty"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	GroupID *uint  `gorm:"index" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	// CreatedAt is the publication date. It is assigned on insert and never
	// modified afterwards; edits touch only UpdatedAt.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeDelete removes the post's comments. Comments have no life of their
// own once the post is gone.
func (p *Post) BeforeDelete(tx *gorm.DB) error {
	sess := tx.Session(&gorm.Session{NewDB: true})
	return sess.Where("post_id = ?", p.ID).Delete(&Comment{}).Error
}
