// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an author or reader identity.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// BeforeDelete cascades a user deletion: the user's comments, comments on
// the user's posts, follow edges touching the user, and finally the user's
// posts are removed. The cascade lives here rather than in FK constraints so
// behavior is identical across storage engines.
func (u *User) BeforeDelete(tx *gorm.DB) error {
	sess := tx.Session(&gorm.Session{NewDB: true})

	postIDs := sess.Model(&Post{}).Select("id").Where("user_id = ?", u.ID)
	if err := sess.Where("post_id IN (?)", postIDs).Delete(&Comment{}).Error; err != nil {
		return err
	}
	if err := sess.Where("user_id = ?", u.ID).Delete(&Comment{}).Error; err != nil {
		return err
	}
	if err := sess.Where("user_id = ? OR author_id = ?", u.ID, u.ID).Delete(&Follow{}).Error; err != nil {
		return err
	}
	return sess.Where("user_id = ?", u.ID).Delete(&Post{}).Error
}
