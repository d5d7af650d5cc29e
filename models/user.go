package models

import (
	"time"
)

// User 用户模型（认证模块负责写入，这里只做只读查询）
type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"type:varchar(255)" json:"-"`
	FullName  string     `gorm:"type:varchar(100)" json:"fullName"`
	Email     string     `gorm:"type:varchar(100)" json:"email"`
	Age       int        `json:"age"`
	Phone     string     `gorm:"type:varchar(50)" json:"phone"`
	Gender    string     `gorm:"type:varchar(20)" json:"gender"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
