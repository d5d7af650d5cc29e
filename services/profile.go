package services

import (
	"errors"

	"github.com/Sofzenix/neurowell/models"

	"gorm.io/gorm"
)

// ProfileService 用户资料只读查询，写入由认证模块负责
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 用注入的数据库句柄构造服务
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetUserInfo 查询用户资料，用户不存在时返回演示用默认资料
func (s *ProfileService) GetUserInfo(userID uint) (models.UserProfile, error) {
	var user models.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 与前端演示页一致的默认资料
		return models.UserProfile{
			FullName:    "Arib Khan",
			Email:       "khanarib075@gmail.com",
			Age:         25,
			Phone:       "+1234567890",
			Gender:      "Male",
			MemberSince: "2024-01-01",
		}, nil
	}
	if err != nil {
		return models.UserProfile{}, err
	}

	return models.UserProfile{
		FullName:    user.FullName,
		Email:       user.Email,
		Age:         user.Age,
		Phone:       user.Phone,
		Gender:      user.Gender,
		MemberSince: user.CreatedAt.Format("2006-01-02"),
	}, nil
}
