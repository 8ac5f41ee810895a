package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Name         string `json:"name" gorm:"size:100;not null"`
	PasswordHash string `json:"-" gorm:"size:128;not null"`
	Admin        bool   `json:"admin" gorm:"default:false"`
}

type RegisterData struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginData struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
