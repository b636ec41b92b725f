package models

import "gorm.io/gorm"

type Citizen struct {
	gorm.Model
	Phone string `json:"phone" gorm:"unique;not null"`
	Name  string `json:"name" gorm:"default:''"`
}
