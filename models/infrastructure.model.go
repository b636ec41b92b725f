package models

import "gorm.io/gorm"

// Infrastructure is a civic asset or a citizen-reported issue site.
// Draft=true means location is still unresolved; Draft=false implies
// Address and Lat/Lng are populated.
type Infrastructure struct {
	gorm.Model
	SiteID     string  `json:"site_id" gorm:"unique;not null"`
	Name       string  `json:"name"` // free text, usually the complaint sentence
	Type       string  `json:"type" gorm:"default:'Query'"`
	Department string  `json:"department"`
	Address    string  `json:"address" gorm:"default:''"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Draft      bool    `json:"draft"`
	Photo      string  `json:"photo" gorm:"default:''"`
	CreatedBy  string  `json:"created_by"` // citizen phone
}
