package models

import "gorm.io/gorm"

const (
	RoleCoach   = "coach"
	RoleTrainee = "trainee"
)

type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `gorm:"unique" json:"email"`
	Password  string `json:"-"`
	Role      string `gorm:"default:trainee" json:"role"`
	Bio       string `json:"bio"`
	Specialty string `json:"specialty"`
}
