package model

// Role values stored in User.Role.
const (
	RoleLearner = "learner"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	PublicId     string `json:"publicId" gorm:"uniqueIndex;not null"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Role         string `json:"role" gorm:"not null;default:learner"`
}
