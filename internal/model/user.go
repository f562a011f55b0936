package model

type UserRole string

const (
	Learner       UserRole = "learner"
	Guardian      UserRole = "guardian"
	Staff         UserRole = "staff"
	Administrator UserRole = "administrator"
)

// ValidRole reports whether s names one of the four platform roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case Learner, Guardian, Staff, Administrator:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Username string   `gorm:"size:100;not null" json:"username"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"` // stored lowercase
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'learner'" json:"role"`

	BookMoods []BookMood `gorm:"foreignKey:UserID" json:"bookMoods,omitempty"`
}

func (User) TableName() string {
	return "users"
}
