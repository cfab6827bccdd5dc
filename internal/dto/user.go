package dto

// UserType is the kind of login a session carries.
type UserType string

const (
	UserTypeUser  UserType = "USER"
	UserTypeAdmin UserType = "ADMIN"
)

// MaxAccountIDLength matches the width of users.id.
const MaxAccountIDLength = 64

// UserDTO is a row of the users table. Password holds the bcrypt hash and
// is never serialized.
type UserDTO struct {
	ID       string   `json:"id" gorm:"column:id"`
	Password string   `json:"-" gorm:"column:password"`
	Name     string   `json:"name" gorm:"column:name"`
	Phone    string   `json:"phone" gorm:"column:phone"`
	Address  string   `json:"address" gorm:"column:address"`
	UserType UserType `json:"userType" gorm:"column:user_type"`
}
