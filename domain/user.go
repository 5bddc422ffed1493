package domain

import "time"

// User represents a registered account. Username is the public identity used
// in urls and follow requests, Email is only used for login. Password is
// transient input, PasswordHash is what gets stored. Remember / RememberHash
// work the same way for the session cookie token.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username" gorm:"notNull;uniqueIndex"`
	Email    string `json:"email" gorm:"notNull;uniqueIndex"`

	Password     string `json:"password,omitempty" gorm:"-"`
	PasswordHash string `json:"-" gorm:"notNull"`
	Remember     string `json:"-" gorm:"-"`
	RememberHash string `json:"-" gorm:"notNull;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserService is a set of methods to manipulate and work with the User model.
type UserService interface {
	Authenticate(email, password string) (*User, error)
	ByID(id int) (*User, error)
	ByUsername(username string) (*User, error)
	ByRemember(token string) (*User, error)
	Create(user *User) error
	Update(user *User) error
}
