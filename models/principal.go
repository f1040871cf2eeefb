package models

import "time"

type AccountStatus string

const (
	AccountActive  AccountStatus = "ACTIVE"
	AccountBlocked AccountStatus = "BLOCKED"
)

func (s AccountStatus) Valid() bool {
	return s == AccountActive || s == AccountBlocked
}

// User, Staff and Admin are three independent principal kinds. Usernames are
// unique per kind, not globally; each kind has its own table and its own JWT
// guard.
type User struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	Mobile            string        `json:"mobile"`
	Dob               string        `json:"dob"`
	Username          string        `json:"username"`
	Password          string        `json:"-"`
	AccountStatus     AccountStatus `json:"account_status"`
	AccountCreateDate time.Time     `json:"account_create_date"`
}

type Staff struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	Mobile            string        `json:"mobile"`
	Dob               string        `json:"dob"`
	Username          string        `json:"username"`
	Password          string        `json:"-"`
	StaffDetails      string        `json:"staff_details"`
	AccountStatus     AccountStatus `json:"account_status"`
	AccountCreateDate time.Time     `json:"account_create_date"`
}

type Admin struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	Username          string        `json:"username"`
	Password          string        `json:"-"`
	AdminDetails      string        `json:"admin_details"`
	AccountStatus     AccountStatus `json:"account_status"`
	AccountCreateDate time.Time     `json:"account_create_date"`
}

// UserProfile is the reduced projection returned to a signed-in user.
type UserProfile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Dob      string `json:"dob"`
}
