package users

const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"

	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// User covers both back-office staff and mobile customers. GoogleSub links a
// federated identity; once set it is never overwritten.
type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      *string `json:"name"`
	Email     string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Role      string  `gorm:"not null;default:'staff'" json:"role"`
	Status    string  `gorm:"not null;default:'active'" json:"status"`
	GoogleSub *string `gorm:"uniqueIndex:idx_users_google_sub" json:"googleSub"`
}

func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleStaff || s == RoleCustomer
}

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusDisabled
}
