package entity

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	Base
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password"`
	Role         UserRole       `db:"role"`
	IsActive     bool           `db:"is_active"`
	Avatar       string         `db:"avatar"`
	Phone        *string        `db:"phone"`
	Address      map[string]any `db:"address"`
}
