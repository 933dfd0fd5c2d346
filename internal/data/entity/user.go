package entity

type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleStoreOwner UserRole = "STORE_OWNER"
	RoleAdmin      UserRole = "ADMIN"
)

// User is immutable once created apart from the password hash; role changes
// are not supported through this service.
type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	Address      string   `db:"address"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
