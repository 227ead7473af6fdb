package types

import "time"

// Permission flag actions understood by the authorization layer.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// Permissions is the set of boolean capability flags attached to a user.
// Each flag gates the corresponding mutating action uniformly across all
// resource collections. New users start with every flag false.
type Permissions struct {
	// Add allows creating records in any resource collection.
	Add bool `json:"add"`

	// Edit allows updating existing records.
	Edit bool `json:"edit"`

	// Delete allows removing records.
	Delete bool `json:"delete"`
}

// Allows reports whether the flag matching action is set.
// Unknown actions are always denied.
func (p Permissions) Allows(action string) bool {
	switch action {
	case ActionAdd:
		return p.Add
	case ActionEdit:
		return p.Edit
	case ActionDelete:
		return p.Delete
	default:
		return false
	}
}

// User represents an account in the system.
// It contains identity, permission flags, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// FullName is the user's display name.
	FullName string `json:"fullName" db:"full_name"`

	// Email is the user's email address. Emails are globally unique.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// Permissions are the per-action capability flags of this user.
	Permissions Permissions `json:"permissions"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
