// Package accounts defines the user and couple entities together with the
// registration, login, profile and couple contracts.
//
// A couple is the tenant unit of the application: every to-do, wishlist and
// menu entry belongs to exactly one couple, and a couple holds at most two
// user accounts. The two-member cap is enforced during registration, not by
// the schema.
package accounts

// MaxCoupleMembers is the registration-time cap on users per couple.
const MaxCoupleMembers = 2

// Couple is the shared ownership unit for up to two users.
type Couple struct {
	ID   string
	Name string
}

// User is a registered account. CoupleID is empty only for rows predating
// couple assignment; registration always joins a couple.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CoupleID     string

	// Profile fields. Skills and About are ordered lists; their storage
	// encoding is a persistence concern.
	Name        string
	Email       string
	AvatarURL   string
	Description string
	Skills      []string
	About       []string
}

// Registration carries the input of a register call.
type Registration struct {
	Username    string
	Password    string
	Name        string
	Email       string
	AvatarURL   string
	Description string
	Skills      []string
	About       []string

	// CoupleID joins an existing couple; when empty a new couple is
	// created, named CoupleName or a default derived from the username.
	CoupleID   string
	CoupleName string
}

// ProfileUpdate carries a partial profile update. Nil fields are left
// untouched; this includes Skills and About, so an absent list never clears
// the stored value.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	AvatarURL   *string
	Description *string
	Skills      []string
	About       []string
}
