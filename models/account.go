package models

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleParent = "parent"
)

// DefaultAccountName is used when the identity provider has no display name.
const DefaultAccountName = "Bruker"

// Account is a profile in the users collection.
type Account struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	FirebaseUID string  `json:"firebaseUid,omitempty" gorm:"index"`
	Name        string  `json:"name"`
	Email       string  `json:"email" gorm:"index" validate:"omitempty,email"`
	Role        string  `json:"role" validate:"omitempty,oneof=admin staff parent"`
	Phone       string  `json:"phone"`
	Relation    string  `json:"relation"`
	Avatar      string  `json:"avatar"`
	DeviceToken string  `json:"deviceToken,omitempty"`
	Lang        string  `json:"lang,omitempty"`
	CreatedAt   *string `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt"`
}

func (Account) TableName() string {
	return "users"
}

// IsStaff reports whether the account sees every child.
func (a Account) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleStaff
}

// IdentityUID is the uid of the identity user behind the account.
// FirebaseUID is only set when it differs from ID, as for guardians
// created by staff and linked by e-mail at their first sign-in.
func (a Account) IdentityUID() string {
	if a.FirebaseUID != "" {
		return a.FirebaseUID
	}
	return a.ID
}

// SetName keeps the avatar in step with the name.
func (a *Account) SetName(name string) {
	a.Name = name
	a.Avatar = Avatar(name)
}

// Guardian is an account resolved for a specific child.
type Guardian struct {
	Account
	UserID    string `json:"userId"`
	IsPrimary bool   `json:"isPrimary"`
}

// GuardianInput describes a guardian named when a child is created or edited.
// ID is set when the guardian is an existing account.
type GuardianInput struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required_without=ID"`
	Email     string `json:"email" validate:"required_without=ID,omitempty,email"`
	Phone     string `json:"phone"`
	Relation  string `json:"relation"`
	IsPrimary bool   `json:"isPrimary"`
}

// AccountInput is the admin-facing create/update payload for users.
type AccountInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin staff parent"`
	Phone    *string `json:"phone"`
	Relation *string `json:"relation"`
	Password string  `json:"password,omitempty"`
}

// ProfileInput is what a signed-in user may change about themselves.
type ProfileInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Phone       *string `json:"phone"`
	Relation    *string `json:"relation"`
	DeviceToken *string `json:"deviceToken"`
	Lang        *string `json:"lang" validate:"omitempty,oneof=nb en"`
}
