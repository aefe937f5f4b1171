package models

// Session is the verified identity of the caller, taken from a signed token.
type Session struct {
	AccountID   string `json:"accountId"`
	FirebaseUID string `json:"firebaseUid"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

func (s Session) IsStaff() bool {
	return s.Role == RoleAdmin || s.Role == RoleStaff
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// AuthResult is returned by every successful sign-in.
type AuthResult struct {
	Token   string  `json:"token"`
	Account Account `json:"user"`
}
