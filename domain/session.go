package domain

// Credential is the opaque bearer token issued by the backend. The client
// never inspects its contents; presence alone means "authenticated".
type Credential string

// Session pairs the persisted credential with the profile it belongs to.
// Both halves are present or both are absent, never one without the other.
type Session struct {
	Credential Credential
	Profile    *UserProfile
}

// Anonymous is the zero session returned whenever no usable credential
// pair is persisted.
var Anonymous = Session{}

func (s Session) IsAuthenticated() bool {
	return s.Credential != "" && s.Profile != nil
}

func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.Profile.IsAdmin()
}
