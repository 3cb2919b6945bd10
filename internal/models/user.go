package models

// User is the authenticated account record. It is created by the
// user-creation endpoint during onboarding and persisted locally as a
// single JSON blob; the JSON tags are shared by the wire format and the
// persisted form.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sign      Sign   `json:"sign"`
	DOB       string `json:"dob"`
	IsPremium bool   `json:"is_premium"`
}

// UserPatch is a merge-patch applied to the session's user record. Nil
// fields are left untouched; the result fully replaces the stored record.
type UserPatch struct {
	Name      *string
	IsPremium *bool
}

// Merge returns a copy of the user with the patch applied.
func (u User) Merge(p UserPatch) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.IsPremium != nil {
		u.IsPremium = *p.IsPremium
	}
	return u
}
