package user

// Patch lists the profile fields a user may change. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.PhoneNumber == nil
}
