package domain

// UserProfile is a persisted users row. Every attribute except ID is nullable.
type UserProfile struct {
	ID           int64   `db:"id" json:"id"`
	CompanyName  *string `db:"company_name" json:"companyName"`
	Email        *string `db:"email" json:"email"`
	Password     *string `db:"password" json:"password"`
	FirstName    *string `db:"first_name" json:"firstName"`
	LastName     *string `db:"last_name" json:"lastName"`
	MobileNumber *string `db:"mobile_number" json:"mobileNumber"`
	DateOfBirth  *string `db:"dob" json:"dateOfBirth"`
	Hashtag      *string `db:"hashtag" json:"hashtag"`
}

// UniqueKey is the tuple covered by the uix_user constraint.
// Nil fields match nil fields.
type UniqueKey struct {
	CompanyName  *string
	Email        *string
	FirstName    *string
	LastName     *string
	MobileNumber *string
	DateOfBirth  *string
}

func (u *UserProfile) UniqueKey() UniqueKey {
	return UniqueKey{
		CompanyName:  u.CompanyName,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		MobileNumber: u.MobileNumber,
		DateOfBirth:  u.DateOfBirth,
	}
}

// Equal compares two keys treating nil as an ordinary value.
func (k UniqueKey) Equal(other UniqueKey) bool {
	return equalNullable(k.CompanyName, other.CompanyName) &&
		equalNullable(k.Email, other.Email) &&
		equalNullable(k.FirstName, other.FirstName) &&
		equalNullable(k.LastName, other.LastName) &&
		equalNullable(k.MobileNumber, other.MobileNumber) &&
		equalNullable(k.DateOfBirth, other.DateOfBirth)
}

func equalNullable(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
