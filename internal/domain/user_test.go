package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUniqueKey_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a, b  UniqueKey
		equal bool
	}{
		{
			name:  "all nil",
			equal: true,
		},
		{
			name:  "same values",
			a:     UniqueKey{FirstName: strPtr("A"), LastName: strPtr("B")},
			b:     UniqueKey{FirstName: strPtr("A"), LastName: strPtr("B")},
			equal: true,
		},
		{
			name: "nil against empty string",
			a:    UniqueKey{Email: nil},
			b:    UniqueKey{Email: strPtr("")},
		},
		{
			name: "different dob",
			a:    UniqueKey{DateOfBirth: strPtr("1990-01-01")},
			b:    UniqueKey{DateOfBirth: strPtr("1990-01-02")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestUserProfile_UniqueKeyIgnoresPasswordAndHashtag(t *testing.T) {
	a := UserProfile{FirstName: strPtr("A"), Password: strPtr("one"), Hashtag: strPtr("x")}
	b := UserProfile{FirstName: strPtr("A"), Password: strPtr("two"), Hashtag: strPtr("y")}

	assert.True(t, a.UniqueKey().Equal(b.UniqueKey()))
}
