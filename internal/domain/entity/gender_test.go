package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crimsng/crims-api/internal/domain/entity"
)

func TestNormalizeGender(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"male", "male", true},
		{"FEMALE", "female", true},
		{" Other ", "other", true},
		{"femal", "female", true}, // tolerated legacy misspelling
		{"FEMAL", "female", true},
		{"", "", true},
		{"unknown", "", false},
		{"females", "", false},
	}
	for _, tc := range cases {
		got, ok := entity.NormalizeGender(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseRole(t *testing.T) {
	r, err := entity.ParseRole("")
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleOfficer, r)

	r, err = entity.ParseRole("admin")
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, r)

	_, err = entity.ParseRole("superuser")
	assert.Error(t, err)
}
