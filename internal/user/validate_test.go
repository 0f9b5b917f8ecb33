package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cterryc/netlify-two/internal/apperr"
)

func TestParseNewUser(t *testing.T) {
	input, err := ParseNewUser(map[string]any{
		"name":  " Ana ",
		"email": "ana@example.com",
		"phone": "555-0100",
		"extra": "ignored",
	})

	require.NoError(t, err)
	assert.Equal(t, CreateInput{Name: "Ana", Email: "ana@example.com", Phone: "555-0100"}, input)
}

func TestParseNewUserViolations(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
		want   []string
	}{
		{"empty", map[string]any{}, []string{"name", "email", "phone"}},
		{"missing phone", map[string]any{"name": "Ana", "email": "a@b.co"}, []string{"phone"}},
		{"blank name", map[string]any{"name": "   ", "email": "a@b.co", "phone": "1"}, []string{"name"}},
		{"non-string values", map[string]any{"name": 1, "email": true, "phone": nil}, []string{"name", "email", "phone"}},
		{"bad email only", map[string]any{"name": "Ana", "email": "nope", "phone": "1"}, []string{"email"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseNewUser(tc.fields)

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperr.KindValidationFailed, appErr.Kind)
			assert.Equal(t, tc.want, appErr.Fields)
		})
	}
}

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"a.b+c@sub.domain.org",
		"x@y.zz",
	}
	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"@no-local.com",
		"no-at.example.com",
		"spaces in@example.com",
		"trailing@example.com ",
	}

	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), "expected %q to be accepted", email)
	}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), "expected %q to be rejected", email)
	}
}
