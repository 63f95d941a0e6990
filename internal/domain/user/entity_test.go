//go:build unit

package user_test

import (
	"strings"
	"testing"

	"bookstore-api/internal/domain/user"
	"bookstore-api/internal/pkg/ptr"
	"bookstore-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := user.NewUsername("reader")
		expected, err := user.NewUser(username, "hashed_password", user.Profile{FirstName: "Ada", LastName: "Reader", Email: "reader@example.com"}, builder.FixedTime)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsStaff())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "reader@example.com", actual.Email().Value())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "symbols @.+-_ OK", mutate: func(b *builder.UserBuilder) { b.Username = "a.b+c-d_e@f" }},
			{name: "150 chars OK", mutate: func(b *builder.UserBuilder) { b.Username = strings.Repeat("u", 150) }},
			{name: "151 chars NG", mutate: func(b *builder.UserBuilder) { b.Username = strings.Repeat("u", 151) }, errIs: user.ErrInvalidUsername},
			{name: "empty NG", mutate: func(b *builder.UserBuilder) { b.Username = "" }, errIs: user.ErrInvalidUsername},
			{name: "space NG", mutate: func(b *builder.UserBuilder) { b.Username = "two words" }, errIs: user.ErrInvalidUsername},
			{name: "slash NG", mutate: func(b *builder.UserBuilder) { b.Username = "a/b" }, errIs: user.ErrInvalidUsername},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty email OK", mutate: func(b *builder.UserBuilder) { b.Email = "" }},
			{name: "invalid format NG", mutate: func(b *builder.UserBuilder) { b.Email = "invalid-email" }, errIs: user.ErrInvalidEmail},
			{name: "missing @ NG", mutate: func(b *builder.UserBuilder) { b.Email = "invalidemail.com" }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty names OK", mutate: func(b *builder.UserBuilder) { b.FirstName, b.LastName = "", "" }},
			{name: "long first name NG", mutate: func(b *builder.UserBuilder) { b.FirstName = strings.Repeat("n", 151) }, errIs: user.ErrInvalidName},
		})
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	t.Run("only provided fields change", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.UpdateProfile(ptr.Of("Grace"), nil, nil))
		assert.Equal(t, "Grace", u.FirstName())
		assert.Equal(t, "Reader", u.LastName())
		assert.Equal(t, "reader@example.com", u.Email().Value())
	})

	t.Run("invalid email leaves profile untouched", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		err = u.UpdateProfile(ptr.Of("Grace"), nil, ptr.Of("broken"))
		require.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Equal(t, "Ada", u.FirstName())
	})

	t.Run("email is normalized to lower case", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.UpdateProfile(nil, nil, ptr.Of("New@Example.COM")))
		assert.Equal(t, "new@example.com", u.Email().Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
