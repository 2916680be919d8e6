package scope

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndVerify(t *testing.T) {
	m, err := New("secret", "planner", time.Hour)
	require.NoError(t, err)

	token, err := m.CreateToken(Scope{UserID: "u-1", Email: "a@b.c"})
	require.NoError(t, err)

	payload, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", payload.UserID)
	assert.Equal(t, "a@b.c", payload.Email)
	assert.Equal(t, "u-1", payload.Subject)
}

func TestVerify_Failures(t *testing.T) {
	m, err := New("secret", "planner", time.Hour)
	require.NoError(t, err)

	t.Run("Wrong secret", func(t *testing.T) {
		other, _ := New("other-secret", "planner", time.Hour)
		token, _ := other.CreateToken(Scope{UserID: "u-1"})
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		other, _ := New("secret", "someone-else", time.Hour)
		token, _ := other.CreateToken(Scope{UserID: "u-1"})
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		impl := m.(*implManager)
		past := &implManager{secretKey: impl.secretKey, issuer: impl.issuer, ttl: time.Minute,
			now: func() time.Time { return time.Now().Add(-2 * time.Hour) }}
		token, err := past.CreateToken(Scope{UserID: "u-1"})
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New("", "planner", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestExtractBearer(t *testing.T) {
	token, ok := ExtractBearer("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = ExtractBearer("Basic xyz")
	assert.False(t, ok)

	_, ok = ExtractBearer("Bearer   ")
	assert.False(t, ok)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	_, ok := GetScopeFromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, "", GetUserIDFromContext(ctx))

	ctx = SetScopeToContext(ctx, Scope{UserID: "u-9"})
	s, ok := GetScopeFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u-9", s.UserID)
}
