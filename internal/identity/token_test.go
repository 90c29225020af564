package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	key := []byte("test-signing-key")
	accountID := uuid.New()

	tok, exp, err := IssueAccessToken(key, accountID, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := ParseAccessToken(key, tok)
	require.NoError(t, err)
	require.Equal(t, accountID, got)
}

func TestAccessToken_WrongKey(t *testing.T) {
	tok, _, err := IssueAccessToken([]byte("key-a"), uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken([]byte("key-b"), tok)
	require.Error(t, err)
}

func TestAccessToken_Expired(t *testing.T) {
	key := []byte("test-signing-key")
	tok, _, err := IssueAccessToken(key, uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(key, tok)
	require.Error(t, err)
}

func TestAccessToken_Garbage(t *testing.T) {
	_, err := ParseAccessToken([]byte("key"), "not-a-jwt")
	require.Error(t, err)
}
