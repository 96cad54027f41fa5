package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", "woundcare", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateSessionToken(id)
	require.NoError(t, err)

	got, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestSessionTokenRejected(t *testing.T) {
	svc := NewJWTService("secret", "woundcare", time.Hour)
	token, err := svc.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	tests := map[string]struct {
		svc   JWTService
		token string
	}{
		"garbage":      {svc, "not-a-token"},
		"other secret": {NewJWTService("other", "woundcare", time.Hour), token},
		"other issuer": {NewJWTService("secret", "elsewhere", time.Hour), token},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.svc.ValidateSessionToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestExpiredSessionToken(t *testing.T) {
	svc := NewJWTService("secret", "", -time.Minute)
	token, err := svc.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
