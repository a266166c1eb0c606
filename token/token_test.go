package token_test

import (
	"StoreBackend/config"
	"StoreBackend/models"
	"StoreBackend/token"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:token_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	return db
}

func newTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "irrelevant-hash",
		Role:     models.RoleCustomer,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestIssueAndValidate(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)

	plainToken, err := token.Issue(db, testSecret, user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, plainToken)

	// only the hash is persisted
	var row models.SessionToken
	require.NoError(t, db.First(&row).Error)
	assert.NotEqual(t, plainToken, row.TokenHash)
	assert.Equal(t, token.HashToken(plainToken), row.TokenHash)

	userID, role, err := token.Validate(db, testSecret, plainToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, models.RoleCustomer, role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)

	plainToken, err := token.Issue(db, testSecret, user, time.Hour)
	require.NoError(t, err)

	_, _, err = token.Validate(db, "other-secret", plainToken)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)

	plainToken, err := token.Issue(db, testSecret, user, -time.Minute)
	require.NoError(t, err)

	_, _, err = token.Validate(db, testSecret, plainToken)
	assert.Error(t, err)
}

func TestRevoke(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)

	plainToken, err := token.Issue(db, testSecret, user, time.Hour)
	require.NoError(t, err)

	require.NoError(t, token.Revoke(db, plainToken))

	// a revoked token fails validation even though the JWT itself is valid
	_, _, err = token.Validate(db, testSecret, plainToken)
	assert.ErrorIs(t, err, token.ErrTokenRevoked)

	// revoking twice reports the missing row
	assert.ErrorIs(t, token.Revoke(db, plainToken), token.ErrTokenRevoked)
}

func TestRevokeAllForUser(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)

	// multi-device: several live tokens per user are fine
	first, err := token.Issue(db, testSecret, user, time.Hour)
	require.NoError(t, err)
	second, err := token.Issue(db, testSecret, user, time.Hour)
	require.NoError(t, err)

	_, _, err = token.Validate(db, testSecret, first)
	require.NoError(t, err)

	require.NoError(t, token.RevokeAllForUser(db, user.ID))

	_, _, err = token.Validate(db, testSecret, first)
	assert.ErrorIs(t, err, token.ErrTokenRevoked)
	_, _, err = token.Validate(db, testSecret, second)
	assert.ErrorIs(t, err, token.ErrTokenRevoked)
}

func TestSignedVerificationURL(t *testing.T) {
	link := token.SignVerificationURL(testSecret, "http://api.test", 7, time.Hour)
	assert.Contains(t, link, "http://api.test/api/v1/verify-email/7?expires=")
	assert.Contains(t, link, "&signature=")
}

func TestCheckSignature(t *testing.T) {
	link := token.SignVerificationURL(testSecret, "http://api.test", 7, time.Hour)

	// pull the generated signature back out of the link
	var userID uint
	var gotExpires int64
	var signature string
	_, err := fmt.Sscanf(link, "http://api.test/api/v1/verify-email/%d?expires=%d&signature=%s",
		&userID, &gotExpires, &signature)
	require.NoError(t, err)

	assert.True(t, token.CheckSignature(testSecret, userID, gotExpires, signature))

	// wrong secret, wrong user, tampered expiry or expiry in the past all fail
	assert.False(t, token.CheckSignature("other-secret", userID, gotExpires, signature))
	assert.False(t, token.CheckSignature(testSecret, userID+1, gotExpires, signature))
	assert.False(t, token.CheckSignature(testSecret, userID, gotExpires+1, signature))
	assert.False(t, token.CheckSignature(testSecret, userID, time.Now().Add(-time.Minute).Unix(), signature))
}
