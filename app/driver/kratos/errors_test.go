package kratos

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihelperdrone/droneops/app/domain"
)

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    domain.FailureKind
	}{
		{"account missing", "This account does not exist or has not setup sign in with password.", domain.FailureUserNotFound},
		{"wrong password", "The provided credentials are invalid, check for spelling mistakes...", domain.FailureWrongCredential},
		{"invalid email", `"maria" is not valid "email"`, domain.FailureInvalidEmail},
		{"email taken", "An account with the same identifier (email, phone, username, ...) exists already.", domain.FailureEmailInUse},
		{"short password", "The password length must be at least 8 characters but only got 3.", domain.FailureWeakPassword},
		{"breached password", "The password has been found in data breaches and must no longer be used.", domain.FailureWeakPassword},
		{"rate limited", "Too many requests, please slow down.", domain.FailureRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyMessage(tt.message, "login")
			require.Error(t, err)
			assert.Equal(t, tt.want, domain.KindOf(err))
		})
	}
}

func TestClassifyMessageUnrecognized(t *testing.T) {
	assert.Nil(t, classifyMessage("something unexpected happened", "login"))
	assert.Nil(t, classifyMessage("", "login"))
}

func TestClassifyBodyUIMessages(t *testing.T) {
	body := []byte(`{
		"id": "flow-1",
		"ui": {
			"messages": [
				{"id": 4000006, "text": "The provided credentials are invalid, check for spelling mistakes in your password or username, email address, or phone number.", "type": "error"}
			]
		}
	}`)

	err := classifyBody(body, "submit login flow")
	require.Error(t, err)
	assert.Equal(t, domain.FailureWrongCredential, domain.KindOf(err))
}

func TestClassifyBodyNodeMessages(t *testing.T) {
	body := []byte(`{
		"ui": {
			"messages": [],
			"nodes": [
				{"attributes": {"name": "password"}, "messages": [
					{"id": 4000005, "text": "The password length must be at least 8 characters but only got 3.", "type": "error"}
				]}
			]
		}
	}`)

	err := classifyBody(body, "submit registration flow")
	require.Error(t, err)
	assert.Equal(t, domain.FailureWeakPassword, domain.KindOf(err))
}

func TestClassifyBodyTopLevelError(t *testing.T) {
	body := []byte(`{"error": {"code": 409, "message": "an account with that email already exists"}}`)

	err := classifyBody(body, "submit registration flow")
	require.Error(t, err)
	assert.Equal(t, domain.FailureEmailInUse, domain.KindOf(err))
}

func TestClassifyBodyFallsThroughToReason(t *testing.T) {
	body := []byte(`{"message": "request failed", "reason": "an account with the same identifier exists already"}`)

	err := classifyBody(body, "submit registration flow")
	require.Error(t, err)
	assert.Equal(t, domain.FailureEmailInUse, domain.KindOf(err))
}

func TestClassifyBodyFallsThroughToErrorMessage(t *testing.T) {
	body := []byte(`{"message": "request failed", "reason": "see details", "error": {"message": "the provided credentials are invalid"}}`)

	err := classifyBody(body, "submit login flow")
	require.Error(t, err)
	assert.Equal(t, domain.FailureWrongCredential, domain.KindOf(err))
}

func TestClassifyBodyUnclassifiable(t *testing.T) {
	assert.Nil(t, classifyBody([]byte(`{"message": "internal context canceled"}`), "login"))
	assert.Nil(t, classifyBody([]byte(`not json at all`), "login"))
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   domain.FailureKind
	}{
		{http.StatusBadRequest, domain.FailureWrongCredential},
		{http.StatusUnauthorized, domain.FailureWrongCredential},
		{http.StatusNotFound, domain.FailureUserNotFound},
		{http.StatusConflict, domain.FailureEmailInUse},
		{http.StatusTooManyRequests, domain.FailureRateLimited},
		{http.StatusInternalServerError, domain.FailureUnknown},
		{http.StatusBadGateway, domain.FailureUnknown},
	}

	for _, tt := range tests {
		err := classifyStatus(tt.status, "login", nil)
		require.Error(t, err)
		assert.Equal(t, tt.want, domain.KindOf(err), "status %d", tt.status)
	}
}
