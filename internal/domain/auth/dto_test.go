package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Username: "admin", Password: "password"}).Validate())

	for _, req := range []LoginRequest{
		{},
		{Username: "admin"},
		{Password: "password"},
		{Username: " \t", Password: "password"},
	} {
		assert.ErrorIs(t, req.Validate(), ErrInvalidCredentials, "%+v", req)
	}
}
