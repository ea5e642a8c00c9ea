package code

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	errorCodeNotFound := CreateErrorCode(http.StatusNotFound)
	assert.Equal(t, errorCodeNotFound, ParseErrorCode(errorCodeNotFound))

	for _, testCase := range []struct {
		message          string
		errString        string
		isExistCallStack bool
		errorCode        *errorCode
	}{
		{
			message:          "bad request",
			errString:        `{"code":0,"message":"bad request"}`,
			isExistCallStack: false,
			errorCode:        CreateErrorCode(http.StatusBadRequest),
		},
		{
			message:          "You cannot follow yourself",
			errString:        `{"code":6,"message":"You cannot follow yourself"}`,
			isExistCallStack: false,
			errorCode:        CreateErrorCode(http.StatusBadRequest).AddCode(SelfFollow),
		},
		{
			message:          "Invalid credentials",
			errString:        `{"code":5,"message":"Invalid credentials"}`,
			isExistCallStack: false,
			errorCode:        CreateErrorCode(http.StatusUnauthorized).AddCode(InvalidPassword),
		},
		{
			message:          "rate limit error. expiry: 3",
			errString:        `{"code":1,"message":"rate limit error. expiry: 3"}`,
			isExistCallStack: false,
			errorCode:        CreateErrorCode(http.StatusTooManyRequests).AddCode(RateLimit, 3),
		},
		{
			message:          "internal error",
			errString:        `{"code":0,"message":"internal error"}`,
			isExistCallStack: true,
			errorCode:        ParseErrorCode(errors.New("unknown error")),
		},
	} {
		assert.Equal(t, testCase.message, testCase.errorCode.Message)
		assert.Equal(t, testCase.errString, testCase.errorCode.Error())
		assert.Equal(t, testCase.isExistCallStack, len(testCase.errorCode.CallStack) != 0)
	}

	wrapped := errors.Wrap(CreateErrorCode(http.StatusForbidden).AddCode(NotPostOwner), "delete post failed")
	assert.Equal(t, http.StatusForbidden, CreateHTTPError(ParseErrorCode(wrapped)).HTTPCode)
}
