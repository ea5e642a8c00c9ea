package code

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type createdResponse struct {
	Name string `json:"name"`

	SuccessCode `json:"-"`
}

func TestParseResponseSuccessCode(t *testing.T) {
	assert.Equal(t, http.StatusCreated, ParseResponseSuccessCode(&createdResponse{
		Name:        "name",
		SuccessCode: SuccessCode{HTTPCode: http.StatusCreated},
	}).HTTPCode)

	// An embedded zero value means the default.
	assert.Equal(t, http.StatusOK, ParseResponseSuccessCode(&createdResponse{Name: "name"}).HTTPCode)

	assert.Equal(t, http.StatusOK, ParseResponseSuccessCode(struct{ Name string }{Name: "name"}).HTTPCode)
	assert.Equal(t, http.StatusNoContent, ParseResponseSuccessCode(nil).HTTPCode)
}
