package code

import httpPKG "net/http"

// SuccessCode overrides the success HTTP status. Embed it with `json:"-"`
// in a response struct to answer e.g. 201 alongside a payload.
type SuccessCode struct {
	HTTPCode int
}

func (s SuccessCode) getSuccessCode() *SuccessCode {
	if s.HTTPCode == 0 {
		return &SuccessCode{HTTPCode: httpPKG.StatusOK}
	}
	return &s
}

type successCodeGetter interface {
	getSuccessCode() *SuccessCode
}

func ParseResponseSuccessCode(res interface{}) *SuccessCode {
	switch successCode := res.(type) {
	case successCodeGetter:
		return successCode.getSuccessCode()
	case nil:
		return &SuccessCode{HTTPCode: httpPKG.StatusNoContent}
	}
	return &SuccessCode{HTTPCode: httpPKG.StatusOK}
}
