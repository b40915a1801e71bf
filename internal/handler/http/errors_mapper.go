package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
)

// errorReply is the status and the client-facing message of a known error.
type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	service.ErrMissingFields:    {http.StatusBadRequest, app.MsgMissingFields},
	service.ErrWrongCredentials: {http.StatusBadRequest, app.MsgWrongCredentials},
	service.ErrWrongPassword:    {http.StatusBadRequest, app.MsgWrongPassword},

	store.ErrAccountAlreadyExists: {http.StatusBadRequest, app.MsgUserAlreadyExists},
	store.ErrAccountNotFound:      {http.StatusNotFound, app.MsgUserDoesNotExist},

	ErrInvalidRequestBody: {http.StatusBadRequest, app.MsgInvalidRequestBody},
}

// statusFromError returns the HTTP status and message for err. Unknown
// errors map to 500 with a generic message.
func statusFromError(err error) (int, string) {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply.status, reply.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
