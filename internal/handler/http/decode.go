package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-accounts/models"
)

const (
	formContentType      = "application/x-www-form-urlencoded"
	multipartContentType = "multipart/form-data"
)

// decodeCredentials reads the flat request body into [models.Credentials].
// JSON is the default encoding; urlencoded and multipart forms are accepted
// when the Content-Type says so. An empty body yields empty credentials so
// that the service reports the missing fields.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var credentials models.Credentials
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case formContentType:
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return credentials, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		form, err := url.ParseQuery(string(raw))
		if err != nil {
			return credentials, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return credentialsFromForm(form), nil

	case multipartContentType:
		// ParseMultipartForm reads the body for any method, DELETE included.
		if err := r.ParseMultipartForm(maxRequestBodySize); err != nil {
			return credentials, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		defer r.MultipartForm.RemoveAll()
		return credentialsFromForm(r.MultipartForm.Value), nil
	}

	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil && !errors.Is(err, io.EOF) {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	return credentials, nil
}

func credentialsFromForm(form url.Values) models.Credentials {
	return models.Credentials{
		Username: form.Get("username"),
		Password: form.Get("password"),
		Email:    form.Get("email"),
	}
}
