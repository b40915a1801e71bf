// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers with HTTP 405 and a JSON body of the form
//
//	{"error": "Method \"PUT\" not allowed."}
//
// and lists the methods registered for the requested path in the "Allow"
// header. Only exact pattern matches against [http.Request.URL.Path] are
// considered.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteError(w, fmt.Sprintf(app.MsgMethodNotAllowedFormat, r.Method), http.StatusMethodNotAllowed)
	}
}

// allowedMethods returns the sorted methods registered for path.
func allowedMethods(router chi.Routes, path string) []string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		return methods
	}

	return nil
}
