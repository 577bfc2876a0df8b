// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. A method that the
// matched route does not serve is answered with 404 instead of chi's 405, so
// the API never advertises paths to callers using the wrong method.
//
// Only routes whose pattern equals the request path literally are looked
// up; parameterised routes always end in 404 here.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			writeError(w, r, errRouteNotFound, "Unsupported method")
			return
		}

		router.ServeHTTP(w, r)
	}
}
