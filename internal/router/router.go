// Package router implements the URL dispatcher for the API.
//
// Patterns are literal path segments mixed with {name} placeholders. A
// placeholder matches a single segment consisting only of decimal digits;
// everything else must match exactly, and pattern and request must have the
// same number of segments. Routes are scanned in registration order and the
// first match wins, so registration order is the tie-breaker when two
// patterns could both match.
package router

import (
	"net/http"
	"strings"

	"github.com/DevKaiky/appfit-API/internal/response"
)

// HandlerFunc receives the placeholder values extracted from the path, in
// pattern order. Handlers coerce them to integers as needed.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, params []string)

type route struct {
	method   string
	segments []string
	handler  HandlerFunc
}

type Router struct {
	routes []route
}

func New() *Router {
	return &Router{}
}

// Register adds a route. Registration only happens at startup; the route
// table is read-only while serving.
func (rt *Router) Register(method, pattern string, h HandlerFunc) {
	rt.routes = append(rt.routes, route{
		method:   method,
		segments: splitPath(pattern),
		handler:  h,
	})
}

func (rt *Router) Get(pattern string, h HandlerFunc)    { rt.Register(http.MethodGet, pattern, h) }
func (rt *Router) Post(pattern string, h HandlerFunc)   { rt.Register(http.MethodPost, pattern, h) }
func (rt *Router) Put(pattern string, h HandlerFunc)    { rt.Register(http.MethodPut, pattern, h) }
func (rt *Router) Delete(pattern string, h HandlerFunc) { rt.Register(http.MethodDelete, pattern, h) }

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	segments := splitPath(r.URL.Path)

	for _, candidate := range rt.routes {
		if candidate.method != r.Method {
			continue
		}
		params, ok := match(candidate.segments, segments)
		if !ok {
			continue
		}
		candidate.handler(w, r, params)
		return
	}

	response.RouteNotFound(w)
}

// splitPath strips the trailing slash and breaks the path into segments.
// The query string never reaches this point (r.URL.Path excludes it).
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segments []string) ([]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	var params []string
	for i, part := range pattern {
		if isPlaceholder(part) {
			if !isDigits(segments[i]) {
				return nil, false
			}
			params = append(params, segments[i])
			continue
		}
		if part != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func isPlaceholder(segment string) bool {
	return len(segment) > 2 && segment[0] == '{' && segment[len(segment)-1] == '}'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
