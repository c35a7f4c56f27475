package router

import (
	"errors"
	"strings"

	"github.com/wisp-web/wisp/http"
)

// Handler processes a fully constructed request and produces the response.
type Handler func(request *http.Request) *http.Response

var (
	ErrBadAlias      = errors.New("an alias must begin with a slash")
	ErrAliasOccupied = errors.New("the alias is already registered")
	ErrUnknownAlias  = errors.New("no handler is registered under the alias")
)

type registration struct {
	alias   string
	handler Handler
}

// Registry binds alias path prefixes to handlers and resolves raw request
// paths to the most specific registered alias. It implements the
// http.AliasResolver the request core consumes.
//
// Registration is expected to happen before serving starts; the registry
// itself is not synchronized.
type Registry struct {
	registrations []registration
}

func New() *Registry {
	return new(Registry)
}

// Register binds a handler to an alias. The alias must be rooted ("/", or
// "/store" and so on, without a trailing slash) and not taken yet.
func (r *Registry) Register(alias string, handler Handler) error {
	if len(alias) == 0 || alias[0] != '/' {
		return ErrBadAlias
	}

	if alias != "/" && strings.HasSuffix(alias, "/") {
		return ErrBadAlias
	}

	if r.find(alias) != nil {
		return ErrAliasOccupied
	}

	r.registrations = append(r.registrations, registration{alias: alias, handler: handler})
	return nil
}

// Unregister removes the registration of the alias, reporting whether it
// was there at all.
func (r *Registry) Unregister(alias string) error {
	for i := range r.registrations {
		if r.registrations[i].alias == alias {
			r.registrations = append(r.registrations[:i], r.registrations[i+1:]...)
			return nil
		}
	}

	return ErrUnknownAlias
}

// Resolve returns the longest registered alias matching the path. An alias
// matches if it equals the path or is a prefix of it ending at a segment
// boundary; "/" matches everything.
func (r *Registry) Resolve(path string) (alias string, found bool) {
	best := ""

	for _, reg := range r.registrations {
		if matches(reg.alias, path) && len(reg.alias) > len(best) {
			best = reg.alias
			found = true
		}
	}

	return best, found
}

// Lookup resolves the path and returns the handler registered under the
// winning alias.
func (r *Registry) Lookup(path string) (Handler, bool) {
	alias, found := r.Resolve(path)
	if !found {
		return nil, false
	}

	return r.find(alias).handler, true
}

func (r *Registry) find(alias string) *registration {
	for i := range r.registrations {
		if r.registrations[i].alias == alias {
			return &r.registrations[i]
		}
	}

	return nil
}

func matches(alias, path string) bool {
	if alias == "/" {
		return strings.HasPrefix(path, "/")
	}

	if !strings.HasPrefix(path, alias) {
		return false
	}

	return len(path) == len(alias) || path[len(alias)] == '/'
}
