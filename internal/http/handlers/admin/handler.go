package admin

import "github.com/forgehall/forgehall/internal/provider"

// Handler serves the management APIs.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
