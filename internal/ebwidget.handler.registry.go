package internal

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// InternalHandler mirrors the public ShortcodeHandler interface for internal use.
// This allows the internal package to work with handlers without import cycles.
type InternalHandler interface {
	Tag() string
	Render(ctx context.Context, attrs Attributes, content string) (string, error)
}

// Registry manages shortcode handler registration with first-come-wins semantics.
// It is thread-safe for concurrent read/write access.
type Registry struct {
	handlers map[string]InternalHandler
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewRegistry creates a new handler registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		handlers: make(map[string]InternalHandler),
		logger:   logger,
	}
}

// Register adds a handler to the registry.
// If a handler for the same tag already exists, returns an error
// but does not panic (first-come-wins semantics).
func (r *Registry) Register(handler InternalHandler) error {
	if handler == nil {
		return NewRegistryError(ErrMsgNilHandler, StringValueEmpty)
	}

	tag := handler.Tag()
	if tag == StringValueEmpty {
		return NewRegistryError(ErrMsgEmptyTagName, StringValueEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[tag]; exists {
		r.logger.Warn(LogMsgHandlerCollision, zap.String(LogFieldTagName, tag))
		return NewRegistryError(ErrMsgHandlerAlreadyExists, tag)
	}

	r.handlers[tag] = handler
	r.logger.Debug(LogMsgHandlerRegistered, zap.String(LogFieldTagName, tag))
	return nil
}

// MustRegister adds a handler and panics if registration fails.
// Use this for built-in handlers that must always be available.
func (r *Registry) MustRegister(handler InternalHandler) {
	if err := r.Register(handler); err != nil {
		panic(err)
	}
}

// Unregister removes the handler for tag. Returns true if it existed.
func (r *Registry) Unregister(tag string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[tag]; !exists {
		return false
	}
	delete(r.handlers, tag)
	r.logger.Debug(LogMsgHandlerUnregister, zap.String(LogFieldTagName, tag))
	return true
}

// Get retrieves a handler by tag.
// Returns the handler and true if found, or nil and false if not.
func (r *Registry) Get(tag string) (InternalHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, exists := r.handlers[tag]
	return handler, exists
}

// Has checks if a handler is registered for the given tag.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.handlers[tag]
	return exists
}

// List returns all registered tags in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// RegistryError represents a registry operation error
type RegistryError struct {
	Message string
	TagName string
}

// NewRegistryError creates a new registry error
func NewRegistryError(message, tagName string) *RegistryError {
	return &RegistryError{
		Message: message,
		TagName: tagName,
	}
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.TagName != StringValueEmpty {
		return fmt.Sprintf(ErrFmtTagMessage, e.Message, e.TagName)
	}
	return e.Message
}

// Registry error message constants
const (
	ErrMsgNilHandler           = "handler cannot be nil"
	ErrMsgEmptyTagName         = "handler tag cannot be empty"
	ErrMsgHandlerAlreadyExists = "handler already registered for shortcode"
)

// Additional log field constants for registry
const (
	LogFieldTagName = "tag_name"
)
