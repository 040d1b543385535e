// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/varcss/internal/core/domain"
)

// Host is the design document that owns every collection, mode and variable.
// The core only reads from it or asks it to create and update records; it never
// keeps the returned values across operations.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// ListVariables returns every variable in host enumeration order.
	ListVariables(ctx context.Context) ([]domain.Variable, error)

	// ListCollections returns every collection in host enumeration order.
	ListCollections(ctx context.Context) ([]domain.Collection, error)

	// GetVariableByID returns the variable with the given id, or nil if none exists.
	GetVariableByID(ctx context.Context, id string) (*domain.Variable, error)

	// CreateCollection creates a collection with one implicit default mode.
	CreateCollection(ctx context.Context, name string) (domain.Collection, error)

	// RenameMode renames a mode of the given collection.
	RenameMode(ctx context.Context, collectionID, modeID, name string) error

	// AddMode appends a mode to the given collection and returns its id.
	AddMode(ctx context.Context, collectionID, name string) (string, error)

	// CreateVariable creates a variable with a fixed resolved type in the given collection.
	CreateVariable(ctx context.Context, name, collectionID string, t domain.VariableType) (domain.Variable, error)

	// SetValueForMode records value for the variable in the given mode.
	SetValueForMode(ctx context.Context, variableID, modeID string, value domain.Value) error
}
