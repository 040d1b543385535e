package document

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	collectionIDPrefix = "VariableCollectionId:"
	variableIDPrefix   = "VariableID:"
)

// Host implements ports.Host over an in-memory document. When backed by a
// store, every write is persisted before it returns. A write whose save fails
// leaves the document unchanged.
type Host struct {
	mu    sync.RWMutex
	doc   *domain.Document
	store ports.DocumentStore
}

// NewHost loads the document from store.
func NewHost(store ports.DocumentStore) (*Host, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Host{doc: doc, store: store}, nil
}

// NewMemoryHost creates a Host that is never persisted. A nil doc starts empty.
func NewMemoryHost(doc *domain.Document) *Host {
	if doc == nil {
		doc = &domain.Document{}
	}
	return &Host{doc: doc}
}

// Reload replaces the in-memory document with the stored one. Writes wait
// until the swap is done.
func (h *Host) Reload() error {
	if h.store == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	doc, err := h.store.Load()
	if err != nil {
		return err
	}
	h.doc = doc
	return nil
}

// ListVariables returns copies of every variable in document order.
func (h *Host) ListVariables(_ context.Context) ([]domain.Variable, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.Variable, 0, len(h.doc.Variables))
	for _, v := range h.doc.Variables {
		out = append(out, cloneVariable(v))
	}
	return out, nil
}

// ListCollections returns copies of every collection in document order.
func (h *Host) ListCollections(_ context.Context) ([]domain.Collection, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.Collection, 0, len(h.doc.Collections))
	for _, c := range h.doc.Collections {
		out = append(out, cloneCollection(c))
	}
	return out, nil
}

// GetVariableByID returns a copy of the variable, or nil if it does not exist.
func (h *Host) GetVariableByID(_ context.Context, id string) (*domain.Variable, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	i := variableIndex(h.doc, id)
	if i < 0 {
		return nil, nil
	}
	v := cloneVariable(h.doc.Variables[i])
	return &v, nil
}

// CreateCollection adds a collection with a single default mode.
func (h *Host) CreateCollection(_ context.Context, name string) (domain.Collection, error) {
	c := domain.Collection{
		ID:    collectionIDPrefix + uuid.NewString(),
		Name:  name,
		Modes: []domain.Mode{{ID: uuid.NewString(), Name: domain.DefaultModeName}},
	}
	err := h.update(func(doc *domain.Document) error {
		doc.Collections = append(doc.Collections, cloneCollection(c))
		return nil
	})
	if err != nil {
		return domain.Collection{}, err
	}
	return c, nil
}

// RenameMode renames a mode of the given collection.
func (h *Host) RenameMode(_ context.Context, collectionID, modeID, name string) error {
	return h.update(func(doc *domain.Document) error {
		ci, err := mustCollection(doc, collectionID)
		if err != nil {
			return err
		}
		modes := doc.Collections[ci].Modes
		mi := slices.IndexFunc(modes, func(m domain.Mode) bool { return m.ID == modeID })
		if mi < 0 {
			return writeFailed(domain.ErrModeNotFound, "mode_id", modeID)
		}
		modes[mi].Name = name
		return nil
	})
}

// AddMode appends a mode to the given collection.
func (h *Host) AddMode(_ context.Context, collectionID, name string) (string, error) {
	id := uuid.NewString()
	err := h.update(func(doc *domain.Document) error {
		ci, err := mustCollection(doc, collectionID)
		if err != nil {
			return err
		}
		doc.Collections[ci].Modes = append(doc.Collections[ci].Modes, domain.Mode{ID: id, Name: name})
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// CreateVariable adds a variable with a fixed resolved type.
func (h *Host) CreateVariable(
	_ context.Context,
	name, collectionID string,
	t domain.VariableType,
) (domain.Variable, error) {
	v := domain.Variable{
		ID:           variableIDPrefix + uuid.NewString(),
		Name:         name,
		CollectionID: collectionID,
		Type:         t,
		Values:       make(map[string]domain.Value),
	}
	err := h.update(func(doc *domain.Document) error {
		if _, err := mustCollection(doc, collectionID); err != nil {
			return err
		}
		doc.Variables = append(doc.Variables, cloneVariable(v))
		return nil
	})
	if err != nil {
		return domain.Variable{}, err
	}
	return v, nil
}

// SetValueForMode records a value. Literals must match the variable's
// resolved type; aliases must point at an existing variable.
func (h *Host) SetValueForMode(_ context.Context, variableID, modeID string, value domain.Value) error {
	return h.update(func(doc *domain.Document) error {
		vi := variableIndex(doc, variableID)
		if vi < 0 {
			return writeFailed(domain.ErrVariableNotFound, "variable_id", variableID)
		}
		v := &doc.Variables[vi]

		ci, err := mustCollection(doc, v.CollectionID)
		if err != nil {
			return err
		}
		if !slices.ContainsFunc(doc.Collections[ci].Modes, func(m domain.Mode) bool { return m.ID == modeID }) {
			return writeFailed(domain.ErrModeNotFound, "mode_id", modeID)
		}

		switch val := value.(type) {
		case nil:
			return writeFailed(domain.ErrTypeMismatch, "variable", v.Name)
		case domain.AliasValue:
			if variableIndex(doc, val.ID) < 0 {
				return writeFailed(domain.ErrVariableNotFound, "variable_id", val.ID)
			}
		default:
			if t, _ := domain.TypeOf(val); t != v.Type {
				err := writeFailed(domain.ErrTypeMismatch, "variable", v.Name)
				return zerr.With(zerr.With(err, "expected", v.Type.String()), "actual", t.String())
			}
		}

		if v.Values == nil {
			v.Values = make(map[string]domain.Value)
		}
		v.Values[modeID] = value
		return nil
	})
}

// update applies mutate to a copy of the document, persists the copy and only
// then makes it current.
func (h *Host) update(mutate func(doc *domain.Document) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := cloneDocument(h.doc)
	if err := mutate(next); err != nil {
		return err
	}
	if h.store != nil {
		if err := h.store.Save(next); err != nil {
			return zerr.Wrap(err, domain.ErrHostWriteFailed.Error())
		}
	}
	h.doc = next
	return nil
}

func mustCollection(doc *domain.Document, id string) (int, error) {
	i := slices.IndexFunc(doc.Collections, func(c domain.Collection) bool { return c.ID == id })
	if i < 0 {
		return -1, writeFailed(domain.ErrCollectionNotFound, "collection_id", id)
	}
	return i, nil
}

func variableIndex(doc *domain.Document, id string) int {
	return slices.IndexFunc(doc.Variables, func(v domain.Variable) bool { return v.ID == id })
}

func writeFailed(cause error, key, value string) error {
	return zerr.With(zerr.Wrap(cause, domain.ErrHostWriteFailed.Error()), key, value)
}

func cloneCollection(c domain.Collection) domain.Collection {
	c.Modes = slices.Clone(c.Modes)
	return c
}

func cloneVariable(v domain.Variable) domain.Variable {
	v.Values = maps.Clone(v.Values)
	return v
}

func cloneDocument(doc *domain.Document) *domain.Document {
	out := &domain.Document{
		Collections: make([]domain.Collection, 0, len(doc.Collections)),
		Variables:   make([]domain.Variable, 0, len(doc.Variables)),
	}
	for _, c := range doc.Collections {
		out.Collections = append(out.Collections, cloneCollection(c))
	}
	for _, v := range doc.Variables {
		out.Variables = append(out.Variables, cloneVariable(v))
	}
	return out
}
