package export

import (
	"context"

	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/zerr"
)

// Snapshot builds the state pushed to the shell: every variable with its
// display value for each mode of its collection, plus every collection.
func (r *Renderer) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	collections, err := r.host.ListCollections(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHostReadFailed.Error())
	}
	variables, err := r.host.ListVariables(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHostReadFailed.Error())
	}

	modes := make(map[string][]domain.Mode, len(collections))
	snap := &domain.Snapshot{
		Variables:   make([]domain.SnapshotVariable, 0, len(variables)),
		Collections: make([]domain.SnapshotCollection, 0, len(collections)),
	}

	for _, c := range collections {
		modes[c.ID] = c.Modes
		sc := domain.SnapshotCollection{ID: c.ID, Name: c.Name, Modes: make([]domain.SnapshotMode, 0, len(c.Modes))}
		for _, m := range c.Modes {
			sc.Modes = append(sc.Modes, domain.SnapshotMode{ModeID: m.ID, Name: m.Name})
		}
		snap.Collections = append(snap.Collections, sc)
	}

	for _, v := range variables {
		sv := domain.SnapshotVariable{
			Name:          v.Name,
			CollectionID:  v.CollectionID,
			ModeValues:    make(map[string]string, len(modes[v.CollectionID])),
			OverrideToken: v.CodeSyntax,
		}
		for _, m := range modes[v.CollectionID] {
			display, err := r.formatter.DisplayValue(ctx, v, m.ID)
			if err != nil {
				return nil, zerr.With(err, "variable", v.Name)
			}
			sv.ModeValues[m.ID] = display
		}
		snap.Variables = append(snap.Variables, sv)
	}

	return snap, nil
}
