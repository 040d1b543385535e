// Package materialize reconciles a parsed Sheet against the host document.
//
// An import runs four passes in order: collect every declared literal, decide
// a type per (collection, property), create missing collections, modes and
// variables, then assign values. Aliases are only resolved in the last pass,
// once every variable they can point at exists.
package materialize

import (
	"context"
	"fmt"

	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
	"go.trai.ch/varcss/internal/engine/inference"
	"go.trai.ch/zerr"
	"go.uber.org/multierr"
)

// key identifies a property within one collection of the sheet.
type key struct {
	collection string
	property   string
}

// Materializer writes parsed sheets into the host.
type Materializer struct {
	host      ports.Host
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a Materializer.
func New(host ports.Host, logger ports.Logger, telemetry ports.Telemetry) *Materializer {
	return &Materializer{
		host:      host,
		logger:    logger,
		telemetry: telemetry,
	}
}

// structure is the output of the create pass.
type structure struct {
	// modes maps a sheet collection name to its mode ids by mode name.
	modes map[string]map[string]string
	// bound maps every sheet property to the host variable it is assigned to.
	bound map[key]domain.Variable
	// byName holds every bound variable by property name, last write wins.
	byName map[string]domain.Variable
}

// Materialize imports sheet. Host failures while reading or creating abort the
// import; a failed value assignment is logged and recorded in the report.
func (m *Materializer) Materialize(ctx context.Context, sheet *domain.Sheet) (domain.ImportReport, error) {
	var report domain.ImportReport

	literals := m.collect(ctx, sheet)
	types := m.infer(ctx, sheet, literals)

	st, err := m.create(ctx, sheet, types, &report)
	if err != nil {
		return report, zerr.Wrap(err, domain.ErrImportFailed.Error())
	}

	m.assign(ctx, sheet, st, &report)
	return report, nil
}

func (m *Materializer) collect(ctx context.Context, sheet *domain.Sheet) inference.Literals {
	_, vertex := m.telemetry.Record(ctx, "import: collect")

	literals := make(inference.Literals, sheet.DeclarationCount())
	for _, c := range sheet.Collections {
		for _, mode := range c.Modes {
			for _, d := range mode.Declarations {
				literals[d.Name] = d.Value
			}
		}
	}

	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d distinct properties", len(literals)))
	vertex.Complete(nil)
	return literals
}

func (m *Materializer) infer(ctx context.Context, sheet *domain.Sheet, literals inference.Literals) map[key]domain.VariableType {
	_, vertex := m.telemetry.Record(ctx, "import: infer")

	types := make(map[key]domain.VariableType)
	for _, c := range sheet.Collections {
		for _, mode := range c.Modes {
			for _, d := range mode.Declarations {
				k := key{collection: c.Name, property: d.Name}
				if _, ok := types[k]; ok {
					continue
				}
				types[k] = inference.Infer(d.Name, d.Value, literals)
				vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%s/%s: %s", c.Name, d.Name, types[k]))
			}
		}
	}

	vertex.Complete(nil)
	return types
}

func (m *Materializer) create(
	ctx context.Context,
	sheet *domain.Sheet,
	types map[key]domain.VariableType,
	report *domain.ImportReport,
) (*structure, error) {
	_, vertex := m.telemetry.Record(ctx, "import: create")

	st, err := m.createStructure(ctx, sheet, types, report)
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d collections, %d modes, %d variables created",
		report.CollectionsCreated, report.ModesCreated, report.VariablesCreated))
	vertex.Complete(err)
	return st, err
}

func (m *Materializer) createStructure(
	ctx context.Context,
	sheet *domain.Sheet,
	types map[key]domain.VariableType,
	report *domain.ImportReport,
) (*structure, error) {
	collections, err := m.host.ListCollections(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHostReadFailed.Error())
	}
	variables, err := m.host.ListVariables(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHostReadFailed.Error())
	}

	st := &structure{
		modes:  make(map[string]map[string]string),
		bound:  make(map[key]domain.Variable),
		byName: make(map[string]domain.Variable),
	}

	for _, sc := range sheet.Collections {
		i, err := m.ensureCollection(ctx, &collections, sc, report)
		if err != nil {
			return nil, err
		}
		collection := &collections[i]

		modeIDs, err := m.ensureModes(ctx, collection, sc, report)
		if err != nil {
			return nil, err
		}
		if st.modes[sc.Name] == nil {
			st.modes[sc.Name] = make(map[string]string, len(modeIDs))
		}
		for name, id := range modeIDs {
			st.modes[sc.Name][name] = id
		}

		for _, mode := range sc.Modes {
			for _, d := range mode.Declarations {
				k := key{collection: sc.Name, property: d.Name}
				if _, ok := st.bound[k]; ok {
					continue
				}
				v, err := m.ensureVariable(ctx, &variables, collection.ID, d.Name, types[k], report)
				if err != nil {
					return nil, err
				}
				st.bound[k] = v
				st.byName[d.Name] = v
			}
		}
	}

	return st, nil
}

// ensureCollection finds the collection by name or creates it. A created
// collection's implicit mode is renamed to the first mode of sc.
func (m *Materializer) ensureCollection(
	ctx context.Context,
	collections *[]domain.Collection,
	sc domain.SheetCollection,
	report *domain.ImportReport,
) (int, error) {
	for i, c := range *collections {
		if c.Name == sc.Name {
			return i, nil
		}
	}

	created, err := m.host.CreateCollection(ctx, sc.Name)
	if err != nil {
		return -1, zerr.With(zerr.Wrap(err, domain.ErrHostWriteFailed.Error()), "collection", sc.Name)
	}
	report.CollectionsCreated++

	if def, ok := created.DefaultMode(); ok && len(sc.Modes) > 0 {
		first := sc.Modes[0].Name
		if err := m.host.RenameMode(ctx, created.ID, def.ID, first); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrHostWriteFailed.Error()), "collection", sc.Name)
			return -1, zerr.With(err, "mode", first)
		}
		created.Modes[0].Name = first
	}

	*collections = append(*collections, created)
	return len(*collections) - 1, nil
}

func (m *Materializer) ensureModes(
	ctx context.Context,
	collection *domain.Collection,
	sc domain.SheetCollection,
	report *domain.ImportReport,
) (map[string]string, error) {
	ids := make(map[string]string, len(sc.Modes))
	for _, mode := range sc.Modes {
		if existing, ok := collection.ModeByName(mode.Name); ok {
			ids[mode.Name] = existing.ID
			continue
		}
		id, err := m.host.AddMode(ctx, collection.ID, mode.Name)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrHostWriteFailed.Error()), "collection", collection.Name)
			return nil, zerr.With(err, "mode", mode.Name)
		}
		collection.Modes = append(collection.Modes, domain.Mode{ID: id, Name: mode.Name})
		ids[mode.Name] = id
		report.ModesCreated++
	}
	return ids, nil
}

// ensureVariable finds a variable by name within the collection or creates it
// with t. An existing variable keeps its type.
func (m *Materializer) ensureVariable(
	ctx context.Context,
	variables *[]domain.Variable,
	collectionID, name string,
	t domain.VariableType,
	report *domain.ImportReport,
) (domain.Variable, error) {
	for _, v := range *variables {
		if v.CollectionID == collectionID && v.Name == name {
			report.VariablesMatched++
			return v, nil
		}
	}

	v, err := m.host.CreateVariable(ctx, name, collectionID, t)
	if err != nil {
		return domain.Variable{}, zerr.With(zerr.Wrap(err, domain.ErrHostWriteFailed.Error()), "variable", name)
	}
	*variables = append(*variables, v)
	report.VariablesCreated++
	return v, nil
}

func (m *Materializer) assign(ctx context.Context, sheet *domain.Sheet, st *structure, report *domain.ImportReport) {
	_, vertex := m.telemetry.Record(ctx, "import: assign")

	for _, sc := range sheet.Collections {
		for _, mode := range sc.Modes {
			modeID := st.modes[sc.Name][mode.Name]
			for _, d := range mode.Declarations {
				v := st.bound[key{collection: sc.Name, property: d.Name}]
				value := ResolveValue(d.Value, v.Type, st.byName)

				if err := m.host.SetValueForMode(ctx, v.ID, modeID, value); err != nil {
					err = zerr.With(zerr.Wrap(err, domain.ErrAssignFailed.Error()), "variable", d.Name)
					err = zerr.With(zerr.With(err, "collection", sc.Name), "mode", mode.Name)
					m.logger.Error(err)
					vertex.Log(domain.LogLevelWarn, fmt.Sprintf("%s/%s/%s: %v", sc.Name, mode.Name, d.Name, err))
					report.Failures = multierr.Append(report.Failures, err)
					report.FailureCount++
					continue
				}
				report.ValuesAssigned++
			}
		}
	}

	vertex.Complete(report.Failures)
}
