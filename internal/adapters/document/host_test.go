package document_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/varcss/internal/adapters/document"
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestHost_CreateCollection(t *testing.T) {
	ctx := context.Background()
	host := document.NewMemoryHost(nil)

	c, err := host.CreateCollection(ctx, "Theme")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.ID, "VariableCollectionId:"))
	require.Len(t, c.Modes, 1)
	assert.Equal(t, domain.DefaultModeName, c.Modes[0].Name)

	require.NoError(t, host.RenameMode(ctx, c.ID, c.Modes[0].ID, "Light"))
	darkID, err := host.AddMode(ctx, c.ID, "Dark")
	require.NoError(t, err)

	cols, err := host.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, []domain.Mode{{ID: c.Modes[0].ID, Name: "Light"}, {ID: darkID, Name: "Dark"}}, cols[0].Modes)
}

func TestHost_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	host := document.NewMemoryHost(sampleDocument())

	cols, err := host.ListCollections(ctx)
	require.NoError(t, err)
	cols[0].Modes[0].Name = "mutated"

	vars, err := host.ListVariables(ctx)
	require.NoError(t, err)
	vars[0].Values["m1"] = domain.NumberValue{}

	v, err := host.GetVariableByID(ctx, "VariableID:1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.IsType(t, domain.ColorValue{}, v.Values["m1"])

	again, err := host.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Default", again[0].Modes[0].Name)
}

func TestHost_GetVariableByIDMissing(t *testing.T) {
	host := document.NewMemoryHost(sampleDocument())

	v, err := host.GetVariableByID(context.Background(), "VariableID:404")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestHost_SetValueForMode(t *testing.T) {
	ctx := context.Background()
	host := document.NewMemoryHost(sampleDocument())

	tests := []struct {
		name    string
		varID   string
		modeID  string
		value   domain.Value
		wantErr bool
	}{
		{"matching literal", "VariableID:3", "m1", domain.NumberValue{Number: 12}, false},
		{"alias to existing variable", "VariableID:3", "m1", domain.AliasValue{ID: "VariableID:1"}, false},
		{"type mismatch", "VariableID:3", "m1", domain.StringValue{Text: "12"}, true},
		{"alias to missing variable", "VariableID:3", "m1", domain.AliasValue{ID: "VariableID:404"}, true},
		{"unknown variable", "VariableID:404", "m1", domain.NumberValue{}, true},
		{"unknown mode", "VariableID:3", "m404", domain.NumberValue{}, true},
		{"nil value", "VariableID:3", "m1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := host.SetValueForMode(ctx, tt.varID, tt.modeID, tt.value)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrHostWriteFailed.Error())
				return
			}
			require.NoError(t, err)
			v, err := host.GetVariableByID(ctx, tt.varID)
			require.NoError(t, err)
			assert.Equal(t, tt.value, v.Values[tt.modeID])
		})
	}
}

func TestHost_CreateVariableUnknownCollection(t *testing.T) {
	host := document.NewMemoryHost(nil)

	_, err := host.CreateVariable(context.Background(), "x", "VariableCollectionId:404", domain.TypeColor)
	require.ErrorContains(t, err, domain.ErrHostWriteFailed.Error())
}

func TestHost_PersistsWrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "variables.json")

	host, err := document.NewHost(document.NewStore(path))
	require.NoError(t, err)

	c, err := host.CreateCollection(ctx, "Primitives")
	require.NoError(t, err)
	v, err := host.CreateVariable(ctx, "brand", c.ID, domain.TypeColor)
	require.NoError(t, err)
	require.NoError(t, host.SetValueForMode(ctx, v.ID, c.Modes[0].ID, domain.ColorValue{Color: domain.Color{R: 1}}))

	reopened, err := document.NewHost(document.NewStore(path))
	require.NoError(t, err)
	got, err := reopened.GetVariableByID(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ColorValue{Color: domain.Color{R: 1}}, got.Values[c.Modes[0].ID])
}

func TestHost_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDocumentStore(ctrl)
	store.EXPECT().Load().Return(&domain.Document{}, nil)
	store.EXPECT().Save(gomock.Any()).Return(domain.ErrDocumentWriteFailed)

	host, err := document.NewHost(store)
	require.NoError(t, err)

	_, err = host.CreateCollection(context.Background(), "Primitives")
	require.ErrorContains(t, err, domain.ErrHostWriteFailed.Error())

	cols, err := host.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestHost_SaveFailureKeepsValue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDocumentStore(ctrl)
	store.EXPECT().Load().Return(sampleDocument(), nil)
	store.EXPECT().Save(gomock.Any()).Return(domain.ErrDocumentWriteFailed).Times(2)

	host, err := document.NewHost(store)
	require.NoError(t, err)

	err = host.SetValueForMode(ctx, "VariableID:3", "m1", domain.NumberValue{Number: 16})
	require.ErrorContains(t, err, domain.ErrHostWriteFailed.Error())
	_, err = host.AddMode(ctx, "VariableCollectionId:1", "Dark")
	require.ErrorContains(t, err, domain.ErrHostWriteFailed.Error())

	got, err := host.GetVariableByID(ctx, "VariableID:3")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.NumberValue{Number: 8}, got.Values["m1"])

	cols, err := host.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Len(t, cols[0].Modes, 1)
}

func TestHost_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variables.json")
	require.NoError(t, document.NewStore(path).Save(sampleDocument()))

	host, err := document.NewHost(document.NewStore(path))
	require.NoError(t, err)

	doc := sampleDocument()
	doc.Collections[0].Name = "Renamed"
	require.NoError(t, document.NewStore(path).Save(doc))

	require.NoError(t, host.Reload())
	cols, err := host.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", cols[0].Name)
}

// slowLoadStore runs onLoad after reading the file and before handing the
// result back, so a caller sees a document that was read before onLoad ran.
type slowLoadStore struct {
	*document.Store
	onLoad func()
}

func (s *slowLoadStore) Load() (*domain.Document, error) {
	doc, err := s.Store.Load()
	if s.onLoad != nil {
		s.onLoad()
	}
	return doc, err
}

func TestHost_ReloadKeepsConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "variables.json")
	store := &slowLoadStore{Store: document.NewStore(path)}

	host, err := document.NewHost(store)
	require.NoError(t, err)

	written := make(chan error, 1)
	store.onLoad = func() {
		store.onLoad = nil
		go func() {
			_, err := host.CreateCollection(ctx, "Theme")
			written <- err
		}()
		// Give the write a chance to finish while the load is in flight.
		select {
		case err := <-written:
			written <- err
		case <-time.After(50 * time.Millisecond):
		}
	}

	require.NoError(t, host.Reload())
	require.NoError(t, <-written)

	cols, err := host.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "Theme", cols[0].Name)

	onDisk, err := document.NewStore(path).Load()
	require.NoError(t, err)
	assert.Len(t, onDisk.Collections, 1)
}
