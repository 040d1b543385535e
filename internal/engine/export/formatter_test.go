package export_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports/mocks"
	"go.trai.ch/varcss/internal/engine/export"
	"go.uber.org/mock/gomock"
)

func TestFormatter_DisplayValue(t *testing.T) {
	ctx := context.Background()
	host := fixtureHost()
	f := export.NewFormatter(host)

	vars, err := host.ListVariables(ctx)
	require.NoError(t, err)
	byID := make(map[string]domain.Variable, len(vars))
	for _, v := range vars {
		byID[v.ID] = v
	}

	tests := []struct {
		name   string
		varID  string
		modeID string
		want   string
	}{
		{"opaque color", "v1", "p1", "#3366ff"},
		{"number", "v2", "p1", "16"},
		{"string", "v3", "p1", "Inter, sans-serif"},
		{"missing value", "v4", "p1", export.NotAvailable},
		{"color alias in same collection", "v5", "p1", "alias:Blue 500 (#3366ff)"},
		{"color alias across collections", "v6", "t1", "alias:Blue 500"},
		{"translucent color", "v6", "t2", "rgba(0, 0, 0, 0.50)"},
		{"dangling alias", "v7", "t1", export.UnknownAlias},
		{"unknown mode", "v1", "t1", export.NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.DisplayValue(ctx, byID[tt.varID], tt.modeID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_NonColorAliasHasNoSuffix(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)

	host.EXPECT().GetVariableByID(gomock.Any(), "v2").
		Return(&domain.Variable{ID: "v2", Name: "space md", Type: domain.TypeNumber,
			Values: map[string]domain.Value{"m": domain.NumberValue{Number: 4}}}, nil)

	v := domain.Variable{Name: "gap", Values: map[string]domain.Value{"m": domain.AliasValue{ID: "v2"}}}
	got, err := export.NewFormatter(host).DisplayValue(context.Background(), v, "m")
	require.NoError(t, err)
	assert.Equal(t, "alias:space md", got)
}

func TestFormatter_HostError(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)

	host.EXPECT().GetVariableByID(gomock.Any(), "v1").Return(nil, errors.New("host gone"))

	v := domain.Variable{Name: "brand", Values: map[string]domain.Value{"m": domain.AliasValue{ID: "v1"}}}
	_, err := export.NewFormatter(host).DisplayValue(context.Background(), v, "m")
	require.ErrorContains(t, err, domain.ErrHostReadFailed.Error())
}
