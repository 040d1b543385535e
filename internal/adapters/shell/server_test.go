package shell_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/varcss/internal/adapters/shell"
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fakeHandler struct {
	exports   []domain.ExportRequest
	imports   []domain.ImportRequest
	snapshots int
	importErr error
}

func (f *fakeHandler) Export(_ context.Context, req domain.ExportRequest) (domain.ExportResponse, error) {
	f.exports = append(f.exports, req)
	if req.RootCollectionID == "missing" {
		return domain.ExportResponse{}, domain.ErrCollectionNotFound
	}
	return domain.ExportResponse{CSSText: ":root {\n}\n"}, nil
}

func (f *fakeHandler) Import(_ context.Context, req domain.ImportRequest) (domain.ImportResponse, error) {
	f.imports = append(f.imports, req)
	if f.importErr != nil {
		return domain.ImportResponse{Status: domain.ImportError, Message: f.importErr.Error()}, f.importErr
	}
	return domain.ImportResponse{Status: domain.ImportSuccess, Message: "Imported 1 variables into 1 collection(s)"}, nil
}

func (f *fakeHandler) Snapshot(_ context.Context) (*domain.Snapshot, error) {
	f.snapshots++
	return &domain.Snapshot{
		Revision:    "r1",
		Variables:   []domain.SnapshotVariable{},
		Collections: []domain.SnapshotCollection{{ID: "c1", Name: "Theme", Modes: []domain.SnapshotMode{}}},
	}, nil
}

func decodeAll(t *testing.T, out []byte) []map[string]any {
	t.Helper()
	var msgs []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m))
		msgs = append(msgs, m)
	}
	return msgs
}

func types(msgs []map[string]any) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m["type"].(string))
	}
	return out
}

func serve(t *testing.T, h shell.Handler, input string, expectErrors int) []map[string]any {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(expectErrors)

	var out bytes.Buffer
	err := shell.NewServer(log).Serve(context.Background(), h, strings.NewReader(input), &out, nil)
	require.NoError(t, err)
	return decodeAll(t, out.Bytes())
}

func TestServe_PushesSnapshotOnStartup(t *testing.T) {
	h := &fakeHandler{}
	msgs := serve(t, h, "", 0)

	require.Equal(t, []string{shell.TypeSnapshot}, types(msgs))
	assert.Equal(t, "r1", msgs[0]["revision"])
	assert.Len(t, msgs[0]["collections"], 1)
	assert.Equal(t, 1, h.snapshots)
}

func TestServe_Export(t *testing.T) {
	h := &fakeHandler{}
	input := `{"type":"export-css","selectedRootCollectionId":"c1","selectedThemeCollectionId":"c2","useOverrideSyntax":true}` + "\n"

	msgs := serve(t, h, input, 0)

	require.Equal(t, []string{shell.TypeSnapshot, shell.TypeCSSOutput}, types(msgs))
	assert.Equal(t, ":root {\n}\n", msgs[1]["cssText"])
	require.Len(t, h.exports, 1)
	assert.Equal(t, domain.ExportRequest{RootCollectionID: "c1", ThemeCollectionID: "c2", UseOverrideSyntax: true}, h.exports[0])
}

func TestServe_ImportPushesSnapshot(t *testing.T) {
	h := &fakeHandler{}
	input := `{"type":"import-css","cssText":"--a: 1;"}` + "\n"

	msgs := serve(t, h, input, 0)

	require.Equal(t, []string{shell.TypeSnapshot, shell.TypeImportStatus, shell.TypeSnapshot}, types(msgs))
	assert.Equal(t, "success", msgs[1]["status"])
	assert.Equal(t, "Imported 1 variables into 1 collection(s)", msgs[1]["message"])
	assert.Equal(t, "--a: 1;", h.imports[0].CSSText)
	assert.Equal(t, 2, h.snapshots)
}

func TestServe_ImportFailureStillRefreshes(t *testing.T) {
	h := &fakeHandler{importErr: errors.New("host gone")}
	input := `{"type":"import-css","cssText":"--a: 1;"}` + "\n"

	msgs := serve(t, h, input, 1)

	require.Equal(t, []string{shell.TypeSnapshot, shell.TypeImportStatus, shell.TypeSnapshot}, types(msgs))
	assert.Equal(t, "error", msgs[1]["status"])
	assert.Equal(t, "host gone", msgs[1]["message"])
}

func TestServe_RequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		request string
		message string
	}{
		{"malformed json", "{not json\n", "", domain.ErrMalformedMessage.Error()},
		{"unknown type", `{"type":"delete-everything"}` + "\n", "delete-everything", domain.ErrUnknownMessage.Error()},
		{"export failure", `{"type":"export-css","selectedRootCollectionId":"missing"}` + "\n", "export-css", domain.ErrCollectionNotFound.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := serve(t, &fakeHandler{}, tt.input, 1)

			require.Equal(t, []string{shell.TypeSnapshot, shell.TypeError}, types(msgs))
			assert.Equal(t, tt.message, msgs[1]["message"])
			if tt.request != "" {
				assert.Equal(t, tt.request, msgs[1]["request"])
			}
		})
	}
}

func TestServe_RefreshMessageAndBlankLines(t *testing.T) {
	h := &fakeHandler{}
	msgs := serve(t, h, "\n"+`{"type":"refresh"}`+"\n\n", 0)

	assert.Equal(t, []string{shell.TypeSnapshot, shell.TypeSnapshot}, types(msgs))
}

func TestServe_RefreshChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	refresh := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- shell.NewServer(log).Serve(ctx, &fakeHandler{}, inR, outW, refresh)
	}()

	reader := bufio.NewReader(outR)
	readType := func() string {
		line, err := reader.ReadBytes('\n')
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m))
		return m["type"].(string)
	}

	assert.Equal(t, shell.TypeSnapshot, readType())
	refresh <- struct{}{}
	assert.Equal(t, shell.TypeSnapshot, readType())

	require.NoError(t, inW.Close())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after input closed")
	}
}
