package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/varcss/internal/adapters/telemetry/progrock"
	"go.trai.ch/varcss/internal/core/domain"
)

func TestRecorder_Stages(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	for _, stage := range []string{"collect", "infer", "create", "assign"} {
		stageCtx, vertex := recorder.Record(ctx, stage)
		assert.NotNil(t, stageCtx)

		_, err := vertex.Stdout().Write([]byte("progress\n"))
		require.NoError(t, err)
		vertex.Log(domain.LogLevelInfo, "info msg")
		vertex.Log(domain.LogLevelWarn, "warn msg")

		if stage == "assign" {
			vertex.Complete(errors.New("1 value failed"))
			continue
		}
		vertex.Complete(nil)
	}

	assert.NoError(t, recorder.Close())
}
