package e2e

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"placement-workers/internal/announcements"
	"placement-workers/internal/catalog"
	"placement-workers/internal/common/camunda"
	"placement-workers/internal/common/logger"
	"placement-workers/internal/placement"

	ate "placement-workers/internal/workers/placement/apply-to-employer"
	gd "placement-workers/internal/workers/placement/get-dashboard"
	ms "placement-workers/internal/workers/placement/manage-session"
)

const processID = "placement-apply"

// newZeebe connects to the broker named by ZEEBE_ADDRESS and skips otherwise.
func newZeebe(t *testing.T) zbc.Client {
	t.Helper()
	addr := os.Getenv("ZEEBE_ADDRESS")
	if addr == "" {
		t.Skip("ZEEBE_ADDRESS not set, skipping e2e")
	}

	client, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         addr,
		UsePlaintextConnection: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = client.NewTopologyCommand().Send(ctx)
	require.NoError(t, err, "zeebe topology request failed")
	return client
}

func startWorkers(t *testing.T, client zbc.Client, zapLog *zap.Logger) {
	t.Helper()
	log := logger.NewZapAdapter(zapLog)
	sessions := placement.NewService(placement.NewMemoryStore())
	employers := catalog.NewMemoryRepository(catalog.SeedEmployers())

	handlers := map[string]camunda.JobHandler{
		ms.TaskType:  ms.NewHandler(&ms.Config{Timeout: 5 * time.Second}, sessions, log),
		ate.TaskType: ate.NewHandler(&ate.Config{Timeout: 5 * time.Second}, sessions, employers, log),
		gd.TaskType:  gd.NewHandler(&gd.Config{Timeout: 5 * time.Second}, sessions, employers, announcements.NewMemoryBoard(announcements.SeedAnnouncements()), log),
	}
	for taskType, h := range handlers {
		w := camunda.NewWorker(client, camunda.WorkerOptions{
			TaskType:      taskType,
			MaxJobsActive: 1,
			Timeout:       30 * time.Second,
		}, h, zapLog)
		t.Cleanup(w.Stop)
	}
}

func TestApplyFlow(t *testing.T) {
	client := newZeebe(t)
	zapLog := zaptest.NewLogger(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_, err := client.NewDeployResourceCommand().
		AddResourceFile("testdata/placement-apply.bpmn").
		Send(ctx)
	require.NoError(t, err, "deploy placement-apply.bpmn")

	startWorkers(t, client, zapLog)

	sessionID := "e2e-" + uuid.NewString()
	cmd, err := client.NewCreateInstanceCommand().
		BPMNProcessId(processID).
		LatestVersion().
		VariablesFromMap(map[string]interface{}{
			"action":     "start",
			"sessionId":  sessionID,
			"employerId": "2",
		})
	require.NoError(t, err)

	res, err := cmd.WithResult().Send(ctx)
	require.NoError(t, err, "process did not complete")

	var vars struct {
		SessionID          string `json:"sessionId"`
		Created            bool   `json:"created"`
		ActiveApplications int    `json:"activeApplications"`
		TasksTotal         int    `json:"tasksTotal"`
		Applications       []struct {
			EmployerID string `json:"employerId"`
			Status     string `json:"status"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.GetVariables()), &vars))

	assert.Equal(t, sessionID, vars.SessionID)
	assert.True(t, vars.Created)
	assert.Len(t, vars.Applications, 4)
	assert.Equal(t, 3, vars.ActiveApplications)
	assert.Equal(t, 18, vars.TasksTotal)
}
