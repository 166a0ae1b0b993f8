package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
)

func newTestApp() *fiber.App {
	return NewApp(NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port:                                     9095,
		RoundRobinTimeQuantum:                    2,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{4, 8, 0},
	}))
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

const twoJobs = `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":3},{"process_id":2,"arrival_time":1,"burst_time":2}]}`

func TestFirstComeFirstServe(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/api/v1/fcfs", "/api/v1/fifo"} {
		resp := post(t, app, path, twoJobs)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decode[responses.ScheduleResponse](t, resp)
		assert.Equal(t, "fifo", body.Algorithm)
		assert.Equal(t, 5.0, body.TotalTime)
		assert.Equal(t, 1.0, body.AverageWaitingTime)
		require.Len(t, body.Details, 2)
		assert.Equal(t, 3, body.Details[1].StartTime)
		assert.Empty(t, body.Slices)
	}
}

func TestRoundRobin_UsesConfiguredQuantum(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/rr", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":5}]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[responses.ScheduleResponse](t, resp)
	// quantum 2 from config: 0-2, 2-4, 4-5
	require.Len(t, body.Slices, 3)
	assert.Equal(t, 2, body.Slices[0].FinishTime)
	assert.Equal(t, 3, body.Slices[0].RemainingTime)
	require.Len(t, body.Details, 1)
	assert.Equal(t, 5, body.Details[0].FinishTime)
}

func TestRoundRobin_RequestQuantumWins(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/rr", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":5}],"time_quantum":5}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[responses.ScheduleResponse](t, resp)
	assert.Len(t, body.Slices, 1)
}

func TestMultilevelFeedbackQueue_Levels(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/mlfq", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":6}],"levels_time_quantum":[1,0]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[responses.ScheduleResponse](t, resp)
	require.Len(t, body.Slices, 2)
	assert.Equal(t, 0, body.Slices[0].Level)
	assert.Equal(t, 1, body.Slices[1].Level)
}

func TestShortestJobFirstAndStcf(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/api/v1/sjf", "/api/v1/stcf"} {
		resp := post(t, app, path, twoJobs)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestAllAlgorithms(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/all", twoJobs)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[responses.AllSchedulesResponse](t, resp)

	var names []string
	for _, r := range body.Results {
		names = append(names, r.Algorithm)
	}
	assert.Equal(t, []string{"fifo", "sjf", "stcf", "rr", "mlfq"}, names)
}

func TestAllAlgorithms_Subset(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/all", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":1}],"algorithms":["RR","fcfs"]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[responses.AllSchedulesResponse](t, resp)

	require.Len(t, body.Results, 2)
	assert.Equal(t, "rr", body.Results[0].Algorithm)
	assert.Equal(t, "fifo", body.Results[1].Algorithm)
}

func TestBadRequests(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{"malformed body", "/api/v1/fcfs", `{"jobs":`, "invalid request format"},
		{"zero burst", "/api/v1/sjf", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":0}]}`, "invalid input"},
		{"duplicate id", "/api/v1/stcf", `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":1},{"process_id":1,"arrival_time":0,"burst_time":1}]}`, "invalid input"},
		{"negative quantum", "/api/v1/rr", `{"jobs":[],"time_quantum":-1}`, "invalid input"},
		{"unbounded middle level", "/api/v1/mlfq", `{"jobs":[],"levels_time_quantum":[0,4]}`, "invalid input"},
		{"unknown algorithm", "/api/v1/all", `{"jobs":[],"algorithms":["lottery"]}`, "unknown algorithm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.path, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			body := decode[map[string]string](t, resp)
			assert.Contains(t, body["error"], tt.want)
		})
	}
}

func TestGenerateProcesses(t *testing.T) {
	app := newTestApp()

	get := func(url string) *http.Response {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
		require.NoError(t, err)
		return resp
	}

	first := decode[requests.ScheduleRequests](t, get("/api/v1/generate?count=4&seed=7"))
	second := decode[requests.ScheduleRequests](t, get("/api/v1/generate?count=4&seed=7"))
	require.Len(t, first.Jobs, 4)
	assert.Equal(t, first, second)
	for i, job := range first.Jobs {
		assert.Equal(t, i+1, job.ProcessId)
		assert.GreaterOrEqual(t, job.BurstTime, 1)
	}

	assert.Equal(t, fiber.StatusBadRequest, get("/api/v1/generate?seed=abc").StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, get("/api/v1/generate?count=-1").StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, get("/api/v1/generate?count=10001").StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, get("/api/v1/generate?count=4611686018427387904").StatusCode)
}

func TestRoundRobin_ClockOverflowIsBadRequest(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/rr", `{"jobs":[{"process_id":1,"arrival_time":9223372036854775805,"burst_time":10}],"time_quantum":4}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Contains(t, body["error"], "overflows the clock")
}

// panickingHandler fails on every round robin request.
type panickingHandler struct {
	*SchedulerHandlerImpl
}

func (panickingHandler) RoundRobin(*fiber.Ctx) error {
	panic("boom")
}

func TestNewApp_RecoversFromPanic(t *testing.T) {
	app := NewApp(panickingHandler{NewSchedulerHandlerImpl(&config.SchedulerConfig{RoundRobinTimeQuantum: 2})})

	resp := post(t, app, "/api/v1/rr", twoJobs)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()

	// the app keeps serving after the panic
	resp = post(t, app, "/api/v1/fcfs", twoJobs)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
