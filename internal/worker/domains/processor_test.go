package domains

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bitleak/lmstfy/client"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/common/model"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/lmstfyx"
)

type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

func jobWith(t *testing.T, data interface{}) *client.Job {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal job failed: %v", err)
	}
	return &client.Job{ID: "job-1", Queue: "cdp_jobs", Data: raw}
}

func TestParseJob(t *testing.T) {
	job := jobWith(t, model.Job{
		Payload: &model.JobPayload{
			Data: &model.JobPayloadData{
				RequestID:  "req-1",
				ActionType: model.ActionOrderEventFanout,
				ID:         "order-1",
				Data: model.OrderEventData{
					OrderID:    "order-1",
					TrackingNo: "CD202608300100001",
					EventType:  "DELIVERED",
					PartyIDs:   []int64{1, 7},
				},
			},
		},
	})

	meta, payload, err := parseJob(job)
	if err != nil {
		t.Fatalf("parseJob() error = %v", err)
	}
	if meta.RequestID != "req-1" || meta.ActionType != model.ActionOrderEventFanout || meta.ID != "order-1" {
		t.Errorf("meta = %+v", meta)
	}

	var data model.OrderEventData
	if err := json.Unmarshal(payload, &data); err != nil {
		t.Fatalf("unmarshal payload failed: %v", err)
	}
	if data.TrackingNo != "CD202608300100001" || len(data.PartyIDs) != 2 {
		t.Errorf("payload = %+v", data)
	}
}

func TestParseJobGeneratesRequestID(t *testing.T) {
	job := jobWith(t, model.Job{
		Payload: &model.JobPayload{
			Data: &model.JobPayloadData{
				ActionType: model.ActionSettlementReconcile,
			},
		},
	})

	meta, _, err := parseJob(job)
	if err != nil {
		t.Fatalf("parseJob() error = %v", err)
	}
	if meta.RequestID == "" {
		t.Error("empty request_id should be backfilled")
	}
}

func TestParseJobRejectsBadStructure(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"not json", []byte("not-json")},
		{"missing payload", []byte(`{}`)},
		{"missing data", []byte(`{"payload":{}}`)},
		{"empty action", []byte(`{"payload":{"data":{"request_id":"x"}}}`)},
	}
	for _, tc := range cases {
		job := &client.Job{ID: "job-1", Queue: "cdp_jobs", Data: tc.data}
		if _, _, err := parseJob(job); err == nil {
			t.Errorf("%s: parseJob() expected error", tc.name)
		}
	}
}

// 无重试价值的消息（结构错误、未知类型）直接 Bury
func TestGetProcessBuriesUnroutableJobs(t *testing.T) {
	proc := GetProcess(&Deps{}, nopLogger{})

	badJSON := &client.Job{ID: "job-1", Queue: "cdp_jobs", Data: []byte("oops")}
	if resp := proc(context.Background(), badJSON); resp.Action != lmstfyx.JobRespStatusBury {
		t.Errorf("bad json action = %d, want Bury", resp.Action)
	}

	unknown := jobWith(t, model.Job{
		Payload: &model.JobPayload{
			Data: &model.JobPayloadData{ActionType: "no_such_action"},
		},
	})
	if resp := proc(context.Background(), unknown); resp.Action != lmstfyx.JobRespStatusBury {
		t.Errorf("unknown action type action = %d, want Bury", resp.Action)
	}
}
