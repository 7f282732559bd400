package domains

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bitleak/lmstfy/client"
	"github.com/google/uuid"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/common/model"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/lmstfyx"
)

// rawJob 消息信封（业务数据延迟解析）
type rawJob struct {
	Payload *rawPayload `json:"payload"`
}

type rawPayload struct {
	Data *rawPayloadData `json:"data"`
}

type rawPayloadData struct {
	RequestID  string          `json:"request_id"`
	ActionType string          `json:"action_type"`
	ID         string          `json:"id"`
	Data       json.RawMessage `json:"data"`
}

// GetProcess 返回核心处理函数（注入到 Processor）
func GetProcess(deps *Deps, log logger.Logger) lmstfyx.Proc {
	handlerMap := deps.HandlerMap()

	return func(ctx context.Context, lmstfyJob *client.Job) *lmstfyx.JobResp {
		startTime := time.Now()

		// 1. 解析 Job，结构不合法的消息没有重试价值，直接 Bury
		meta, bizPayload, err := parseJob(lmstfyJob)
		if err != nil {
			log.Errorf(ctx, "[GetProcess] parseJob failed: job_id=%s, error=%v", lmstfyJob.ID, err)
			return &lmstfyx.JobResp{Action: lmstfyx.JobRespStatusBury}
		}

		// 2. 注入 TraceID 到 Context
		ctx = context.WithValue(ctx, "trace_id", meta.RequestID)

		log.Infof(ctx, "[GetProcess] Processing job: action_type=%s, request_id=%s, id=%s",
			meta.ActionType, meta.RequestID, meta.ID)

		// 3. 路由到 Handler
		handler, ok := handlerMap[meta.ActionType]
		if !ok {
			log.Errorf(ctx, "[GetProcess] handler not found for action_type: %s", meta.ActionType)
			return &lmstfyx.JobResp{Action: lmstfyx.JobRespStatusBury}
		}

		// 4. 调用 Handler（捕获 panic）
		resp := &lmstfyx.JobResp{Action: lmstfyx.JobRespStatusSuccess}
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf(ctx, "[GetProcess] handler panic: %v", r)
					resp = &lmstfyx.JobResp{Action: lmstfyx.JobRespStatusBury}
				}
			}()

			if err := handler.Handle(ctx, meta, bizPayload); err != nil {
				// 业务失败认为可重试，Release 等待 TTR 重新投递
				log.Errorf(ctx, "[GetProcess] handler failed: action_type=%s, error=%v", meta.ActionType, err)
				resp = &lmstfyx.JobResp{Action: lmstfyx.JobRespStatusRelease}
			}
		}()

		duration := time.Since(startTime)
		log.Infof(ctx, "[GetProcess] Processing complete: action=%d, duration=%v", resp.Action, duration)

		return resp
	}
}

// parseJob 解析 Job
func parseJob(lmstfyJob *client.Job) (*model.Meta, json.RawMessage, error) {
	var raw rawJob
	if err := json.Unmarshal(lmstfyJob.Data, &raw); err != nil {
		return nil, nil, fmt.Errorf("json unmarshal failed: %w", err)
	}

	if raw.Payload == nil || raw.Payload.Data == nil {
		return nil, nil, fmt.Errorf("invalid job structure: payload.data is nil")
	}

	data := raw.Payload.Data
	if data.ActionType == "" {
		return nil, nil, fmt.Errorf("invalid job structure: action_type is empty")
	}

	meta := &model.Meta{
		RequestID:  data.RequestID,
		ActionType: data.ActionType,
		ID:         data.ID,
	}

	// RequestID 为空则生成一个
	if meta.RequestID == "" {
		meta.RequestID = uuid.New().String()
	}

	return meta, data.Data, nil
}
