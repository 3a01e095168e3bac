package response

import (
	"time"

	"content-scheduler/internal/usecase/commands"
)

type SyncErrorResponse struct {
	ItemID  string `json:"item_id"`
	Message string `json:"message"`
}

// SyncCreatedResponse breaks the created count down per job kind.
type SyncCreatedResponse struct {
	BlogPublish   int `json:"blog_publish"`
	EmailCampaign int `json:"email_campaign"`
}

type SyncReportResponse struct {
	Created   SyncCreatedResponse `json:"created"`
	Errors    []SyncErrorResponse `json:"errors"`
	Timestamp int64               `json:"timestamp"`
}

func FromSyncReport(r *commands.SyncReport, at time.Time) *SyncReportResponse {
	resp := &SyncReportResponse{
		Created: SyncCreatedResponse{
			BlogPublish:   r.CreatedPosts,
			EmailCampaign: r.CreatedCampaigns,
		},
		Errors:    make([]SyncErrorResponse, len(r.Errors)),
		Timestamp: at.Unix(),
	}
	for i, e := range r.Errors {
		resp.Errors[i] = SyncErrorResponse{ItemID: e.ItemID.String(), Message: e.Message}
	}
	return resp
}

type PassErrorResponse struct {
	JobID   string `json:"job_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type PassReportResponse struct {
	Processed int                 `json:"processed"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Errors    []PassErrorResponse `json:"errors"`
	Timestamp int64               `json:"timestamp"`
}

func FromPassReport(r *commands.PassReport, at time.Time) *PassReportResponse {
	resp := &PassReportResponse{
		Processed: r.Processed,
		Succeeded: r.Succeeded,
		Failed:    r.Failed,
		Errors:    make([]PassErrorResponse, len(r.Errors)),
		Timestamp: at.Unix(),
	}
	for i, e := range r.Errors {
		resp.Errors[i] = PassErrorResponse{JobID: e.JobID.String(), Kind: e.Kind.String(), Message: e.Message}
	}
	return resp
}
