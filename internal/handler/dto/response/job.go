package response

import (
	"content-scheduler/internal/usecase/queries"
)

type SnapshotResponse struct {
	Title   string `json:"title,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Subject string `json:"subject,omitempty"`
}

type JobResponse struct {
	ID           string           `json:"id"`
	Kind         string           `json:"kind"`
	SourceItemID string           `json:"source_item_id"`
	Status       string           `json:"status"`
	ScheduledAt  int64            `json:"scheduled_at"`
	Snapshot     SnapshotResponse `json:"snapshot"`
	LastRunAt    *int64           `json:"last_run_at,omitempty"`
	ErrMessage   *string          `json:"error_message,omitempty"`
	CreatedAt    int64            `json:"created_at"`
	UpdatedAt    int64            `json:"updated_at"`
}

func FromJobView(v *queries.JobView) *JobResponse {
	resp := &JobResponse{
		ID:           v.ID.String(),
		Kind:         v.Kind,
		SourceItemID: v.SourceItemID.String(),
		Status:       v.Status,
		ScheduledAt:  v.ScheduledAt.Unix(),
		Snapshot: SnapshotResponse{
			Title:   v.Snapshot.Title,
			Slug:    v.Snapshot.Slug,
			Subject: v.Snapshot.Subject,
		},
		ErrMessage: v.ErrMessage,
		CreatedAt:  v.CreatedAt.Unix(),
		UpdatedAt:  v.UpdatedAt.Unix(),
	}
	if v.LastRunAt != nil {
		lastRun := v.LastRunAt.Unix()
		resp.LastRunAt = &lastRun
	}
	return resp
}

func FromJobList(items []*queries.JobView) []*JobResponse {
	res := make([]*JobResponse, len(items))
	for i, it := range items {
		res[i] = FromJobView(it)
	}
	return res
}
