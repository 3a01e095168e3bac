package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind         = errors.New("invalid job kind")
	ErrInvalidStatus       = errors.New("invalid job status")
	ErrMissingSourceItem   = errors.New("source item id is required")
	ErrMissingScheduledAt  = errors.New("scheduled time is required")
	ErrTerminalStatus      = errors.New("job is in a terminal status")
	ErrEmptyFailureMessage = errors.New("failure message is required")
)

// Job is one scheduled execution of a content item. At most one job exists
// per (kind, sourceItemID) pair; SyncService enforces that at creation time.
type Job struct {
	id           uuid.UUID
	kind         Kind
	sourceItemID uuid.UUID
	scheduledAt  time.Time
	status       Status
	snapshot     Snapshot
	lastRunAt    *time.Time
	errMessage   *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewJob(kind Kind, sourceItemID uuid.UUID, scheduledAt time.Time, snapshot Snapshot) (*Job, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if sourceItemID == uuid.Nil {
		return nil, ErrMissingSourceItem
	}
	if scheduledAt.IsZero() {
		return nil, ErrMissingScheduledAt
	}

	return &Job{
		id:           uuid.New(),
		kind:         kind,
		sourceItemID: sourceItemID,
		scheduledAt:  scheduledAt,
		status:       StatusScheduled,
		snapshot:     snapshot,
	}, nil
}

func ReconstructJob(
	id uuid.UUID,
	kind Kind,
	sourceItemID uuid.UUID,
	scheduledAt time.Time,
	status Status,
	snapshot Snapshot,
	lastRunAt *time.Time,
	errMessage *string,
	createdAt, updatedAt time.Time,
) *Job {
	return &Job{
		id:           id,
		kind:         kind,
		sourceItemID: sourceItemID,
		scheduledAt:  scheduledAt,
		status:       status,
		snapshot:     snapshot,
		lastRunAt:    lastRunAt,
		errMessage:   errMessage,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// IsDue reports whether the job is eligible for execution at the given time.
func (j *Job) IsDue(now time.Time) bool {
	return j.status == StatusScheduled && !j.scheduledAt.After(now)
}

// Complete transitions Scheduled -> Completed and records the run time.
func (j *Job) Complete(now time.Time) error {
	if j.status.IsTerminal() {
		return ErrTerminalStatus
	}
	j.status = StatusCompleted
	j.lastRunAt = &now
	j.errMessage = nil
	return nil
}

// Fail transitions Scheduled -> Failed and records the run time and message.
func (j *Job) Fail(now time.Time, message string) error {
	if j.status.IsTerminal() {
		return ErrTerminalStatus
	}
	if message == "" {
		return ErrEmptyFailureMessage
	}
	j.status = StatusFailed
	j.lastRunAt = &now
	j.errMessage = &message
	return nil
}

// Cancel transitions Scheduled -> Cancelled. Cancellation is an operator
// action; the executor never cancels jobs.
func (j *Job) Cancel() error {
	if j.status.IsTerminal() {
		return ErrTerminalStatus
	}
	j.status = StatusCancelled
	return nil
}

// Reschedule moves the target time of a still-scheduled job. The status is
// unchanged; due-ness follows the new timestamp only.
func (j *Job) Reschedule(at time.Time) error {
	if j.status.IsTerminal() {
		return ErrTerminalStatus
	}
	if at.IsZero() {
		return ErrMissingScheduledAt
	}
	j.scheduledAt = at
	return nil
}

func (j *Job) ID() uuid.UUID           { return j.id }
func (j *Job) Kind() Kind              { return j.kind }
func (j *Job) SourceItemID() uuid.UUID { return j.sourceItemID }
func (j *Job) ScheduledAt() time.Time  { return j.scheduledAt }
func (j *Job) Status() Status          { return j.status }
func (j *Job) Snapshot() Snapshot      { return j.snapshot }
func (j *Job) LastRunAt() *time.Time   { return j.lastRunAt }
func (j *Job) ErrMessage() *string     { return j.errMessage }
func (j *Job) CreatedAt() time.Time    { return j.createdAt }
func (j *Job) UpdatedAt() time.Time    { return j.updatedAt }
