//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"content-scheduler/internal/domain/job"
	"content-scheduler/internal/pkg/clock"
	"content-scheduler/internal/usecase/commands"
	"content-scheduler/tests/common/builder"
	commandsmock "content-scheduler/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type executorFixture struct {
	ctrl       *gomock.Controller
	jobRepo    *commandsmock.MockJobRepository
	content    *commandsmock.MockContentSource
	recipients *commandsmock.MockRecipientSource
	mailer     *commandsmock.MockMailer
	clk        *clock.MockClock
	sut        commands.ExecutorCommands
}

func newExecutorFixture(t *testing.T, now time.Time) *executorFixture {
	ctrl := gomock.NewController(t)
	jobRepo := commandsmock.NewMockJobRepository(ctrl)
	content := commandsmock.NewMockContentSource(ctrl)
	recipients := commandsmock.NewMockRecipientSource(ctrl)
	mailer := commandsmock.NewMockMailer(ctrl)
	clk := clock.NewMockClock(now)
	return &executorFixture{
		ctrl:       ctrl,
		jobRepo:    jobRepo,
		content:    content,
		recipients: recipients,
		mailer:     mailer,
		clk:        clk,
		sut:        commands.NewExecutorCommands(jobRepo, content, recipients, mailer, clk),
	}
}

func makeRecipients(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("subscriber%d@example.com", i)
	}
	return out
}

func TestRunDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("empty due set is a no-op", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		f.jobRepo.EXPECT().FindDue(ctx, now).Return(nil, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Processed)
	})

	t.Run("due selection failure aborts the pass", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		f.jobRepo.EXPECT().FindDue(ctx, now).Return(nil, errors.New("db down"))

		report, err := f.sut.RunDue(ctx)
		require.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("blog publish success", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().WithScheduledAt(now.Add(-time.Minute)).BuildReconstructed()

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().PublishItem(ctx, j.SourceItemID()).Return(nil)
		f.jobRepo.EXPECT().CompleteIfScheduled(ctx, j.ID(), now).Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Processed)
		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, 0, report.Failed)
	})

	t.Run("blog publish failure marks the job failed", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().BuildReconstructed()

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().PublishItem(ctx, j.SourceItemID()).Return(errors.New("post not found"))
		f.jobRepo.EXPECT().FailIfScheduled(ctx, j.ID(), now, gomock.Any()).Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Processed)
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, j.ID(), report.Errors[0].JobID)
		assert.Contains(t, report.Errors[0].Message, "post not found")
	})

	t.Run("one failing job does not stop the rest", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		failing := builder.NewJobBuilder().BuildReconstructed()
		passing := builder.NewJobBuilder().BuildReconstructed()

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{failing, passing}, nil)
		f.content.EXPECT().PublishItem(ctx, failing.SourceItemID()).Return(errors.New("boom"))
		f.jobRepo.EXPECT().FailIfScheduled(ctx, failing.ID(), now, gomock.Any()).Return(true, nil)
		f.content.EXPECT().PublishItem(ctx, passing.SourceItemID()).Return(nil)
		f.jobRepo.EXPECT().CompleteIfScheduled(ctx, passing.ID(), now).Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Processed)
		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("store failure while completing aborts the pass", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().BuildReconstructed()

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().PublishItem(ctx, j.SourceItemID()).Return(nil)
		f.jobRepo.EXPECT().CompleteIfScheduled(ctx, j.ID(), now).
			Return(false, errors.New("connection refused: jobs db down"))

		report, err := f.sut.RunDue(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jobs db down")
		assert.Nil(t, report)
	})

	t.Run("store failure while recording a failure aborts the pass", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		broken := builder.NewJobBuilder().BuildReconstructed()
		pending := builder.NewJobBuilder().BuildReconstructed()

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{broken, pending}, nil)
		f.content.EXPECT().PublishItem(ctx, broken.SourceItemID()).Return(errors.New("post not found"))
		f.jobRepo.EXPECT().FailIfScheduled(ctx, broken.ID(), now, gomock.Any()).
			Return(false, errors.New("connection refused: jobs db down"))

		// The remaining due job must not be touched once the store is gone.
		report, err := f.sut.RunDue(ctx)
		require.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("job claimed by someone else is skipped", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().BuildReconstructed()

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().PublishItem(ctx, j.SourceItemID()).Return(nil)
		f.jobRepo.EXPECT().CompleteIfScheduled(ctx, j.ID(), now).Return(false, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Processed)
		assert.Equal(t, 0, report.Succeeded)
		assert.Equal(t, 0, report.Failed)
	})

	t.Run("campaign delivered in one batch", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().AsCampaign().BuildReconstructed()
		recipients := makeRecipients(3)

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().GetCampaign(ctx, j.SourceItemID()).
			Return(&commands.Campaign{Subject: "Weekly digest", Body: "<p>Hi</p>"}, nil)
		f.recipients.EXPECT().ActiveRecipients(ctx).Return(recipients, nil)
		f.mailer.EXPECT().BatchSize().Return(50)
		f.mailer.EXPECT().SendBatch(ctx, recipients, "Weekly digest", "<p>Hi</p>").Return("msg-1", nil)
		f.content.EXPECT().MarkCampaignDelivered(ctx, j.SourceItemID(), 3).Return(nil)
		f.jobRepo.EXPECT().CompleteIfScheduled(ctx, j.ID(), now).Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Succeeded)
	})

	t.Run("campaign tolerates partial batch failure", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().AsCampaign().BuildReconstructed()
		recipients := makeRecipients(250)

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().GetCampaign(ctx, j.SourceItemID()).
			Return(&commands.Campaign{Subject: "Weekly digest", Body: "<p>Hi</p>"}, nil)
		f.recipients.EXPECT().ActiveRecipients(ctx).Return(recipients, nil)
		f.mailer.EXPECT().BatchSize().Return(50)

		// Batches 2 and 4 fail; 150 of 250 recipients are delivered to.
		call := 0
		f.mailer.EXPECT().SendBatch(ctx, gomock.Any(), "Weekly digest", "<p>Hi</p>").
			DoAndReturn(func(_ context.Context, to []string, _, _ string) (string, error) {
				call++
				assert.Len(t, to, 50)
				if call == 2 || call == 4 {
					return "", errors.New("provider 500")
				}
				return fmt.Sprintf("msg-%d", call), nil
			}).Times(5)

		f.content.EXPECT().MarkCampaignDelivered(ctx, j.SourceItemID(), 150).Return(nil)
		f.jobRepo.EXPECT().CompleteIfScheduled(ctx, j.ID(), now).Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, 0, report.Failed)
	})

	t.Run("campaign fails when every batch fails", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().AsCampaign().BuildReconstructed()
		recipients := makeRecipients(100)

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().GetCampaign(ctx, j.SourceItemID()).
			Return(&commands.Campaign{Subject: "Weekly digest", Body: "<p>Hi</p>"}, nil)
		f.recipients.EXPECT().ActiveRecipients(ctx).Return(recipients, nil)
		f.mailer.EXPECT().BatchSize().Return(50)
		f.mailer.EXPECT().SendBatch(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("provider down")).Times(2)
		f.jobRepo.EXPECT().FailIfScheduled(ctx, j.ID(), now, "failed to deliver to any recipient").Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("campaign with missing subject or body fails", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().AsCampaign().BuildReconstructed()

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().GetCampaign(ctx, j.SourceItemID()).
			Return(&commands.Campaign{Subject: "Weekly digest", Body: ""}, nil)
		f.jobRepo.EXPECT().FailIfScheduled(ctx, j.ID(), now, "incomplete campaign data").Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("campaign with no active recipients fails", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().AsCampaign().BuildReconstructed()

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().GetCampaign(ctx, j.SourceItemID()).
			Return(&commands.Campaign{Subject: "Weekly digest", Body: "<p>Hi</p>"}, nil)
		f.recipients.EXPECT().ActiveRecipients(ctx).Return(nil, nil)
		f.jobRepo.EXPECT().FailIfScheduled(ctx, j.ID(), now, "no active recipients").Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("delivery status write failure fails the job", func(t *testing.T) {
		f := newExecutorFixture(t, now)
		j := builder.NewJobBuilder().AsCampaign().BuildReconstructed()
		recipients := makeRecipients(2)

		f.jobRepo.EXPECT().FindDue(ctx, now).Return([]*job.Job{j}, nil)
		f.content.EXPECT().GetCampaign(ctx, j.SourceItemID()).
			Return(&commands.Campaign{Subject: "Weekly digest", Body: "<p>Hi</p>"}, nil)
		f.recipients.EXPECT().ActiveRecipients(ctx).Return(recipients, nil)
		f.mailer.EXPECT().BatchSize().Return(50)
		f.mailer.EXPECT().SendBatch(ctx, recipients, gomock.Any(), gomock.Any()).Return("msg-1", nil)
		f.content.EXPECT().MarkCampaignDelivered(ctx, j.SourceItemID(), 2).Return(errors.New("update failed"))
		f.jobRepo.EXPECT().FailIfScheduled(ctx, j.ID(), now, gomock.Any()).Return(true, nil)

		report, err := f.sut.RunDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Failed)
	})
}
