package job

type Kind string

const (
	KindBlogPublish   Kind = "blog_publish"
	KindEmailCampaign Kind = "email_campaign"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBlogPublish, KindEmailCampaign:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can never change again.
// Scheduled is the only non-terminal status.
func (s Status) IsTerminal() bool {
	return s != StatusScheduled
}
