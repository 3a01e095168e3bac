package job

// Snapshot is display metadata copied from the source content item when the
// job is created. It is never re-read from the item afterwards, so a later
// edit to the item does not change what the job shows.
type Snapshot struct {
	Title   string
	Slug    string
	Subject string
}

func NewBlogSnapshot(title, slug string) Snapshot {
	return Snapshot{Title: title, Slug: slug}
}

func NewCampaignSnapshot(subject string) Snapshot {
	return Snapshot{Subject: subject}
}
