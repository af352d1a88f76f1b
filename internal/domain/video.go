package domain

// Video is one catalog entry for a lecture video. ID is assigned from the
// blob id at creation and never changes; URL is the blob locator.
type Video struct {
	ID       string
	Subject  string
	Topic    string
	Subtopic string
	Title    string
	URL      string
}

// VideoFields is the full set of mutable fields supplied on update.
// Updates are full replacements: every field is written.
type VideoFields struct {
	Subject  string
	Topic    string
	Subtopic string
	Title    string
	URL      string
}

// Apply returns a copy of v with all mutable fields replaced by f.
func (v Video) Apply(f VideoFields) Video {
	return Video{
		ID:       v.ID,
		Subject:  f.Subject,
		Topic:    f.Topic,
		Subtopic: f.Subtopic,
		Title:    f.Title,
		URL:      f.URL,
	}
}

// Fields returns the mutable fields of v.
func (v Video) Fields() VideoFields {
	return VideoFields{
		Subject:  v.Subject,
		Topic:    v.Topic,
		Subtopic: v.Subtopic,
		Title:    v.Title,
		URL:      v.URL,
	}
}
