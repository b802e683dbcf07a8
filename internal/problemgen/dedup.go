package problemgen

// RecentQuestions remembers the most recent questions so callers can avoid
// showing the same exercise twice in a row. Not safe for concurrent use.
type RecentQuestions struct {
	max       int
	questions []string
}

// NewRecentQuestions returns a window over the last max questions.
// A max of zero or less disables the window.
func NewRecentQuestions(max int) *RecentQuestions {
	return &RecentQuestions{max: max}
}

// Seen reports whether q is in the window.
func (r *RecentQuestions) Seen(q string) bool {
	for _, prior := range r.questions {
		if prior == q {
			return true
		}
	}
	return false
}

// Add records q, dropping the oldest question once the window is full.
func (r *RecentQuestions) Add(q string) {
	if r.max <= 0 {
		return
	}
	r.questions = append(r.questions, q)
	// Keep only the most recent N questions.
	if len(r.questions) > r.max {
		r.questions = r.questions[len(r.questions)-r.max:]
	}
}
