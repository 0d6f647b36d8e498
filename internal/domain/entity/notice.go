package entity

// NoticeCategory is the severity shown with a notice.
type NoticeCategory string

const (
	NoticeSuccess NoticeCategory = "success"
	NoticeDanger  NoticeCategory = "danger"
)

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Message  string         `json:"message"`
	Category NoticeCategory `json:"category"`
}

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

// Add appends a message for field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// First returns the first message recorded for field, or "".
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}

	return ""
}
