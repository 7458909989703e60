package model

// WindowKind selects the sub-window application opened by xdg-open and code.
type WindowKind int

const (
	WindowBrowser WindowKind = iota
	WindowTextViewer
)

func (k WindowKind) String() string {
	if k == WindowBrowser {
		return "browser"
	}
	return "textviewer"
}

// Window describes a sub-window request. Browser windows carry a URL,
// text viewers carry the content to show.
type Window struct {
	Kind    WindowKind `json:"kind"`
	Title   string     `json:"title,omitempty"`
	URL     string     `json:"url,omitempty"`
	Content string     `json:"content,omitempty"`
}
