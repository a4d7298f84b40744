// Package domain holds the read-only view models handed to the renderer.
// Everything here is produced upstream and discarded after rendering.
package domain

// Link is a named href, the most common shape in forum markup.
type Link struct {
	Name string
	Href string
}

type User struct {
	ID         int
	Name       string
	IsGuest    bool
	IsAdmin    bool
	IsMod      bool
	Avatar     string
	UnreadPMs  int
	ProfileURL string
}

// Common holds fields that are shared by every page template.
// Available in templates as .Common via the render.TemplateData wrapper.
type Common struct {
	ForumName string `validate:"required"`
	ScriptURL string `validate:"required"`
	ImagesURL string
	ThemeURL  string
	PageTitle string
	Language  string
	User      User
	// SessionVar/SessionID are echoed into every form as a hidden field.
	SessionVar string
	SessionID  string
	LinkTree   []Link
	Error      string
	Success    string
}
