package domain

import "github.com/google/uuid"

var candidateNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("ha-assist/candidate"))

// Candidate is one row of the list rendered by the launcher.
type Candidate struct {
	// ID is derived from Title so the same text always maps to the same id.
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	// UsePango is always false; titles and speech are shown verbatim.
	UsePango bool `json:"use_pango"`
}

// NewCandidate builds an undecorated candidate for title.
func NewCandidate(title string) Candidate {
	return Candidate{
		ID:    uuid.NewSHA1(candidateNamespace, []byte(title)).String(),
		Title: title,
	}
}

// Decorate attaches the speech and status icon of a cached reply.
func (c Candidate) Decorate(resp Response) Candidate {
	c.Description = resp.Speech
	c.Icon = resp.Kind.Icon()
	return c
}

// ConfirmResult tells the host what to do after a selection was handled.
type ConfirmResult struct {
	Refresh bool
}

// PluginInfo identifies the engine to the launcher host.
type PluginInfo struct {
	Name string
	Icon string
}

// Info returns the static plugin identity.
func Info() PluginInfo {
	return PluginInfo{Name: PluginName, Icon: PluginIcon}
}
