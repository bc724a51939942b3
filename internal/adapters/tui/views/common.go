package views

import "ideaindex/internal/application/commands"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages

type SwitchToSearchMsg struct{}

type SwitchToAddMsg struct{}

type SwitchToHelpMsg struct{}

// EditStoreMsg asks the app to open the ideas document in the editor
type EditStoreMsg struct{}

// IdeaAddedMsg is sent once an idea is stored. Its index entries follow when
// Result.Pending is done.
type IdeaAddedMsg struct {
	Result *commands.AddIdeaResult
}

// AddErrMsg reports a rejected or failed add
type AddErrMsg struct {
	Err error
}
