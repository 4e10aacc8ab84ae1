package views

import "rapport/internal/domain"

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

// Messages for view switching
type (
	SwitchToBoardMsg struct{}

	// SwitchToFormMsg opens the contact form; a nil Contact means a new contact
	SwitchToFormMsg struct {
		Contact *domain.Contact
	}

	SwitchToDeleteMsg struct {
		Contact domain.Contact
	}

	SwitchToTransferMsg struct{}

	SwitchToSettingsMsg struct{}

	SwitchToHelpMsg struct{}
)

// Outcome messages
type (
	// ContactSavedMsg reports a created or updated contact
	ContactSavedMsg struct {
		Message string
	}

	// ContactDeletedMsg reports a removed contact
	ContactDeletedMsg struct {
		Message string
	}

	// CollectionReplacedMsg reports a successful import
	CollectionReplacedMsg struct {
		Message string
	}

	// ThemeChangedMsg reports a newly applied theme
	ThemeChangedMsg struct {
		Theme   domain.Theme
		Message string
	}

	// OpenPhotoMsg asks the app to show a contact photo
	OpenPhotoMsg struct {
		Path string
	}

	// EditSnapshotMsg asks the app to open the collection in $EDITOR
	EditSnapshotMsg struct{}

	// ErrMsg carries a failure to show in the current view
	ErrMsg struct {
		Err error
	}
)
