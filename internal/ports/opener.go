package ports

// PhotoOpener opens a contact photo in the system image viewer
type PhotoOpener interface {
	Open(path string) error
}

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
