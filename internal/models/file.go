package models

// File is an upload payload read from disk by the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
