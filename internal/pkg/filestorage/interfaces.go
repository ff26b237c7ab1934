package filestorage

import "mime/multipart"

// FileStorage defines the interface for profile-picture storage operations.
// The upload layer saves files and hands the resulting filename to the
// service; the service only needs existence checks and deletes.
type FileStorage interface {
	// SaveFile saves an uploaded file under a unique name and returns that name
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// FileExists reports whether a stored file with the given name exists
	FileExists(filename string) bool

	// DeleteFile removes a stored file by name. Deleting a missing file is not an error.
	DeleteFile(filename string) error
}
