package filestorage

import "mime/multipart"

// FileStorage stores uploaded files and serves them back by URL. The only
// uploads in the marketplace today are coach profile photos.
type FileStorage interface {
	// SaveFileWithPath stores the upload under a subdirectory and returns
	// the URL the file is reachable at
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file given its URL or stored
	// path. Deleting a missing file is not an error.
	DeleteFile(filePath string) error
}
