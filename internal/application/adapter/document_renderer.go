package adapter

import (
	"github.com/restobill/backend/internal/domain/valueobject"
)

// DocumentRenderer converts a TabularDocument into a downloadable artifact.
// PDF and spreadsheet backends implement the same interface.
type DocumentRenderer interface {
	// Render produces the artifact bytes for the given document.
	Render(doc *valueobject.TabularDocument) ([]byte, error)

	// ContentType returns the MIME type of the produced artifact.
	ContentType() string

	// FileExtension returns the artifact file extension without a dot.
	FileExtension() string
}
