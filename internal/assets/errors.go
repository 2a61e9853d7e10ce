package assets

import "errors"

// Sentinel errors for template loading.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTemplateName indicates the template name contains path
	// separators, traversal sequences or a leading dot.
	ErrInvalidTemplateName = errors.New("invalid template name")

	// ErrInvalidBasePath indicates the template directory is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid template directory")

	// ErrTemplateRead indicates an I/O error occurred while reading a template file.
	ErrTemplateRead = errors.New("failed to read template")

	// ErrPathTraversal indicates an attempt to access files outside the template directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
