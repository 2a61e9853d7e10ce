// Package assets provides the HTML list templates used to render bibliographies.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from a template directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Resolver is the loader used by the renderer. It tries the template directory
// first and falls back to the embedded templates when a name is not found
// there, so a site can override listtemplate.html and keep the others.
//
// # Directory Structure
//
// A template directory is flat; template names are file names:
//
//	{templateDir}/
//	├── listtemplate.html
//	└── compact.html
//
// # Security
//
// Template names are validated to reject path separators and traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within the directory.
package assets
