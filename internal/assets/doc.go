// Package assets provides the HTML templates and base stylesheet used to lay
// out the report.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates and styles (go:embed)
//	    ├── FilesystemLoader  - overrides from a directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── print.css        # base stylesheet for the layout document
//	└── templates/
//	    ├── document.html    # the layout document (all blocks)
//	    ├── header.html      # running page header
//	    └── footer.html      # page number footer
//
// An override directory may provide any subset of these files.
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
