package domain

// DocumentLoader reads a file and yields its parsed mapping. Both AIIF
// documents and checklists go through this port; the core never reads
// files itself.
type DocumentLoader interface {
	Load(path string) (map[string]any, error)
}

// RepoInspector resolves version-control metadata for a validated file.
type RepoInspector interface {
	// CommitHash returns the HEAD commit of the repository containing
	// path. The second return is false when path is not inside a repo.
	CommitHash(path string) (string, bool)
}

// SpecImporter converts an external API description (OpenAPI) into an
// AIIF document skeleton.
type SpecImporter interface {
	Import(path string) (map[string]any, error)
}

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
