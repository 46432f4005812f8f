package model

// ManifestKind distinguishes primary dependency manifests from dev ones.
type ManifestKind string

const (
	// ManifestPrimary is a requirements.txt file.
	ManifestPrimary ManifestKind = "primary"
	// ManifestDev is a requirements-dev.txt file.
	ManifestDev ManifestKind = "dev"
)

// Manifest file names.
const (
	PrimaryManifestName = "requirements.txt"
	DevManifestName     = "requirements-dev.txt"
)

// Manifest is a dependency manifest discovered under the project root.
type Manifest struct {
	// Path is the absolute path of the manifest.
	Path Path
	// Rel is the slash-separated path relative to the project root.
	Rel  string
	Kind ManifestKind
}
