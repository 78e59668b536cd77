package lock

// FileName is the lock file name at the project root.
const FileName = "fpm-lock.json"

// Version is the only supported lock file format version.
const Version = 1

// File represents fpm-lock.json.
type File struct {
	Version  int              `json:"version"`
	Packages map[string]Entry `json:"packages"`
}

// Entry records the pinned state of a single installed dependency.
type Entry struct {
	URL     string `json:"url"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// New returns an empty lock file of the current version.
func New() *File {
	return &File{Version: Version, Packages: make(map[string]Entry)}
}
