package indexer

// defaultExcludes is installed when a Config is constructed with no
// exclude patterns of its own.
var defaultExcludes = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
	"**/__pycache__/**",
	"**/*.min.js",
	"**/*.min.css",
	"**/vendor/**",
	"**/.venv/**",
	"**/target/**",
}

const (
	defaultMaxFileSize     = 10 * 1024 * 1024 // 10 MiB
	defaultParallelWorkers = 4
)

// Config controls one Scanner/Differ's walk, filtering, and hashing
// behavior.
type Config struct {
	IncludeGlobs       []string
	ExcludeGlobs       []string
	FollowSymlinks     bool
	ComputeContentHash bool
	DetectRenames      bool
	MaxFileSize        int64
	ParallelWorkers    int
}

// DefaultConfig returns a Config with content hashing and rename
// detection on, the default exclude list installed, and no include
// filter (everything not excluded is included).
func DefaultConfig() Config {
	return Config{
		ExcludeGlobs:       append([]string(nil), defaultExcludes...),
		ComputeContentHash: true,
		DetectRenames:      true,
		MaxFileSize:        defaultMaxFileSize,
		ParallelWorkers:    defaultParallelWorkers,
	}
}

// normalized returns a copy of cfg with the default exclude list and
// worker count applied wherever the caller left them unset.
func (cfg Config) normalized() Config {
	if len(cfg.ExcludeGlobs) == 0 {
		cfg.ExcludeGlobs = append([]string(nil), defaultExcludes...)
	}
	if cfg.ParallelWorkers <= 0 {
		cfg.ParallelWorkers = defaultParallelWorkers
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = defaultMaxFileSize
	}
	return cfg
}
