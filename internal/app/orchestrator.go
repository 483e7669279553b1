package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bodomartin/lumol/internal/config"
	"github.com/bodomartin/lumol/internal/manifest"
	"github.com/bodomartin/lumol/internal/site"
	"github.com/bodomartin/lumol/internal/utils"
)

// Orchestrator coordinates one documentation build: it resolves the version
// pair from the build manifest and assembles the context the host consumes.
type Orchestrator struct {
	config *config.Config
	loader *manifest.Loader
	logger *utils.Logger
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config  *config.Config
	Verbose bool
	Logger  *utils.Logger
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := cfg.Logging.Level
		if opts.Verbose {
			logLevel = "debug"
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	return &Orchestrator{
		config: cfg,
		loader: manifest.NewLoader(),
		logger: logger.WithComponent("orchestrator"),
	}, nil
}

// Resolve reads the build manifest and derives the version pair from it
func (o *Orchestrator) Resolve() (manifest.ResolvedVersion, error) {
	o.logger.Debug().Str("manifest", o.config.Manifest.Path).Msg("resolving version")

	v, err := o.loader.Resolve(o.config.Manifest.Path)
	if err != nil {
		return manifest.ResolvedVersion{}, err
	}

	o.logger.Info().
		Str("version", v.Version).
		Str("release", v.Release).
		Msg("resolved version")
	return v, nil
}

// BuildContext assembles the full build context for the host
func (o *Orchestrator) BuildContext() (*site.Context, error) {
	return site.Build(o.config)
}

// CheckStatus classifies the outcome of a single verification
type CheckStatus string

const (
	CheckOK   CheckStatus = "OK"
	CheckWarn CheckStatus = "WARN"
	CheckFail CheckStatus = "FAILED"
)

// CheckResult is the outcome of one verification performed by Check
type CheckResult struct {
	Name   string
	Status CheckStatus
	Detail string
}

// Check verifies that a build would succeed: the manifest is present,
// parseable, and carries a version, and the working directory is writable.
// A non-semver release string is reported as a warning only; the truncation
// accepts it unchanged.
func (o *Orchestrator) Check() []CheckResult {
	var results []CheckResult

	v, err := o.loader.Resolve(o.config.Manifest.Path)
	if err != nil {
		results = append(results, CheckResult{
			Name:   "build manifest",
			Status: CheckFail,
			Detail: err.Error(),
		})
		return results
	}
	results = append(results, CheckResult{
		Name:   "build manifest",
		Status: CheckOK,
		Detail: fmt.Sprintf("version %s, release %s", v.Version, v.Release),
	})

	if v.Semver() {
		results = append(results, CheckResult{Name: "release string", Status: CheckOK})
	} else {
		results = append(results, CheckResult{
			Name:   "release string",
			Status: CheckWarn,
			Detail: fmt.Sprintf("%q is not a semantic version", v.Release),
		})
	}

	if err := checkWritable("."); err != nil {
		results = append(results, CheckResult{
			Name:   "write permissions",
			Status: CheckFail,
			Detail: err.Error(),
		})
	} else {
		results = append(results, CheckResult{Name: "write permissions", Status: CheckOK})
	}

	return results
}

// checkWritable checks that dir accepts new files
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".lumoldoc-write-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(filepath.Clean(name))
}
