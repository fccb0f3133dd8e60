// Package modscan implements the module classifier: a pure filesystem check
// for compiled module descriptors in the main and test output directories.
package modscan

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// Scanner implements ports.ModuleClassifier.
type Scanner struct {
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan inspects both output directories and classifies the test mode. Results
// are computed from the current filesystem state on every call.
func (s *Scanner) Scan(mainDir, testDir string) (domain.Modules, error) {
	mainName, mainPresent, err := readDescriptor(mainDir)
	if err != nil {
		return domain.Modules{}, err
	}
	testName, testPresent, err := readDescriptor(testDir)
	if err != nil {
		return domain.Modules{}, err
	}

	return domain.Modules{
		MainModuleName: mainName,
		TestModuleName: testName,
		Mode:           domain.ClassifyTestMode(mainPresent, testPresent),
	}, nil
}

// readDescriptor reports whether dir carries a module descriptor and, if so,
// the declared module name.
func readDescriptor(dir string) (string, bool, error) {
	if dir == "" {
		return "", false, nil
	}

	path := filepath.Join(dir, domain.ModuleDescriptorName)
	data, err := os.ReadFile(path) //nolint:gosec // path is project output state
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, zerr.With(errors.Join(domain.ErrDescriptorParseFailed, err), "path", path)
	}

	name, err := moduleName(data)
	if err != nil {
		return "", false, zerr.With(errors.Join(domain.ErrDescriptorParseFailed, err), "path", path)
	}
	return name, true, nil
}

var _ ports.ModuleClassifier = (*Scanner)(nil)
