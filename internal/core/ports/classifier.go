package ports

import "go.velt.ch/jplaunch/internal/core/domain"

// ModuleClassifier inspects the two output directories and decides between
// classpath-based and module-based test execution. The check is a pure
// filesystem inspection, no caching beyond the call.
//
//go:generate mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type ModuleClassifier interface {
	Scan(mainDir, testDir string) (domain.Modules, error)
}
