package domain

// TestMode describes how test discovery and execution should address the
// compiled output directories.
type TestMode string

const (
	// ModeClassic runs tests from a flat classpath, no module descriptors involved.
	ModeClassic TestMode = "CLASSIC"

	// ModeModularPatchedTestRuntime runs tests patched into the main module:
	// the main output carries a descriptor, the test output does not.
	ModeModularPatchedTestRuntime TestMode = "MODULAR_PATCHED_TEST_RUNTIME"

	// ModeModular runs tests from their own named test module.
	ModeModular TestMode = "MODULAR"
)

// ClassifyTestMode applies the decision table over descriptor presence in the
// main and test output directories.
func ClassifyTestMode(mainPresent, testPresent bool) TestMode {
	if testPresent {
		return ModeModular
	}
	if mainPresent {
		return ModeModularPatchedTestRuntime
	}
	return ModeClassic
}

// Modules is the result of scanning the two output directories. It is computed
// once at the start of a run and never cached across runs.
type Modules struct {
	MainModuleName string
	TestModuleName string
	Mode           TestMode
}

// SelectorModuleName returns the module name the discovery selector must use
// for the modular modes. It fails when the mode demands a name the scan did
// not produce.
func (m Modules) SelectorModuleName() (string, error) {
	switch m.Mode {
	case ModeModularPatchedTestRuntime:
		if m.MainModuleName == "" {
			return "", ErrMissingModuleName
		}
		return m.MainModuleName, nil
	case ModeModular:
		if m.TestModuleName == "" {
			return "", ErrMissingModuleName
		}
		return m.TestModuleName, nil
	default:
		return "", ErrMissingModuleName
	}
}

// DescribeMain renders the main scan result for diagnostics.
func (m Modules) DescribeMain() string {
	if m.MainModuleName == "" {
		return "<none>"
	}
	return "module " + m.MainModuleName
}

// DescribeTest renders the test scan result for diagnostics.
func (m Modules) DescribeTest() string {
	if m.TestModuleName == "" {
		return "<none>"
	}
	return "module " + m.TestModuleName
}
