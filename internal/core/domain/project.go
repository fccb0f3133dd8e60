package domain

import "path/filepath"

// Project is the build-tool view of the current project, loaded once from the
// manifest. Directories are absolute after loading.
type Project struct {
	Name                string
	BaseDir             string
	MainOutputDirectory string
	TestOutputDirectory string
	TargetDirectory     string
	Java                JavaOptions
	Dependencies        []Artifact
}

// ResolveDir makes dir absolute against the project base directory.
func (p *Project) ResolveDir(dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(p.BaseDir, dir)
}
