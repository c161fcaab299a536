// ABOUTME: Standard filesystem paths for coachmark configuration and tours
// ABOUTME: Resolves ~/.coachmark/ for global and .coachmark/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".coachmark"
	projectDirName = ".coachmark"
)

// GlobalDir returns the user-global config directory (~/.coachmark/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.coachmark/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "settings.json")
}

// ToursDirs returns the directories searched for tour files, project first.
func ToursDirs(projectRoot string) []string {
	return []string{
		filepath.Join(ProjectDir(projectRoot), "tours"),
		filepath.Join(GlobalDir(), "tours"),
	}
}

// FindTour resolves name to a tour file. A name with an extension or a path
// separator is returned as is; otherwise each tours directory is searched
// for name with a supported extension.
func FindTour(projectRoot, name string) (string, bool) {
	if filepath.Ext(name) != "" || filepath.Base(name) != name {
		_, err := os.Stat(name)
		return name, err == nil
	}
	for _, dir := range ToursDirs(projectRoot) {
		for _, ext := range tourExtensions {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}
