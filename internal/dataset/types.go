// Package dataset holds the project record model and its JSON persistence.
package dataset

// KeyCode is the command implementation extracted from a project's sources.
type KeyCode struct {
	ClassName     string `json:"class_name"`
	ExecuteMethod string `json:"execute_method"`
}

// ProjectRecord is one dataset entry: a project directory, the command
// implementation found in it (nil when none qualified), and the extracted
// text of each readable documentation file keyed by its path relative to
// the project directory.
type ProjectRecord struct {
	ProjectPath   string            `json:"project_path"`
	KeyCode       *KeyCode          `json:"key_code"`
	Documentation map[string]string `json:"documentation"`
}
