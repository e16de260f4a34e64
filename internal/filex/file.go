// Package filex contains small filesystem helpers used by the CLI:
// validating resume/document files before upload and preparing the
// directory where generated AI output is saved.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// uploadExtensions lists the file types the backend resume parser accepts.
var uploadExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".txt":  {},
}

// EnsureSubDir creates dirName under the current working directory if needed
// and returns its absolute path.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ValidateUploadFile checks that path points to a non-empty regular file with
// an extension the backend can parse. It returns the cleaned path.
func ValidateUploadFile(path string) (string, error) {
	path = filepath.Clean(path)

	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() == 0 {
		return "", fmt.Errorf("%s is empty", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := uploadExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported file type %q (want .pdf, .docx or .txt)", ext)
	}
	return path, nil
}
