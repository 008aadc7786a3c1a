package evaluator

import "os"

// Filesystem abstracts the file built-ins so tests can run against a fake.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Remove(path string) error
	MkdirAll(path string) error
	ReadDir(path string) ([]string, error)
	RemoveAll(path string) error
	// Stat reports whether path is a directory.
	Stat(path string) (bool, error)
}

type OsFilesystem struct{}

func (OsFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OsFilesystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (OsFilesystem) Remove(path string) error {
	return os.Remove(path)
}

func (OsFilesystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (OsFilesystem) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (OsFilesystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (OsFilesystem) Stat(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
