package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Style file location
const (
	AppDirName       = "timelineview"
	DefaultStyleFile = "timeline.toml"
	AndroidConfigDir = "/sdcard/Android/data/com.ytget.timelineview/files"
)

// IsAndroid reports whether the process runs on Android. Fyne Android apps
// run as libdist.so, so the environment is checked as well as GOOS.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// ConfigDir returns the directory holding the style file
func ConfigDir() (string, error) {
	if IsAndroid() {
		return AndroidConfigDir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// DefaultStylePath returns the path of the style file used when none is given
func DefaultStylePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultStyleFile), nil
}

// ResolveStylePath picks the style file to load. An explicit path always wins;
// otherwise the default file is used if it exists, and "" means built-in defaults.
func ResolveStylePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	path, err := DefaultStylePath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return path, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// WriteFileIfMissing writes content to path, creating parent directories.
// It reports false without touching the file when it already exists.
func WriteFileIfMissing(path string, content []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return false, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, DefaultFilePermissions); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
