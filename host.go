package scenefile

import (
	"errors"
	"log"
	"os"
)

// Host is the application holding the scene in memory.
type Host interface {
	// SceneName returns the path of the opened scene, or an empty string
	// if it was never saved.
	SceneName() (string, error)
	// SaveAs saves the scene to path. It must report a
	// *MissingDirectoryError if the parent directory does not exist.
	SaveAs(path string) error
	// MakeDirs creates directory and all missing parents.
	MakeDirs(directory string) error
}

var logger = log.New(os.Stderr, "[scenefile] ", log.LstdFlags)

// Save asks host to save its scene at f.Path(). If the directory is
// missing it is created and the save retried once.
func (f *SceneFile) Save(host Host) (string, error) {
	target := f.Path()
	err := host.SaveAs(target)
	if err == nil {
		return target, nil
	}
	if IsMissingDirectory(err) == false {
		return "", err
	}
	logger.Printf("Missing directories. Creating '%s'", f.directory)
	if err := host.MakeDirs(f.directory); err != nil {
		return "", err
	}
	if err := host.SaveAs(target); err != nil {
		return "", err
	}
	return target, nil
}

// IncrementAndSave moves f to the next available version and saves it.
// Without any existing version, or without the directory, the scene is
// saved as FIRST_VERSION. The version is not restored if the save fails.
func (f *SceneFile) IncrementAndSave(host Host) (string, error) {
	next, err := f.NextAvailableVersion()
	if err != nil {
		if errors.Is(err, ErrNoExistingVersion) == false && os.IsNotExist(err) == false {
			return "", err
		}
		next = FIRST_VERSION
	}
	if err := f.SetVersion(next); err != nil {
		return "", err
	}
	return f.Save(host)
}
