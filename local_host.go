package scenefile

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// LocalHost is a Host keeping the scene content in memory and writing it
// to disk on SaveAs.
type LocalHost struct {
	mx    sync.Mutex
	scene string
	data  []byte
}

// NewLocalHost opens scene, or starts an untitled scene if scene is empty.
func NewLocalHost(scene string) (*LocalHost, error) {
	res := &LocalHost{}
	if len(scene) == 0 {
		return res, nil
	}
	data, err := ioutil.ReadFile(scene)
	if err != nil {
		return nil, fmt.Errorf("Could not open scene '%s': %s", scene, err)
	}
	res.scene = scene
	res.data = data
	return res, nil
}

// NewUntitledLocalHost starts a host with an unsaved scene holding data.
func NewUntitledLocalHost(data []byte) *LocalHost {
	return &LocalHost{data: data}
}

func (h *LocalHost) SceneName() (string, error) {
	h.mx.Lock()
	defer h.mx.Unlock()
	return h.scene, nil
}

// SaveAs atomically writes the scene to path, which becomes the current
// scene.
func (h *LocalHost) SaveAs(path string) error {
	h.mx.Lock()
	defer h.mx.Unlock()

	dir := filepath.Dir(path)
	fi, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) == true {
			return &MissingDirectoryError{Directory: dir}
		}
		return err
	}
	if fi.IsDir() == false {
		return fmt.Errorf("Could not save '%s': '%s' is not a directory", path, dir)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+uuid.New().String())
	if err := ioutil.WriteFile(tmpPath, h.data, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("Could not save '%s': %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("Could not save '%s': %w", path, err)
	}
	h.scene = path
	return nil
}

func (h *LocalHost) MakeDirs(directory string) error {
	return os.MkdirAll(directory, 0755)
}
