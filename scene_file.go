package scenefile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SceneFile describes the versioned name of a scene file:
// "{descriptor}_v{version:03d}.{extension}" inside a directory. It is a
// plain value owned by its caller; setters validate what would otherwise
// break parsing of the composed name.
type SceneFile struct {
	directory  string
	descriptor string
	version    int
	extension  string
}

// DefaultSceneFile returns main_v001.ma in the current directory.
func DefaultSceneFile() *SceneFile {
	return &SceneFile{
		directory:  DEFAULT_DIRECTORY,
		descriptor: DEFAULT_DESCRIPTOR,
		version:    FIRST_VERSION,
		extension:  DEFAULT_EXTENSION,
	}
}

// NewSceneFile builds a SceneFile from explicit values.
func NewSceneFile(directory, descriptor string, version int, extension string) (*SceneFile, error) {
	res := &SceneFile{}
	res.SetDirectory(directory)
	if err := res.SetDescriptor(descriptor); err != nil {
		return nil, err
	}
	if err := res.SetVersion(version); err != nil {
		return nil, err
	}
	if err := res.SetExtension(extension); err != nil {
		return nil, err
	}
	return res, nil
}

// SceneFileFromHost builds a SceneFile from the scene currently opened in
// host. It returns ErrNoOpenScene if the host has no saved scene.
func SceneFileFromHost(host Host) (*SceneFile, error) {
	scene, err := host.SceneName()
	if err != nil {
		return nil, fmt.Errorf("Could not query current scene: %s", err)
	}
	if len(scene) == 0 {
		return nil, ErrNoOpenScene
	}
	return ParseSceneFile(scene)
}

func (f *SceneFile) Directory() string  { return f.directory }
func (f *SceneFile) Descriptor() string { return f.descriptor }
func (f *SceneFile) Version() int       { return f.version }
func (f *SceneFile) Extension() string  { return f.extension }

// SetDirectory sets the containing directory. An empty value means the
// current directory.
func (f *SceneFile) SetDirectory(directory string) {
	if len(directory) == 0 {
		directory = DEFAULT_DIRECTORY
	}
	f.directory = filepath.Clean(directory)
}

func (f *SceneFile) SetDescriptor(descriptor string) error {
	if err := checkNameComponent("descriptor", descriptor, "_."); err != nil {
		return err
	}
	f.descriptor = descriptor
	return nil
}

func (f *SceneFile) SetVersion(version int) error {
	if version < FIRST_VERSION {
		return &InvalidFieldError{
			Field:  "version",
			Value:  fmt.Sprintf("%d", version),
			Reason: fmt.Sprintf("must be at least %d", FIRST_VERSION),
		}
	}
	f.version = version
	return nil
}

// SetExtension sets the extension. A single leading dot is accepted and
// stripped.
func (f *SceneFile) SetExtension(extension string) error {
	extension = strings.TrimPrefix(extension, ".")
	if err := checkNameComponent("extension", extension, "."); err != nil {
		return err
	}
	f.extension = extension
	return nil
}

// Basename returns the file name, e.g. ship_v007.ma. Versions above 999
// are rendered with all their digits.
func (f *SceneFile) Basename() string {
	return fmt.Sprintf("%s_v%0*d.%s", f.descriptor, VERSION_PADDING, f.version, f.extension)
}

// Path returns the full path of the scene file.
func (f *SceneFile) Path() string {
	return filepath.Join(f.directory, f.Basename())
}

func (f *SceneFile) String() string {
	return f.Path()
}

const globMeta = `*?[\`

func checkNameComponent(field, value, separators string) error {
	if len(value) == 0 {
		return &InvalidFieldError{Field: field, Value: value, Reason: "must not be empty"}
	}
	if strings.ContainsAny(value, separators) {
		return &InvalidFieldError{
			Field:  field,
			Value:  value,
			Reason: fmt.Sprintf("must not contain any of %q", separators),
		}
	}
	if strings.ContainsAny(value, "/"+string(filepath.Separator)) {
		return &InvalidFieldError{Field: field, Value: value, Reason: "must not contain a path separator"}
	}
	if strings.ContainsAny(value, globMeta) {
		return &InvalidFieldError{Field: field, Value: value, Reason: "must not contain any of " + globMeta}
	}
	return nil
}
