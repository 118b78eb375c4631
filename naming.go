package scenefile

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var sceneNameRx = regexp.MustCompile(`^([^_.]+)_v([0-9]+)\.([^.]+)$`)

// ParseSceneFile parses a path whose last element follows
// {descriptor}_v{version}.{extension}.
func ParseSceneFile(path string) (*SceneFile, error) {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return nil, &ParseError{Path: path, Reason: "path ends with a separator"}
	}
	descriptor, version, extension, err := parseBasename(filepath.Base(path))
	if err != nil {
		return nil, &ParseError{Path: path, Reason: err.Error()}
	}
	res, err := NewSceneFile(filepath.Dir(path), descriptor, version, extension)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: err.Error()}
	}
	return res, nil
}

func parseBasename(name string) (string, int, string, error) {
	m := sceneNameRx.FindStringSubmatch(name)
	if m == nil {
		return "", 0, "", fmt.Errorf("does not match {descriptor}_v{version}.{extension}")
	}
	version, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, "", fmt.Errorf("invalid version '%s': %s", m[2], err)
	}
	if version < FIRST_VERSION {
		return "", 0, "", fmt.Errorf("version %d is below %d", version, FIRST_VERSION)
	}
	return m[1], version, m[3], nil
}
