package scenefile

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
)

// ListVersions returns the sorted, deduplicated versions of the files in
// directory matching {descriptor}_v*.{extension}. Matching names that do
// not carry a numeric version are ignored.
func ListVersions(directory, descriptor, extension string) ([]int, error) {
	entries, err := ioutil.ReadDir(directory)
	if err != nil {
		return nil, err
	}
	pattern := fmt.Sprintf("%s_v*.%s", descriptor, extension)

	seen := make(map[int]bool)
	res := []int{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("Invalid pattern '%s': %s", pattern, err)
		}
		if ok == false {
			continue
		}
		d, v, ext, err := parseBasename(e.Name())
		if err != nil || d != descriptor || ext != extension {
			continue
		}
		if seen[v] == true {
			continue
		}
		seen[v] = true
		res = append(res, v)
	}
	sort.Ints(res)
	return res, nil
}

// NextAvailableVersion returns one past the highest existing version, or
// ErrNoExistingVersion if directory holds none.
func NextAvailableVersion(directory, descriptor, extension string) (int, error) {
	versions, err := ListVersions(directory, descriptor, extension)
	if err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 0, fmt.Errorf("%s_v*.%s in '%s': %w", descriptor, extension, directory, ErrNoExistingVersion)
	}
	last := versions[len(versions)-1]
	if last == MAX_VERSION {
		return 0, fmt.Errorf("%s_v*.%s in '%s': %w", descriptor, extension, directory, ErrVersionOverflow)
	}
	return last + 1, nil
}

func (f *SceneFile) ExistingVersions() ([]int, error) {
	return ListVersions(f.directory, f.descriptor, f.extension)
}

func (f *SceneFile) NextAvailableVersion() (int, error) {
	return NextAvailableVersion(f.directory, f.descriptor, f.extension)
}
