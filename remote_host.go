package scenefile

import (
	"fmt"

	"github.com/blang/semver"
)

// RemoteHost is a Host reached through a scenehost instance.
type RemoteHost struct {
	node   Node
	status Status
}

// NewRemoteHost connects to node and checks it runs a compatible
// version.
func NewRemoteHost(node Node) (*RemoteHost, error) {
	res := &RemoteHost{node: node}
	status, err := res.Status()
	if err != nil {
		return nil, err
	}
	if err := CheckHostVersion(status.Version, SCENEHOST_MIN_VERSION); err != nil {
		return nil, fmt.Errorf("scenehost '%s': %s", node.Name, err)
	}
	res.status = status
	return res, nil
}

func (h *RemoteHost) Status() (Status, error) {
	status := Status{}
	err := h.node.RunMethod(HOST_SERVICE_NAME+".Status", &StatusArgs{ClientVersion: SCENEFILE_VERSION}, &status)
	return status, err
}

func (h *RemoteHost) SceneName() (string, error) {
	status, err := h.Status()
	if err != nil {
		return "", err
	}
	return status.Scene, nil
}

func (h *RemoteHost) SaveAs(path string) error {
	resp := &Response{}
	if err := h.node.RunMethod(HOST_SERVICE_NAME+".SaveAs", &SaveAsArgs{Path: path}, resp); err != nil {
		return err
	}
	return resp.ToError()
}

func (h *RemoteHost) MakeDirs(directory string) error {
	resp := &Response{}
	if err := h.node.RunMethod(HOST_SERVICE_NAME+".MakeDirs", &MakeDirsArgs{Directory: directory}, resp); err != nil {
		return err
	}
	return resp.ToError()
}

// CheckHostVersion returns an error if actual is not compatible with
// minimal. Before v1, the minor version must match.
func CheckHostVersion(actual, minimal string) error {
	a, err := semver.ParseTolerant(actual)
	if err != nil {
		return err
	}
	m, err := semver.ParseTolerant(minimal)
	if err != nil {
		return err
	}

	if m.Major == 0 {
		if a.Major != 0 || a.Minor != m.Minor {
			return fmt.Errorf("Unexpected version v%d.%d (expected: v%d.%d)", a.Major, a.Minor, m.Major, m.Minor)
		}
	} else if m.Major != a.Major {
		return fmt.Errorf("Unexpected major version v%d (expected: v%d)", a.Major, m.Major)
	}

	if a.GE(m) == false {
		return fmt.Errorf("Invalid version v%s (minimal: v%s)", a, m)
	}

	return nil
}
