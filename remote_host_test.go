package scenefile

import (
	"errors"
	"io/ioutil"
	"log"
	"net"
	"net/http"
	"net/rpc"
	"path/filepath"

	. "gopkg.in/check.v1"
)

type RemoteHostSuite struct {
	tmpDir   string
	local    *LocalHost
	listener net.Listener
	server   *http.Server
	node     Node
}

var _ = Suite(&RemoteHostSuite{})

func (s *RemoteHostSuite) SetUpTest(c *C) {
	s.tmpDir = c.MkDir()
	s.local = NewUntitledLocalHost([]byte("remote scene"))

	service := NewHostService(s.local)
	service.logger = log.New(ioutil.Discard, "", 0)
	router := rpc.NewServer()
	c.Assert(router.RegisterName(HOST_SERVICE_NAME, service), IsNil)

	var err error
	s.listener, err = net.Listen("tcp", "127.0.0.1:0")
	c.Assert(err, IsNil)
	s.server = &http.Server{Handler: router}
	go s.server.Serve(s.listener)

	s.node = Node{
		Name:    "test",
		Address: "127.0.0.1",
		Port:    s.listener.Addr().(*net.TCPAddr).Port,
	}
}

func (s *RemoteHostSuite) TearDownTest(c *C) {
	s.server.Close()
}

func (s *RemoteHostSuite) TestSaveThroughRemoteHost(c *C) {
	h, err := NewRemoteHost(s.node)
	c.Assert(err, IsNil)

	scene, err := h.SceneName()
	c.Assert(err, IsNil)
	c.Check(scene, Equals, "")

	f, err := NewSceneFile(filepath.Join(s.tmpDir, "ship"), "ship", 1, "ma")
	c.Assert(err, IsNil)

	err = h.SaveAs(f.Path())
	c.Check(IsMissingDirectory(err), Equals, true)

	saved, err := f.IncrementAndSave(h)
	c.Assert(err, IsNil)
	c.Check(saved, Equals, filepath.Join(s.tmpDir, "ship", "ship_v001.ma"))

	data, err := ioutil.ReadFile(saved)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "remote scene")

	fromHost, err := SceneFileFromHost(h)
	c.Assert(err, IsNil)
	c.Check(fromHost, DeepEquals, f)

	saved, err = fromHost.IncrementAndSave(h)
	c.Assert(err, IsNil)
	c.Check(filepath.Base(saved), Equals, "ship_v002.ma")
}

func (s *RemoteHostSuite) TestUnreachableHost(c *C) {
	s.server.Close()
	_, err := NewRemoteHost(s.node)
	c.Check(err, ErrorMatches, "Could not connect to 'test': .*")
}

func (s *RemoteHostSuite) TestResponseErrors(c *C) {
	resp := Response{}
	resp.FromError(nil)
	c.Check(resp.ToError(), IsNil)

	resp.FromError(errors.New("boom"))
	c.Check(resp.ToError(), ErrorMatches, "boom")

	resp.FromError(&MissingDirectoryError{Directory: "/scenes"})
	err := resp.ToError()
	c.Check(IsMissingDirectory(err), Equals, true)
	c.Check(err, ErrorMatches, "Missing directory '/scenes'")
}

func (s *RemoteHostSuite) TestCheckHostVersion(c *C) {
	testdata := []struct {
		Actual, Minimal string
		Error           string
	}{
		{"v0.1.0", "v0.1.0", ""},
		{"v0.1.3", "v0.1.0", ""},
		{"v0.1.0+development", "v0.1.0", ""},
		{"v0.2.0", "v0.1.0", "Unexpected version v0.2 \\(expected: v0.1\\)"},
		{"v1.2.0", "v1.0.0", ""},
		{"v2.0.0", "v1.0.0", "Unexpected major version v2 \\(expected: v1\\)"},
		{"v1.0.0", "v1.1.0", "Invalid version .*"},
		{"development", "v0.1.0", ".*"},
	}

	for _, d := range testdata {
		err := CheckHostVersion(d.Actual, d.Minimal)
		if len(d.Error) == 0 {
			c.Check(err, IsNil, Commentf("%s >= %s", d.Actual, d.Minimal))
		} else {
			c.Check(err, ErrorMatches, d.Error, Commentf("%s >= %s", d.Actual, d.Minimal))
		}
	}
	c.Check(CheckHostVersion(SCENEFILE_VERSION, SCENEHOST_MIN_VERSION), IsNil)
}
