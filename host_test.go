package scenefile

import (
	"bytes"
	"errors"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	. "gopkg.in/check.v1"
)

type fakeHost struct {
	scene    string
	saves    []string
	mkdirs   []string
	failures []error
}

func (h *fakeHost) SceneName() (string, error) {
	return h.scene, nil
}

func (h *fakeHost) SaveAs(path string) error {
	h.saves = append(h.saves, path)
	if len(h.failures) == 0 {
		h.scene = path
		return nil
	}
	err := h.failures[0]
	h.failures = h.failures[1:]
	return err
}

func (h *fakeHost) MakeDirs(directory string) error {
	h.mkdirs = append(h.mkdirs, directory)
	return nil
}

type HostSuite struct {
	tmpDir    string
	logs      *bytes.Buffer
	oldLogger *log.Logger
}

var _ = Suite(&HostSuite{})

func (s *HostSuite) SetUpTest(c *C) {
	s.tmpDir = c.MkDir()
	s.logs = &bytes.Buffer{}
	s.oldLogger = logger
	logger = log.New(s.logs, "[scenefile] ", 0)
}

func (s *HostSuite) TearDownTest(c *C) {
	logger = s.oldLogger
}

func (s *HostSuite) TestSaveRetriesOnceOnMissingDirectory(c *C) {
	h := &fakeHost{failures: []error{&MissingDirectoryError{Directory: "/scenes"}}}
	f, err := NewSceneFile("/scenes", "ship", 2, "ma")
	c.Assert(err, IsNil)

	saved, err := f.Save(h)
	c.Assert(err, IsNil)
	c.Check(saved, Equals, "/scenes/ship_v002.ma")
	c.Check(h.saves, DeepEquals, []string{"/scenes/ship_v002.ma", "/scenes/ship_v002.ma"})
	c.Check(h.mkdirs, DeepEquals, []string{"/scenes"})
	c.Check(s.logs.String(), Matches, "(?s).*Missing directories.*")
}

func (s *HostSuite) TestSaveDoesNotRetryTwice(c *C) {
	h := &fakeHost{failures: []error{
		&MissingDirectoryError{Directory: "/scenes"},
		&MissingDirectoryError{Directory: "/scenes"},
	}}
	f, err := NewSceneFile("/scenes", "ship", 2, "ma")
	c.Assert(err, IsNil)

	_, err = f.Save(h)
	c.Check(IsMissingDirectory(err), Equals, true)
	c.Check(h.saves, HasLen, 2)
	c.Check(h.mkdirs, HasLen, 1)
}

func (s *HostSuite) TestSavePropagatesOtherErrors(c *C) {
	h := &fakeHost{failures: []error{errors.New("disk full")}}
	_, err := DefaultSceneFile().Save(h)
	c.Check(err, ErrorMatches, "disk full")
	c.Check(h.saves, HasLen, 1)
	c.Check(h.mkdirs, HasLen, 0)
	c.Check(s.logs.Len(), Equals, 0)
}

func (s *HostSuite) TestSaveWithLocalHostCreatesDirectories(c *C) {
	h := NewUntitledLocalHost([]byte("//Maya ASCII scene"))
	target := filepath.Join(s.tmpDir, "ship", "scenes")
	f, err := NewSceneFile(target, "ship", 1, "ma")
	c.Assert(err, IsNil)

	saved, err := f.Save(h)
	c.Assert(err, IsNil)
	c.Check(saved, Equals, filepath.Join(target, "ship_v001.ma"))

	data, err := ioutil.ReadFile(saved)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "//Maya ASCII scene")

	scene, err := h.SceneName()
	c.Assert(err, IsNil)
	c.Check(scene, Equals, saved)

	entries, err := ioutil.ReadDir(target)
	c.Assert(err, IsNil)
	c.Check(entries, HasLen, 1)
}

func (s *HostSuite) TestSaveInUnwritableDirectoryFails(c *C) {
	if os.Geteuid() == 0 {
		c.Skip("permissions are not enforced for root")
	}
	target := filepath.Join(s.tmpDir, "readonly")
	c.Assert(os.Mkdir(target, 0555), IsNil)
	defer os.Chmod(target, 0755)

	h := NewUntitledLocalHost([]byte("scene"))
	f, err := NewSceneFile(target, "ship", 1, "ma")
	c.Assert(err, IsNil)

	_, err = f.Save(h)
	c.Check(err, NotNil)
	c.Check(IsMissingDirectory(err), Equals, false)
	c.Check(os.IsPermission(errors.Unwrap(err)), Equals, true)
}

func (s *HostSuite) TestIncrementAndSave(c *C) {
	for _, n := range []string{"ship_v001.ma", "ship_v003.ma"} {
		c.Assert(ioutil.WriteFile(filepath.Join(s.tmpDir, n), nil, 0644), IsNil)
	}
	h := NewUntitledLocalHost([]byte("scene"))
	f, err := NewSceneFile(s.tmpDir, "ship", 1, "ma")
	c.Assert(err, IsNil)

	saved, err := f.IncrementAndSave(h)
	c.Assert(err, IsNil)
	c.Check(f.Version(), Equals, 4)
	c.Check(saved, Equals, filepath.Join(s.tmpDir, "ship_v004.ma"))

	saved, err = f.IncrementAndSave(h)
	c.Assert(err, IsNil)
	c.Check(saved, Equals, filepath.Join(s.tmpDir, "ship_v005.ma"))
}

func (s *HostSuite) TestIncrementAndSaveStartsAtFirstVersion(c *C) {
	h := NewUntitledLocalHost([]byte("scene"))
	f, err := NewSceneFile(filepath.Join(s.tmpDir, "new", "shot"), "sh010", 7, "ma")
	c.Assert(err, IsNil)

	saved, err := f.IncrementAndSave(h)
	c.Assert(err, IsNil)
	c.Check(f.Version(), Equals, FIRST_VERSION)
	c.Check(saved, Equals, filepath.Join(s.tmpDir, "new", "shot", "sh010_v001.ma"))
}

func (s *HostSuite) TestIncrementAndSaveKeepsVersionOnFailure(c *C) {
	c.Assert(ioutil.WriteFile(filepath.Join(s.tmpDir, "ship_v002.ma"), nil, 0644), IsNil)
	h := &fakeHost{failures: []error{errors.New("host crashed")}}
	f, err := NewSceneFile(s.tmpDir, "ship", 1, "ma")
	c.Assert(err, IsNil)

	_, err = f.IncrementAndSave(h)
	c.Check(err, ErrorMatches, "host crashed")
	c.Check(f.Version(), Equals, 3)
}

func (s *HostSuite) TestSceneFileFromHost(c *C) {
	_, err := SceneFileFromHost(&fakeHost{})
	c.Check(err, Equals, ErrNoOpenScene)

	f, err := SceneFileFromHost(&fakeHost{scene: "/scenes/car_v012.hip"})
	c.Assert(err, IsNil)
	c.Check(f.Path(), Equals, "/scenes/car_v012.hip")

	_, err = SceneFileFromHost(&fakeHost{scene: "/scenes/untitled.ma"})
	c.Check(err, FitsTypeOf, &ParseError{})
}

func (s *HostSuite) TestLocalHostOpensScene(c *C) {
	scene := filepath.Join(s.tmpDir, "car_v002.hip")
	c.Assert(ioutil.WriteFile(scene, []byte("car"), 0644), IsNil)

	h, err := NewLocalHost(scene)
	c.Assert(err, IsNil)
	f, err := SceneFileFromHost(h)
	c.Assert(err, IsNil)
	c.Check(f.Version(), Equals, 2)

	saved, err := f.IncrementAndSave(h)
	c.Assert(err, IsNil)
	data, err := ioutil.ReadFile(saved)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "car")
	c.Check(filepath.Base(saved), Equals, "car_v003.hip")

	_, err = NewLocalHost(filepath.Join(s.tmpDir, "missing_v001.ma"))
	c.Check(err, ErrorMatches, "Could not open scene .*")

	h, err = NewLocalHost("")
	c.Assert(err, IsNil)
	_, err = SceneFileFromHost(h)
	c.Check(err, Equals, ErrNoOpenScene)
}

func (s *HostSuite) TestSaveOverRegularFileFails(c *C) {
	target := filepath.Join(s.tmpDir, "not-a-directory")
	c.Assert(ioutil.WriteFile(target, []byte("file"), 0644), IsNil)

	h := NewUntitledLocalHost([]byte("scene"))
	f, err := NewSceneFile(target, "ship", 1, "ma")
	c.Assert(err, IsNil)

	_, err = f.Save(h)
	c.Check(err, ErrorMatches, "Could not save .*: .* is not a directory")
	c.Check(IsMissingDirectory(err), Equals, false)
	c.Check(s.logs.Len(), Equals, 0)

	scene, err := h.SceneName()
	c.Assert(err, IsNil)
	c.Check(scene, Equals, "")

	data, err := ioutil.ReadFile(target)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "file")
}
