package scenefile

import (
	"io/ioutil"
	"path/filepath"
	"time"

	. "gopkg.in/check.v1"
)

type NodeListerSuite struct {
	cachePath string
}

var _ = Suite(&NodeListerSuite{})

func (s *NodeListerSuite) SetUpTest(c *C) {
	s.cachePath = filepath.Join(c.MkDir(), "scenefile", "nodes.cache")
}

func (s *NodeListerSuite) TestCacheRoundTrip(c *C) {
	nodes := map[string]Node{
		"workstation": Node{Name: "workstation", Address: "workstation.local", Port: SCENEHOST_PORT},
	}
	n := newNodeListerWithCache(s.cachePath)
	c.Check(n.Cache, IsNil)
	n.Cache = nodes
	n.CacheDate = time.Now()
	n.save()

	loaded := newNodeListerWithCache(s.cachePath)
	c.Check(loaded.Cache, DeepEquals, nodes)

	listed, err := loaded.ListNodes()
	c.Assert(err, IsNil)
	c.Check(listed, DeepEquals, nodes)
}

func (s *NodeListerSuite) TestCorruptedCacheIsStale(c *C) {
	n := newNodeListerWithCache(s.cachePath)
	n.save()
	c.Assert(ioutil.WriteFile(s.cachePath, []byte("date: [not a date\n"), 0644), IsNil)

	loaded := newNodeListerWithCache(s.cachePath)
	c.Check(time.Now().Before(loaded.CacheDate.Add(NODE_CACHE_TTL)), Equals, false)
}
