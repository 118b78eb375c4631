package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/formicidae-tracker/scenefile"
	"github.com/jessevdk/go-flags"
)

type Options struct {
}

type Nodename string

var nodes map[string]scenefile.Node

func listNodes() error {
	if nodes != nil {
		return nil
	}
	var err error
	nodes, err = scenefile.NewNodeLister().ListNodes()
	if err != nil {
		return fmt.Errorf("Could not list scenehost on local network: %s", err)
	}
	return nil
}

func (n *Nodename) GetNode() (*scenefile.Node, error) {
	if len(*n) == 0 {
		return nil, fmt.Errorf("Missing mandatory instance name")
	}
	if err := listNodes(); err != nil {
		return nil, err
	}
	node, ok := nodes[string(*n)]
	if ok == false {
		return nil, fmt.Errorf("Could not find scenehost '%s'", *n)
	}
	return &node, nil
}

func (n *Nodename) Complete(match string) []flags.Completion {
	if err := listNodes(); err != nil {
		return nil
	}
	res := make([]flags.Completion, 0, len(nodes))
	for nodeName, node := range nodes {
		if strings.HasPrefix(nodeName, match) == false {
			continue
		}
		res = append(res, flags.Completion{
			Item:        nodeName,
			Description: fmt.Sprintf("%s:%d", node.Address, node.Port),
		})
	}
	return res
}

// HostOptions selects the host a scene is saved through: a discovered
// scenehost instance, or a local scene file.
type HostOptions struct {
	Instance Nodename `short:"I" long:"instance" description:"scenehost instance to save through"`
	Scene    string   `short:"s" long:"scene" description:"scene file to open locally when no instance is given"`
	FromOpen bool     `long:"from-open" description:"names the scene after the host's opened scene instead of the naming options"`
}

func (o *HostOptions) Host() (scenefile.Host, error) {
	if len(o.Instance) == 0 {
		host, err := scenefile.NewLocalHost(o.Scene)
		if err != nil {
			return nil, err
		}
		return host, nil
	}
	node, err := o.Instance.GetNode()
	if err != nil {
		return nil, err
	}
	host, err := scenefile.NewRemoteHost(*node)
	if err != nil {
		return nil, err
	}
	return host, nil
}

// NamingOptions resolves the naming configuration from, by increasing
// priority, defaults, the user file, a file given as argument and the
// command line.
type NamingOptions struct {
	Naming scenefile.NamingConfiguration
}

func (o *NamingOptions) SceneFile(args []string) (*scenefile.SceneFile, error) {
	config, err := scenefile.LoadUserConfiguration()
	if err != nil {
		return nil, err
	}
	if len(args) >= 1 {
		fileConfig, err := scenefile.ReadConfiguration(args[0])
		if err != nil {
			return nil, err
		}
		if err := config.Merge(fileConfig); err != nil {
			return nil, fmt.Errorf("Could not merge file configuration: %s", err)
		}
	}
	if err := config.Merge(&o.Naming); err != nil {
		return nil, fmt.Errorf("Could not merge file and commandline configuration: %s", err)
	}
	return config.SceneFile()
}

var opts = &Options{}

var parser = flags.NewParser(opts, flags.Default)

func Execute() error {
	_, err := parser.Parse()
	if ferr, ok := err.(*flags.Error); ok == true && ferr.Type == flags.ErrHelp {
		err = nil
	}
	return err
}

func main() {
	if err := Execute(); err != nil {
		if _, ok := err.(*flags.Error); ok == false {
			fmt.Fprintf(os.Stderr, "%s\n", err)
		}
		log.Fatalf("Unhandled error")
	}
}
