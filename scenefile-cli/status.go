package main

import (
	"fmt"

	"github.com/formicidae-tracker/scenefile"
)

type StatusCommand struct {
	Instance Nodename `short:"I" long:"instance" description:"scenehost instance to query" required:"true"`
}

var statusCommand = &StatusCommand{}

func (c *StatusCommand) Execute(args []string) error {
	n, err := c.Instance.GetNode()
	if err != nil {
		return err
	}

	status := scenefile.Status{}
	if err := n.RunMethod(scenefile.HOST_SERVICE_NAME+".Status", &scenefile.StatusArgs{ClientVersion: scenefile.SCENEFILE_VERSION}, &status); err != nil {
		return err
	}

	fmt.Printf("Node: %s\n", c.Instance)
	fmt.Printf("Host version: %s\n", status.Version)
	fmt.Printf("Since: %s\n", status.Since)
	if len(status.Scene) == 0 {
		fmt.Printf("Scene: untitled\n")
		return nil
	}
	fmt.Printf("Scene: %s\n", status.Scene)
	if f, err := scenefile.ParseSceneFile(status.Scene); err == nil {
		fmt.Printf("Descriptor: %s\nScene version: %d\n", f.Descriptor(), f.Version())
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("status", "queries the status of a scenehost", "Queries the opened scene and version of a specified scenehost", statusCommand)
	if err != nil {
		panic(err.Error())
	}
}
