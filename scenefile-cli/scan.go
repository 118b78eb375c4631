package main

import (
	"fmt"
	"os"

	"github.com/formicidae-tracker/scenefile"
)

type ScanCommand struct {
}

var scanCommand = &ScanCommand{}

func (c *ScanCommand) Execute(args []string) error {
	if err := listNodes(); err != nil {
		return err
	}

	formatStr := "%20s | %24s | %20s | %s\n"
	fmt.Fprintf(os.Stdout, formatStr, "Instance", "Address", "Version", "Scene")
	fmt.Fprintf(os.Stdout, "--------------------------------------------------------------------------------\n")
	for name, n := range nodes {
		version := "N.A."
		scene := "N.A."
		status := scenefile.Status{}
		err := n.RunMethod(scenefile.HOST_SERVICE_NAME+".Status", &scenefile.StatusArgs{ClientVersion: scenefile.SCENEFILE_VERSION}, &status)
		if err == nil {
			version = status.Version
			scene = status.Scene
			if len(scene) == 0 {
				scene = "untitled"
			}
		}
		fmt.Fprintf(os.Stdout, formatStr, name, fmt.Sprintf("%s:%d", n.Address, n.Port), version, scene)
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("scan", "scans local network for scenehost instances", "Uses zeroconf to discover available scenehost instances and their status over the network", scanCommand)
	if err != nil {
		panic(err.Error())
	}
}
