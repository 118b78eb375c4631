package main

import (
	"fmt"
	"os"

	"github.com/formicidae-tracker/scenefile"
)

type VersionCommand struct {
}

var versionCommand = &VersionCommand{}

func (c *VersionCommand) Execute(args []string) error {
	fmt.Fprintf(os.Stdout, "scenefile-cli version %s\n", scenefile.SCENEFILE_VERSION)
	return nil
}

func init() {
	_, err := parser.AddCommand("version", "prints current version", "Prints on stdout the current version", versionCommand)
	if err != nil {
		panic(err.Error())
	}
}
