package main

import (
	"fmt"
)

type ComposeCommand struct {
	NamingOptions
	BasenameOnly bool `short:"b" long:"basename" description:"prints only the file name"`
}

var composeCommand = &ComposeCommand{}

func (c *ComposeCommand) Execute(args []string) error {
	f, err := c.SceneFile(args)
	if err != nil {
		return err
	}
	if c.BasenameOnly == true {
		fmt.Println(f.Basename())
	} else {
		fmt.Println(f.Path())
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("compose", "prints a scene file path", "Prints the scene file path built from the naming options. An optional YAML naming configuration can be passed as argument.", composeCommand)
	if err != nil {
		panic(err.Error())
	}
}
