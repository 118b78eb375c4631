package main

import (
	"fmt"

	"github.com/formicidae-tracker/scenefile"
	"gopkg.in/yaml.v2"
)

type ParseCommand struct {
	Args struct {
		Path string `positional-arg-name:"PATH" description:"scene file to parse"`
	} `positional-args:"yes" required:"yes"`
}

var parseCommand = &ParseCommand{}

func (c *ParseCommand) Execute(args []string) error {
	f, err := scenefile.ParseSceneFile(c.Args.Path)
	if err != nil {
		return err
	}
	config := scenefile.NamingConfiguration{
		Directory:  new(string),
		Descriptor: new(string),
		Version:    new(int),
		Extension:  new(string),
	}
	*config.Directory = f.Directory()
	*config.Descriptor = f.Descriptor()
	*config.Version = f.Version()
	*config.Extension = f.Extension()

	out, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("Could not generate YAML: %s", err)
	}
	fmt.Print(string(out))
	return nil
}

func init() {
	_, err := parser.AddCommand("parse", "parses a scene file name", "Parses a scene file path and prints its fields as YAML", parseCommand)
	if err != nil {
		panic(err.Error())
	}
}
