package main

import (
	"errors"
	"fmt"

	"github.com/formicidae-tracker/scenefile"
)

type NextCommand struct {
	NamingOptions
	AllowFirst bool `long:"allow-first" description:"prints the first version instead of failing when no version exists"`
}

var nextCommand = &NextCommand{}

func (c *NextCommand) Execute(args []string) error {
	f, err := c.SceneFile(args)
	if err != nil {
		return err
	}
	next, err := f.NextAvailableVersion()
	if err != nil {
		if c.AllowFirst == false || errors.Is(err, scenefile.ErrNoExistingVersion) == false {
			return err
		}
		next = scenefile.FIRST_VERSION
	}
	fmt.Println(next)
	return nil
}

func init() {
	_, err := parser.AddCommand("next", "prints the next available version", "Prints the version following the highest existing one", nextCommand)
	if err != nil {
		panic(err.Error())
	}
}
