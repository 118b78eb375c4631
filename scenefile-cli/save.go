package main

import (
	"fmt"

	"github.com/formicidae-tracker/scenefile"
)

type SaveCommand struct {
	NamingOptions
	HostOptions
	increment bool
}

var saveCommand = &SaveCommand{}
var incrementCommand = &SaveCommand{increment: true}

func (c *SaveCommand) sceneFile(host scenefile.Host, args []string) (*scenefile.SceneFile, error) {
	if c.FromOpen == false {
		return c.SceneFile(args)
	}
	return scenefile.SceneFileFromHost(host)
}

func (c *SaveCommand) Execute(args []string) error {
	host, err := c.Host()
	if err != nil {
		return err
	}
	f, err := c.sceneFile(host, args)
	if err != nil {
		return err
	}

	var saved string
	if c.increment == true {
		saved, err = f.IncrementAndSave(host)
	} else {
		saved, err = f.Save(host)
	}
	if err != nil {
		return err
	}
	fmt.Println(saved)
	return nil
}

func init() {
	_, err := parser.AddCommand("save", "saves the scene", "Saves the scene under its versioned name, creating missing directories", saveCommand)
	if err != nil {
		panic(err.Error())
	}
	_, err = parser.AddCommand("increment", "saves the scene as a new version", "Saves the scene under the version following the highest existing one", incrementCommand)
	if err != nil {
		panic(err.Error())
	}
}
