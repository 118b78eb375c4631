package main

import (
	"fmt"
	"os"

	"github.com/formicidae-tracker/scenefile"
)

type ListCommand struct {
	NamingOptions
}

var listCommand = &ListCommand{}

func (c *ListCommand) Execute(args []string) error {
	f, err := c.SceneFile(args)
	if err != nil {
		return err
	}
	versions, err := f.ExistingVersions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintf(os.Stdout, "No %s_v*.%s in '%s'\n", f.Descriptor(), f.Extension(), f.Directory())
		return nil
	}

	formatStr := "%7s | %s\n"
	fmt.Fprintf(os.Stdout, formatStr, "Version", "Path")
	fmt.Fprintf(os.Stdout, "--------------------------------------------------------------------------------\n")
	for _, v := range versions {
		g, err := scenefile.NewSceneFile(f.Directory(), f.Descriptor(), v, f.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, formatStr, fmt.Sprintf("%d", v), g.Path())
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("list", "lists existing versions", "Lists the existing versions of a scene file in its directory", listCommand)
	if err != nil {
		panic(err.Error())
	}
}
