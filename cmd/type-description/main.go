package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vphpersson/type_description/pkg/type_description"
)

const (
	jsonFlag = "json"
)

func main() {
	app := &cli.App{
		Name:  "type-description",
		Usage: "Parse formatted type names into root names and generic parameters",
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse one or more formatted type names",
				ArgsUsage: "NAME [NAME...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    jsonFlag,
						Aliases: []string{"j"},
						Usage:   "Output the parse results as JSON",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return cli.Exit("no type names provided", 1)
					}

					useJson := c.Bool(jsonFlag)

					for _, formattedName := range c.Args().Slice() {
						typeName := type_description.Parse(formattedName)

						if useJson {
							output, err := json.Marshal(typeName)
							if err != nil {
								return cli.Exit(fmt.Sprintf("json marshal: %v", err), 1)
							}
							fmt.Println(string(output))
							continue
						}

						fmt.Printf("%s\n", typeName.Root)
						if len(typeName.Parameters) != 0 {
							fmt.Printf("\t%s\n", strings.Join(typeName.Parameters, "\n\t"))
						}
					}

					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
