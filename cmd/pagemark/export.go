package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	status := pagemark.LinkCompleted
	links, err := deps.Links.FindLinks(deps.Ctx, pagemark.LinkFilter{Status: &status})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if len(links) == 0 {
		fmt.Fprintln(deps.Stdout, "No completed links to export.")
		return nil
	}

	// FindLinks returns newest first; export oldest first so the combined
	// document reads in conversion order.
	results := make([]*pagemark.ConversionResult, 0, len(links))
	for i := len(links) - 1; i >= 0; i-- {
		results = append(results, links[i].Result)
	}

	exporter := fs.NewExporter(c.Output)

	if c.Combined != "" {
		path, err := exporter.WriteCombined(c.Combined, results)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %s\n", path)
		return nil
	}

	for _, r := range results {
		path, err := exporter.WriteResult(r)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %s\n", path)
	}
	return nil
}
