package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/convert"
	"github.com/pagemark/pagemark/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if c.Combined != "" && c.Output == "" {
		return pagemark.Errorf(pagemark.EINVALID, "--combined requires --output")
	}

	links := deps.Converter.ConvertAll(deps.Ctx, c.URLs, func(e convert.ProgressEvent) {
		switch e.Type {
		case convert.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] done %s\n", e.Completed, e.Total, e.URL)
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n", e.Completed, e.Total, e.URL, pagemark.ErrorMessage(e.Error))
		}
	})

	var results []*pagemark.ConversionResult
	failures := 0
	for _, link := range links {
		if link.Status != pagemark.LinkCompleted {
			failures++
			fmt.Fprintf(deps.Stdout, "%s  error  %s  %s\n", link.ID, link.URL, link.Error)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  completed  %s  %q\n", link.ID, link.URL, link.Result.Title)
		results = append(results, link.Result)
	}

	if c.Output != "" && len(results) > 0 {
		exporter := fs.NewExporter(c.Output)
		if c.Combined != "" {
			path, err := exporter.WriteCombined(c.Combined, results)
			if err != nil {
				return err
			}
			fmt.Fprintf(deps.Stdout, "wrote %s\n", path)
		} else {
			for _, r := range results {
				path, err := exporter.WriteResult(r)
				if err != nil {
					return err
				}
				fmt.Fprintf(deps.Stdout, "wrote %s\n", path)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d conversions failed", failures, len(links))
	}
	return nil
}
