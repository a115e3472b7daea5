package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagemark.LinkFilter{Limit: c.Limit}
	if c.Status != "" {
		status := pagemark.LinkStatus(c.Status)
		switch status {
		case pagemark.LinkProcessing, pagemark.LinkCompleted, pagemark.LinkError:
		default:
			return pagemark.Errorf(pagemark.EINVALID, "unknown status %q", c.Status)
		}
		filter.Status = &status
	}

	links, err := deps.Links.FindLinks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if len(links) == 0 {
		fmt.Fprintln(deps.Stdout, "No links found. Use 'pagemark convert' to process one.")
		return nil
	}

	for _, l := range links {
		title := ""
		if l.Result != nil {
			title = l.Result.Title
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", l.ID, l.Status, l.URL, title)
	}

	return nil
}
