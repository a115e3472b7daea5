package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	link, err := deps.Links.FindLinkByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	switch link.Status {
	case pagemark.LinkCompleted:
		fmt.Fprint(deps.Stdout, link.Result.Markdown)
	case pagemark.LinkError:
		fmt.Fprintf(deps.Stdout, "%s failed: %s\n", link.URL, link.Error)
	default:
		fmt.Fprintf(deps.Stdout, "%s is still processing\n", link.URL)
	}

	return nil
}
