package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Links.DeleteLink(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted link %s\n", c.ID)
	return nil
}
