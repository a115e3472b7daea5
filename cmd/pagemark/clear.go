package main

import (
	"fmt"

	"github.com/pagemark/pagemark"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintln(deps.Stdout, "This deletes every processed link. Re-run with --force to confirm.")
		return nil
	}

	if err := deps.Links.DeleteAllLinks(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Deleted all links.")
	return nil
}
