package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pagemark/pagemark"
	main "github.com/pagemark/pagemark/cmd/pagemark"
	"github.com/pagemark/pagemark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(links pagemark.LinkService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Links:  links,
	}, stdout, stderr
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists links with ID, status, and URL", func(t *testing.T) {
		t.Parallel()

		links := &mock.LinkService{
			FindLinksFn: func(_ context.Context, _ pagemark.LinkFilter) ([]*pagemark.ProcessedLink, error) {
				return []*pagemark.ProcessedLink{
					{
						ID:     "link-123",
						URL:    "https://example.com/article",
						Status: pagemark.LinkCompleted,
						Result: &pagemark.ConversionResult{Title: "An Article"},
					},
					{
						ID:     "link-456",
						URL:    "https://youtu.be/abc12345678",
						Status: pagemark.LinkError,
						Error:  "No captions found for this video.",
					},
				}, nil
			},
		}

		deps, stdout, _ := newDeps(links)
		cmd := &main.ListCmd{}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "link-123")
		assert.Contains(t, output, "completed")
		assert.Contains(t, output, "https://example.com/article")
		assert.Contains(t, output, "An Article")
		assert.Contains(t, output, "link-456")
		assert.Contains(t, output, "error")
	})

	t.Run("passes the status filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter pagemark.LinkFilter
		links := &mock.LinkService{
			FindLinksFn: func(_ context.Context, filter pagemark.LinkFilter) ([]*pagemark.ProcessedLink, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps, _, _ := newDeps(links)
		cmd := &main.ListCmd{Status: "completed", Limit: 5}

		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, pagemark.LinkCompleted, *gotFilter.Status)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(&mock.LinkService{})
		cmd := &main.ListCmd{Status: "done"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
	})

	t.Run("shows helpful message when no links exist", func(t *testing.T) {
		t.Parallel()

		links := &mock.LinkService{
			FindLinksFn: func(_ context.Context, _ pagemark.LinkFilter) ([]*pagemark.ProcessedLink, error) {
				return nil, nil
			},
		}

		deps, stdout, _ := newDeps(links)
		cmd := &main.ListCmd{}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No links")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the markdown of a completed link", func(t *testing.T) {
		t.Parallel()

		links := &mock.LinkService{
			FindLinkByIDFn: func(_ context.Context, id string) (*pagemark.ProcessedLink, error) {
				assert.Equal(t, "link-123", id)
				return &pagemark.ProcessedLink{
					ID:     "link-123",
					URL:    "https://example.com/article",
					Status: pagemark.LinkCompleted,
					Result: &pagemark.ConversionResult{Markdown: "---\ntitle: \"A\"\n---\n\n# A\n"},
				}, nil
			},
		}

		deps, stdout, _ := newDeps(links)
		cmd := &main.ShowCmd{ID: "link-123"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "---\ntitle: \"A\"\n---\n\n# A\n", stdout.String())
	})

	t.Run("prints the failure message of an errored link", func(t *testing.T) {
		t.Parallel()

		links := &mock.LinkService{
			FindLinkByIDFn: func(_ context.Context, id string) (*pagemark.ProcessedLink, error) {
				return &pagemark.ProcessedLink{
					ID:     "link-456",
					URL:    "https://youtu.be/abc12345678",
					Status: pagemark.LinkError,
					Error:  "No captions found for this video.",
				}, nil
			},
		}

		deps, stdout, _ := newDeps(links)
		cmd := &main.ShowCmd{ID: "link-456"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No captions found for this video.")
	})

	t.Run("returns error when the link is missing", func(t *testing.T) {
		t.Parallel()

		links := &mock.LinkService{
			FindLinkByIDFn: func(_ context.Context, id string) (*pagemark.ProcessedLink, error) {
				return nil, pagemark.Errorf(pagemark.ENOTFOUND, "link not found")
			},
		}

		deps, _, stderr := newDeps(links)
		cmd := &main.ShowCmd{ID: "missing"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, pagemark.ENOTFOUND, pagemark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes the link", func(t *testing.T) {
		t.Parallel()

		deleted := ""
		links := &mock.LinkService{
			DeleteLinkFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		deps, stdout, _ := newDeps(links)
		cmd := &main.DeleteCmd{ID: "link-123"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "link-123", deleted)
		assert.Contains(t, stdout.String(), "Deleted link link-123")
	})

	t.Run("returns error when delete fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		links := &mock.LinkService{
			DeleteLinkFn: func(_ context.Context, id string) error {
				return dbErr
			},
		}

		deps, _, stderr := newDeps(links)
		cmd := &main.DeleteCmd{ID: "link-123"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestClearCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		called := false
		links := &mock.LinkService{
			DeleteAllLinksFn: func(_ context.Context) error {
				called = true
				return nil
			},
		}

		deps, stdout, _ := newDeps(links)
		cmd := &main.ClearCmd{}

		require.NoError(t, cmd.Run(deps))
		assert.False(t, called)
		assert.Contains(t, stdout.String(), "--force")
	})

	t.Run("deletes all links with force", func(t *testing.T) {
		t.Parallel()

		called := false
		links := &mock.LinkService{
			DeleteAllLinksFn: func(_ context.Context) error {
				called = true
				return nil
			},
		}

		deps, stdout, _ := newDeps(links)
		cmd := &main.ClearCmd{Force: true}

		require.NoError(t, cmd.Run(deps))
		assert.True(t, called)
		assert.Contains(t, stdout.String(), "Deleted all links")
	})
}
