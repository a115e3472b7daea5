package mock

import (
	"context"

	"github.com/pagemark/pagemark"
)

var _ pagemark.LinkService = (*LinkService)(nil)

// LinkService is a mock implementation of pagemark.LinkService.
type LinkService struct {
	CreateLinkFn     func(ctx context.Context, link *pagemark.ProcessedLink) error
	CompleteLinkFn   func(ctx context.Context, id string, result *pagemark.ConversionResult) error
	FailLinkFn       func(ctx context.Context, id string, message string) error
	FindLinkByIDFn   func(ctx context.Context, id string) (*pagemark.ProcessedLink, error)
	FindLinksFn      func(ctx context.Context, filter pagemark.LinkFilter) ([]*pagemark.ProcessedLink, error)
	DeleteLinkFn     func(ctx context.Context, id string) error
	DeleteAllLinksFn func(ctx context.Context) error
}

func (s *LinkService) CreateLink(ctx context.Context, link *pagemark.ProcessedLink) error {
	return s.CreateLinkFn(ctx, link)
}

func (s *LinkService) CompleteLink(ctx context.Context, id string, result *pagemark.ConversionResult) error {
	return s.CompleteLinkFn(ctx, id, result)
}

func (s *LinkService) FailLink(ctx context.Context, id string, message string) error {
	return s.FailLinkFn(ctx, id, message)
}

func (s *LinkService) FindLinkByID(ctx context.Context, id string) (*pagemark.ProcessedLink, error) {
	return s.FindLinkByIDFn(ctx, id)
}

func (s *LinkService) FindLinks(ctx context.Context, filter pagemark.LinkFilter) ([]*pagemark.ProcessedLink, error) {
	return s.FindLinksFn(ctx, filter)
}

func (s *LinkService) DeleteLink(ctx context.Context, id string) error {
	return s.DeleteLinkFn(ctx, id)
}

func (s *LinkService) DeleteAllLinks(ctx context.Context) error {
	return s.DeleteAllLinksFn(ctx)
}
