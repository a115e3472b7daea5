package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pagemark/pagemark"
)

// Compile-time interface verification.
var _ pagemark.LinkService = (*LinkService)(nil)

// LinkService implements pagemark.LinkService using SQLite.
type LinkService struct {
	db *DB
}

// NewLinkService creates a new LinkService.
func NewLinkService(db *DB) *LinkService {
	return &LinkService{db: db}
}

// hashMarkdown computes xxHash of rendered markdown and returns a hex string.
func hashMarkdown(markdown string) string {
	h := xxhash.Sum64String(markdown)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateLink records a new link in processing state and assigns its ID.
func (s *LinkService) CreateLink(ctx context.Context, link *pagemark.ProcessedLink) error {
	if link.Status == "" {
		link.Status = pagemark.LinkProcessing
	}
	if err := link.Validate(); err != nil {
		return err
	}

	link.ID = uuid.New().String()
	link.CreatedAt = time.Now().UTC()
	link.UpdatedAt = link.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO processed_links (id, url, status, error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, link.ID, link.URL, string(link.Status), link.Error,
		link.CreatedAt.Format(time.RFC3339), link.UpdatedAt.Format(time.RFC3339))

	return err
}

// CompleteLink transitions a processing link to completed with its result.
func (s *LinkService) CompleteLink(ctx context.Context, id string, result *pagemark.ConversionResult) error {
	if result == nil {
		return pagemark.Errorf(pagemark.EINVALID, "completion requires a result")
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE processed_links
		SET status = ?, title = ?, markdown = ?, markdown_hash = ?, result_url = ?, result_timestamp = ?, updated_at = ?
		WHERE id = ? AND status = ?
	`, string(pagemark.LinkCompleted), result.Title, result.Markdown, hashMarkdown(result.Markdown),
		result.URL, result.Timestamp, time.Now().UTC().Format(time.RFC3339),
		id, string(pagemark.LinkProcessing))
	if err != nil {
		return err
	}

	return s.checkTransition(ctx, res, id)
}

// FailLink transitions a processing link to errored with a human-readable message.
func (s *LinkService) FailLink(ctx context.Context, id string, message string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE processed_links
		SET status = ?, error = ?, updated_at = ?
		WHERE id = ? AND status = ?
	`, string(pagemark.LinkError), message, time.Now().UTC().Format(time.RFC3339),
		id, string(pagemark.LinkProcessing))
	if err != nil {
		return err
	}

	return s.checkTransition(ctx, res, id)
}

// checkTransition distinguishes a missing link from one that already reached
// a terminal state when a guarded UPDATE touched no rows.
func (s *LinkService) checkTransition(ctx context.Context, res sql.Result, id string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	link, err := s.FindLinkByID(ctx, id)
	if err != nil {
		return err
	}
	return pagemark.Errorf(pagemark.EINVALID, "link already %s", link.Status)
}

// FindLinkByID retrieves a link by ID.
func (s *LinkService) FindLinkByID(ctx context.Context, id string) (*pagemark.ProcessedLink, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, status, title, markdown, result_url, result_timestamp, error, created_at, updated_at
		FROM processed_links
		WHERE id = ?
	`, id)

	link, err := scanLink(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pagemark.Errorf(pagemark.ENOTFOUND, "link not found")
	}
	if err != nil {
		return nil, err
	}
	return link, nil
}

// FindLinks retrieves links matching the filter, newest first.
func (s *LinkService) FindLinks(ctx context.Context, filter pagemark.LinkFilter) ([]*pagemark.ProcessedLink, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, status, title, markdown, result_url, result_timestamp, error, created_at, updated_at FROM processed_links WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*pagemark.ProcessedLink
	for rows.Next() {
		link, err := scanLink(rows.Scan)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// DeleteLink permanently removes a link.
func (s *LinkService) DeleteLink(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM processed_links WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return pagemark.Errorf(pagemark.ENOTFOUND, "link not found")
	}
	return nil
}

// DeleteAllLinks removes every link.
func (s *LinkService) DeleteAllLinks(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM processed_links")
	return err
}

// scanLink reads one processed_links row. The scan argument is either
// sql.Row.Scan or sql.Rows.Scan.
func scanLink(scan func(dest ...any) error) (*pagemark.ProcessedLink, error) {
	var link pagemark.ProcessedLink
	var title, markdown, resultURL, resultTimestamp string
	var createdAt, updatedAt string

	if err := scan(&link.ID, &link.URL, &link.Status, &title, &markdown,
		&resultURL, &resultTimestamp, &link.Error, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	link.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	link.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}

	if link.Status == pagemark.LinkCompleted {
		link.Result = &pagemark.ConversionResult{
			Markdown:  markdown,
			Title:     title,
			URL:       resultURL,
			Timestamp: resultTimestamp,
		}
	}

	return &link, nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
