package onenote

import (
	"context"
	"encoding/json"

	"github.com/quill-labs/notedump/internal/core/domain"
	"github.com/quill-labs/notedump/internal/core/ports/driven"
)

// NoContentPlaceholder is returned as page content when a page
// descriptor carries no content URL.
const NoContentPlaceholder = "<!-- Page has no contentUrl -->"

// collection is the paged envelope Graph wraps list responses in.
type collection[T any] struct {
	Value    []T    `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

// fetchCollection fetches one page of a collection. A response that
// does not carry the expected wrapper degrades to an empty result with
// a logged warning: one malformed slice of a large export should not
// abort the whole run.
func fetchCollection[T any](ctx context.Context, c *Client, url string) ([]T, string, error) {
	body, err := c.GetBytes(ctx, url)
	if err != nil {
		return nil, "", err
	}

	var col collection[T]
	if err := json.Unmarshal(body, &col); err != nil || col.Value == nil {
		c.log.Warn("unexpected collection response shape, treating as empty", "url", url)
		return nil, "", nil
	}
	return col.Value, col.NextLink, nil
}

// ListNotebooks fetches the notebooks collection root. It tolerates
// both the paged wrapper and a raw array, a shape difference between
// singular and paged responses.
func (c *Client) ListNotebooks(ctx context.Context) ([]domain.Notebook, error) {
	url := c.cfg.BaseURL + "notebooks"
	body, err := c.GetBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	var col collection[domain.Notebook]
	if err := json.Unmarshal(body, &col); err == nil && col.Value != nil {
		return col.Value, nil
	}

	var raw []domain.Notebook
	if err := json.Unmarshal(body, &raw); err == nil {
		return raw, nil
	}

	c.log.Warn("unexpected notebooks response shape, treating as empty", "url", url)
	return nil, nil
}

// FindNotebook returns the first notebook whose display name matches
// exactly, or nil. Duplicates are not deduplicated or warned about; the
// first match in input order wins.
func FindNotebook(notebooks []domain.Notebook, displayName string) *domain.Notebook {
	for i := range notebooks {
		if notebooks[i].DisplayName == displayName {
			return &notebooks[i]
		}
	}
	return nil
}

// Pages resolves notebookName and returns the lazy page sequence over
// its section tree. Ordering is deterministic for a fixed remote state:
// each container's own sections stream first in API order, then its
// section groups are expanded depth-first. sectionName, when non-empty,
// keeps only sections matching it exactly; filtered-out sections are
// skipped entirely.
func (c *Client) Pages(ctx context.Context, notebookName, sectionName string) (driven.PageSource, error) {
	notebooks, err := c.ListNotebooks(ctx)
	if err != nil {
		return nil, err
	}

	notebook := FindNotebook(notebooks, notebookName)
	if notebook == nil {
		names := make([]string, 0, len(notebooks))
		for _, n := range notebooks {
			names = append(names, n.DisplayName)
		}
		return nil, &domain.NotebookNotFoundError{Name: notebookName, Available: names}
	}

	return &PageIterator{
		client:     c,
		filter:     sectionName,
		containers: []domain.Container{notebook.Container},
	}, nil
}

// PageIterator walks the section tree one remote call at a time. It is
// one-pass and non-restartable; Next never pre-fetches beyond the
// collection page it is currently draining, and no connection is held
// open between calls.
type PageIterator struct {
	client *Client
	filter string

	// containers is the work stack of unexpanded container nodes.
	containers []domain.Container
	// sections holds resolved sections whose pages are still pending,
	// in emission order.
	sections []domain.Section
	// pagesURL is the next page-collection URL of the section being
	// streamed; empty when no section is in flight.
	pagesURL string
	// buf holds pages already fetched but not yet emitted.
	buf []domain.Page
}

// Ensure PageIterator implements the port.
var _ driven.PageSource = (*PageIterator)(nil)

// Next returns the next page in depth-first tree order, fetching on
// demand. It returns domain.ErrNoMorePages once the tree is exhausted.
func (it *PageIterator) Next(ctx context.Context) (*domain.Page, error) {
	for {
		if len(it.buf) > 0 {
			page := it.buf[0]
			it.buf = it.buf[1:]
			return &page, nil
		}

		if it.pagesURL != "" {
			pages, next, err := fetchCollection[domain.Page](ctx, it.client, it.pagesURL)
			if err != nil {
				return nil, err
			}
			it.buf = pages
			it.pagesURL = next
			continue
		}

		if len(it.sections) > 0 {
			section := it.sections[0]
			it.sections = it.sections[1:]
			it.pagesURL = section.PagesURL
			continue
		}

		if len(it.containers) > 0 {
			if err := it.expand(ctx); err != nil {
				return nil, err
			}
			continue
		}

		return nil, domain.ErrNoMorePages
	}
}

// expand pops the top container and enqueues its sections and child
// section groups. Child groups are pushed in reverse so the stack pops
// them in API order.
func (it *PageIterator) expand(ctx context.Context) error {
	top := len(it.containers) - 1
	container := it.containers[top]
	it.containers = it.containers[:top]

	if container.SectionsURL != "" {
		sections, _, err := fetchCollection[domain.Section](ctx, it.client, container.SectionsURL)
		if err != nil {
			return err
		}
		for _, section := range sections {
			if it.filter != "" && section.DisplayName != it.filter {
				continue
			}
			it.sections = append(it.sections, section)
		}
	}

	if container.SectionGroupsURL != "" {
		groups, _, err := fetchCollection[domain.SectionGroup](ctx, it.client, container.SectionGroupsURL)
		if err != nil {
			return err
		}
		for i := len(groups) - 1; i >= 0; i-- {
			it.containers = append(it.containers, groups[i].Container)
		}
	}

	return nil
}

// Content fetches the raw content bytes of a page. Pages without a
// content URL yield a fixed placeholder marker instead of an error.
func (c *Client) Content(ctx context.Context, page *domain.Page) ([]byte, error) {
	if page.ContentURL == "" {
		c.log.Warn("page has no contentUrl", "title", page.Title)
		return []byte(NoContentPlaceholder), nil
	}
	return c.GetBytes(ctx, page.ContentURL)
}
