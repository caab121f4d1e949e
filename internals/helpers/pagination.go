// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 1

	// CourseListPerPage is the fixed page size of public course listings.
	CourseListPerPage = 4
)

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging reads ?page= and ?per_page= (alias ?limit=) and normalizes.
// A non-integer page falls back to page 1.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	pageStr := strings.TrimSpace(c.Query("page", "1"))

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultPerPage)))
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	offset := (page - 1) * perPage

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  offset,
		Limit:   perPage,
	}
}

// ClampPage normalizes a requested page against a known total:
// page < 1 (or non-integer upstream) becomes 1, a page past the end becomes
// the last page. An empty result set stays on page 1.
func ClampPage(page int, total int64, perPage int) int {
	if perPage <= 0 {
		perPage = CourseListPerPage
	}
	if page < 1 {
		page = 1
	}
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}
	return page
}

// ResolvePagingClamped resolves paging and clamps the page to the last page
// for the given total, mirroring classic paginator behavior.
func ResolvePagingClamped(c *fiber.Ctx, total int64, perPage int) Paging {
	p := ResolvePaging(c, perPage, perPage)
	p.Page = ClampPage(p.Page, total, p.PerPage)
	p.Offset = (p.Page - 1) * p.PerPage
	p.Limit = p.PerPage
	return p
}
