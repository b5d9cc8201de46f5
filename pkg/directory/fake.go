package directory

import (
	"context"
	"strconv"
)

// FakeDirectory implements UserDirectory over a fixed user slice,
// serving pages of the configured size. Test helper.
type FakeDirectory struct {
	Users []User
	Err   error
}

// ListUsers serves one page from the fixed slice
func (d *FakeDirectory) ListUsers(ctx context.Context, pageSize int, pageToken string) (Page, error) {
	if d.Err != nil {
		return Page{}, d.Err
	}

	start := 0
	if pageToken != "" {
		n, err := strconv.Atoi(pageToken)
		if err != nil {
			return Page{}, err
		}
		start = n
	}

	end := start + pageSize
	if end > len(d.Users) {
		end = len(d.Users)
	}

	page := Page{Users: d.Users[start:end]}
	if end < len(d.Users) {
		page.NextPageToken = strconv.Itoa(end)
	}
	return page, nil
}
