// Package directory counts the end users registered with the external
// auth provider backing the public site.
package directory

import (
	"context"
	"time"
)

// User is a directory entry from the auth provider
type User struct {
	UID        string     `json:"uid"`
	Email      string     `json:"email"`
	LastSignIn *time.Time `json:"last_sign_in,omitempty"`
}

// Page is one page of directory users. An empty NextPageToken marks the
// last page.
type Page struct {
	Users         []User
	NextPageToken string
}

// UserDirectory lists end users page by page
type UserDirectory interface {
	ListUsers(ctx context.Context, pageSize int, pageToken string) (Page, error)
}

const defaultPageSize = 1000

// CountUsers walks every page of the directory and returns the total
// number of users.
func CountUsers(ctx context.Context, dir UserDirectory) (int, error) {
	count := 0
	pageToken := ""
	for {
		page, err := dir.ListUsers(ctx, defaultPageSize, pageToken)
		if err != nil {
			return 0, err
		}
		count += len(page.Users)
		if page.NextPageToken == "" {
			return count, nil
		}
		pageToken = page.NextPageToken
	}
}
