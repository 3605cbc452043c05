package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/nutritrack/cli/domain"
)

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// findUser resolves a target row by ID from the fetched user list, so
// toggle commands operate on the server's current view of the row.
func findUser(ctx context.Context, a *app, userID string) (*domain.UserProfile, error) {
	rows, err := a.admin.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s", domain.UserMessage(err, "Failed to fetch users"))
	}
	for i := range rows {
		if rows[i].ID == userID {
			return &rows[i], nil
		}
	}
	return nil, fmt.Errorf("user %s not found", userID)
}
