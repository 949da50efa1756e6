package catalog

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
)

// GetUserByEmail returns the first user record matching the email; nil when
// no account exists.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := map[string]any{
		"type":           "users",
		"metadata.email": email,
	}
	return findOne[User](ctx, c, query, defaultProps, "fetch user by email")
}

// GetUserByID looks a user up by object id; nil when absent.
func (c *Client) GetUserByID(ctx context.Context, id string) (*User, error) {
	return findOne[User](ctx, c, map[string]any{"type": "users", "id": id}, defaultProps, "fetch user by id")
}

// CreateUserInput carries the fields stored on a new user record.
type CreateUserInput struct {
	Name         string
	Email        string
	PasswordHash string
}

// CreateUser inserts a user object into the bucket and returns the stored
// record.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	payload := map[string]any{
		"title": input.Name,
		"type":  "users",
		"metadata": map[string]any{
			"name":          input.Name,
			"email":         input.Email,
			"password_hash": input.PasswordHash,
			"created_at":    now,
			"last_login":    nil,
		},
	}

	raw, err := c.insertObject(ctx, payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return &user, nil
}

// UpdateUserLastLogin stamps the login time on an existing user record.
func (c *Client) UpdateUserLastLogin(ctx context.Context, id string, at time.Time) error {
	payload := map[string]any{
		"metadata": map[string]any{
			"last_login": at.UTC().Format(time.RFC3339),
		},
	}
	if err := c.updateObject(ctx, id, payload); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update last login")
	}
	return nil
}
