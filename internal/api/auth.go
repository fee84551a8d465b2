package api

import (
	"context"
	"fmt"
	"net/url"
)

// User is a backend-issued user record.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Token is the credential pair returned by a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UsernameAvailability reports whether a username can still be registered.
type UsernameAvailability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// SignupRequest is the payload for creating a new account.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup registers a new user account and returns the created profile.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	resp, err := c.doRequest(ctx, "POST", "/api/v1/auth/signup", "", req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	resp, err := c.doRequest(ctx, "POST", "/api/v1/auth/login", "", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var token Token
	if err := parseResponse(resp, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// GetCurrentUser fetches the profile the token belongs to.
func (c *Client) GetCurrentUser(ctx context.Context, token string) (*User, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/auth/me", token, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckUsernameAvailability asks the backend whether username is free.
func (c *Client) CheckUsernameAvailability(ctx context.Context, username string) (*UsernameAvailability, error) {
	path := fmt.Sprintf("/api/v1/auth/check-username/%s", url.PathEscape(username))
	resp, err := c.doRequest(ctx, "GET", path, "", nil)
	if err != nil {
		return nil, err
	}

	var availability UsernameAvailability
	if err := parseResponse(resp, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}
