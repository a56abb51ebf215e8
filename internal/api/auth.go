// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"context"
	"net/http"

	"github.com/vibedeck/vibedeck/internal/models"
)

// AuthAPI is the login and registration surface.
type AuthAPI interface {
	AdminLogin(ctx context.Context, email, password string) (*LoginResult, error)
	UserLogin(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) error
	AdminDetails(ctx context.Context, id string) (*models.User, error)
}

// LoginResult is a successful login response: the bearer token plus the
// account record the backend returned.
type LoginResult struct {
	Token    string
	Identity models.Identity
}

// loginRequest is the credentials body both login endpoints accept.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the new-account body. Coordinates are the strings
// captured at form-build time, sent verbatim.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// AdminLogin attempts the admin login endpoint.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, c.baseURL+"/api/admin/login", email, password)
}

// UserLogin attempts the regular user login endpoint.
func (c *Client) UserLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, c.baseURL+"/api/users/login", email, password)
}

func (c *Client) login(ctx context.Context, url, email, password string) (*LoginResult, error) {
	env, err := c.doJSON(ctx, http.MethodPost, url, loginRequest{Email: email, Password: password}, false)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{Token: env.Token}
	if err := decodeData(env, &result.Identity); err != nil {
		return nil, err
	}
	return result, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	_, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/users/register", req, false)
	return err
}

// AdminDetails fetches the stored admin account for the account view.
func (c *Client) AdminDetails(ctx context.Context, id string) (*models.User, error) {
	env, err := c.do(ctx, http.MethodGet, c.baseURL+"/api/admin/"+id, nil, "", true)
	if err != nil {
		return nil, err
	}
	admin := &models.User{}
	if err := decodeData(env, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
