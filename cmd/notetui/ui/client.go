package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"notedeck/app/dto"
	"notedeck/app/models"
)

// Client talks to the notedeck HTTP API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: 10 * time.Second}}
}

type apiError struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func (c *Client) do(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e apiError
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			if e.Field != "" {
				return fmt.Errorf("%s (%s)", e.Error, e.Field)
			}
			return fmt.Errorf("%s", e.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) ListNotesWithUsers() ([]dto.NoteWithUser, error) {
	var rows []dto.NoteWithUser
	err := c.do(http.MethodGet, "/api/notes/with-users", nil, &rows)
	return rows, err
}

func (c *Client) ListUsers() ([]models.User, error) {
	var users []models.User
	err := c.do(http.MethodGet, "/api/users", nil, &users)
	return users, err
}

func (c *Client) CreateUser(username, password string) (*models.User, error) {
	var u models.User
	err := c.do(http.MethodPost, "/api/users", dto.CreateUserRequest{Username: username, Password: password}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateNote(req dto.CreateNoteRequest) (*models.Note, error) {
	var n models.Note
	if err := c.do(http.MethodPost, "/api/notes", req, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *Client) UpdateNote(id uint, patch dto.NotePatch) (*models.Note, error) {
	var n models.Note
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/notes/%d", id), patch, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *Client) DeleteNote(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/notes/%d", id), nil, nil)
}
