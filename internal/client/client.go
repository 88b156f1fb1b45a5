package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"scormd/internal/api"
)

const userAgent = "scormd/0.1.0"

// Client talks to a running scormd server over its HTTP API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a client for the server at baseURL. An empty token sends no
// Authorization header.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Health reports whether the server answers its health probe.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// UploadCourse posts a package archive and returns the ingested course.
func (c *Client) UploadCourse(ctx context.Context, title, filename string, archive []byte) (*api.Course, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if title != "" {
		if err := writer.WriteField("title", title); err != nil {
			return nil, fmt.Errorf("build upload form: %w", err)
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(archive); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/courses", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var course api.Course
	if err := c.do(req, http.StatusCreated, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCourses returns all courses, newest first.
func (c *Client) ListCourses(ctx context.Context) ([]api.Course, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/courses", nil)
	if err != nil {
		return nil, err
	}
	var courses []api.Course
	if err := c.do(req, http.StatusOK, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse returns one course with its SCO list.
func (c *Client) GetCourse(ctx context.Context, id string) (*api.CourseDetail, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/courses/"+id, nil)
	if err != nil {
		return nil, err
	}
	var detail api.CourseDetail
	if err := c.do(req, http.StatusOK, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteCourse removes a course, its tracking data, and its extracted content.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/courses/"+id, nil)
	if err != nil {
		return err
	}
	var ack api.OKResponse
	return c.do(req, http.StatusOK, &ack)
}

// CreateAttempt starts a tracking session for a learner.
func (c *Client) CreateAttempt(ctx context.Context, courseID, learnerID, scoID string) (*api.Attempt, error) {
	payload, err := json.Marshal(api.CreateAttemptRequest{
		CourseID:  courseID,
		LearnerID: learnerID,
		SCOID:     scoID,
	})
	if err != nil {
		return nil, fmt.Errorf("encode attempt request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/attempts", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var attempt api.Attempt
	if err := c.do(req, http.StatusCreated, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

// Stats returns aggregate counts for the status view.
func (c *Client) Stats(ctx context.Context) (*api.StatsResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats api.StatsResponse
	if err := c.do(req, http.StatusOK, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do executes a request, expecting wantStatus; any other status is surfaced
// with the server's error message when one decodes.
func (c *Client) do(req *http.Request, wantStatus int, dest any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		var serverErr api.ErrorResponse
		if json.Unmarshal(body, &serverErr) == nil && serverErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, serverErr.Error)
		}
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
