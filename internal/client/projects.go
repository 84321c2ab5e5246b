package client

import (
	"context"
	"fmt"

	internalhttp "github.com/domo-community/domo-go/internal/http"
	"github.com/domo-community/domo-go/pkg/domo"
)

// ProjectsClient implements domo.ProjectsClient.
type ProjectsClient struct {
	httpClient *internalhttp.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *internalhttp.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

// CreateProject implements domo.ProjectsClient.CreateProject.
func (c *ProjectsClient) CreateProject(ctx context.Context, request map[string]interface{}) (*domo.Project, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/projects", request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var project domo.Project
	if err := decodeJSON(resp, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// GetProject implements domo.ProjectsClient.GetProject.
func (c *ProjectsClient) GetProject(ctx context.Context, projectID int64) (*domo.Project, error) {
	path := fmt.Sprintf("/v1/projects/%d", projectID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project domo.Project
	if err := decodeJSON(resp, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// ListProjects implements domo.ProjectsClient.ListProjects.
func (c *ProjectsClient) ListProjects(ctx context.Context, opts *domo.ListOptions) ([]domo.Project, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/projects", opts.ToQuery())
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var projects []domo.Project
	if err := decodeJSON(resp, &projects); err != nil {
		return nil, fmt.Errorf("parsing projects list response: %w", err)
	}

	return projects, nil
}

// UpdateProject implements domo.ProjectsClient.UpdateProject.
func (c *ProjectsClient) UpdateProject(ctx context.Context, projectID int64, update map[string]interface{}) (*domo.Project, error) {
	path := fmt.Sprintf("/v1/projects/%d", projectID)

	resp, err := c.httpClient.Put(ctx, path, update)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	var project domo.Project
	if err := decodeJSON(resp, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// DeleteProject implements domo.ProjectsClient.DeleteProject.
func (c *ProjectsClient) DeleteProject(ctx context.Context, projectID int64) error {
	path := fmt.Sprintf("/v1/projects/%d", projectID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

// CreateList implements domo.ProjectsClient.CreateList.
func (c *ProjectsClient) CreateList(ctx context.Context, projectID int64, request map[string]interface{}) (*domo.ProjectList, error) {
	path := fmt.Sprintf("/v1/projects/%d/lists", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating project list: %w", err)
	}

	var list domo.ProjectList
	if err := decodeJSON(resp, &list); err != nil {
		return nil, fmt.Errorf("parsing project list response: %w", err)
	}

	return &list, nil
}

// GetList implements domo.ProjectsClient.GetList.
func (c *ProjectsClient) GetList(ctx context.Context, projectID, listID int64) (*domo.ProjectList, error) {
	path := fmt.Sprintf("/v1/projects/%d/lists/%d", projectID, listID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project list: %w", err)
	}

	var list domo.ProjectList
	if err := decodeJSON(resp, &list); err != nil {
		return nil, fmt.Errorf("parsing project list response: %w", err)
	}

	return &list, nil
}

// CreateTask implements domo.ProjectsClient.CreateTask.
func (c *ProjectsClient) CreateTask(ctx context.Context, projectID, listID int64, request map[string]interface{}) (*domo.Task, error) {
	path := fmt.Sprintf("/v1/projects/%d/lists/%d/tasks", projectID, listID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	var task domo.Task
	if err := decodeJSON(resp, &task); err != nil {
		return nil, fmt.Errorf("parsing task response: %w", err)
	}

	return &task, nil
}

// GetTask implements domo.ProjectsClient.GetTask.
func (c *ProjectsClient) GetTask(ctx context.Context, projectID, listID, taskID int64) (*domo.Task, error) {
	path := fmt.Sprintf("/v1/projects/%d/lists/%d/tasks/%d", projectID, listID, taskID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}

	var task domo.Task
	if err := decodeJSON(resp, &task); err != nil {
		return nil, fmt.Errorf("parsing task response: %w", err)
	}

	return &task, nil
}

// UpdateTask implements domo.ProjectsClient.UpdateTask.
func (c *ProjectsClient) UpdateTask(ctx context.Context, projectID, listID, taskID int64, update map[string]interface{}) (*domo.Task, error) {
	path := fmt.Sprintf("/v1/projects/%d/lists/%d/tasks/%d", projectID, listID, taskID)

	resp, err := c.httpClient.Put(ctx, path, update)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	var task domo.Task
	if err := decodeJSON(resp, &task); err != nil {
		return nil, fmt.Errorf("parsing task response: %w", err)
	}

	return &task, nil
}
