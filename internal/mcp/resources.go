// ABOUTME: MCP resource implementations for healthai.
// ABOUTME: Exposes the dashboard and the diet, workout, and symptom catalogs as JSON.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	dashboardURI       = "healthai://dashboard"
	dietCatalogURI     = "healthai://catalog/diet"
	workoutCatalogURI  = "healthai://catalog/workouts"
	symptomsCatalogURI = "healthai://catalog/symptoms"
	resourceMIMEType   = "application/json"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         dashboardURI,
		Name:        "Health Dashboard",
		Description: "Dashboard metrics, trends, alerts, features, and the medical disclaimer",
		MIMEType:    resourceMIMEType,
	}, s.handleDashboardResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         dietCatalogURI,
		Name:        "Diet Plans",
		Description: "Every authored nutrition plan keyed by condition or goal",
		MIMEType:    resourceMIMEType,
	}, s.handleDietCatalogResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         workoutCatalogURI,
		Name:        "Workout Plans",
		Description: "Every authored workout plan",
		MIMEType:    resourceMIMEType,
	}, s.handleWorkoutCatalogResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         symptomsCatalogURI,
		Name:        "Symptoms",
		Description: "Symptoms accepted by analyze_symptoms",
		MIMEType:    resourceMIMEType,
	}, s.handleSymptomsCatalogResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(dashboardURI, s.catalog.Dashboard())
}

func (s *Server) handleDietCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(dietCatalogURI, s.catalog.DietPlans())
}

func (s *Server) handleWorkoutCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(workoutCatalogURI, s.catalog.WorkoutPlans())
}

func (s *Server) handleSymptomsCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(symptomsCatalogURI, s.catalog.Symptoms())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: resourceMIMEType,
			Text:     string(data),
		}},
	}, nil
}
