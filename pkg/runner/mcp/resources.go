package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerRecordsResource(srv, svc)
	registerDayTemplate(srv, svc)
}

func registerRecordsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"moodiary://records",
		"Records",
		mcp.WithResourceDescription("Every recorded day as a JSON backup, without images."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := svc.ExportJSON(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     data,
			},
		}, nil
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"moodiary://days/{date}",
		"Day",
		mcp.WithTemplateDescription("The mood record of one day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date, _ := request.Params.Arguments["date"].(string)
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}
		dto, err := svc.Day(ctx, date)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
