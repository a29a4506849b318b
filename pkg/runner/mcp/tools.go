package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetDayTool(srv, svc)
	registerSaveTodayTool(srv, svc)
	registerRecentTrendTool(srv, svc)
	registerMonthCalendarTool(srv, svc)
	registerExportJSONTool(srv, svc)
	registerImportJSONTool(srv, svc)
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Fetch the mood record of one day."),
		mcp.WithString("date",
			mcp.Description("Date as YYYY-MM-DD; defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Day(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(svc.Message(err)), nil
		}
		return toJSONResult(dto)
	})
}

func registerSaveTodayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"save_today",
		mcp.WithDescription("Save today's mood score and text. Only today can be written."),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("Mood score from 1 to 10."),
			mcp.Min(1),
			mcp.Max(10),
		),
		mcp.WithString("text",
			mcp.Description("Free text, cut to 500 characters."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Score float64 `json:"score"`
			Text  string  `json:"text"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Score != float64(int(args.Score)) {
			return mcp.NewToolResultError("score must be a whole number"), nil
		}

		dto, err := svc.SaveToday(ctx, int(args.Score), args.Text)
		if err != nil {
			return mcp.NewToolResultError(svc.Message(err)), nil
		}
		return toJSONResult(dto)
	})
}

func registerRecentTrendTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"recent_trend",
		mcp.WithDescription("Scores of the most recent days ending today; days without a score are null."),
		mcp.WithNumber("days",
			mcp.Description("Number of days (default 30)."),
			mcp.Min(1),
			mcp.Max(366),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Trend(ctx, request.GetInt("days", 30))
		if err != nil {
			return mcp.NewToolResultError(svc.Message(err)), nil
		}
		return toJSONResult(dto)
	})
}

func registerMonthCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_calendar",
		mcp.WithDescription("Month grid marking the days that have a score."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM; defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Calendar(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(svc.Message(err)), nil
		}
		return toJSONResult(dto)
	})
}

func registerExportJSONTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"export_json",
		mcp.WithDescription("Export the whole diary as JSON keyed by date, without images."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := svc.ExportJSON(ctx)
		if err != nil {
			return mcp.NewToolResultError(svc.Message(err)), nil
		}
		return mcp.NewToolResultText(data), nil
	})
}

func registerImportJSONTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"import_json",
		mcp.WithDescription("Merge a JSON backup into the diary. Score and text are replaced, images are kept."),
		mcp.WithString("json",
			mcp.Required(),
			mcp.Description(`Backup such as {"2024-03-10": {"score": 7, "text": "..."}}.`),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("json")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ImportJSON(ctx, text)
		if err != nil {
			return mcp.NewToolResultError(svc.Message(err)), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
