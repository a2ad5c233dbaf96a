package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/traveloka/gsuite-go/internal/auth"
	"github.com/traveloka/gsuite-go/internal/logging"
)

// Scopes are the OAuth2 scopes the Sheets client requests.
var Scopes = []string{
	sheets.SpreadsheetsScope,
}

// Defaults applied by GetValues when the caller leaves the option empty.
const (
	DefaultMajorDimension    = "ROWS"
	DefaultValueRenderOption = "FORMATTED_VALUE"
)

// ValueOptions adjusts how a range of values is read.
type ValueOptions struct {
	// MajorDimension is the dimension results should use, ROWS or
	// COLUMNS. Defaults to ROWS.
	MajorDimension string

	// ValueRenderOption is how values are represented in the output:
	// FORMATTED_VALUE, UNFORMATTED_VALUE or FORMULA. Defaults to
	// FORMATTED_VALUE.
	ValueRenderOption string
}

// Client wraps the Sheets API service for reading spreadsheet values. Each
// method maps to a single REST call; responses are returned as the API
// delivered them and errors propagate unchanged.
type Client struct {
	svc    *sheets.Service
	logger *slog.Logger
}

// NewClient authorizes with cfg (requesting Scopes) and builds the
// underlying Sheets service.
func NewClient(ctx context.Context, cfg *auth.Config, opts ...option.ClientOption) (*Client, error) {
	cfg.Scopes = Scopes

	httpClient, err := cfg.Client(ctx)
	if err != nil {
		return nil, err
	}

	return newClient(ctx, append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)...)
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{
		svc:    svc,
		logger: logging.WithService(slog.Default(), "sheets"),
	}, nil
}

// GetValues returns a range of values from a spreadsheet. readRange is in
// A1 notation. A nil opts applies the defaults.
func (c *Client) GetValues(ctx context.Context, spreadsheetID, readRange string, opts *ValueOptions) (*sheets.ValueRange, error) {
	if opts == nil {
		opts = &ValueOptions{}
	}
	if opts.MajorDimension == "" {
		opts.MajorDimension = DefaultMajorDimension
	}
	if opts.ValueRenderOption == "" {
		opts.ValueRenderOption = DefaultValueRenderOption
	}

	values, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).
		MajorDimension(opts.MajorDimension).
		ValueRenderOption(opts.ValueRenderOption).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get values: %w", err)
	}

	c.logger.Debug("values read", logging.Operation("spreadsheets.values.get"),
		logging.Spreadsheet(spreadsheetID), slog.String("range", readRange))
	return values, nil
}
