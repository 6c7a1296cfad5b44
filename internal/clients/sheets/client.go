package sheets

import (
	"context"
	"fmt"

	"reception-server/internal/observability"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Credentials holds the service-account identity used to write the ledger.
type Credentials struct {
	ClientEmail string
	PrivateKey  string
}

// Client appends rows to a single Google spreadsheet.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *observability.Logger
}

func NewClient(ctx context.Context, creds Credentials, spreadsheetID string, logger *observability.Logger) (*Client, error) {
	if creds.ClientEmail == "" || creds.PrivateKey == "" {
		return nil, fmt.Errorf("service account credentials are required")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	conf := &jwt.Config{
		Email:      creds.ClientEmail,
		PrivateKey: []byte(creds.PrivateKey),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRow appends a single row to the given A1-notation range.
func (c *Client) AppendRow(ctx context.Context, sheetRange string, row []interface{}) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "sheet_range", Value: sheetRange},
	)

	valueRange := &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, sheetRange, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		c.logger.Error(ctx, "failed to append row to sheet", err)
		return fmt.Errorf("failed to append row: %w", err)
	}

	c.logger.Info(ctx, "row appended to sheet")
	return nil
}
