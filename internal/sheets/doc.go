// Package sheets provides a client for reading Google Sheets values.
//
// This package wraps the Sheets API (sheets/v4) values-read resource. The
// response is returned exactly as the API delivered it; API errors
// propagate unchanged.
package sheets
