package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/encoding"
	"github.com/hfaria/ventura/internal/user"
)

const (
	colName     = "name"
	colEmail    = "email"
	colPassword = "password"
	colRole     = "role"
)

// Row is one parsed account line from the uploaded CSV.
type Row struct {
	Line   int
	Params user.CreateParams
}

// Parse reads a user CSV export. The header row may appear after
// preamble lines; columns are matched by name, case-insensitively.
// Input in UTF-16 or Windows-1252 is transparently decoded.
func Parse(r io.Reader) ([]Row, error) {
	decoded, err := encoding.UTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	idxName, idxEmail, idxPassword, idxRole := -1, -1, -1, -1
	headerFound := false

	var rows []Row

	for line, record := range records {
		if !headerFound {
			for i, col := range record {
				switch strings.ToLower(strings.TrimSpace(col)) {
				case colName:
					idxName = i
				case colEmail:
					idxEmail = i
				case colPassword:
					idxPassword = i
				case colRole:
					idxRole = i
				}
			}

			// Role is optional and defaults per row; the other three
			// columns must all be present before rows are trusted.
			if idxName != -1 && idxEmail != -1 && idxPassword != -1 {
				headerFound = true
			}

			continue
		}

		maxIdx := max(idxName, max(idxEmail, max(idxPassword, idxRole)))
		if len(record) <= maxIdx {
			continue
		}

		email := strings.TrimSpace(record[idxEmail])
		if email == "" {
			continue
		}

		role := auth.RoleInvestor
		if idxRole != -1 {
			if r := strings.TrimSpace(record[idxRole]); r != "" {
				role = auth.Role(r)
			}
		}

		rows = append(rows, Row{
			Line: line + 1,
			Params: user.CreateParams{
				Name:     strings.TrimSpace(record[idxName]),
				Email:    email,
				Password: record[idxPassword],
				Role:     role,
			},
		})
	}

	if !headerFound {
		return nil, fmt.Errorf("no header row with name/email/password columns found")
	}

	return rows, nil
}
