package dash

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table holds the rows of a data source. The first row of the source is used
// as header.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t Table) Index(name string) (int, error) {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < len(t.Header) {
		return i, nil
	}
	return 0, fmt.Errorf("%s: %w", name, ErrIndex)
}

func LoadTable(ctx context.Context, c Chart) (Table, error) {
	r, err := readFrom(ctx, c.Source)
	if err != nil {
		return Table{}, err
	}
	defer r.Close()

	if isSpreadsheet(c.Source) {
		return readSheet(r, c.Sheet)
	}
	delim := c.Delimiter
	if delim == "" {
		delim = DefaultDelim
	}
	return readCSV(r, delim)
}

func readCSV(r io.Reader, delim string) (Table, error) {
	var (
		rs  = csv.NewReader(r)
		tab Table
	)
	rs.Comma = []rune(delim)[0]
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tab, err
		}
		if tab.Header == nil {
			tab.Header = row
			continue
		}
		tab.Rows = append(tab.Rows, row)
	}
	if tab.Header == nil {
		return tab, fmt.Errorf("empty data source")
	}
	return tab, nil
}

func readSheet(r io.Reader, sheet string) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return Table{}, fmt.Errorf("workbook without sheet")
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("%s: empty sheet", sheet)
	}
	tab := Table{
		Header: rows[0],
		Rows:   rows[1:],
	}
	return tab, nil
}

func isSpreadsheet(file string) bool {
	if u, err := url.Parse(file); err == nil && u.Path != "" {
		file = u.Path
	}
	ext := strings.ToLower(filepath.Ext(file))
	return ext == ".xlsx" || ext == ".xlsm"
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func readFrom(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("%s: request does not end with success result code (%d)", location, res.StatusCode)
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}
