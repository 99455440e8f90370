package dash

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	charts "github.com/midbel/opscharts"
	"github.com/midbel/opscharts/draw"
)

const (
	incomeCSV = `year,salary,transfers
2019,100,20
2020,,
2021,300,
`
	assessmentCSV = `cycle;rating
2;3
1;4
3;n/a
`
	lineCSV = `x,rain,river
0,1,10
1,,12
2,3,
3,4,15
`
	gaugeCSV = `x,level,gauge
0,100,
1,,
2,200,
`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return file
}

func writeWorkbook(t *testing.T, dir, name string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("data"); err != nil {
		t.Fatal(err)
	}
	rows := [][]any{
		{"date", "people"},
		{"15/01/2020", 10},
		{"10/02/2020", 20},
		{"12/01/2021", 30},
		{"05/01/2022", 40},
		{"05/03/2022", ""},
		{"07/04/2022", 50},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("data", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	file := filepath.Join(dir, name)
	if err := f.SaveAs(file); err != nil {
		t.Fatal(err)
	}
	return file
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReadCSV(t *testing.T) {
	tab, err := readCSV(strings.NewReader(assessmentCSV), ";")
	if err != nil {
		t.Fatal(err)
	}
	if len(tab.Header) != 2 || len(tab.Rows) != 3 {
		t.Fatalf("table mismatched! got %d columns and %d rows", len(tab.Header), len(tab.Rows))
	}
	if _, err := readCSV(strings.NewReader(""), ","); err == nil {
		t.Errorf("empty source should be rejected")
	}
}

func TestTableIndex(t *testing.T) {
	tab := Table{
		Header: []string{"Date", " People "},
	}
	data := []struct {
		Name string
		Want int
		Fail bool
	}{
		{Name: "date", Want: 0},
		{Name: "PEOPLE", Want: 1},
		{Name: "1", Want: 1},
		{Name: "2", Fail: true},
		{Name: "unknown", Fail: true},
	}
	for _, d := range data {
		got, err := tab.Index(d.Name)
		if d.Fail {
			if !errors.Is(err, ErrIndex) {
				t.Errorf("%s: invalid index expected! got %v", d.Name, err)
			}
			continue
		}
		if err != nil || got != d.Want {
			t.Errorf("%s: index mismatched! want %d, got %d (%v)", d.Name, d.Want, got, err)
		}
	}
}

func TestSelector(t *testing.T) {
	tab := Table{
		Header: []string{"a", "b", "c"},
	}
	sum, err := tab.Selector(Names{"a", "c"})
	if err != nil {
		t.Fatal(err)
	}
	data := []struct {
		Row  []string
		Want float64
		Ok   bool
	}{
		{Row: []string{"1", "x", "2"}, Want: 3, Ok: true},
		{Row: []string{"1", "x", ""}, Want: 1, Ok: true},
		{Row: []string{"", "x", "n/a"}},
		{Row: []string{"4"}, Want: 4, Ok: true},
	}
	for _, d := range data {
		got, ok := sum.Select(d.Row).Get()
		if ok != d.Ok || got != d.Want {
			t.Errorf("%v: sum mismatched! want %f (%t), got %f (%t)", d.Row, d.Want, d.Ok, got, ok)
		}
	}
	if _, err := tab.Selector(nil); !errors.Is(err, ErrColumn) {
		t.Errorf("selector without column should fail! got %v", err)
	}
	if _, err := tab.Selector(Names{"z"}); !errors.Is(err, ErrIndex) {
		t.Errorf("selector with unknown column should fail! got %v", err)
	}
}

func TestLoadTableSheet(t *testing.T) {
	var (
		dir  = t.TempDir()
		file = writeWorkbook(t, dir, "floods.xlsx")
	)
	tab, err := LoadTable(context.Background(), Chart{Source: file, Sheet: "data"})
	if err != nil {
		t.Fatal(err)
	}
	if len(tab.Header) != 2 || tab.Header[1] != "people" {
		t.Errorf("header mismatched! got %v", tab.Header)
	}
	if len(tab.Rows) != 6 {
		t.Errorf("expected 6 rows, got %d", len(tab.Rows))
	}
	if _, err := LoadTable(context.Background(), Chart{Source: file, Sheet: "unknown"}); err == nil {
		t.Errorf("unknown sheet should be rejected")
	}
}

func TestLoadTableRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/income.csv" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, incomeCSV)
	}))
	defer srv.Close()

	tab, err := LoadTable(context.Background(), Chart{Source: srv.URL + "/income.csv"})
	if err != nil {
		t.Fatal(err)
	}
	if len(tab.Rows) != 3 {
		t.Errorf("expected 3 rows, got %d", len(tab.Rows))
	}
	if _, err := LoadTable(context.Background(), Chart{Source: srv.URL + "/missing.csv"}); err == nil {
		t.Errorf("not found source should be rejected")
	}
}

func TestRenderChart(t *testing.T) {
	var (
		dir = t.TempDir()
		d   = Default()
	)
	data := []struct {
		Name     string
		Chart    Chart
		Points   int
		Segments int
		Output   string
		YDomain  charts.Domain
	}{
		{
			Name: "income",
			Chart: Chart{
				Name:    "income",
				Kind:    KindIncome,
				Source:  writeFile(t, dir, "income.csv", incomeCSV),
				Columns: Columns{Year: "year", Value: Names{"salary", "transfers"}},
			},
			Points:   2,
			Segments: 2,
			Output:   "<path",
		},
		{
			Name: "assessment",
			Chart: Chart{
				Name:      "cycles",
				Kind:      KindAssessment,
				Source:    writeFile(t, dir, "cycles.csv", assessmentCSV),
				Delimiter: ";",
				Columns:   Columns{Cycle: "cycle", Value: Names{"rating"}},
				Format:    FormatHTML,
			},
			Points:   2,
			Segments: 1,
			Output:   "Cycle 3",
		},
		{
			Name: "line",
			Chart: Chart{
				Name:    "levels",
				Kind:    KindLine,
				Source:  writeFile(t, dir, "levels.csv", lineCSV),
				Columns: Columns{X: "x", Value: Names{"rain", "river"}},
			},
			Points:   6,
			Segments: 4,
			Output:   "<path",
		},
		{
			Name: "line-empty-column",
			Chart: Chart{
				Name:    "gauges",
				Kind:    KindLine,
				Source:  writeFile(t, dir, "gauges.csv", gaugeCSV),
				Columns: Columns{X: "x", Value: Names{"level", "gauge"}},
			},
			Points:   2,
			Segments: 2,
			Output:   "<path",
			YDomain:  charts.NumberDomain(100, 200),
		},
		{
			Name: "hazard",
			Chart: Chart{
				Name:       "floods",
				Kind:       KindHazard,
				Source:     writeWorkbook(t, dir, "floods.xlsx"),
				Sheet:      "data",
				TimeFormat: "%d/%m/%Y",
				Columns:    Columns{Date: "date", Value: Names{"people"}},
				Y:          Axis{Scale: "cbrt"},
			},
			Output: "<path",
		},
	}
	for _, x := range data {
		t.Run(x.Name, func(t *testing.T) {
			var buf bytes.Buffer
			p, err := RenderChart(context.Background(), d, x.Chart, &buf)
			if err != nil {
				t.Fatal(err)
			}
			if x.Points > 0 && p.Points() != x.Points {
				t.Errorf("points mismatched! want %d, got %d", x.Points, p.Points())
			}
			if x.Segments > 0 && p.Segments() != x.Segments {
				t.Errorf("segments mismatched! want %d, got %d", x.Segments, p.Segments())
			}
			if p.Segments() == 0 {
				t.Errorf("chart without geometry")
			}
			if x.YDomain != (charts.Domain{}) && p.Layout.YDomain != x.YDomain {
				t.Errorf("y domain mismatched! want %+v, got %+v", x.YDomain, p.Layout.YDomain)
			}
			if !strings.Contains(buf.String(), x.Output) {
				t.Errorf("%q not found in output", x.Output)
			}
		})
	}
}

func TestPlotLabelFormat(t *testing.T) {
	var (
		dir = t.TempDir()
		d   = Default()
	)
	data := []struct {
		Name  string
		Chart Chart
		Want  []string
	}{
		{
			Name: "line",
			Chart: Chart{
				Name:    "levels",
				Kind:    KindLine,
				Source:  writeFile(t, dir, "levels.csv", lineCSV),
				Columns: Columns{X: "x", Value: Names{"rain"}},
				X:       Axis{Format: "day %.0f"},
			},
			Want: []string{"day 0", "day 1", "day 2", "day 3"},
		},
		{
			Name: "assessment",
			Chart: Chart{
				Name:      "cycles",
				Kind:      KindAssessment,
				Source:    writeFile(t, dir, "cycles.csv", assessmentCSV),
				Delimiter: ";",
				Columns:   Columns{Cycle: "cycle", Value: Names{"rating"}},
				X:         Axis{Format: "integer"},
			},
			Want: []string{"0", "1", "2"},
		},
	}
	for _, x := range data {
		t.Run(x.Name, func(t *testing.T) {
			p, err := d.Plot(context.Background(), x.Chart)
			if err != nil {
				t.Fatal(err)
			}
			if strings.Join(p.Labels, ",") != strings.Join(x.Want, ",") {
				t.Errorf("labels mismatched! want %v, got %v", x.Want, p.Labels)
			}
			var buf bytes.Buffer
			if err := p.write(&buf, FormatHTML); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), x.Want[len(x.Want)-1]) {
				t.Errorf("%q not found in html output", x.Want[len(x.Want)-1])
			}
		})
	}
}

func TestCreateFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "partial.svg")
	err := createFile(file, func(w io.Writer) error {
		io.WriteString(w, "<svg")
		return io.ErrShortWrite
	})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("write error expected! got %v", err)
	}
	if _, err := os.Stat(file); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("partial file should be removed! got %v", err)
	}

	err = createFile(file, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf, _ := os.ReadFile(file); string(buf) != "<svg/>" {
		t.Errorf("file content mismatched! got %q", buf)
	}
}

func TestHazardPlot(t *testing.T) {
	var (
		dir = t.TempDir()
		c   = Chart{
			Name:       "floods",
			Kind:       KindHazard,
			Source:     writeWorkbook(t, dir, "floods.xlsx"),
			Sheet:      "data",
			TimeFormat: "%d/%m/%Y",
			Columns:    Columns{Date: "date", Value: Names{"people"}},
		}
		d = Default()
	)
	tab, err := LoadTable(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	p, err := d.plot(c, tab)
	if err != nil {
		t.Fatal(err)
	}
	// two overlays, minimum, maximum, average and prediction
	if len(p.Series) != 6 {
		t.Fatalf("expected 6 series, got %d", len(p.Series))
	}
	if p.Series[0].Name != "2020" || p.Series[5].Name != "2022" {
		t.Errorf("series names mismatched! got %s and %s", p.Series[0].Name, p.Series[5].Name)
	}
	if len(p.Labels) != 12 || p.Labels[0] != "Jan" {
		t.Errorf("month labels mismatched! got %v", p.Labels)
	}
	var band bool
	for _, s := range p.Series {
		if _, ok := s.Renderer.(draw.BandRenderer); ok {
			band = true
		}
	}
	if !band {
		t.Errorf("min/max envelope should be drawn as a band")
	}
}

func TestRender(t *testing.T) {
	var (
		dir = t.TempDir()
		d   = Default()
	)
	d.Output = filepath.Join(dir, "out")
	d.Parallel = 2
	d.Charts = []Chart{
		{
			Name:    "income",
			Kind:    KindIncome,
			Source:  writeFile(t, dir, "income.csv", incomeCSV),
			Columns: Columns{Year: "year", Value: Names{"salary"}},
		},
		{
			Name:    "levels",
			Kind:    KindLine,
			Format:  FormatHTML,
			Source:  writeFile(t, dir, "levels.csv", lineCSV),
			Columns: Columns{X: "x", Value: Names{"rain"}},
		},
	}
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := Render(context.Background(), d, discardLogger()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"income.svg", "levels.html"} {
		buf, err := os.ReadFile(filepath.Join(d.Output, name))
		if err != nil {
			t.Errorf("%s: %s", name, err)
			continue
		}
		if len(buf) == 0 {
			t.Errorf("%s: empty file", name)
		}
	}
}

func TestRenderFailure(t *testing.T) {
	var (
		dir = t.TempDir()
		d   = Default()
	)
	d.Output = dir
	d.Charts = []Chart{
		{
			Name:    "missing",
			Kind:    KindIncome,
			Source:  filepath.Join(dir, "missing.csv"),
			Columns: Columns{Year: "year", Value: Names{"salary"}},
		},
	}
	err := Render(context.Background(), d, discardLogger())
	var ce *ChartError
	if !errors.As(err, &ce) || ce.Chart != "missing" {
		t.Fatalf("chart error expected! got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("cause should be kept! got %v", err)
	}
}

func TestLoad(t *testing.T) {
	var (
		dir  = t.TempDir()
		file = writeFile(t, dir, "dash.yaml", `
output: out
charts:
  - name: income
    kind: income
    source: income.csv
    columns: {year: year, value: salary}
  - name: remote
    kind: income
    source: https://example.org/income.csv
    columns: {year: year, value: salary}
`)
	)
	d, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "out"); d.Output != want {
		t.Errorf("output mismatched! want %s, got %s", want, d.Output)
	}
	if want := filepath.Join(dir, "income.csv"); d.Charts[0].Source != want {
		t.Errorf("source mismatched! want %s, got %s", want, d.Charts[0].Source)
	}
	if d.Charts[1].Source != "https://example.org/income.csv" {
		t.Errorf("remote source should not be resolved! got %s", d.Charts[1].Source)
	}
}
