package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/withsocio/socio-backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

func seedExportRepo(t *testing.T) *fakeApplicationRepo {
	t.Helper()
	repo := &fakeApplicationRepo{}

	design := "Design"
	marketing := "Marketing"
	tricky := `He said "hi", twice`

	apps := []*domain.Application{
		{
			FullName:     "Jane Doe",
			Email:        "jane@x.com",
			RoleInterest: "Design",
			Preference1:  &design,
			WhyConsider:  "line one\nline two",
		},
		{
			FullName:     tricky,
			Email:        "bob@x.com",
			RoleInterest: "Marketing",
			Preference2:  &design,
		},
		{
			FullName:     "Carol",
			Email:        "carol@x.com",
			RoleInterest: "Content",
			Preference1:  &marketing,
			Status:       domain.StatusShortlisted,
		},
	}
	for _, a := range apps {
		if _, err := repo.Create(a); err != nil {
			t.Fatal(err)
		}
	}
	return repo
}

func TestExportCSVPreferenceFilter(t *testing.T) {
	svc := NewExportService(seedExportRepo(t))

	filename, data, err := svc.ExportCSV("Design")
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if filename != "applicants_design.csv" {
		t.Fatalf("filename = %q", filename)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("re-parsing the CSV: %v", err)
	}
	if len(records) != 3 { // header + the two Design rows
		t.Fatalf("records = %d, want 3", len(records))
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, row := range records[1:] {
		p1 := row[cols["preference1"]]
		p2 := row[cols["preference2"]]
		if p1 != "Design" && p2 != "Design" {
			t.Fatalf("row has neither preference equal to Design: %v", row)
		}
	}
}

func TestExportCSVQuotingRoundTrip(t *testing.T) {
	svc := NewExportService(seedExportRepo(t))

	_, data, err := svc.ExportCSV("Design")
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}

	var got []string
	for _, row := range records[1:] {
		got = append(got, row[cols["full_name"]])
	}
	// rows come back newest first
	want := []string{`He said "hi", twice`, "Jane Doe"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("full_name[%d] = %q, want %q recovered exactly", i, got[i], want[i])
		}
	}

	// newlines are collapsed to spaces before quoting
	for _, row := range records[1:] {
		why := row[cols["why_consider"]]
		if strings.Contains(why, "\n") {
			t.Fatalf("newline survived in %q", why)
		}
	}
	if records[2][cols["why_consider"]] != "line one line two" {
		t.Fatalf("why_consider = %q", records[2][cols["why_consider"]])
	}
}

func TestExportCSVEveryFieldQuoted(t *testing.T) {
	svc := NewExportService(seedExportRepo(t))

	_, data, err := svc.ExportCSV("Design")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Fatalf("data line not fully quoted: %q", line)
		}
	}
}

func TestExportXLSX(t *testing.T) {
	svc := NewExportService(seedExportRepo(t))

	filename, data, err := svc.ExportXLSX()
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if filename != "applicants_export.xlsx" {
		t.Fatalf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Applicants")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 { // header + 3 applicants, no preference filter
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	header := rows[0]
	if header[0] != "Name" || header[1] != "Applied Role" || header[2] != "Status" {
		t.Fatalf("header = %v", header)
	}
	// newest first
	if rows[1][0] != "Carol" || rows[1][2] != domain.StatusShortlisted {
		t.Fatalf("first data row = %v", rows[1])
	}
}
