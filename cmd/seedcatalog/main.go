// Command seedcatalog converts a GST rate catalog Excel workbook into a
// SQL seed file for the gst_items table.
//
// The workbook is expected to carry a Goods sheet (HSN-coded items) and
// a Services sheet (SAC-coded items); column layouts are documented on
// the parse functions below.
//
// Usage: go run ./cmd/seedcatalog <workbook.xlsx>
// Output: db/seeds/gst_items.sql
package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

const outPath = "db/seeds/gst_items.sql"

type catalogEntry struct {
	hsnCode  string // empty = NULL
	sacCode  string // empty = NULL
	name     string
	category string
	gstRate  float64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedcatalog <workbook.xlsx>")
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	seen := make(map[string]bool)
	var entries []catalogEntry

	goods, err := parseGoodsSheet(f, seen)
	if err != nil {
		return fmt.Errorf("parse goods sheet: %w", err)
	}
	entries = append(entries, goods...)
	log.Printf("goods sheet: %d entries", len(goods))

	services, err := parseServicesSheet(f, seen)
	if err != nil {
		return fmt.Errorf("parse services sheet: %w", err)
	}
	entries = append(entries, services...)
	log.Printf("services sheet: %d entries", len(services))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- GST rate catalog seed data generated from Excel.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d total entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseGoodsSheet reads the first sheet.
// Columns: A(0)=HSN code, B(1)=item name, C(2)=category, D(3)=GST rate
// (percentage formatted, e.g. "5%"). Data starts at row index 1.
func parseGoodsSheet(f *excelize.File, seen map[string]bool) ([]catalogEntry, error) {
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	var entries []catalogEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		code := strings.TrimSpace(cellVal(row, 0))
		name := strings.TrimSpace(cellVal(row, 1))
		if code == "" || !isNumeric(code) || name == "" {
			continue
		}
		rates := parseRate(cellVal(row, 3))
		if len(rates) == 0 {
			continue
		}

		entries = addEntry(entries, seen, catalogEntry{
			hsnCode:  code,
			name:     name,
			category: strings.TrimSpace(cellVal(row, 2)),
			gstRate:  rates[0],
		})
	}
	return entries, nil
}

// parseServicesSheet reads the Services sheet when present.
// Columns: A(0)=SAC code, B(1)=service name, C(2)=category, D(3)=GST rate
// (free text like "18%", "Exempt", "5% (without ITC)"). Data starts at
// row index 1. A missing sheet is not an error; many source workbooks
// carry only goods.
func parseServicesSheet(f *excelize.File, seen map[string]bool) ([]catalogEntry, error) {
	rows, err := f.GetRows("Services")
	if err != nil {
		return nil, nil
	}

	var entries []catalogEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		code := strings.TrimSpace(cellVal(row, 0))
		name := strings.TrimSpace(cellVal(row, 1))
		if code == "" || !isNumeric(code) || name == "" {
			continue
		}
		rates := parseRate(cellVal(row, 3))
		if len(rates) == 0 {
			continue
		}

		for _, rate := range rates {
			entries = addEntry(entries, seen, catalogEntry{
				sacCode:  code,
				name:     name,
				category: strings.TrimSpace(cellVal(row, 2)),
				gstRate:  rate,
			})
		}
	}
	return entries, nil
}

// ratePattern matches a number followed by "%".
var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// parseRate extracts GST rate(s) from free-text rate strings.
// Examples:
//
//	"18%"        → [18]
//	"Exempt"     → [0]
//	"12%-18%"    → [12, 18]
func parseRate(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	lower := strings.ToLower(s)
	if lower == "exempt" || lower == "nil" {
		return []float64{0}
	}

	matches := ratePattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[float64]bool)
	var rates []float64
	for _, m := range matches {
		var rate float64
		if _, err := fmt.Sscanf(m[1], "%f", &rate); err == nil && !seen[rate] {
			seen[rate] = true
			rates = append(rates, rate)
		}
	}
	return rates
}

func addEntry(entries []catalogEntry, seen map[string]bool, e catalogEntry) []catalogEntry {
	key := fmt.Sprintf("%s|%s|%s|%.2f", e.hsnCode, e.sacCode, strings.ToLower(e.name), e.gstRate)
	if seen[key] {
		return entries
	}
	seen[key] = true
	return append(entries, e)
}

func writeBatch(out *os.File, batch []catalogEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO gst_items (hsn_code, sac_code, item_name, item_category, gst_rate, cgst_rate, sgst_rate, igst_rate, effective_from) VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}

		fmt.Fprintf(&b, "  (%s, %s, '%s', '%s', %.2f, %.2f, %.2f, %.2f, '2017-07-01')",
			sqlString(e.hsnCode), sqlString(e.sacCode),
			escapeSQL(e.name), escapeSQL(e.category),
			e.gstRate, e.gstRate/2, e.gstRate/2, e.gstRate)
	}

	b.WriteString("\nON CONFLICT (item_name, gst_rate) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func sqlString(s string) string {
	if s == "" {
		return "NULL"
	}
	return fmt.Sprintf("'%s'", escapeSQL(s))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
