package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/imsidplayer/sidratings/internal/rating"
	"github.com/olekukonko/tablewriter"
)

// maxStars caps the star column so oversized ratings stay on one line
const maxStars = 10

// Printer writes the progress messages an operator reads while a
// migration runs.
type Printer struct {
	out io.Writer

	green  func(format string, a ...interface{}) string
	yellow func(format string, a ...interface{}) string
	red    func(format string, a ...interface{}) string
	white  func(format string, a ...interface{}) string
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		green:  color.New(color.FgHiGreen).SprintfFunc(),
		yellow: color.New(color.FgYellow).SprintfFunc(),
		red:    color.New(color.FgHiRed).SprintfFunc(),
		white:  color.New(color.FgWhite).SprintfFunc(),
	}
}

// Writer is where the printer writes to.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Section starts a new step of the run, separated by a blank line.
func (p *Printer) Section(icon, format string, a ...any) {
	fmt.Fprintf(p.out, "\n%s %s\n", icon, fmt.Sprintf(format, a...))
}

func (p *Printer) Info(icon, format string, a ...any) {
	fmt.Fprintf(p.out, "%s %s\n", icon, fmt.Sprintf(format, a...))
}

func (p *Printer) Success(format string, a ...any) {
	fmt.Fprintf(p.out, "✅ %s\n", p.green(format, a...))
}

func (p *Printer) Warn(format string, a ...any) {
	fmt.Fprintf(p.out, "⚠️  %s\n", p.yellow(format, a...))
}

func (p *Printer) Error(format string, a ...any) {
	fmt.Fprintf(p.out, "❌ %s\n", p.red(format, a...))
}

func (p *Printer) Hint(format string, a ...any) {
	fmt.Fprintf(p.out, "\n💡 %s\n", fmt.Sprintf(format, a...))
}

// Count formats n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Plural picks the singular or plural noun for n.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Stars renders a rating as a row of stars.
func Stars(r int64) string {
	if r <= 0 {
		return ""
	}
	if r > maxStars {
		return strings.Repeat("⭐", maxStars) + "+"
	}
	return strings.Repeat("⭐", int(r))
}

// Distribution prints how many tracks carry each rating, highest first.
func (p *Printer) Distribution(buckets []rating.Bucket) {
	p.Section("📊", "Rating distribution:")

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Stars", "Rating", "Tracks"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, b := range buckets {
		table.Append([]string{
			Stars(b.Rating),
			humanize.Comma(b.Rating),
			Count(b.Tracks),
		})
	}
	table.Render()
}

// Row is one line of a summary table.
type Row struct {
	Label string
	Value string
}

// Summary prints the closing recap of a run.
func (p *Printer) Summary(rows []Row) {
	p.Section("📝", "Summary:")

	table := tablewriter.NewWriter(p.out)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnSeparator(":")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rows {
		table.Append([]string{p.white("%s", r.Label), r.Value})
	}
	table.Render()
}

// FileSize formats a byte count for humans.
func FileSize(n int64) string {
	if n < 0 {
		return "unknown size"
	}
	return humanize.Bytes(uint64(n))
}
