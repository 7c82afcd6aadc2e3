package renderer

import (
	"github.com/Akaiko1/folder-lister/internal/scanner"
)

const (
	// Tags
	dirTag  = "[DIR] "
	fileTag = "[FILE] "

	// Lines
	PlaceholderLine = "Select a folder to see its contents."
	HeaderPrefix    = "Contents of: "
	SeparatorLine   = "----------------------------------"
	EmptyLine       = "The selected folder is empty."
	FailureLine     = "Failed to load folder contents."
)

// LineRenderer defines how scan outcomes become display lines.
type LineRenderer interface {
	Placeholder() []string
	Render(listing *scanner.Listing) []string
	Failure() []string
}

// StandardRenderer implements LineRenderer with a header, a separator and one tagged line per entry.
type StandardRenderer struct{}

// Placeholder returns the lines shown before anything was listed.
func (r *StandardRenderer) Placeholder() []string {
	return []string{PlaceholderLine}
}

// Render renders a listing as display lines.
func (r *StandardRenderer) Render(listing *scanner.Listing) []string {
	if listing == nil {
		return r.Failure()
	}

	lines := make([]string, 0, len(listing.Entries)+2)
	lines = append(lines, HeaderPrefix+listing.Path, SeparatorLine)

	if listing.IsEmpty() {
		return append(lines, EmptyLine)
	}

	for _, entry := range listing.Entries {
		lines = append(lines, EntryLine(entry))
	}
	return lines
}

// Failure returns the single fallback line shown after a failed scan.
func (r *StandardRenderer) Failure() []string {
	return []string{FailureLine}
}

// EntryLine prefixes an entry name with its kind tag.
func EntryLine(entry scanner.Entry) string {
	if entry.IsDir() {
		return dirTag + entry.Name
	}
	return fileTag + entry.Name
}
