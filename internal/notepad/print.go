package notepad

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"
)

const printTemplate = `<html>
  <head>
    <title>Print Notepad</title>
    <style>
      body {
        font-family: Arial, sans-serif;
        line-height: 1.5;
        white-space: pre-wrap;
        padding: 20px;
      }
    </style>
  </head>
  <body>%s</body>
</html>
`

// PrintHTML renders text as a standalone printable page. Newlines become <br>.
func PrintHTML(text string) string {
	body := strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
	return fmt.Sprintf(printTemplate, body)
}

// Viewer opens a file with the host's default application.
type Viewer interface {
	Open(ctx context.Context, target string) error
}

// HTMLPrinter writes the print page to a temp file and opens it in the
// viewer, where the user prints it.
type HTMLPrinter struct {
	Viewer Viewer
	Dir    string // temp dir override; os.TempDir() when empty
}

func (p HTMLPrinter) Print(ctx context.Context, text string) error {
	f, err := os.CreateTemp(p.Dir, "notepad-print-*.html")
	if err != nil {
		return fmt.Errorf("create print file: %w", err)
	}
	if _, err := f.WriteString(PrintHTML(text)); err != nil {
		f.Close()
		return fmt.Errorf("write print file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close print file: %w", err)
	}
	if p.Viewer == nil {
		return nil
	}
	return p.Viewer.Open(ctx, f.Name())
}
