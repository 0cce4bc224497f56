package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/paydesk/paydesk/internal/model"
)

// printableTemplate is a standalone document ready for the browser's
// print dialog.
var printableTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.ID}}</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 2em auto; color: #222; }
h1 { text-align: center; font-size: 1.4em; }
p.meta { text-align: center; color: #777; font-size: 0.85em; }
table { width: 100%; border-collapse: collapse; margin-top: 1.5em; }
td { padding: 0.6em 0.4em; border-bottom: 1px solid #ddd; }
td.label { font-weight: bold; width: 40%; }
p.footer { text-align: center; color: #777; font-size: 0.8em; margin-top: 2.5em; }
</style>
</head>
<body onload="window.print()">
<h1>Transaction Receipt</h1>
<p class="meta">Generated {{.Generated}}</p>
<table>
{{range .Fields}}<tr><td class="label">{{index . 0}}</td><td>{{index . 1}}</td></tr>
{{end}}</table>
<p class="footer">This is a computer generated receipt and does not require a signature.</p>
</body>
</html>
`))

// WritePrintable writes the receipt as a self-printing HTML document
// under dir and returns the written path. Opening it in a browser
// invokes the print dialog.
func WritePrintable(dir string, tx model.Transaction, now time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("Receipt_%s_%s.html", tx.ID, now.Format("2006-01-02")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create printable receipt: %w", err)
	}
	defer func() { _ = f.Close() }()

	data := struct {
		ID        string
		Generated string
		Fields    [][2]string
	}{
		ID:        tx.ID,
		Generated: now.Format("02 Jan 2006 15:04"),
		Fields:    receiptFields(tx),
	}
	if err := printableTemplate.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render printable receipt: %w", err)
	}

	return path, nil
}
