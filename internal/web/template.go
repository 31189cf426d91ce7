package web

import (
	"html/template"
	"log"
	"net/http"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>docsv - DOCX table export</title>
</head>
<body>
  <h1>DOCX table export</h1>
  <p>Upload a DOCX document; its tables come back as one CSV set per operator, bundled in a ZIP file.</p>
{{if .Error}}  <p class="flash">{{.Error}}</p>
{{end}}  <form method="post" enctype="multipart/form-data" action="/">
    <input type="file" name="document" accept=".docx">
    <button type="submit">Export tables</button>
  </form>
</body>
</html>
`))

// renderForm writes the upload page, optionally with a flash message.
func (s *Server) renderForm(w http.ResponseWriter, flash string, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, struct{ Error string }{Error: flash}); err != nil {
		log.Printf("rendering index: %v", err)
	}
}
