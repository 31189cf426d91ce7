// Package web implements the upload front end: a single page that accepts a
// DOCX document and returns the per-operator CSV bundle as a ZIP download.
package web

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tsawler/docsv/docx"
	"github.com/tsawler/docsv/export"
	"github.com/tsawler/docsv/format"
	"github.com/tsawler/docsv/internal/config"
)

const downloadName = "operator_tables.zip"

// Server handles document uploads and serves exported bundles.
type Server struct {
	cfg *config.Config
	mux *http.ServeMux
}

// NewServer creates a Server for the given configuration.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg: cfg,
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, s)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.renderForm(w, "", http.StatusOK)
	case http.MethodPost:
		s.handleUpload(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleUpload materializes the uploaded document into a per-request scratch
// directory, runs the extraction and archive-mode export, and streams the
// resulting ZIP back. The scratch directory is removed when the handler
// returns, whatever happened.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.cfg.Server.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, _, err := r.FormFile("document")
	if err != nil {
		s.renderForm(w, "Select a DOCX file before submitting.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	scratch, err := os.MkdirTemp("", "docsv-upload-")
	if err != nil {
		log.Printf("creating scratch directory: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(scratch)

	// The client-supplied filename is untrusted; store under a generated
	// name instead.
	docPath := filepath.Join(scratch, uuid.NewString()+".docx")
	if err := saveUpload(file, docPath); err != nil {
		log.Printf("saving upload: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !isDOCX(docPath) {
		s.renderForm(w, "The uploaded file is not a DOCX document.", http.StatusBadRequest)
		return
	}

	tables, err := docx.ExtractTables(docPath)
	switch {
	case errors.Is(err, docx.ErrNotFound):
		s.renderForm(w, "The uploaded file could not be found.", http.StatusBadRequest)
		return
	case errors.Is(err, docx.ErrInvalidFormat):
		s.renderForm(w, "The uploaded file is not a valid DOCX document.", http.StatusBadRequest)
		return
	case err != nil:
		log.Printf("extracting tables: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	archivePath, err := export.ToArchive(tables, s.cfg.ExportOperators(), filepath.Join(scratch, downloadName))
	switch {
	case errors.Is(err, export.ErrNoTables):
		s.renderForm(w, "The document contains no tables with data.", http.StatusUnprocessableEntity)
		return
	case err != nil:
		log.Printf("exporting tables: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	http.ServeFile(w, r, archivePath)
}

// saveUpload writes the uploaded file to path.
func saveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// isDOCX sniffs the stored upload instead of trusting its extension.
func isDOCX(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}

	detected, err := format.DetectFromReader(f, info.Size())
	return err == nil && detected == format.DOCX
}
