// Package web exposes the spreadsheet import endpoint and the read-only
// record views used by the dashboard.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"buildtrack/config"
	"buildtrack/entity"
	"buildtrack/importer"
	"buildtrack/storage"
)

const importSuccessMessage = "Data imported successfully"

var allowedUploadExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

type Server struct {
	store    storage.Store
	importer *importer.Importer
	cfg      config.ServerConfig
	logger   *zap.Logger
	limiter  *rate.Limiter
	router   chi.Router
}

type importResponse struct {
	Success bool                            `json:"success"`
	Message string                          `json:"message"`
	Results map[entity.Kind][]entity.Record `json:"results"`
	Errors  []string                        `json:"errors,omitempty"`
	Summary map[entity.Kind]int             `json:"summary"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type recordsResponse struct {
	Kind    entity.Kind      `json:"kind"`
	Count   int              `json:"count"`
	Records []map[string]any `json:"records"`
}

func NewServer(store storage.Store, cfg config.Config, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	server := &Server{
		store: store,
		importer: importer.New(store, importer.Options{
			ContinueOnRowError: cfg.Import.ContinueOnRowError,
			UseSourceIDs:       cfg.Import.UseSourceIDs,
		}, importer.WithLogger(logger.Named("importer"))),
		cfg:     cfg.Server,
		logger:  logger,
		limiter: newImportLimiter(cfg.Server),
	}

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(server.logRequests)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/health", server.handleHealth)
	router.Route("/api", func(r chi.Router) {
		r.Post("/import", server.handleAPIImport)
		r.Get("/records/{kind}", server.handleAPIRecords)
		r.Get("/summary", server.handleAPISummary)
	})
	server.router = router

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAPIImport(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many import requests, please retry shortly"})
		return
	}

	maxBytes := s.maxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "File too large",
				Details: fmt.Sprintf("uploads are limited to %s", humanize.IBytes(uint64(maxBytes))),
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid upload", Details: err.Error()})
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No file uploaded"})
		return
	}
	defer file.Close()

	filename := filepath.Base(strings.TrimSpace(header.Filename))
	if !allowedUploadExtensions[strings.ToLower(filepath.Ext(filename))] {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid file type. Only .xlsx and .xls files are allowed"})
		return
	}

	reader, err := importer.ReaderForFilename(filename)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid file type. Only .xlsx and .xls files are allowed"})
		return
	}

	workbook, err := reader.Read(filename, file)
	if err != nil {
		s.logger.Error("read uploaded workbook", zap.String("file", filename), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to import data", Details: err.Error()})
		return
	}

	result, err := s.importer.Run(r.Context(), workbook)
	if err != nil {
		s.logger.Error("import workbook", zap.String("file", filename), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to import data", Details: err.Error()})
		return
	}

	s.logger.Info("import finished",
		zap.String("file", filename),
		zap.Int("records", result.Count()),
		zap.Int("sheet_errors", len(result.Errors)),
		zap.Int("sheets_skipped", result.SheetsSkipped),
	)
	writeJSON(w, http.StatusOK, newImportResponse(result))
}

func newImportResponse(result *importer.Result) importResponse {
	results := make(map[entity.Kind][]entity.Record, len(result.Imported))
	for kind := range result.Imported {
		results[kind] = result.Records[kind]
	}
	return importResponse{
		Success: true,
		Message: importSuccessMessage,
		Results: results,
		Errors:  result.Errors,
		Summary: result.Summary(),
	}
}

func (s *Server) handleAPIRecords(w http.ResponseWriter, r *http.Request) {
	kind, ok := entity.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Unknown record kind", Details: chi.URLParam(r, "kind")})
		return
	}

	records, err := s.store.List(r.Context(), kind)
	if err != nil {
		s.logger.Error("list records", zap.String("kind", string(kind)), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load records", Details: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, recordsResponse{Kind: kind, Count: len(records), Records: records})
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	summary, err := storage.Summary(r.Context(), s.store)
	if err != nil {
		s.logger.Error("summarize records", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load summary", Details: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			s.logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(started)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

// newImportLimiter leaves imports unthrottled when no rate is configured.
func newImportLimiter(cfg config.ServerConfig) *rate.Limiter {
	if cfg.ImportRatePerSec <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.ImportBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.ImportRatePerSec), burst)
}

func (s *Server) maxUploadBytes() int64 {
	if s.cfg.MaxUploadMB <= 0 {
		return 32 << 20
	}
	return s.cfg.MaxUploadBytes()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
