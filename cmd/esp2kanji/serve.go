package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	esp2kanji "github.com/takatakatake/go-esp2kanji"
	"github.com/takatakatake/go-esp2kanji/internal/assets"
	"github.com/takatakatake/go-esp2kanji/internal/config"
)

const (
	// maxUploadSize bounds the multipart form, text and rule files included.
	maxUploadSize = 16 << 20 // 16 MiB

	// previewLines caps how much of the result the result page shows inline.
	previewLines = 250

	// resultTTL is how long a stored result stays downloadable.
	resultTTL = time.Hour

	serveReadTimeout     = 30 * time.Second
	serveShutdownTimeout = 10 * time.Second
)

// storedResult is one converted output held for preview and download.
type storedResult struct {
	text    string
	isHTML  bool
	created time.Time
}

// resultStore keeps converted results in memory, keyed by UUID. Entries
// expire after resultTTL; expired entries are pruned on each Put.
type resultStore struct {
	mu      sync.Mutex
	results map[string]storedResult
	now     func() time.Time
}

func newResultStore() *resultStore {
	return &resultStore{
		results: make(map[string]storedResult),
		now:     time.Now,
	}
}

func (s *resultStore) Put(text string, isHTML bool) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.results {
		if s.now().Sub(v.created) > resultTTL {
			delete(s.results, k)
		}
	}
	s.results[id] = storedResult{text: text, isHTML: isHTML, created: s.now()}
	return id
}

func (s *resultStore) Get(id string) (storedResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[id]
	if ok && s.now().Sub(r.created) > resultTTL {
		delete(s.results, id)
		return storedResult{}, false
	}
	return r, ok
}

// server holds the HTTP handlers and their shared state. The shared
// converter serves requests that use the server's default rules; requests
// that upload their own rule file or ask for parallel workers get a
// one-off converter instead.
type server struct {
	shared     CLIConverter
	baseOpts   []esp2kanji.Option
	store      *resultStore
	indexTmpl  *template.Template
	resultTmpl *template.Template
	env        *Environment
}

// runServeCommand starts the web form UI and blocks until interrupted.
func runServeCommand(args []string, env *Environment) int {
	flags, err := parseServeFlags(args)
	if err != nil {
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServe(ctx, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func runServe(ctx context.Context, flags *serveFlags, env *Environment) error {
	cfg, err := loadAndMergeConfig(&flags.common, func(c *config.Config) {
		mergeServeFlags(flags, c)
	})
	if err != nil {
		return err
	}

	opts, err := converterOptions(cfg)
	if err != nil {
		return err
	}

	shared, err := esp2kanji.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer shared.Close()

	srv, err := newServer(shared, opts, env)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:        cfg.Serve.Addr,
		Handler:     srv.routes(),
		ReadTimeout: serveReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(env.Stdout, "listening on %s\n", cfg.Serve.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// mergeServeFlags overlays non-empty serve flags onto the config.
func mergeServeFlags(flags *serveFlags, cfg *config.Config) {
	if flags.addr != "" {
		cfg.Serve.Addr = flags.addr
	}
	if flags.rules != "" {
		cfg.Rules = flags.rules
	}
	if flags.skipPlaceholders != "" {
		cfg.Placeholders.Skip = flags.skipPlaceholders
	}
	if flags.localizedPlaceholders != "" {
		cfg.Placeholders.Localized = flags.localizedPlaceholders
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
}

func newServer(shared CLIConverter, baseOpts []esp2kanji.Option, env *Environment) (*server, error) {
	loader := assets.NewEmbeddedLoader()

	indexSrc, err := loader.LoadTemplate("index")
	if err != nil {
		return nil, err
	}
	indexTmpl, err := template.New("index").Parse(indexSrc)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}

	resultSrc, err := loader.LoadTemplate("result")
	if err != nil {
		return nil, err
	}
	resultTmpl, err := template.New("result").Parse(resultSrc)
	if err != nil {
		return nil, fmt.Errorf("parsing result template: %w", err)
	}

	return &server{
		shared:     shared,
		baseOpts:   baseOpts,
		store:      newResultStore(),
		indexTmpl:  indexTmpl,
		resultTmpl: resultTmpl,
		env:        env,
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/convert", s.handleConvert)
	r.Get("/preview/{id}", s.handlePreview)
	r.Get("/download/{id}", s.handleDownload)
	r.Get("/sample/rules", s.handleSampleRules)
	return r
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Text      string
		Formats   []string
		Notations []string
	}{
		Formats: []string{
			esp2kanji.FormatRubyHTML,
			esp2kanji.FormatHTML,
			esp2kanji.FormatParentheses,
			esp2kanji.FormatText,
		},
		Notations: []string{
			esp2kanji.NotationCircumflex,
			esp2kanji.NotationX,
			esp2kanji.NotationCaret,
		},
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.indexTmpl.Execute(w, data); err != nil {
		fmt.Fprintf(s.env.Stderr, "rendering index: %v\n", err)
	}
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "form too large or malformed", http.StatusBadRequest)
		return
	}

	text, err := s.formText(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(text) == "" {
		http.Error(w, "no input text", http.StatusBadRequest)
		return
	}

	format := r.FormValue("format")
	if !esp2kanji.IsValidFormat(format) {
		http.Error(w, "unknown format", http.StatusBadRequest)
		return
	}
	notation := r.FormValue("notation")
	if !esp2kanji.IsValidNotation(notation) {
		http.Error(w, "unknown notation", http.StatusBadRequest)
		return
	}

	conv, cleanup, err := s.requestConverter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer cleanup()

	result, err := conv.Convert(r.Context(), esp2kanji.Input{
		Text:     text,
		Format:   format,
		Notation: notation,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	isHTML := esp2kanji.IsHTMLFormat(format)
	id := s.store.Put(result.Text, isHTML)

	preview, truncated := truncateLines(result.Text, previewLines)
	data := struct {
		ID        string
		Preview   string
		IsHTML    bool
		Truncated bool
	}{ID: id, Preview: preview, IsHTML: isHTML, Truncated: truncated}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.resultTmpl.Execute(w, data); err != nil {
		fmt.Fprintf(s.env.Stderr, "rendering result: %v\n", err)
	}
}

// formText returns the pasted text, or the uploaded text file when one was
// provided. The upload wins so users can paste notes and still convert a
// file.
func (s *server) formText(r *http.Request) (string, error) {
	file, _, err := r.FormFile("textfile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return r.FormValue("text"), nil
		}
		return "", fmt.Errorf("reading text upload: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return "", fmt.Errorf("reading text upload: %w", err)
	}
	return strings.TrimPrefix(string(content), "\uFEFF"), nil
}

// requestConverter picks the converter for one request. Uploaded rules or
// a parallel request need their own converter; everything else shares.
func (s *server) requestConverter(r *http.Request) (CLIConverter, func(), error) {
	opts := make([]esp2kanji.Option, len(s.baseOpts))
	copy(opts, s.baseOpts)
	dedicated := false

	if file, _, err := r.FormFile("rules"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
		if err != nil {
			return nil, nil, fmt.Errorf("reading rule upload: %w", err)
		}
		rules, err := esp2kanji.ParseRuleSet(data)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, esp2kanji.WithRules(rules))
		dedicated = true
	} else if !errors.Is(err, http.ErrMissingFile) {
		return nil, nil, fmt.Errorf("reading rule upload: %w", err)
	}

	if r.FormValue("parallel") != "" {
		workers, err := strconv.Atoi(r.FormValue("workers"))
		if err != nil || workers < 2 || workers > esp2kanji.MaxWorkers {
			return nil, nil, fmt.Errorf("%w: %q", esp2kanji.ErrInvalidWorkers, r.FormValue("workers"))
		}
		opts = append(opts, esp2kanji.WithWorkers(workers))
		dedicated = true
	}

	if !dedicated {
		return s.shared, func() {}, nil
	}

	conv, err := esp2kanji.NewConverter(opts...)
	if err != nil {
		return nil, nil, err
	}
	return conv, func() { _ = conv.Close() }, nil
}

func (s *server) handlePreview(w http.ResponseWriter, r *http.Request) {
	res, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if res.isHTML {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	_, _ = io.WriteString(w, res.text)
}

func (s *server) handleDownload(w http.ResponseWriter, r *http.Request) {
	res, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	name := "result.txt"
	contentType := "text/plain; charset=utf-8"
	if res.isHTML {
		name = "result.html"
		contentType = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = io.WriteString(w, res.text)
}

func (s *server) handleSampleRules(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="rules.json"`)
	_, _ = w.Write(assets.DefaultRules())
}

// truncateLines returns at most n lines of text and whether it was cut.
func truncateLines(text string, n int) (string, bool) {
	count := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		count++
		if count == n {
			return text[:i], true
		}
	}
	return text, false
}
