package printhost

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/wallplanner/internal/calendar"
	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/layout"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server is the print host HTTP server.
type Server struct {
	resolver *Resolver
	state    StateReader
	metrics  *Metrics
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*Server)

// WithClock overrides the clock used for default year, month and the mini
// calendars' today marker.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func NewServer(state StateReader, metrics *Metrics, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		resolver: NewResolver(state, logger),
		state:    state,
		metrics:  metrics,
		logger:   logger.Named("printhost"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePreview)
	mux.HandleFunc("GET /print", s.handlePrint)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	return s.withRequestLogging(withSecurityHeaders(mux))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("print host listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving print host: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down print host")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down print host: %w", err)
	}
	return nil
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	req := ParseRequest(r.URL.Query(), now)
	settings, source := s.resolver.Resolve(r.Context(), req.Encoded)

	mode := "month"
	title := fmt.Sprintf("%s %d", calendar.MonthName(req.Month), req.Year)
	var pages []layout.Page
	if req.YearMode {
		mode = ModeYear
		title = strconv.Itoa(req.Year)
		pages = layout.RenderYear(req.Year, settings, now)
	} else {
		pages = []layout.Page{layout.Render(req.Year, req.Month, settings, now)}
	}

	if s.metrics != nil {
		s.metrics.RecordPrintJob(mode, source)
	}
	s.logger.Debug("print page",
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.String("mode", mode),
		zap.String("source", string(source)),
	)

	s.writePage(w, pages, layout.HTMLOptions{Title: "Planner " + title, AutoPrint: true})
}

// handlePreview shows the stored session without opening the print dialog,
// with links to the print route.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	year, month := now.Year(), int(now.Month())
	settings := domain.DefaultSettings()

	if s.state != nil {
		if st := s.state.Read(r.Context()); st != nil {
			if len(domain.ValidateSettings(&st.Settings)) == 0 {
				settings = domain.NormalizePaperPreset(st.Settings)
			}
			if st.Year >= minYear && st.Year <= maxYear && st.Month >= 1 && st.Month <= 12 {
				year, month = st.Year, st.Month
			}
		}
	}

	monthLink, err := Link("", year, month, settings, false)
	if err != nil {
		s.fail(w, err)
		return
	}
	yearLink, err := Link("", year, month, settings, true)
	if err != nil {
		s.fail(w, err)
		return
	}

	page := layout.Render(year, month, settings, now)
	s.writePage(w, []layout.Page{page}, layout.HTMLOptions{
		Title: fmt.Sprintf("Planner %s %d", calendar.MonthName(month), year),
		Links: []layout.Link{
			{Label: "Print / Save PDF", Href: monthLink},
			{Label: "Print full year", Href: yearLink},
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) writePage(w http.ResponseWriter, pages []layout.Page, opts layout.HTMLOptions) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := layout.WriteHTML(w, pages, opts); err != nil {
		s.logger.Error("writing planner page", zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("print host request failed", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		latency := time.Since(start)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		if s.metrics != nil {
			s.metrics.RecordRequest(r.Method, route, strconv.Itoa(rec.status), latency)
		}
		s.logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", latency),
			zap.String("client_ip", r.RemoteAddr),
		)
	})
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
