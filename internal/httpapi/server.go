package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	apimw "github.com/tradewatch/biasalert/internal/httpapi/middleware"
	"github.com/tradewatch/biasalert/internal/notify"
	"github.com/tradewatch/biasalert/internal/repo"
)

const defaultHistoryPage = 50

type Server struct {
	Logger   *zap.Logger
	Notifier notify.Notifier
	History  repo.AttemptStore
}

func NewServer(l *zap.Logger, n notify.Notifier, h repo.AttemptStore) *Server {
	return &Server{Logger: l, Notifier: n, History: h}
}

func (s *Server) Router(keys apimw.Keys, publicRPM, publicBurst int) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(apimw.RateLimit(publicRPM, publicBurst))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(apimw.RequireAny(keys))
		gr.Get("/api/alerts", s.handleListAttempts)
	})

	r.Group(func(gr chi.Router) {
		gr.Use(apimw.RequireAdmin(keys))
		gr.Post("/api/alerts/bias", s.handleBiasAlert)
		gr.Post("/api/alerts/test", s.handleTestAlert)
		gr.Post("/api/alerts/send", s.handleRawSend)
	})

	return r
}

type biasPayload struct {
	Symbol  string `json:"symbol"`
	Bias    string `json:"bias"`
	Score   int    `json:"score"`
	Details string `json:"details"`
}

func (s *Server) handleBiasAlert(w http.ResponseWriter, r *http.Request) {
	var p biasPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Symbol == "" || p.Bias == "" {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	delivered := s.Notifier.SendBiasAlert(r.Context(), p.Symbol, p.Bias, p.Score, p.Details)

	s.Logger.Info("bias_alert_request",
		zap.String("symbol", p.Symbol),
		zap.String("bias", p.Bias),
		zap.Int("score", p.Score),
		zap.Bool("delivered", delivered),
	)
	writeDelivered(w, delivered)
}

type sendPayload struct {
	Message  string `json:"message"`
	Title    string `json:"title"`
	Priority int    `json:"priority"`
	Sound    string `json:"sound"`
	URL      string `json:"url"`
}

func (s *Server) handleRawSend(w http.ResponseWriter, r *http.Request) {
	var p sendPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Message == "" {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}
	if p.Title == "" {
		p.Title = "Trading Alert"
	}

	delivered := s.Notifier.Send(r.Context(), p.Message, p.Title, p.Priority,
		&notify.SendOptions{Sound: p.Sound, URL: p.URL})

	s.Logger.Info("raw_send_request",
		zap.String("title", p.Title),
		zap.Bool("delivered", delivered),
	)
	writeDelivered(w, delivered)
}

func (s *Server) handleTestAlert(w http.ResponseWriter, r *http.Request) {
	delivered := s.Notifier.SendTestNotification(r.Context())
	s.Logger.Info("test_alert_request", zap.Bool("delivered", delivered))
	writeDelivered(w, delivered)
}

func (s *Server) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryPage
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	attempts, err := s.History.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, "history error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(attempts)
}

func writeDelivered(w http.ResponseWriter, delivered bool) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"delivered": delivered})
}
