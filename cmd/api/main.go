package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/tradewatch/biasalert/internal/config"
	"github.com/tradewatch/biasalert/internal/httpapi"
	"github.com/tradewatch/biasalert/internal/httpapi/middleware"
	"github.com/tradewatch/biasalert/internal/logging"
	"github.com/tradewatch/biasalert/internal/notify"
	"github.com/tradewatch/biasalert/internal/repo/memory"
)

func main() {
	cfg := config.Load()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	history := memory.New(cfg.HistoryLimit)

	client := notify.NewPushover(cfg.PushoverUserKey, cfg.PushoverAPIToken, logger, notify.Config{
		Window:          cfg.DedupWindow,
		RecordAfterSend: cfg.RecordAfterSend,
		Timeout:         cfg.HTTPTimeout,
		History:         history,
	})
	if client == nil {
		log.Fatal("PUSHOVER_USER_KEY / PUSHOVER_API_TOKEN must be set")
	}

	api := httpapi.NewServer(logger, client, history)
	keys := middleware.Keys{
		Public: cfg.PublicAPIKeys,
		Admin:  cfg.AdminAPIKeys,
	}

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router(keys, cfg.PublicRPM, cfg.PublicBurst)); err != nil {
		log.Fatal(err)
	}
}
