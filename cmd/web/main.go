package main

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/scores"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var pageTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(htmlPage))

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "polyroids-web",
	})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	cfg, err := config.Load(config.GetEnv("POLYROIDS_CONFIG", ""))
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	ledger, closeLedger, err := scores.Open(cfg.Ledger.Backend, cfg.Ledger.Path, cfg.Ledger.Capacity, logger)
	if ledger == nil {
		logger.Fatal("cannot open ledger", "error", err)
	}
	defer closeLedger()

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, newHandler(ledger, sshHost, logger)); err != nil {
		logger.Fatal("server error", "error", err)
	}
}

// newHandler serves the leaderboard page and its JSON feed. The ledger is
// reloaded on every request since games in other processes write it.
func newHandler(ledger *scores.Ledger, sshHost string, logger *log.Logger) http.Handler {
	records := func() []scores.Record {
		if err := ledger.Load(); err != nil {
			logger.Warn("ledger reload failed, serving last known records", "error", err)
		}
		return ledger.Records()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct {
			SSHHost string
			Records []scores.Record
		}{sshHost, records()}
		if err := pageTmpl.Execute(w, data); err != nil {
			logger.Error("render page", "error", err)
		}
	})
	mux.HandleFunc("GET /scores.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		type entry struct {
			Rank  int    `json:"rank"`
			Name  string `json:"name"`
			Score int    `json:"score"`
		}
		recs := records()
		out := make([]entry, len(recs))
		for i, rec := range recs {
			out[i] = entry{Rank: i + 1, Name: rec.Name, Score: rec.Score}
		}
		if err := json.NewEncoder(w).Encode(out); err != nil {
			logger.Error("encode scores", "error", err)
		}
	})
	return mux
}
