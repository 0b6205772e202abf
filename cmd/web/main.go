package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodger/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	cfg, err := config.Load[config.Web]()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "web"})

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", cfg.SSHDisplayHost)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	// dodger.wasm and wasm_exec.js, see cmd/browser.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	logger.Info("Starting web server", "url", "http://"+addr, "static", cfg.StaticDir)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
