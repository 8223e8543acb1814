package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/internal/httpapi"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP mirror of the grading operations.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve grading results over HTTP",
	Long: `Start an HTTP server that exposes the grading engine as JSON endpoints:

  GET  /healthz
  GET  /v1/jurisdictions?pillar=food_safety
  POST /v1/grade                  {"score": 88, "jurisdiction_id": "riverside"}
  GET  /v1/locations/{id}/score

Lookups are read-only. Pass --record-history to store each graded location lookup
in the grading history like 'placard location'. Unassigned ids are never recorded.
The server stops gracefully on SIGINT or SIGTERM.

Examples:
  placard serve
  placard serve --listen 0.0.0.0:9000
  placard serve --record-history --history-backend postgresql`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		_, _ = fmt.Fprintf(os.Stderr, "🌐 Listening on http://%s\n", cfg.ListenAddr)
		var opts []httpapi.Option
		if cfg.RecordHistory {
			opts = append(opts, httpapi.WithHistory(historyManager))
		}
		if err := httpapi.New(engine, opts...).ListenAndServe(ctx, cfg.ListenAddr); err != nil {
			contract.LogFatal("HTTP server failed", err)
		}
	},
}
