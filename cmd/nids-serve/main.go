package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "nids-serve",
	Short: "nids-serve exposes a tile server backed by GCS-hosted NIDS Level III products.",
	Run:   run,
}

var addr string
var bucket string
var logLevel string
var tileSizePx int

func init() {
	cmd.PersistentFlags().StringVarP(&addr, "addr", "a", "0.0.0.0:8082", "listen address")
	cmd.PersistentFlags().StringVarP(&bucket, "bucket", "b", "gcp-public-data-nexrad-l3-realtime", "GCS bucket NIDS objects are read from")
	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level, debug, info, warn, error")
	cmd.PersistentFlags().IntVarP(&tileSizePx, "tile-size", "s", 256, "output tile size in pixels")
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("failed to parse level: %s", err)
	}
	logrus.SetLevel(lvl)

	srv := newServer(bucket, tileSizePx)

	r := mux.NewRouter()
	r.HandleFunc("/tms/{z:[0-9]+}/{x:[0-9]+}/{y:[0-9]+}.png", srv.handleTilePNG)
	r.HandleFunc("/tms/{z:[0-9]+}/{x:[0-9]+}/{y:[0-9]+}.mrmstile", srv.handleTileMRMS)
	r.HandleFunc("/site/{site}/{product}/latest.json", srv.handleLatestMeta)

	httpSrv := &http.Server{
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
		Handler:      r,
	}

	logrus.Infof("listening on %s (bucket=%s)", addr, bucket)
	if err := httpSrv.ListenAndServe(); err != nil {
		logrus.Fatal(err)
	}
}
