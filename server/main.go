package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	_ = godotenv.Load()
	addr := getEnv("JTDINFER_ADDR", ":8080")
	level := getEnv("JTDINFER_LOG", "info")
	logFile := getEnv("JTDINFER_LOG_FILE", "")

	if err := setupLogging(level, logFile); err != nil {
		slog.Error("could not init logging", "err", err)
		return
	}

	s := newServer()
	s.setupRoutes()

	slog.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, s.router); err != nil {
		slog.Error("server stopped", "err", err)
	}
}

func setupLogging(level, file string) error {
	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(level))

	var w io.Writer = os.Stderr
	if file != "" {
		w = &lumberjack.Logger{Filename: file, MaxSize: 50, MaxBackups: 3}
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h))
	return err
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
