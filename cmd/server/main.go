package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"stava/internal/corpus"
	sc "stava/internal/corrector"
	"stava/internal/customdict"
	"stava/internal/server"
	"stava/pkg/options"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[server] .env: %v", err)
	}

	opts := []options.Options{options.WithMaxEditDistance(getEnvInt("MAX_EDIT_DISTANCE", 2))}
	if getEnvBool("DETERMINISTIC_TIES", false) {
		opts = append(opts, options.WithDeterministicTies())
	}
	corrector := sc.NewSpellCorrector(opts...)

	ctx := context.Background()
	if err := corpus.Learn(ctx, corrector, splitList(os.Getenv("DICTIONARY_PATH")), false); err != nil {
		log.Fatalf("init error: %v", err)
	}
	log.Printf("[server] dictionary loaded: %d words", corrector.Model().Len())

	client := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	})
	dict := customdict.New(client, getenv("REDIS_KEY", customdict.DefaultKey))

	var store server.Store = dict
	saved, err := dict.All(ctx)
	if err != nil {
		log.Printf("[server] custom words unavailable, running without persistence: %v", err)
		store = nil
	} else {
		for w, n := range saved {
			corrector.Model().Add(w, n)
		}
		log.Printf("[server] restored %d custom words", len(saved))
	}

	addr := getenv("HTTP_ADDR", ":8080")
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, server.New(corrector, store).Handler()))
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
