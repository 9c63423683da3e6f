package main

import (
	"fmt"
	"os"

	"github.com/shubhgupta/shubh-dev/internal/api"
	"github.com/shubhgupta/shubh-dev/internal/blog"
	"github.com/shubhgupta/shubh-dev/internal/chat"
	"github.com/shubhgupta/shubh-dev/internal/config"
	"github.com/shubhgupta/shubh-dev/internal/contact"
	"github.com/shubhgupta/shubh-dev/internal/logger"
	"github.com/shubhgupta/shubh-dev/internal/store"
	"github.com/shubhgupta/shubh-dev/internal/technews"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	log, err := logger.New(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Error("opening store failed", logger.Err(err))
		return 1
	}
	defer st.Close()

	if err := st.SeedPosts(blog.MockPosts()); err != nil {
		log.Error("seeding posts failed", logger.Err(err))
		return 1
	}

	// Content strategy is fixed here for the process lifetime: a remote
	// content API when configured, otherwise the local store.
	var blogSvc blog.Service
	if cfg.ContentAPIBaseURL != "" {
		blogSvc = blog.NewService(blog.Config{BaseURL: cfg.ContentAPIBaseURL}, log)
	} else {
		log.Info("content service: using local store")
		blogSvc = store.NewBlogService(st)
	}

	notifier := &contact.Notifier{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		To:   cfg.ToEmail,
	}
	if !notifier.Configured() {
		log.Warn("SMTP credentials not configured, contact notifications disabled")
	}

	gnewsKey := config.GNewsAPIKey()
	if gnewsKey == "" {
		log.Warn("GNEWS_API_KEY not configured, tech news will return errors")
	}
	newsHandler := technews.NewHandler(
		gnewsKey,
		technews.NewCache(),
		technews.NewGNewsClient(gnewsKey),
		log,
	)

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not configured, chat will return setup instructions")
	}
	chatClient := chat.NewClient(cfg.GeminiAPIKey)

	handler := api.NewHandler(blogSvc, st, notifier, chatClient, log)
	admin := api.NewAdmin(cfg.AdminUsername, cfg.AdminPassword, st, log)

	router := api.NewRouter(api.Deps{
		Handler:  handler,
		Admin:    admin,
		TechNews: newsHandler,
		Store:    st,
		Log:      log,
	})

	log.Info("starting server", logger.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("server exited", logger.Err(err))
		return 1
	}
	return 0
}
