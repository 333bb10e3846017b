package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vokaflow/faqbot/internal/chat"
	"github.com/vokaflow/faqbot/internal/config"
	"github.com/vokaflow/faqbot/internal/conversation"
	"github.com/vokaflow/faqbot/internal/db"
	"github.com/vokaflow/faqbot/internal/faq"
	"github.com/vokaflow/faqbot/internal/httpapi"
	"github.com/vokaflow/faqbot/internal/store/rabbitmq"
	"github.com/vokaflow/faqbot/internal/store/redisstore"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gdb.AutoMigrate(&faq.Entry{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	faqRepo := faq.NewRepo(gdb)
	faqSvc := faq.NewService(faqRepo)

	rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer rds.Close()
	if err := rds.Ping(ctx); err != nil {
		log.Fatalf("redis ping: %v", err)
	}

	var events chat.Events
	if cfg.RabbitEnabled {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			log.Fatalf("rabbit connect: %v", err)
		}
		defer pub.Close()
		events = pub
	}

	bot := chat.NewBot(faqSvc, rds, events, cfg.ChatSessionKey)
	ctrl := conversation.NewController(bot, faqSvc)
	if err := ctrl.Mount(ctx); err != nil {
		log.Fatalf("mount conversation: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(ctrl, faqSvc),
	}

	go func() {
		log.Printf("server started addr=%s db=%s", cfg.HTTPAddr, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
