package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/vocabtrainer/internal/catalog"
	"github.com/example/vocabtrainer/internal/console"
	"github.com/example/vocabtrainer/internal/notify"
	"github.com/example/vocabtrainer/internal/progress"
	"github.com/example/vocabtrainer/internal/scheduler"
	"github.com/example/vocabtrainer/internal/session"
	"github.com/example/vocabtrainer/internal/storage"
)

func main() {
	// .env is optional; real deployments use environment variables
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	kv, err := storage.Open()
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer kv.Close()

	store, err := progress.Open(kv, time.Now())
	if err != nil {
		log.Fatalf("Failed to load progress: %v", err)
	}

	loader := catalog.NewLoader(kv, "")
	vocab, err := catalog.NewManager(kv, loader)
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}

	manager := session.NewManager(store, scheduler.NewBuilder())

	// Telegram reminders are optional and purely additive
	if os.Getenv("TELEGRAM_BOT_TOKEN") != "" {
		notifier, err := notify.NewTelegram()
		if err != nil {
			log.Printf("Reminders disabled: %v", err)
		} else {
			reminder := scheduler.NewReminder(notifier, func(now time.Time) (int, error) {
				pair := store.AppState().CurrentLanguagePair
				return progress.DueCount(kv, pair, vocab.Words(pair, now), now)
			})
			reminder.Start()
			defer reminder.Stop()
			log.Println("Study reminders enabled")
		}
	}

	ui := console.New(kv, store, vocab, manager, os.Stdin, os.Stdout)
	if err := ui.Run(); err != nil {
		log.Fatalf("Console error: %v", err)
	}

	// Persist the app state once more so a session paused via EOF survives
	if err := store.SaveAppState(); err != nil {
		log.Printf("Failed to save state on exit: %v", err)
	}
}
