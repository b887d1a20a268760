// Command auto_delete performs a single auto-delete run and prints a summary.
// Use it from an external scheduler when the in-process cron is disabled.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"officehub-be/internal/bootstrap"
	"officehub-be/internal/config"
	"officehub-be/internal/service"
	"officehub-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run())
}

func run() int {
	ignoreLock := flag.Bool("ignore-lock", false, "run even if another instance holds the run lock")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Open(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	color.Cyan("🗑  Starting auto delete run\n")

	var summary service.RunSummary
	if *ignoreLock {
		summary = container.AutoDeleteService.Run(ctx)
	} else {
		var ran bool
		summary, ran = container.Scheduler.RunOnce(ctx)
		if !ran {
			color.Yellow("Skipped: run lock held by another instance or unavailable")
			return 0
		}
	}

	printSummary(summary)
	if len(summary.FailedUsers) > 0 || len(summary.FailedItems) > 0 {
		return 1
	}
	return 0
}

func printSummary(s service.RunSummary) {
	color.Green("Finished in %s", s.FinishedAt.Sub(s.StartedAt))
	color.White("Users scanned:  %d", s.UsersScanned)
	color.White("Users skipped:  %d (auto delete disabled)", len(s.SkippedUsers))
	color.Green("Items deleted:  %d", s.TotalDeleted)

	for userId, n := range s.PerUser {
		if n > 0 {
			color.White("  %s  %d", userId, n)
		}
	}

	if len(s.FailedUsers) > 0 {
		color.Red("Users failed:   %d", len(s.FailedUsers))
		for _, id := range s.FailedUsers {
			color.Red("  %s", id)
		}
	}
	if len(s.FailedItems) > 0 {
		color.Red("Items kept after failure: %d", len(s.FailedItems))
		for _, id := range s.FailedItems {
			color.Red("  trash record %s", id)
		}
	}
}
