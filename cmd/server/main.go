package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Prince5723/scribble-backend/internal/player"
	"github.com/Prince5723/scribble-backend/internal/room"
	"github.com/Prince5723/scribble-backend/internal/router"
	"github.com/Prince5723/scribble-backend/internal/timersvc"
	"github.com/Prince5723/scribble-backend/internal/transportws"
	"github.com/Prince5723/scribble-backend/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("server: unhandled panic: %v", rec)
			os.Exit(1)
		}
	}()
	logger.EnableLogging(true)

	players := player.NewRegistry()
	rooms := room.NewRegistry()
	timers := timersvc.NewService()
	rt := router.NewRouter(players, rooms, timers, transportws.Sender{})

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
	}))

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		transportws.Accept(c, rt)
	}))

	app.Static("/", "./public")

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			logger.Error("server: listen failed err=%v", err)
		}
	}()
	logger.Info("server: listening on :%s", port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	logger.Info("server: shutdown signal received")

	rt.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = app.ShutdownWithContext(ctx)
		close(done)
	}()

	select {
	case <-done:
		logger.Info("server: graceful shutdown complete")
	case <-ctx.Done():
		logger.Error("server: shutdown timed out, forcing exit")
	}
}
