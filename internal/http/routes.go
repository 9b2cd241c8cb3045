package http

import (
	"net/http"
	"time"

	"coder_management/internal/config"
	"coder_management/internal/http/handlers"
	"coder_management/internal/http/middleware"
	"coder_management/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires repositories, services and handlers once at
// startup and mounts every route on the engine.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config) {
	hub := ws.NewHub()
	h := handlers.NewHandler(db, hub)
	healthHandler := handlers.NewHealthHandler(db, cfg.Version)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to CoderManagement Backend Api")
	})

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	rateLimit := middleware.RedisRateLimit(cfg.APIRateLimit, time.Duration(cfg.APIRateWindow)*time.Second)
	MountResourceRoutes(r, h, rateLimit)

	// Task event feed
	r.GET("/ws", handlers.TaskFeed(hub))
}

// MountResourceRoutes mounts the task and user resource routes, with any
// middleware applied to both groups.
func MountResourceRoutes(r gin.IRouter, h *handlers.Handler, mw ...gin.HandlerFunc) {
	tasks := r.Group("/tasks", mw...)
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	users := r.Group("/users", mw...)
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/tasks/:id", h.UserTasks)
		users.GET("/:id", h.GetUser)
	}
}
