package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/service"
)

type TaskHandler struct {
	logger   *zap.Logger
	taskServ *service.TaskService
}

func NewTaskHandler(logger *zap.Logger, taskServ *service.TaskService) *TaskHandler {
	return &TaskHandler{
		logger:   logger,
		taskServ: taskServ,
	}
}

// List maneja GET /api/tasks.
func (h *TaskHandler) List(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}

	tasks, err := h.taskServ.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, "list tasks", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Create maneja POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create task request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTitleRequired})
		return
	}

	task, err := h.taskServ.Create(c.Request.Context(), identity, req.Title)
	if err != nil {
		respondError(c, h.logger, "create task", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// UpdateStatus maneja PATCH /api/tasks/:id.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || taskID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidTaskID})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update task request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidStatus})
		return
	}

	task, err := h.taskServ.UpdateStatus(c.Request.Context(), identity, taskID, req.Status)
	if err != nil {
		respondError(c, h.logger, "update task", err)
		return
	}
	c.JSON(http.StatusOK, task)
}
