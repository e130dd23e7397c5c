package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/pkg/resp"
	"github.com/mwilkosz/Meta-Back-End-Developer/services"
)

// GroupController manages one roster; instantiated once per group.
type GroupController struct {
	Svc       *services.GroupService
	GroupName string
}

func NewManagerGroupController(s *services.GroupService) *GroupController {
	return &GroupController{Svc: s, GroupName: entity.GroupManager}
}

func NewDeliveryCrewGroupController(s *services.GroupService) *GroupController {
	return &GroupController{Svc: s, GroupName: entity.GroupDeliveryCrew}
}

// GET /groups/<group>/users/ and /groups/<group>/users/:id
func (h *GroupController) List(c *gin.Context) {
	var userID *uint
	if raw := c.Param("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "invalid user id")
			return
		}
		u := uint(id)
		userID = &u
	}

	members, err := h.Svc.Members(h.GroupName, userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, members)
}

// POST /groups/<group>/users/
func (h *GroupController) Add(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg, err := h.Svc.Add(h.GroupName, req.Username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, msg)
}

// DELETE /groups/<group>/users/:id
func (h *GroupController) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	msg, err := h.Svc.Remove(h.GroupName, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNotMember):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, http.StatusOK, msg)
}
