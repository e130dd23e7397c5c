package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/pkg/resp"
	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
)

type BookingController struct{ Repo *repository.BookingRepository }

func NewBookingController(r *repository.BookingRepository) *BookingController {
	return &BookingController{Repo: r}
}

// GET /bookings/
func (h *BookingController) List(c *gin.Context) {
	bookings, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, bookings)
}

// POST /bookings/
func (h *BookingController) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		NoOfGuests  int    `json:"no_of_guests" binding:"required,min=1"`
		BookingDate string `json:"booking_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	when, err := parseBookingDate(req.BookingDate)
	if err != nil {
		resp.BadRequest(c, "invalid booking_date")
		return
	}

	booking := entity.Booking{Name: req.Name, NoOfGuests: req.NoOfGuests, BookingDate: when}
	if err := h.Repo.Create(&booking); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, booking)
}

// GET /bookings/:id
func (h *BookingController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	booking, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "booking not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, booking)
}

// DELETE /bookings/:id
func (h *BookingController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	deleted, err := h.Repo.Delete(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if deleted == 0 {
		resp.NotFound(c, "booking not found")
		return
	}
	resp.Message(c, http.StatusOK, "booking deleted")
}

func parseBookingDate(s string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}
	var lastErr error
	for _, l := range layouts {
		t, err := time.Parse(l, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
