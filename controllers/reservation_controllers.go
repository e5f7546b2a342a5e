package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/amandier/restaurant-backend/live"
	"github.com/amandier/restaurant-backend/models"
	"github.com/amandier/restaurant-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotCapacity is the maximum aggregate guest count per (date, time) slot.
const SlotCapacity = 50

// TimeSlots lists the bookable half-hour slots across lunch and dinner
// service, in canonical chronological order.
var TimeSlots = []string{
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30",
}

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// CreateReservation handles the public booking request.
// Endpoint: POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required"`
		Email           string  `json:"email" binding:"required,email"`
		Phone           string  `json:"phone" binding:"required"`
		Date            string  `json:"date" binding:"required"`
		Time            string  `json:"time" binding:"required"`
		Guests          int     `json:"guests" binding:"required,gt=0"`
		SpecialRequests *string `json:"specialRequests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondAPIError(c, http.StatusBadRequest, err)
		return
	}

	// Combine date and time into a single instant for the past-date check.
	when, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, time.Local)
	if err != nil {
		utils.RespondAPIError(c, http.StatusBadRequest, errors.New("invalid date or time format"))
		return
	}

	if !when.After(time.Now()) {
		utils.RespondAPIError(c, http.StatusBadRequest, ErrPastDate)
		return
	}

	if when.Hour() < 11 || when.Hour() > 22 {
		utils.RespondAPIError(c, http.StatusBadRequest, ErrClosedHours)
		return
	}

	// Capacity check: sum guests over non-cancelled reservations in the
	// same slot. This is a plain read-then-insert; two concurrent
	// bookings can both pass before either commits.
	var existing []models.Reservation
	if err := rc.DB.
		Where("date = ? AND time = ? AND status <> ?", req.Date, req.Time, models.ReservationCancelled).
		Find(&existing).Error; err != nil {
		utils.RespondAPIError(c, http.StatusBadRequest, err)
		return
	}

	total := 0
	for _, r := range existing {
		total += r.Guests
	}
	if total+req.Guests > SlotCapacity {
		utils.RespondAPIError(c, http.StatusBadRequest, ErrCapacityExceeded)
		return
	}

	reservation := models.Reservation{
		Code:            uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           utils.NormalizePhone(req.Phone),
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		Status:          models.ReservationPending,
		SpecialRequests: req.SpecialRequests,
	}
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondAPIError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("New reservation %s: %s, %s %s, %d guests",
		reservation.Code, reservation.Name, reservation.Date, reservation.Time, reservation.Guests)
	live.Broadcast(live.EventReservationUpdate, reservation)

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"reservationId": reservation.ID,
		"code":          reservation.Code,
		"message":       "Reservation created successfully",
	})
}

// GetAvailableTimeSlots returns the slots that still fit the requested
// party size on a given date, in canonical order.
// Endpoint: GET /api/reservations/availability?date=...&guests=...
func (rc *ReservationController) GetAvailableTimeSlots(c *gin.Context) {
	date := c.Query("date")
	guestsStr := c.Query("guests")
	if date == "" || guestsStr == "" {
		utils.RespondAPIError(c, http.StatusBadRequest, errors.New("date and guests parameters are required"))
		return
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		utils.RespondAPIError(c, http.StatusBadRequest, errors.New("invalid guests parameter"))
		return
	}

	var existing []models.Reservation
	if err := rc.DB.
		Where("date = ? AND status <> ?", date, models.ReservationCancelled).
		Find(&existing).Error; err != nil {
		utils.RespondAPIError(c, http.StatusBadRequest, err)
		return
	}

	available := []string{}
	for _, slot := range TimeSlots {
		total := 0
		for _, r := range existing {
			if r.Time == slot {
				total += r.Guests
			}
		}
		if total+guests <= SlotCapacity {
			available = append(available, slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"timeSlots": available,
	})
}

// ListReservations returns reservations for the admin dashboard, newest
// first, optionally filtered by date and/or status.
func (rc *ReservationController) ListReservations(c *gin.Context) {
	query := rc.DB.Order("id DESC")

	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateReservationStatus overwrites the status with whatever the caller
// supplies. Any transition is accepted, including backwards ones.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	idStr := c.Param("reservation_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	reservation.Status = body.Status
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.Broadcast(live.EventReservationUpdate, reservation)
	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}
