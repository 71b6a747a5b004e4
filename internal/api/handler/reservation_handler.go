package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/core/ports"
)

type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List handles GET /reservations/all.
//
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Success      200  {array}  domain.Reservation
// @Router       /reservations/all [get]
func (h *ReservationHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// GetByID handles GET /reservations/:id.
//
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      404  {object}  map[string]string
// @Router       /reservations/{id} [get]
func (h *ReservationHandler) GetByID(c echo.Context) error {
	r, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// ListByRoom handles GET /reservations/room/:roomNumber.
//
// @Summary      List reservations for a room number
// @Tags         reservations
// @Produce      json
// @Param        roomNumber  path      int  true  "Room number"
// @Success      200         {array}   domain.Reservation
// @Failure      400         {object}  map[string]string
// @Router       /reservations/room/{roomNumber} [get]
func (h *ReservationHandler) ListByRoom(c echo.Context) error {
	roomNumber, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "roomNumber must be an integer")
	}

	list, err := h.service.ListByRoomNumber(c.Request().Context(), roomNumber)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// ListByUser handles GET /reservations/user/:userId.
//
// @Summary      List reservations of a user
// @Tags         reservations
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   domain.Reservation
// @Router       /reservations/user/{userId} [get]
func (h *ReservationHandler) ListByUser(c echo.Context) error {
	list, err := h.service.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /reservations/new.
//
// @Summary      Create a reservation
// @Description  The reservation is stored as sent. No availability or price checks are made.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body      reservationRequest  true  "Reservation"
// @Success      200   {object}  domain.Reservation
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /reservations/new [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	r, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Update handles PUT /reservations/edit/:id.
//
// @Summary      Replace a reservation
// @Description  Every editable field is overwritten; omitted fields are cleared.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Reservation id"
// @Param        body  body      reservationRequest  true  "Reservation"
// @Success      200   {object}  domain.Reservation
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reservations/edit/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	r, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Delete handles DELETE /reservations/delete/:id.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /reservations/delete/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "reservation deleted"})
}
