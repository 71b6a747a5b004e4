package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// RoomHandler handles HTTP requests for room operations. Service errors are
// returned unchanged and mapped to status codes by the central error handler.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// List handles GET /rooms/all.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}   domain.Room
// @Failure      500  {object}  map[string]string
// @Router       /rooms/all [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// GetByID handles GET /rooms/:id.
//
// @Summary      Get a room by id
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  map[string]string
// @Router       /rooms/{id} [get]
func (h *RoomHandler) GetByID(c echo.Context) error {
	room, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// GetByNumber handles GET /rooms/number/:roomNumber.
//
// @Summary      Get a room by room number
// @Tags         rooms
// @Produce      json
// @Param        roomNumber  path      string  true  "Room number"
// @Success      200         {object}  domain.Room
// @Failure      404         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /rooms/number/{roomNumber} [get]
func (h *RoomHandler) GetByNumber(c echo.Context) error {
	room, err := h.service.GetByNumber(c.Request().Context(), c.Param("roomNumber"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// ListByType handles GET /rooms/type/:type.
//
// @Summary      List rooms of a type
// @Tags         rooms
// @Produce      json
// @Param        type  path      string  true  "Room type, e.g. STANDARD"
// @Success      200   {array}   domain.Room
// @Router       /rooms/type/{type} [get]
func (h *RoomHandler) ListByType(c echo.Context) error {
	rooms, err := h.service.ListByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// ListByAmenities handles GET /rooms/amenities?amenity=a&amenity=b.
// Comma separated values are accepted too.
//
// @Summary      List rooms offering every given amenity
// @Tags         rooms
// @Produce      json
// @Param        amenity  query     []string  true  "Amenity (repeatable)"  collectionFormat(multi)
// @Success      200      {array}   domain.Room
// @Failure      400      {object}  map[string]string
// @Router       /rooms/amenities [get]
func (h *RoomHandler) ListByAmenities(c echo.Context) error {
	var amenities []string
	for _, raw := range c.QueryParams()["amenity"] {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				amenities = append(amenities, a)
			}
		}
	}
	if len(amenities) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one amenity is required")
	}

	rooms, err := h.service.ListByAmenities(c.Request().Context(), amenities)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create handles POST /rooms/new.
//
// @Summary      Create a room
// @Description  Missing or empty type, description and bed type fall back to defaults,
// @Description  as do non-positive price, capacity and size.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      200   {object}  domain.Room
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /rooms/new [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	room, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Edit handles PUT /rooms/edit/:id.
//
// @Summary      Update a room
// @Description  Only the fields present in the body are changed.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Room id"
// @Param        body  body      editRoomRequest  true  "Fields to change"
// @Success      200   {object}  domain.Room
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /rooms/edit/{id} [put]
func (h *RoomHandler) Edit(c echo.Context) error {
	var req editRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	room, err := h.service.Edit(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /rooms/delete/:id.
//
// @Summary      Delete a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /rooms/delete/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "room deleted"})
}
