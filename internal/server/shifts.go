package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

func (s *Server) createRegularShifts(c *gin.Context) {
	var req struct {
		StaffID int64         `json:"staff_id" binding:"required"`
		Dates   []models.Date `json:"dates" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.shiftsService().CreateRegularShifts(c.Request.Context(), req.StaffID, req.Dates)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) createExtraShifts(c *gin.Context) {
	var req struct {
		Shifts []models.StaffIDAndDate `json:"shifts" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.shiftsService().CreateExtraShifts(c.Request.Context(), req.Shifts)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) createTestShift(c *gin.Context) {
	var req models.StaffIDAndDate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.shiftsService().CreateTestShift(c.Request.Context(), req.StaffID, req.Date)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) startShift(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		CarWashID int64 `json:"car_wash_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := s.shiftsService().StartShift(c.Request.Context(), id, req.CarWashID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

func (s *Server) finishShift(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		PhotoFileIDs []string `json:"photo_file_ids" binding:"dive,required,max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.shiftsService().FinishShift(c.Request.Context(), id, req.PhotoFileIDs)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) deleteShift(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.shiftsService().DeleteShift(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getDeadSouls(c *gin.Context) {
	var query struct {
		Month int `form:"month" binding:"required,min=1,max=12"`
		Year  int `form:"year" binding:"required,min=2000,max=2100"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.shiftsService().GetDeadSouls(c.Request.Context(), query.Month, query.Year)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createCarToWash(c *gin.Context) {
	var input models.CarToWashCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car, err := s.economicsService().CreateCarToWash(c.Request.Context(), input)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (s *Server) getCarToWash(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car, err := s.economicsService().GetCarToWash(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}
