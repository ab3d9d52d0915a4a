package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usbtypec1/car-wash-project-api-server/internal/export"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

const formatXLSX = "xlsx"

func (s *Server) getServicePrices(c *gin.Context) {
	prices, err := s.economicsService().GetServicePrices(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prices": prices})
}

func (s *Server) getServicePrice(c *gin.Context) {
	price, err := s.economicsService().GetServicePrice(c.Request.Context(), models.ServiceType(c.Param("service")))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

func (s *Server) setServicePrice(c *gin.Context) {
	var req struct {
		Price int `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := s.economicsService().SetServicePrice(c.Request.Context(), models.ServiceType(c.Param("service")), req.Price)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

func (s *Server) getPenalties(c *gin.Context) {
	var query struct {
		Limit  int `form:"limit,default=10" binding:"min=1,max=1000"`
		Offset int `form:"offset,default=0" binding:"min=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staffIDs, err := int64ListQuery(c, "staff_ids")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := s.economicsService().GetPenalties(c.Request.Context(), models.PenaltiesFilter{
		StaffIDs: staffIDs,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) createPenalty(c *gin.Context) {
	var input models.PenaltyCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	penalty, err := s.economicsService().CreatePenalty(c.Request.Context(), input)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, penalty)
}

func (s *Server) deletePenalty(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.economicsService().DeletePenalty(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createSurcharge(c *gin.Context) {
	var input models.SurchargeCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	surcharge, err := s.economicsService().CreateSurcharge(c.Request.Context(), input)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, surcharge)
}

func (s *Server) deleteSurcharge(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.economicsService().DeleteSurcharge(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getStaffShiftsStatistics(c *gin.Context) {
	staffIDs, err := int64ListQuery(c, "staff_ids")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to, err := s.periodQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.economicsService().GetStaffShiftsStatistics(c.Request.Context(), staffIDs, from, to)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if c.Query("format") == formatXLSX {
		buf, err := export.StaffShiftsStatistics(report)
		if err != nil {
			s.respondError(c, err)
			return
		}
		s.sendWorkbook(c, fmt.Sprintf("staff-shifts-statistics_%s_%s.xlsx", from, to), buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff_list": report})
}

func (s *Server) getCarWashesSales(c *gin.Context) {
	carWashIDs, err := int64ListQuery(c, "car_wash_ids")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to, err := s.periodQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.economicsService().GetCarWashesSalesReport(c.Request.Context(), carWashIDs, from, to)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if c.Query("format") == formatXLSX {
		buf, err := export.CarWashesSales(report)
		if err != nil {
			s.respondError(c, err)
			return
		}
		s.sendWorkbook(c, fmt.Sprintf("car-washes-sales_%s_%s.xlsx", from, to), buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from_date": from,
		"to_date":   to,
		"items":     report,
	})
}

func (s *Server) sendWorkbook(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, data)
}

func (s *Server) carWashAdjustmentsFilter(c *gin.Context) (models.CarWashAdjustmentsFilter, error) {
	carWashIDs, err := int64ListQuery(c, "car_wash_ids")
	if err != nil {
		return models.CarWashAdjustmentsFilter{}, err
	}
	from, to, err := s.periodQuery(c)
	if err != nil {
		return models.CarWashAdjustmentsFilter{}, err
	}
	return models.CarWashAdjustmentsFilter{CarWashIDs: carWashIDs, From: from, To: to}, nil
}

func (s *Server) getCarWashPenalties(c *gin.Context) {
	filter, err := s.carWashAdjustmentsFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	penalties, err := s.economicsService().GetCarWashPenalties(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"car_wash_penalties": penalties})
}

func (s *Server) createCarWashPenalty(c *gin.Context) {
	var input models.CarWashAdjustmentCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	penalty, err := s.economicsService().CreateCarWashPenalty(c.Request.Context(), input)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, penalty)
}

func (s *Server) deleteCarWashPenalty(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.economicsService().DeleteCarWashPenalty(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getCarWashSurcharges(c *gin.Context) {
	filter, err := s.carWashAdjustmentsFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	surcharges, err := s.economicsService().GetCarWashSurcharges(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"car_wash_surcharges": surcharges})
}

func (s *Server) createCarWashSurcharge(c *gin.Context) {
	var input models.CarWashAdjustmentCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	surcharge, err := s.economicsService().CreateCarWashSurcharge(c.Request.Context(), input)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, surcharge)
}

func (s *Server) deleteCarWashSurcharge(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.economicsService().DeleteCarWashSurcharge(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
