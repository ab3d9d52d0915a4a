package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usbtypec1/car-wash-project-api-server/internal/auth"
	"github.com/usbtypec1/car-wash-project-api-server/internal/config"
	"github.com/usbtypec1/car-wash-project-api-server/internal/export"
	"github.com/usbtypec1/car-wash-project-api-server/internal/mocks"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

func setupTest(t *testing.T) (*Server, *mocks.MockStorage, string, string) {
	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockStorage(ctrl)

	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard

	srv := NewServer(ServerOpts{
		Storage: mockStorage,
		Config: config.Config{
			Secret:    "test-secret",
			ReportsTZ: time.UTC,
		},
	})

	srv.SetupRoutes()

	adminToken, err := auth.GenerateToken(uuid.NewString(), auth.RoleAdmin, srv.config.Secret)
	require.NoError(t, err)

	staffToken, err := auth.GenerateToken(uuid.NewString(), auth.RoleStaff, srv.config.Secret)
	require.NoError(t, err)

	return srv, mockStorage, adminToken, staffToken
}

func doRequest(srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reader = bytes.NewBuffer(jsonBody)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// runInTx makes WithTransaction call its callback directly.
func runInTx(m *mocks.MockStorage) {
	m.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestDummyLogin(t *testing.T) {
	srv, _, _, _ := setupTest(t)

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"Valid admin", "admin", http.StatusOK},
		{"Valid staff", "staff", http.StatusOK},
		{"Invalid role", "moderator", http.StatusBadRequest},
		{"Empty role", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(srv, "POST", "/dummyLogin", "", map[string]string{"role": tt.role})

			assert.Equal(t, tt.wantStatus, w.Code)
			response := decodeBody(t, w)
			if tt.wantStatus == http.StatusOK {
				assert.NotEmpty(t, response["token"])
			} else {
				assert.NotEmpty(t, response["error"])
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	srv, _, _, _ := setupTest(t)

	w := doRequest(srv, "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServicePrices(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		method     string
		path       string
		admin      bool
		body       any
		mockSetup  func(*mocks.MockStorage)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "list prices",
			method: "GET",
			path:   "/economics/prices",
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().GetServicePrices(gomock.Any()).Return([]models.ServicePrice{
					{Service: models.ServiceUrgentWash, Price: 200, CreatedAt: now, UpdatedAt: now},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "price not found",
			method: "GET",
			path:   "/economics/prices/van_transfer",
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().GetServicePrice(gomock.Any(), models.ServiceVanTransfer).
					Return(nil, models.NewPriceNotFoundError(models.ServiceVanTransfer))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "staff_service_price_not_found",
		},
		{
			name:   "set price",
			method: "PUT",
			path:   "/economics/prices/urgent_wash",
			admin:  true,
			body:   map[string]int{"price": 250},
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().UpsertServicePrice(gomock.Any(), models.ServiceUrgentWash, 250).
					Return(&models.ServicePrice{Service: models.ServiceUrgentWash, Price: 250, CreatedAt: now, UpdatedAt: now}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "set price out of range",
			method:     "PUT",
			path:       "/economics/prices/urgent_wash",
			admin:      true,
			body:       map[string]int{"price": models.MaxServicePrice + 1},
			mockSetup:  func(m *mocks.MockStorage) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_service_price",
		},
		{
			name:       "set price of unknown service",
			method:     "PUT",
			path:       "/economics/prices/car_polishing",
			admin:      true,
			body:       map[string]int{"price": 100},
			mockSetup:  func(m *mocks.MockStorage) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "unknown_service_type",
		},
		{
			name:       "set price as staff",
			method:     "PUT",
			path:       "/economics/prices/urgent_wash",
			body:       map[string]int{"price": 250},
			mockSetup:  func(m *mocks.MockStorage) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mockStorage, adminToken, staffToken := setupTest(t)
			tt.mockSetup(mockStorage)

			token := staffToken
			if tt.admin {
				token = adminToken
			}

			w := doRequest(srv, tt.method, tt.path, token, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeBody(t, w)["code"])
			}
		})
	}
}

func TestUnauthorized(t *testing.T) {
	srv, _, _, _ := setupTest(t)

	w := doRequest(srv, "GET", "/economics/prices", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePenalty(t *testing.T) {
	shift := &models.Shift{ID: 5, StaffID: 1001, StaffFullName: "Anna", Date: models.NewDate(2024, 3, 1)}

	tests := []struct {
		name       string
		body       map[string]any
		mockSetup  func(*mocks.MockStorage)
		wantStatus int
		wantAmount float64
	}{
		{
			name: "escalated by history",
			body: map[string]any{"shift_id": 5, "reason": "not_showing_up"},
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().GetShiftByID(gomock.Any(), int64(5)).Return(shift, nil)
				m.EXPECT().CountStaffPenalties(gomock.Any(), int64(1001), "not_showing_up").Return(0, nil)
				m.EXPECT().CreatePenalty(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *models.Penalty) error {
						p.ID = 77
						return nil
					},
				)
			},
			wantStatus: http.StatusCreated,
			wantAmount: 500,
		},
		{
			name: "explicit amount",
			body: map[string]any{"shift_id": 5, "reason": "dirty car", "amount": 150},
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().GetShiftByID(gomock.Any(), int64(5)).Return(shift, nil)
				m.EXPECT().CreatePenalty(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantAmount: 150,
		},
		{
			name:       "missing reason",
			body:       map[string]any{"shift_id": 5},
			mockSetup:  func(m *mocks.MockStorage) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown shift",
			body: map[string]any{"shift_id": 6, "reason": "late_report"},
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().GetShiftByID(gomock.Any(), int64(6)).Return(nil, models.ErrShiftNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mockStorage, adminToken, _ := setupTest(t)
			tt.mockSetup(mockStorage)

			w := doRequest(srv, "POST", "/economics/penalties", adminToken, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				response := decodeBody(t, w)
				assert.Equal(t, tt.wantAmount, response["amount"])
				assert.Equal(t, "Anna", response["staff_full_name"])
			}
		})
	}
}

func TestDeletePenaltyAndSurcharge(t *testing.T) {
	srv, mockStorage, adminToken, _ := setupTest(t)

	mockStorage.EXPECT().DeletePenalty(gomock.Any(), int64(3)).Return(nil)
	mockStorage.EXPECT().DeleteSurcharge(gomock.Any(), int64(4)).Return(models.ErrSurchargeNotFound)

	w := doRequest(srv, "DELETE", "/economics/penalties/3", adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(srv, "DELETE", "/economics/surcharges/4", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "surcharge_not_found", decodeBody(t, w)["code"])

	w = doRequest(srv, "DELETE", "/economics/penalties/abc", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPenalties(t *testing.T) {
	t.Run("filters and paginates", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)

		mockStorage.EXPECT().GetPenaltiesPage(gomock.Any(), models.PenaltiesFilter{
			StaffIDs: []int64{1, 2},
			Limit:    20,
			Offset:   40,
		}).Return(&models.PenaltiesPage{Penalties: []models.PenaltyItem{}, IsEndOfListReached: true}, nil)

		w := doRequest(srv, "GET", "/economics/penalties?staff_ids=1,2&limit=20&offset=40", staffToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["is_end_of_list_reached"])
	})

	t.Run("defaults", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)

		mockStorage.EXPECT().GetPenaltiesPage(gomock.Any(), models.PenaltiesFilter{Limit: 10}).
			Return(&models.PenaltiesPage{Penalties: []models.PenaltyItem{}}, nil)

		w := doRequest(srv, "GET", "/economics/penalties", staffToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	for _, query := range []string{"limit=0", "limit=1001", "offset=-1", "staff_ids=x"} {
		t.Run("rejects "+query, func(t *testing.T) {
			srv, _, _, staffToken := setupTest(t)

			w := doRequest(srv, "GET", "/economics/penalties?"+query, staffToken, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateSurcharge(t *testing.T) {
	srv, mockStorage, adminToken, _ := setupTest(t)

	mockStorage.EXPECT().GetShiftByID(gomock.Any(), int64(5)).
		Return(&models.Shift{ID: 5, StaffID: 1001, Date: models.NewDate(2024, 3, 1)}, nil)
	mockStorage.EXPECT().CreateSurcharge(gomock.Any(), gomock.Any()).Return(nil)

	w := doRequest(srv, "POST", "/economics/surcharges", adminToken, map[string]any{
		"shift_id": 5,
		"reason":   "overtime",
		"amount":   500,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(srv, "POST", "/economics/surcharges", adminToken, map[string]any{
		"shift_id": 5,
		"reason":   "overtime",
		"amount":   0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCarWashAdjustments(t *testing.T) {
	created := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	body := map[string]any{
		"car_wash_id": 3,
		"reason":      "some reason",
		"amount":      1000,
		"date":        "2025-01-01",
	}

	tests := []struct {
		name       string
		path       string
		body       map[string]any
		mockSetup  func(*mocks.MockStorage)
		wantStatus int
		wantCode   string
	}{
		{
			name: "penalty",
			path: "/economics/car-washes/penalties",
			body: body,
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().GetCarWashByID(gomock.Any(), int64(3)).Return(&models.CarWash{ID: 3}, nil)
				m.EXPECT().CreateCarWashPenalty(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *models.CarWashAdjustment) error {
						p.ID = 11
						p.CreatedAt = created
						return nil
					},
				)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "surcharge",
			path: "/economics/car-washes/surcharges",
			body: body,
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().GetCarWashByID(gomock.Any(), int64(3)).Return(&models.CarWash{ID: 3}, nil)
				m.EXPECT().CreateCarWashSurcharge(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *models.CarWashAdjustment) error {
						p.ID = 11
						p.CreatedAt = created
						return nil
					},
				)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown car wash",
			path: "/economics/car-washes/surcharges",
			body: map[string]any{"car_wash_id": 5345345, "reason": "some reason", "amount": 1000, "date": "2025-01-01"},
			mockSetup: func(m *mocks.MockStorage) {
				m.EXPECT().GetCarWashByID(gomock.Any(), int64(5345345)).Return(nil, models.ErrCarWashNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "car_wash_not_found",
		},
		{
			name:       "missing date",
			path:       "/economics/car-washes/penalties",
			body:       map[string]any{"car_wash_id": 3, "reason": "some reason", "amount": 1000},
			mockSetup:  func(m *mocks.MockStorage) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "date_required",
		},
		{
			name:       "zero amount",
			path:       "/economics/car-washes/penalties",
			body:       map[string]any{"car_wash_id": 3, "reason": "some reason", "amount": 0, "date": "2025-01-01"},
			mockSetup:  func(m *mocks.MockStorage) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mockStorage, adminToken, _ := setupTest(t)
			tt.mockSetup(mockStorage)

			w := doRequest(srv, "POST", tt.path, adminToken, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			response := decodeBody(t, w)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, response["code"])
			}
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, float64(11), response["id"])
				assert.Equal(t, float64(3), response["car_wash_id"])
				assert.Equal(t, "some reason", response["reason"])
				assert.Equal(t, float64(1000), response["amount"])
				assert.Equal(t, "2025-01-01", response["date"])
				assert.NotEmpty(t, response["created_at"])
			}
		})
	}

	t.Run("staff token is forbidden", func(t *testing.T) {
		srv, _, _, staffToken := setupTest(t)

		w := doRequest(srv, "POST", "/economics/car-washes/penalties", staffToken, body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetAndDeleteCarWashAdjustments(t *testing.T) {
	t.Run("list penalties", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)

		mockStorage.EXPECT().GetCarWashPenalties(gomock.Any(), models.CarWashAdjustmentsFilter{
			CarWashIDs: []int64{3, 4},
			From:       models.NewDate(2025, 1, 1),
			To:         models.NewDate(2025, 1, 31),
		}).Return([]models.CarWashAdjustment{
			{ID: 1, CarWashID: 3, Reason: "late", Amount: 100, Date: models.NewDate(2025, 1, 2)},
		}, nil)

		w := doRequest(srv, "GET", "/economics/car-washes/penalties?car_wash_ids=3,4&from_date=2025-01-01&to_date=2025-01-31", staffToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		penalties, ok := decodeBody(t, w)["car_wash_penalties"].([]any)
		require.True(t, ok)
		assert.Len(t, penalties, 1)
	})

	t.Run("list surcharges with reversed period", func(t *testing.T) {
		srv, _, _, staffToken := setupTest(t)

		w := doRequest(srv, "GET", "/economics/car-washes/surcharges?from_date=2025-02-01&to_date=2025-01-01", staffToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_period", decodeBody(t, w)["code"])
	})

	t.Run("rejects invalid car wash ids", func(t *testing.T) {
		srv, _, _, staffToken := setupTest(t)

		w := doRequest(srv, "GET", "/economics/car-washes/surcharges?car_wash_ids=x", staffToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		srv, mockStorage, adminToken, _ := setupTest(t)

		mockStorage.EXPECT().DeleteCarWashPenalty(gomock.Any(), int64(3)).Return(nil)
		mockStorage.EXPECT().DeleteCarWashSurcharge(gomock.Any(), int64(4)).Return(models.ErrCarWashSurchargeNotFound)

		w := doRequest(srv, "DELETE", "/economics/car-washes/penalties/3", adminToken, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(srv, "DELETE", "/economics/car-washes/surcharges/4", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "car_wash_surcharge_not_found", decodeBody(t, w)["code"])
	})
}

func TestStaffShiftsStatisticsReport(t *testing.T) {
	from := models.NewDate(2024, 3, 1)
	to := models.NewDate(2024, 3, 31)

	expectEmptyReport := func(m *mocks.MockStorage, staffIDs []int64) {
		m.EXPECT().GetStaff(gomock.Any(), staffIDs).Return([]models.StaffItem{{ID: 1, FullName: "Anna"}}, nil)
		m.EXPECT().GetPenaltiesForPeriod(gomock.Any(), staffIDs, from, to).Return(nil, nil)
		m.EXPECT().GetSurchargesForPeriod(gomock.Any(), staffIDs, from, to).Return(nil, nil)
		m.EXPECT().GetShiftsForPeriod(gomock.Any(), from, to, staffIDs).Return(nil, nil)
	}

	t.Run("json", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)
		expectEmptyReport(mockStorage, []int64{1})

		w := doRequest(srv, "GET", "/economics/reports/staff-shifts-statistics?staff_ids=1&from_date=2024-03-01&to_date=2024-03-31", staffToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			StaffList []models.StaffShiftsStatistics `json:"staff_list"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.StaffList, 1)
		assert.Equal(t, "Anna", response.StaffList[0].Staff.FullName)
		assert.Empty(t, response.StaffList[0].ShiftsStatistics)
	})

	t.Run("xlsx", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)
		expectEmptyReport(mockStorage, nil)

		w := doRequest(srv, "GET", "/economics/reports/staff-shifts-statistics?from_date=2024-03-01&to_date=2024-03-31&format=xlsx", staffToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "staff-shifts-statistics_2024-03-01_2024-03-31.xlsx")
		assert.NotZero(t, w.Body.Len())
	})

	t.Run("invalid date", func(t *testing.T) {
		srv, _, _, staffToken := setupTest(t)

		w := doRequest(srv, "GET", "/economics/reports/staff-shifts-statistics?from_date=01.03.2024", staffToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reversed period", func(t *testing.T) {
		srv, _, _, staffToken := setupTest(t)

		w := doRequest(srv, "GET", "/economics/reports/staff-shifts-statistics?from_date=2024-03-31&to_date=2024-03-01", staffToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_period", decodeBody(t, w)["code"])
	})

	t.Run("storage failure", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)
		mockStorage.EXPECT().GetStaff(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		w := doRequest(srv, "GET", "/economics/reports/staff-shifts-statistics?from_date=2024-03-01&to_date=2024-03-31", staffToken, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decodeBody(t, w)["error"])
	})
}

func TestCarWashesSalesReport(t *testing.T) {
	from := models.NewDate(2024, 3, 1)
	to := models.NewDate(2024, 3, 31)

	t.Run("groups by date", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)
		mockStorage.EXPECT().GetCarsToWashForPeriod(gomock.Any(), from, to, []int64{3}).Return([]models.CarToWashDTO{
			{ID: 1, ShiftDate: from, CarClass: models.CarClassComfort, WashingPrice: 500},
			{ID: 2, ShiftDate: from, CarClass: models.CarClassVan, WashingPrice: 900},
		}, nil)

		w := doRequest(srv, "GET", "/economics/reports/car-washes-sales?car_wash_ids=3&from_date=2024-03-01&to_date=2024-03-31", staffToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items []models.CarWashSalesReportItem `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Items, 1)
		assert.Equal(t, 1400, response.Items[0].TotalCost)
	})

	t.Run("unknown car class is a server error", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)
		mockStorage.EXPECT().GetCarsToWashForPeriod(gomock.Any(), from, to, nil).Return([]models.CarToWashDTO{
			{ID: 1, ShiftDate: from, CarClass: "truck"},
		}, nil)

		w := doRequest(srv, "GET", "/economics/reports/car-washes-sales?from_date=2024-03-01&to_date=2024-03-31", staffToken, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "unknown_car_class", decodeBody(t, w)["code"])
	})

	t.Run("xlsx", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)
		mockStorage.EXPECT().GetCarsToWashForPeriod(gomock.Any(), from, to, nil).Return(nil, nil)

		w := doRequest(srv, "GET", "/economics/reports/car-washes-sales?from_date=2024-03-01&to_date=2024-03-31&format=xlsx", staffToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	})
}

func TestCreateRegularShifts(t *testing.T) {
	day := models.NewDate(2024, 3, 1)

	t.Run("conflict", func(t *testing.T) {
		srv, mockStorage, adminToken, _ := setupTest(t)
		mockStorage.EXPECT().GetStaffByID(gomock.Any(), int64(1)).Return(&models.StaffItem{ID: 1, FullName: "Anna"}, nil)
		runInTx(mockStorage)
		mockStorage.EXPECT().GetExistingShiftDates(gomock.Any(), int64(1), []models.Date{day}).Return([]models.Date{day}, nil)

		w := doRequest(srv, "POST", "/shifts/regular", adminToken, map[string]any{
			"staff_id": 1,
			"dates":    []string{"2024-03-01"},
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		response := decodeBody(t, w)
		assert.Equal(t, "shift_already_exists", response["code"])
		assert.Equal(t, map[string]any{"conflict_dates": []any{"2024-03-01"}}, response["details"])
	})

	t.Run("created", func(t *testing.T) {
		srv, mockStorage, adminToken, _ := setupTest(t)
		mockStorage.EXPECT().GetStaffByID(gomock.Any(), int64(1)).Return(&models.StaffItem{ID: 1, FullName: "Anna"}, nil)
		runInTx(mockStorage)
		mockStorage.EXPECT().GetExistingShiftDates(gomock.Any(), int64(1), []models.Date{day}).Return(nil, nil)
		mockStorage.EXPECT().CreateShifts(gomock.Any(), []models.Shift{{StaffID: 1, Date: day}}).
			Return([]models.Shift{{ID: 10, StaffID: 1, Date: day}}, nil)

		w := doRequest(srv, "POST", "/shifts/regular", adminToken, map[string]any{
			"staff_id": 1,
			"dates":    []string{"2024-03-01"},
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("staff token is forbidden", func(t *testing.T) {
		srv, _, _, staffToken := setupTest(t)

		w := doRequest(srv, "POST", "/shifts/regular", staffToken, map[string]any{
			"staff_id": 1,
			"dates":    []string{"2024-03-01"},
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestStartAndDeleteShift(t *testing.T) {
	srv, mockStorage, adminToken, staffToken := setupTest(t)
	started := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	carWashID := int64(3)

	gomock.InOrder(
		mockStorage.EXPECT().GetShiftByID(gomock.Any(), int64(5)).
			Return(&models.Shift{ID: 5, StaffID: 1, Date: models.NewDate(2024, 3, 1)}, nil),
		mockStorage.EXPECT().GetActiveShift(gomock.Any(), int64(1)).Return(nil, models.ErrShiftNotFound),
		mockStorage.EXPECT().GetCarWashByID(gomock.Any(), carWashID).Return(&models.CarWash{ID: carWashID}, nil),
		mockStorage.EXPECT().StartShift(gomock.Any(), int64(5), carWashID).Return(nil),
		mockStorage.EXPECT().GetShiftByID(gomock.Any(), int64(5)).
			Return(&models.Shift{ID: 5, StaffID: 1, CarWashID: &carWashID, StartedAt: &started}, nil),
	)
	mockStorage.EXPECT().DeleteShift(gomock.Any(), int64(5)).Return(models.ErrShiftNotFound)

	w := doRequest(srv, "POST", "/shifts/5/start", staffToken, map[string]int64{"car_wash_id": carWashID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(srv, "DELETE", "/shifts/5", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFinishShift(t *testing.T) {
	srv, mockStorage, _, staffToken := setupTest(t)
	carWashID := int64(3)

	runInTx(mockStorage)
	gomock.InOrder(
		mockStorage.EXPECT().GetShiftByID(gomock.Any(), int64(5)).
			Return(&models.Shift{ID: 5, StaffID: 1, StaffFullName: "Anna", Date: models.NewDate(2024, 3, 1)}, nil),
		mockStorage.EXPECT().HasFinishedShift(gomock.Any(), int64(1)).Return(true, nil),
		mockStorage.EXPECT().FinishShift(gomock.Any(), int64(5)).Return(nil),
		mockStorage.EXPECT().ReplaceShiftFinishPhotos(gomock.Any(), int64(5), []string{"photo-1"}).Return(nil),
		mockStorage.EXPECT().GetShiftSummary(gomock.Any(), int64(5)).Return([]models.ShiftCarWashSummary{
			{CarWashID: &carWashID, CarWashName: "North", ComfortCarsCount: 1, TotalCarsCount: 1, RefilledCarsCount: 1},
			{VansCount: 1, TotalCarsCount: 1, NotRefilledCarsCount: 1},
		}, nil),
	)

	w := doRequest(srv, "POST", "/shifts/5/finish", staffToken, map[string]any{"photo_file_ids": []string{"photo-1"}})
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, false, response["is_first_shift"])
	carWashes, ok := response["car_washes"].([]any)
	require.True(t, ok)
	require.Len(t, carWashes, 2)
	assert.Equal(t, "North", carWashes[0].(map[string]any)["car_wash_name"])
	assert.Nil(t, carWashes[1].(map[string]any)["car_wash_id"])
	assert.Equal(t, models.UnselectedCarWashName, carWashes[1].(map[string]any)["car_wash_name"])
}

func TestStartFinishedShift(t *testing.T) {
	srv, mockStorage, _, staffToken := setupTest(t)
	started := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	finished := started.Add(8 * time.Hour)

	mockStorage.EXPECT().GetShiftByID(gomock.Any(), int64(5)).
		Return(&models.Shift{ID: 5, StaffID: 1, StartedAt: &started, FinishedAt: &finished}, nil)

	w := doRequest(srv, "POST", "/shifts/5/start", staffToken, map[string]int64{"car_wash_id": 3})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "shift_already_finished", decodeBody(t, w)["code"])
}

func TestDeadSouls(t *testing.T) {
	srv, mockStorage, adminToken, _ := setupTest(t)

	mockStorage.EXPECT().IsMonthAvailable(gomock.Any(), 3, 2024).Return(false, nil)

	w := doRequest(srv, "GET", "/shifts/dead-souls?month=3&year=2024", adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(srv, "GET", "/shifts/dead-souls?month=13&year=2024", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCarsToWash(t *testing.T) {
	t.Run("invalid car class", func(t *testing.T) {
		srv, _, _, staffToken := setupTest(t)

		w := doRequest(srv, "POST", "/shifts/cars", staffToken, map[string]any{
			"staff_id":  1,
			"number":    "A123BC77",
			"car_class": "truck",
			"wash_type": "planned",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no active shift", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)
		mockStorage.EXPECT().GetActiveShift(gomock.Any(), int64(1)).Return(nil, models.ErrShiftNotFound)

		w := doRequest(srv, "POST", "/shifts/cars", staffToken, map[string]any{
			"staff_id":  1,
			"number":    "A123BC77",
			"car_class": "comfort",
			"wash_type": "planned",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get missing car", func(t *testing.T) {
		srv, mockStorage, _, staffToken := setupTest(t)
		mockStorage.EXPECT().GetCarToWashByID(gomock.Any(), int64(9)).Return(nil, models.NewCarToWashNotFoundError(9))

		w := doRequest(srv, "GET", "/shifts/cars/9", staffToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, map[string]any{"car_to_wash_id": float64(9)}, decodeBody(t, w)["details"])
	})
}
