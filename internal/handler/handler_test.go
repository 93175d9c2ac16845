package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/handler/dto"
	hmocks "github.com/umyrahbh/healthassist/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	userSvc    *hmocks.MockUserSvc
	checkupSvc *hmocks.MockCheckupSvc
	bookingSvc *hmocks.MockBookingSvc
	paymentSvc *hmocks.MockPaymentSvc
	catalogSvc *hmocks.MockCatalogSvc
}

func actorMiddleware(actor domain.Actor) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func setupRouter(t *testing.T, actor domain.Actor) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		userSvc:    hmocks.NewMockUserSvc(t),
		checkupSvc: hmocks.NewMockCheckupSvc(t),
		bookingSvc: hmocks.NewMockBookingSvc(t),
		paymentSvc: hmocks.NewMockPaymentSvc(t),
		catalogSvc: hmocks.NewMockCatalogSvc(t),
	}

	h := NewHandler(m.userSvc, m.checkupSvc, m.bookingSvc, m.paymentSvc, m.catalogSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)
		api.GET("/checkups", h.ListCheckups)
		api.GET("/availability", h.CheckAvailability)
		api.GET("/specialists/:id", h.GetSpecialist)
		api.GET("/health-facts/:id", h.GetHealthFact)

		authed := api.Group("")
		authed.Use(actorMiddleware(actor))
		{
			authed.POST("/appointments", h.BookAppointment)
			authed.GET("/appointments/:id", h.GetAppointment)
			authed.PUT("/appointments/:id", h.RescheduleAppointment)
			authed.DELETE("/appointments/:id", h.DeleteAppointment)
			authed.POST("/checkups", h.CreateCheckup)
			authed.DELETE("/checkups/:id", h.DeleteCheckup)
			authed.POST("/create-checkout-session", h.CreateCheckoutSession)
			authed.GET("/payment-success", h.PaymentSuccess)
			authed.GET("/users/:id/appointments", h.GetUserAppointments)
		}
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Signup_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	user := &domain.User{
		ID:       uuid.New().String(),
		Name:     "Alice Tan",
		Username: "alice_90",
		Email:    "alice@example.com",
		Role:     domain.RoleNormal,
	}
	m.userSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/signup", dto.SignupRequest{
		Name:        "Alice Tan",
		Birthday:    "1990-05-01",
		PhoneNumber: "60123456789",
		Email:       "alice@example.com",
		Username:    "alice_90",
		Password:    "Str0ng&Pass",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice_90", resp.Username)
}

func TestHandler_Signup_InvalidBirthday(t *testing.T) {
	_, r := setupRouter(t, domain.Actor{})

	w := doJSON(t, r, http.MethodPost, "/api/signup", dto.SignupRequest{
		Name:        "Alice Tan",
		Birthday:    "01/05/1990",
		PhoneNumber: "60123456789",
		Email:       "alice@example.com",
		Username:    "alice_90",
		Password:    "Str0ng&Pass",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Signup_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	m.userSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(t, r, http.MethodPost, "/api/signup", dto.SignupRequest{
		Name:        "Alice Tan",
		Birthday:    "1990-05-01",
		PhoneNumber: "60123456789",
		Email:       "alice@example.com",
		Username:    "alice_90",
		Password:    "Str0ng&Pass",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	user := &domain.User{ID: "u1", Username: "alice_90", Role: domain.RoleNormal}
	m.userSvc.EXPECT().Login(mock.Anything, "alice_90", "Str0ng&Pass").Return(user, "token123", nil)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{
		Username: "alice_90",
		Password: "Str0ng&Pass",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token123", resp.Token)
	assert.Equal(t, "alice_90", resp.User.Username)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	m.userSvc.EXPECT().Login(mock.Anything, "alice_90", "wrong").Return(nil, "", domain.ErrInvalidLogin)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{
		Username: "alice_90",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_BookAppointment_Success(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	checkupID := uuid.New().String()
	appt := &domain.Appointment{
		ID:        uuid.New().String(),
		UserID:    "u1",
		CheckupID: checkupID,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:      "09:00:00",
		Status:    domain.StatusConfirmed,
	}
	m.bookingSvc.EXPECT().Book(mock.Anything, actor, mock.Anything).Return(appt, nil)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", dto.BookAppointmentRequest{
		CheckupID: checkupID,
		Date:      "2026-09-15",
		Time:      "09:00:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, "09:00:00", resp.Time)
}

func TestHandler_BookAppointment_SlotFull(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	m.bookingSvc.EXPECT().Book(mock.Anything, actor, mock.Anything).Return(nil, domain.ErrSlotFull)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", dto.BookAppointmentRequest{
		CheckupID: uuid.New().String(),
		Date:      "2026-09-15",
		Time:      "09:00:00",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "fully booked")
}

func TestHandler_BookAppointment_InvalidDate(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	_, r := setupRouter(t, actor)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", dto.BookAppointmentRequest{
		CheckupID: uuid.New().String(),
		Date:      "15-09-2026",
		Time:      "09:00:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RescheduleAppointment_Success(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	apptID := uuid.New().String()
	moved := &domain.Appointment{
		ID:     apptID,
		UserID: "u1",
		Date:   time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		Time:   "11:00:00",
		Status: domain.StatusConfirmed,
	}
	m.bookingSvc.EXPECT().Reschedule(mock.Anything, actor, apptID, mock.Anything).Return(moved, nil)

	newDate := "2026-09-16"
	newTime := "11:00:00"
	w := doJSON(t, r, http.MethodPut, "/api/appointments/"+apptID, dto.RescheduleAppointmentRequest{
		Date: &newDate,
		Time: &newTime,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "11:00:00", resp.Time)
}

func TestHandler_RescheduleAppointment_NotOwner(t *testing.T) {
	actor := domain.Actor{ID: "u2", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	apptID := uuid.New().String()
	m.bookingSvc.EXPECT().Reschedule(mock.Anything, actor, apptID, mock.Anything).Return(nil, domain.ErrPermissionDenied)

	newTime := "11:00:00"
	w := doJSON(t, r, http.MethodPut, "/api/appointments/"+apptID, dto.RescheduleAppointmentRequest{Time: &newTime})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetAppointment_NotFound(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	apptID := uuid.New().String()
	m.bookingSvc.EXPECT().Get(mock.Anything, actor, apptID).Return(nil, domain.ErrAppointmentNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/appointments/"+apptID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetAppointment_InvalidID(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	_, r := setupRouter(t, actor)

	w := doJSON(t, r, http.MethodGet, "/api/appointments/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckAvailability_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	checkupID := uuid.New().String()
	m.bookingSvc.EXPECT().CheckAvailability(mock.Anything, mock.Anything).Return(&domain.Availability{
		Available: true, Remaining: 4, Max: 10,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/availability?checkup_id="+checkupID+"&date=2026-09-15&time=09:00:00", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, 4, resp.Remaining)
}

func TestHandler_CheckAvailability_StoreDown(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	checkupID := uuid.New().String()
	m.bookingSvc.EXPECT().CheckAvailability(mock.Anything, mock.Anything).Return(nil,
		fmt.Errorf("slot availability: %w: dial tcp 127.0.0.1:5432: connect: connection refused", domain.ErrUnavailable))

	w := doJSON(t, r, http.MethodGet, "/api/availability?checkup_id="+checkupID+"&date=2026-09-15&time=09:00:00", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "unavailable")
}

func TestHandler_BookAppointment_LockTimeout(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	m.bookingSvc.EXPECT().Book(mock.Anything, actor, mock.Anything).Return(nil, domain.ErrLockTimeout)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", dto.BookAppointmentRequest{
		UserID:    "u1",
		CheckupID: uuid.New().String(),
		Date:      "2026-09-15",
		Time:      "09:00:00",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestHandler_CheckAvailability_BadQuery(t *testing.T) {
	_, r := setupRouter(t, domain.Actor{})

	w := doJSON(t, r, http.MethodGet, "/api/availability?checkup_id=nope&date=2026-09-15", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateCheckup_Success(t *testing.T) {
	actor := domain.Actor{ID: "admin", Role: domain.RoleAdmin}
	m, r := setupRouter(t, actor)

	checkup := &domain.CheckupType{
		ID:              uuid.New().String(),
		Name:            "Dental Checkup",
		Price:           88.50,
		DurationMinutes: 30,
		MaxSlotsPerTime: 10,
		IsActive:        true,
	}
	m.checkupSvc.EXPECT().Create(mock.Anything, actor, mock.Anything).Return(checkup, nil)

	w := doJSON(t, r, http.MethodPost, "/api/checkups", dto.CreateCheckupRequest{
		Name:  "Dental Checkup",
		Price: 88.50,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_DeleteCheckup_BlockedWithCount(t *testing.T) {
	actor := domain.Actor{ID: "admin", Role: domain.RoleAdmin}
	m, r := setupRouter(t, actor)

	checkupID := uuid.New().String()
	m.checkupSvc.EXPECT().Delete(mock.Anything, actor, checkupID).Return(12, domain.ErrCheckupInUse)

	w := doJSON(t, r, http.MethodDelete, "/api/checkups/"+checkupID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(12), resp["appointments_count"])
}

func TestHandler_ListCheckups_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	m.checkupSvc.EXPECT().List(mock.Anything, mock.Anything).Return([]*domain.CheckupType{
		{ID: uuid.New().String(), Name: "Dental Checkup", IsActive: true},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/checkups", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CheckupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_CreateCheckoutSession_Success(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	checkupID := uuid.New().String()
	m.paymentSvc.EXPECT().CreateCheckout(mock.Anything, actor, mock.Anything).Return(&domain.CheckoutSession{
		ID:  "cs_1",
		URL: "https://checkout.example/cs_1",
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/create-checkout-session", dto.CreateCheckoutRequest{
		CheckupID: checkupID,
		Date:      "2026-09-15",
		Time:      "09:00:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckoutSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cs_1", resp.ID)
}

func TestHandler_CreateCheckoutSession_SlotFull(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	m.paymentSvc.EXPECT().CreateCheckout(mock.Anything, actor, mock.Anything).Return(nil, domain.ErrSlotFull)

	w := doJSON(t, r, http.MethodPost, "/api/create-checkout-session", dto.CreateCheckoutRequest{
		CheckupID: uuid.New().String(),
		Date:      "2026-09-15",
		Time:      "09:00:00",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PaymentSuccess_Success(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	appt := &domain.Appointment{
		ID:     uuid.New().String(),
		UserID: "u1",
		Date:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:   "09:00:00",
		Status: domain.StatusConfirmed,
	}
	m.paymentSvc.EXPECT().HandlePaymentSuccess(mock.Anything, "cs_1").Return(appt, nil)

	w := doJSON(t, r, http.MethodGet, "/api/payment-success?session_id=cs_1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentSuccess_MissingSessionID(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	_, r := setupRouter(t, actor)

	w := doJSON(t, r, http.MethodGet, "/api/payment-success", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserAppointments_Success(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	m, r := setupRouter(t, actor)

	userID := uuid.New().String()
	m.bookingSvc.EXPECT().ListByUser(mock.Anything, actor, userID).Return([]*domain.Appointment{
		{ID: uuid.New().String(), UserID: userID, Date: time.Now(), Time: "09:00:00"},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/appointments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetSpecialist_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	sp := &domain.Specialist{
		ID:             uuid.New().String(),
		Name:           "Dr. Lim Wei",
		Title:          "Consultant",
		Specialization: "Cardiology",
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	m.catalogSvc.EXPECT().GetSpecialist(mock.Anything, sp.ID).Return(sp, nil)

	w := doJSON(t, r, http.MethodGet, "/api/specialists/"+sp.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SpecialistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sp.ID, resp.ID)
	assert.Equal(t, "Cardiology", resp.Specialization)
}

func TestHandler_GetSpecialist_NotFound(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	id := uuid.New().String()
	m.catalogSvc.EXPECT().GetSpecialist(mock.Anything, id).Return(nil, domain.ErrSpecialistNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/specialists/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetHealthFact_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	fact := &domain.HealthFact{
		ID:        uuid.New().String(),
		Title:     "Hydration",
		Content:   "Drink eight glasses of water a day.",
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	m.catalogSvc.EXPECT().GetHealthFact(mock.Anything, fact.ID).Return(fact, nil)

	w := doJSON(t, r, http.MethodGet, "/api/health-facts/"+fact.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.HealthFactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, fact.ID, resp.ID)
	assert.Equal(t, "Hydration", resp.Title)
}

func TestHandler_GetHealthFact_InvalidID(t *testing.T) {
	_, r := setupRouter(t, domain.Actor{})

	w := doJSON(t, r, http.MethodGet, "/api/health-facts/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
