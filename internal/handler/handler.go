package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/handler/dto"
	"github.com/umyrahbh/healthassist/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Signup(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Create(ctx context.Context, actor domain.Actor, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (*domain.User, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
	Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type CheckupSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateCheckupInput) (*domain.CheckupType, error)
	GetByID(ctx context.Context, id string) (*domain.CheckupType, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.CheckupType, error)
	Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateCheckupInput) (*domain.CheckupType, error)
	Delete(ctx context.Context, actor domain.Actor, id string) (int, error)
}

type BookingSvc interface {
	CheckAvailability(ctx context.Context, slot domain.Slot) (*domain.Availability, error)
	Book(ctx context.Context, actor domain.Actor, in domain.BookInput) (*domain.Appointment, error)
	Reschedule(ctx context.Context, actor domain.Actor, appointmentID string, upd domain.RescheduleInput) (*domain.Appointment, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Appointment, error)
	ListByUser(ctx context.Context, actor domain.Actor, userID string) ([]*domain.Appointment, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type PaymentSvc interface {
	CreateCheckout(ctx context.Context, actor domain.Actor, slot domain.Slot) (*domain.CheckoutSession, error)
	HandlePaymentSuccess(ctx context.Context, sessionID string) (*domain.Appointment, error)
}

type CatalogSvc interface {
	CreateSpecialist(ctx context.Context, actor domain.Actor, input domain.CreateSpecialistInput) (*domain.Specialist, error)
	GetSpecialist(ctx context.Context, id string) (*domain.Specialist, error)
	ListSpecialists(ctx context.Context, actor domain.Actor) ([]*domain.Specialist, error)
	UpdateSpecialist(ctx context.Context, actor domain.Actor, id string, input domain.UpdateSpecialistInput) (*domain.Specialist, error)
	DeleteSpecialist(ctx context.Context, actor domain.Actor, id string) error
	CreateHealthFact(ctx context.Context, actor domain.Actor, input domain.CreateHealthFactInput) (*domain.HealthFact, error)
	GetHealthFact(ctx context.Context, id string) (*domain.HealthFact, error)
	ListHealthFacts(ctx context.Context, actor domain.Actor) ([]*domain.HealthFact, error)
	UpdateHealthFact(ctx context.Context, actor domain.Actor, id string, input domain.UpdateHealthFactInput) (*domain.HealthFact, error)
	DeleteHealthFact(ctx context.Context, actor domain.Actor, id string) error
}

type Handler struct {
	userService    UserSvc
	checkupService CheckupSvc
	bookingService BookingSvc
	paymentService PaymentSvc
	catalogService CatalogSvc
}

func NewHandler(
	userService UserSvc,
	checkupService CheckupSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
	catalogService CatalogSvc,
) *Handler {
	return &Handler{
		userService:    userService,
		checkupService: checkupService,
		bookingService: bookingService,
		paymentService: paymentService,
		catalogService: catalogService,
	}
}

// Auth

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	birthday, err := time.Parse(domain.DateLayout, req.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid birthday format, expected YYYY-MM-DD",
		})
		return
	}

	user, err := h.userService.Signup(c.Request.Context(), domain.CreateUserInput{
		Name:        req.Name,
		Gender:      req.Gender,
		Birthday:    birthday,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	birthday, err := time.Parse(domain.DateLayout, req.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid birthday format, expected YYYY-MM-DD",
		})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), actor, domain.CreateUserInput{
		Name:        req.Name,
		Gender:      req.Gender,
		Birthday:    birthday,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		Role:        domain.Role(req.Role),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	users, err := h.userService.List(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateUserInput{
		Name:        req.Name,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
	}
	if req.Birthday != nil {
		birthday, err := time.Parse(domain.DateLayout, *req.Birthday)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid birthday format, expected YYYY-MM-DD",
			})
			return
		}
		input.Birthday = &birthday
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Checkup types

func (h *Handler) CreateCheckup(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateCheckupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkup, err := h.checkupService.Create(c.Request.Context(), actor, domain.CreateCheckupInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		MaxSlotsPerTime: req.MaxSlotsPerTime,
		IsActive:        req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckupResponse(checkup))
}

func (h *Handler) GetCheckup(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid checkup id"})
		return
	}

	checkup, err := h.checkupService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckupResponse(checkup))
}

func (h *Handler) ListCheckups(c *ginext.Context) {
	actor, _ := middleware.GetActor(c)

	checkups, err := h.checkupService.List(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CheckupResponse, 0, len(checkups))
	for _, ct := range checkups {
		resp = append(resp, dto.ToCheckupResponse(ct))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateCheckup(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid checkup id"})
		return
	}

	var req dto.UpdateCheckupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkup, err := h.checkupService.Update(c.Request.Context(), actor, id, domain.UpdateCheckupInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		MaxSlotsPerTime: req.MaxSlotsPerTime,
		IsActive:        req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckupResponse(checkup))
}

func (h *Handler) DeleteCheckup(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid checkup id"})
		return
	}

	blocking, err := h.checkupService.Delete(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, domain.ErrCheckupInUse) {
			c.Set("error", err.Error())
			c.JSON(http.StatusConflict, ginext.H{
				"error":              err.Error(),
				"appointments_count": blocking,
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Appointments

func (h *Handler) CheckAvailability(c *ginext.Context) {
	slot, ok := h.slotFromQuery(c)
	if !ok {
		return
	}

	avail, err := h.bookingService.CheckAvailability(c.Request.Context(), slot)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(avail))
}

func (h *Handler) BookAppointment(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid appointment_date format, expected YYYY-MM-DD",
		})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = actor.ID
	}

	appt, err := h.bookingService.Book(c.Request.Context(), actor, domain.BookInput{
		UserID:        userID,
		CheckupID:     req.CheckupID,
		Date:          date,
		Time:          req.Time,
		Status:        domain.AppointmentStatus(req.Status),
		PriceOverride: req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(appt))
}

func (h *Handler) GetAppointment(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	appt, err := h.bookingService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appt))
}

func (h *Handler) ListAppointments(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	appts, err := h.bookingService.List(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		resp = append(resp, dto.ToAppointmentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserAppointments(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	appts, err := h.bookingService.ListByUser(c.Request.Context(), actor, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		resp = append(resp, dto.ToAppointmentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RescheduleAppointment(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RescheduleInput{
		NewTime:      req.Time,
		NewCheckupID: req.CheckupID,
		NewPrice:     req.Price,
	}
	if req.Date != nil {
		date, err := time.Parse(domain.DateLayout, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid appointment_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.NewDate = &date
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		input.NewStatus = &status
	}

	appt, err := h.bookingService.Reschedule(c.Request.Context(), actor, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appt))
}

func (h *Handler) DeleteAppointment(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Payments

func (h *Handler) CreateCheckoutSession(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid appointment_date format, expected YYYY-MM-DD",
		})
		return
	}

	session, err := h.paymentService.CreateCheckout(c.Request.Context(), actor, domain.Slot{
		CheckupID: req.CheckupID,
		Date:      date,
		Time:      req.Time,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutSessionResponse{ID: session.ID, URL: session.URL})
}

func (h *Handler) PaymentSuccess(c *ginext.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "session_id is required"})
		return
	}

	appt, err := h.paymentService.HandlePaymentSuccess(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appt))
}

// Specialists

func (h *Handler) CreateSpecialist(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sp, err := h.catalogService.CreateSpecialist(c.Request.Context(), actor, domain.CreateSpecialistInput{
		Name:           req.Name,
		Title:          req.Title,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSpecialistResponse(sp))
}

func (h *Handler) ListSpecialists(c *ginext.Context) {
	actor, _ := middleware.GetActor(c)

	specialists, err := h.catalogService.ListSpecialists(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SpecialistResponse, 0, len(specialists))
	for _, sp := range specialists {
		resp = append(resp, dto.ToSpecialistResponse(sp))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSpecialist(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid specialist id"})
		return
	}

	sp, err := h.catalogService.GetSpecialist(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpecialistResponse(sp))
}

func (h *Handler) UpdateSpecialist(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid specialist id"})
		return
	}

	var req dto.UpdateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sp, err := h.catalogService.UpdateSpecialist(c.Request.Context(), actor, id, domain.UpdateSpecialistInput{
		Name:           req.Name,
		Title:          req.Title,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpecialistResponse(sp))
}

func (h *Handler) DeleteSpecialist(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid specialist id"})
		return
	}

	if err := h.catalogService.DeleteSpecialist(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Health facts

func (h *Handler) CreateHealthFact(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateHealthFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	fact, err := h.catalogService.CreateHealthFact(c.Request.Context(), actor, domain.CreateHealthFactInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		IsFeatured: req.IsFeatured,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHealthFactResponse(fact))
}

func (h *Handler) ListHealthFacts(c *ginext.Context) {
	actor, _ := middleware.GetActor(c)

	facts, err := h.catalogService.ListHealthFacts(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HealthFactResponse, 0, len(facts))
	for _, f := range facts {
		resp = append(resp, dto.ToHealthFactResponse(f))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetHealthFact(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid health fact id"})
		return
	}

	fact, err := h.catalogService.GetHealthFact(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHealthFactResponse(fact))
}

func (h *Handler) UpdateHealthFact(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid health fact id"})
		return
	}

	var req dto.UpdateHealthFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	fact, err := h.catalogService.UpdateHealthFact(c.Request.Context(), actor, id, domain.UpdateHealthFactInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		IsFeatured: req.IsFeatured,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHealthFactResponse(fact))
}

func (h *Handler) DeleteHealthFact(c *ginext.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid health fact id"})
		return
	}

	if err := h.catalogService.DeleteHealthFact(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) slotFromQuery(c *ginext.Context) (domain.Slot, bool) {
	checkupID := c.Query("checkup_id")
	if _, err := uuid.Parse(checkupID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid checkup_id"})
		return domain.Slot{}, false
	}

	date, err := time.Parse(domain.DateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return domain.Slot{}, false
	}

	return domain.Slot{
		CheckupID: checkupID,
		Date:      date,
		Time:      c.Query("time"),
	}, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCheckupNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrSpecialistNotFound),
		errors.Is(err, domain.ErrHealthFactNotFound),
		errors.Is(err, domain.ErrIntentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrCheckupInUse),
		errors.Is(err, domain.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidLogin):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrLockTimeout),
		errors.Is(err, domain.ErrUnavailable):
		// Transient faults: the client may retry after a short pause.
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
