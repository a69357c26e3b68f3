package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	bookingRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/booking"
	"github.com/boatsandjoy/BNJ-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo       BookingRepository
	availabilityRepo  AvailabilityRepository
	boatRepo          BoatRepository
	paymentGateway    PaymentGateway
	mailer            Mailer
	notificationEmail string
	logger            Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	boatRepo BoatRepository,
	paymentGateway PaymentGateway,
	mailer Mailer,
	notificationEmail string,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:       bookingRepo,
		availabilityRepo:  availabilityRepo,
		boatRepo:          boatRepo,
		paymentGateway:    paymentGateway,
		mailer:            mailer,
		notificationEmail: notificationEmail,
		logger:            logger,
	}
}

// GetByID получает бронирование по ID
// При generateNewSession создается новая checkout-сессия платежного шлюза,
// например когда старая истекла до оплаты
func (s *Service) GetByID(ctx context.Context, id int64, generateNewSession bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d, newSession=%v", id, generateNewSession)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if generateNewSession {
		if booking, err = s.regenerateSession(ctx, booking); err != nil {
			return nil, err
		}
	}

	return models.FromDomainBooking(booking), nil
}

// GetByLocator получает бронирование по локатору
// Локатор приходит клиенту в письме-подтверждении
func (s *Service) GetByLocator(ctx context.Context, locator string) (*models.BookingResponse, error) {
	s.logger.Info("GetByLocator: fetching booking locator=%s", locator)

	if locator == "" {
		return nil, fmt.Errorf("%w: locator is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByLocator(ctx, locator)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByLocator: booking locator=%s not found", locator)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByLocator: repository error for locator=%s: %v", locator, err)
		return nil, fmt.Errorf("%w: GetByLocator - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetBySession получает бронирование по идентификатору checkout-сессии
func (s *Service) GetBySession(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	s.logger.Info("GetBySession: fetching booking for session=%s", sessionID)

	booking, err := s.getBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// MarkAsError переводит бронирование в статус error
// Если оплата так и не прошла, владельцу уходит уведомление о сбое платежа
func (s *Service) MarkAsError(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	s.logger.Info("MarkAsError: session=%s", sessionID)

	booking, err := s.getBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !booking.IsConfirmed() {
		s.sendPaymentErrorNotificationEmail(ctx, booking)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusError); err != nil {
		s.logger.Error("MarkAsError: failed to update booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: MarkAsError - repository error: %v", ErrInternal, err)
	}
	booking.Status = domain.StatusError

	return models.FromDomainBooking(booking), nil
}

func (s *Service) getBySession(ctx context.Context, sessionID string) (*domain.Booking, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getBySession: no booking for session=%s", sessionID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBySession: repository error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: getBySession - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// regenerateSession создает новую checkout-сессию для существующего
// бронирования и сохраняет ее идентификатор
func (s *Service) regenerateSession(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	boatName, err := s.lookupBoatName(ctx, booking)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Renting for %s from %s to %s",
		booking.Date.Format(domain.DateFormat), booking.CheckinHour, booking.CheckoutHour)
	sessionID, err := s.paymentGateway.CreateCheckoutSession(ctx, boatName, description, booking.Price)
	if err != nil {
		s.logger.Error("regenerateSession: checkout failed for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	if err := s.bookingRepo.UpdateSessionID(ctx, booking.ID, sessionID); err != nil {
		s.logger.Error("regenerateSession: failed to store session for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: regenerateSession - repository error: %v", ErrInternal, err)
	}
	booking.SessionID = sessionID

	s.logger.Info("regenerateSession: booking id=%d got new session=%s", booking.ID, sessionID)
	return booking, nil
}

// lookupBoatName восстанавливает лодку бронирования через его слоты
func (s *Service) lookupBoatName(ctx context.Context, booking *domain.Booking) (string, error) {
	slots, err := s.availabilityRepo.GetSlotsByIDs(ctx, booking.SlotIDs)
	if err != nil || len(slots) == 0 {
		s.logger.Error("lookupBoatName: failed to get slots for booking id=%d: %v", booking.ID, err)
		return "", fmt.Errorf("%w: lookupBoatName - failed to get slots: %v", ErrInternal, err)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Position < slots[j].Position })

	day, err := s.availabilityRepo.GetDayByID(ctx, slots[0].DayID)
	if err != nil {
		return "", fmt.Errorf("%w: lookupBoatName - failed to get day: %v", ErrInternal, err)
	}
	definition, err := s.availabilityRepo.GetDayDefinitionByID(ctx, day.DefinitionID)
	if err != nil {
		return "", fmt.Errorf("%w: lookupBoatName - failed to get day definition: %v", ErrInternal, err)
	}
	boat, err := s.boatRepo.GetByID(ctx, definition.BoatID)
	if err != nil {
		return "", fmt.Errorf("%w: lookupBoatName - failed to get boat: %v", ErrInternal, err)
	}
	return boat.Name, nil
}

func (s *Service) sendPaymentErrorNotificationEmail(ctx context.Context, booking *domain.Booking) {
	err := s.mailer.SendEmail(ctx,
		fmt.Sprintf("Booking %s payment error", booking.Locator),
		s.notificationEmail,
		"payment_error_notification",
		map[string]interface{}{
			"locator":       booking.Locator,
			"date":          booking.Date.Format(domain.DateFormat),
			"customer_name": booking.CustomerName,
			"price":         booking.Price.StringFixed(2),
		},
	)
	if err != nil {
		s.logger.Error("sendPaymentErrorNotificationEmail: booking id=%d: %v", booking.ID, err)
	}
}
