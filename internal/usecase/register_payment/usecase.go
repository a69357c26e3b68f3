package register_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	bookingRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/booking"
	promocodeRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/promocode"
)

// UseCase use case регистрации платежного события
// Подтверждает бронирование, занимает его слоты, списывает использование
// промокода и рассылает письма
type UseCase struct {
	bookingRepo       BookingRepository
	availabilityRepo  AvailabilityRepository
	promocodeRepo     PromocodeRepository
	paymentGateway    PaymentGateway
	mailer            Mailer
	txManager         TransactionManager
	notificationEmail string
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	promocodeRepo PromocodeRepository,
	paymentGateway PaymentGateway,
	mailer Mailer,
	txManager TransactionManager,
	notificationEmail string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		availabilityRepo:  availabilityRepo,
		promocodeRepo:     promocodeRepo,
		paymentGateway:    paymentGateway,
		mailer:            mailer,
		txManager:         txManager,
		notificationEmail: notificationEmail,
		logger:            logger,
	}
}

// Execute выполняет use case регистрации платежа
// Подтверждение статуса, пометка слотов и счетчик промокода выполняются
// в одной транзакции; ошибки отправки писем не откатывают подтверждение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбираем webhook-событие
	event, err := uc.paymentGateway.ParseEvent(req.Body)
	if err != nil {
		uc.logger.Warn("RegisterPayment: failed to parse event: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	sessionID := uc.paymentGateway.SessionIDFromEvent(event)
	if sessionID == "" {
		uc.logger.Warn("RegisterPayment: event carries no session id")
		return nil, ErrInvalidEvent
	}

	uc.logger.Info("RegisterPayment: session=%s", sessionID)

	// 2. Находим бронирование по сессии
	booking, err := uc.bookingRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RegisterPayment: no booking for session=%s", sessionID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RegisterPayment: failed to get booking for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CanAcceptPayment() {
		uc.logger.Warn("RegisterPayment: booking id=%d already confirmed", booking.ID)
		return nil, ErrBookingNotPayable
	}

	// 3. Получаем email клиента из события
	customerEmail, err := uc.paymentGateway.CustomerEmailFromEvent(ctx, event)
	if err != nil {
		uc.logger.Error("RegisterPayment: failed to get customer email: %v", err)
		return nil, fmt.Errorf("%w: failed to get customer email: %v", ErrInternal, err)
	}

	// 4. Подтверждаем бронирование в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.SetCustomerEmail(txCtx, booking.ID, customerEmail); err != nil {
			return fmt.Errorf("%w: failed to set customer email: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
		}
		if err := uc.availabilityRepo.MarkSlotsBooked(txCtx, booking.SlotIDs); err != nil {
			return fmt.Errorf("%w: failed to mark slots booked: %v", ErrInternal, err)
		}
		if booking.Promocode != "" {
			if err := uc.promocodeRepo.IncrementUses(txCtx, booking.Promocode); err != nil {
				// Исчезнувший промокод не должен блокировать
				// подтверждение уже оплаченного бронирования
				if errors.Is(err, promocodeRepo.ErrPromocodeNotFound) {
					uc.logger.Warn("RegisterPayment: promocode %q not found for booking id=%d, uses not incremented",
						booking.Promocode, booking.ID)
				} else {
					return fmt.Errorf("%w: failed to increment promocode uses: %v", ErrInternal, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("RegisterPayment: transaction failed for booking id=%d: %v", booking.ID, err)
		return nil, err
	}

	booking.CustomerEmail = customerEmail
	booking.Status = domain.StatusConfirmed

	// 5. Рассылаем письма: клиенту подтверждение, владельцу уведомление
	uc.sendConfirmationEmail(ctx, booking)
	uc.sendNewBookingNotificationEmail(ctx, booking)

	uc.logger.Info("RegisterPayment: booking id=%d confirmed, locator=%s", booking.ID, booking.Locator)

	return &Response{BookingID: booking.ID, Locator: booking.Locator}, nil
}

func (uc *UseCase) sendConfirmationEmail(ctx context.Context, booking *domain.Booking) {
	if booking.CustomerEmail == "" {
		return
	}
	err := uc.mailer.SendEmail(ctx,
		"Boats & Joy: Booking confirmation",
		booking.CustomerEmail,
		"confirmation",
		bookingEmailVariables(booking),
	)
	if err != nil {
		uc.logger.Error("RegisterPayment: failed to send confirmation email for booking id=%d: %v",
			booking.ID, err)
	}
}

func (uc *UseCase) sendNewBookingNotificationEmail(ctx context.Context, booking *domain.Booking) {
	err := uc.mailer.SendEmail(ctx,
		fmt.Sprintf("New booking (%s)", booking.Locator),
		uc.notificationEmail,
		"new_booking",
		bookingEmailVariables(booking),
	)
	if err != nil {
		uc.logger.Error("RegisterPayment: failed to send new booking notification for booking id=%d: %v",
			booking.ID, err)
	}
}

func bookingEmailVariables(booking *domain.Booking) map[string]interface{} {
	return map[string]interface{}{
		"locator":       booking.Locator,
		"date":          booking.Date.Format(domain.DateFormat),
		"checkin_hour":  booking.CheckinHour.String(),
		"checkout_hour": booking.CheckoutHour.String(),
		"price":         booking.Price.StringFixed(2),
		"customer_name": booking.CustomerName,
	}
}
