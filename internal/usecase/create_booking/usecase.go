package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	promocodeRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/promocode"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	boatRepo         BoatRepository
	promocodeRepo    PromocodeRepository
	paymentGateway   PaymentGateway
	txManager        TransactionManager
	residentDiscount decimal.Decimal
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	boatRepo BoatRepository,
	promocodeRepo PromocodeRepository,
	paymentGateway PaymentGateway,
	txManager TransactionManager,
	residentDiscount decimal.Decimal,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		boatRepo:         boatRepo,
		promocodeRepo:    promocodeRepo,
		paymentGateway:   paymentGateway,
		txManager:        txManager,
		residentDiscount: residentDiscount,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Checkout-сессия создается до транзакции; внутри сериализуемой
// транзакции слоты перечитываются с блокировкой и бронирование
// сохраняется, только если они все еще свободны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slots=%v, resident=%v, promocode=%q",
		req.SlotIDs, req.IsResident, req.Promocode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем слоты и проверяем, что они образуют один день и свободны
	slots, err := uc.fetchSlots(ctx, req.SlotIDs)
	if err != nil {
		return nil, err
	}

	// 4. Получаем день, определение и лодку для описания покупки
	day, err := uc.availabilityRepo.GetDayByID(ctx, slots[0].DayID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get day id=%d: %v", slots[0].DayID, err)
		return nil, fmt.Errorf("%w: failed to get day: %v", ErrInternal, err)
	}
	definition, err := uc.availabilityRepo.GetDayDefinitionByID(ctx, day.DefinitionID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get day definition id=%d: %v", day.DefinitionID, err)
		return nil, fmt.Errorf("%w: failed to get day definition: %v", ErrInternal, err)
	}
	boat, err := uc.boatRepo.GetByID(ctx, definition.BoatID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get boat id=%d: %v", definition.BoatID, err)
		return nil, fmt.Errorf("%w: failed to get boat: %v", ErrInternal, err)
	}

	// 5. Вычисляем цену со скидками резидента и промокода
	promocode, err := uc.lookupPromocode(ctx, req.Promocode, now, day.Date)
	if err != nil {
		return nil, err
	}
	price := applyDiscounts(req.BasePrice, uc.residentDiscount, req.IsResident, promocode)

	// 6. Создаем checkout-сессию в платежном шлюзе
	description := fmt.Sprintf("Renting for %s from %s to %s",
		day.Date.Format(domain.DateFormat), slots[0].FromHour, slots[len(slots)-1].ToHour)
	sessionID, err := uc.paymentGateway.CreateCheckoutSession(ctx, boat.Name, description, price)
	if err != nil {
		uc.logger.Error("CreateBooking: checkout failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	// 7. Генерируем локатор
	locator, err := generateLocator()
	if err != nil {
		return nil, err
	}

	// Имя промокода сохраняется, только если скидка была применена:
	// по нему при подтверждении оплаты увеличивается счетчик использований
	appliedPromocode := ""
	if promocode != nil {
		appliedPromocode = promocode.Name
	}

	booking := &domain.Booking{
		Locator:                 locator,
		Price:                   price,
		SlotIDs:                 req.SlotIDs,
		Date:                    day.Date,
		CheckinHour:             slots[0].FromHour,
		CheckoutHour:            slots[len(slots)-1].ToHour,
		CustomerName:            req.CustomerName,
		CustomerTelephoneNumber: req.CustomerTelephoneNumber,
		Status:                  domain.StatusPending,
		SessionID:               sessionID,
		Extras:                  req.Extras,
		Promocode:               appliedPromocode,
	}

	// 8. Сохраняем бронирование в сериализуемой транзакции
	// Слоты перечитываются с FOR UPDATE: гонка двух покупателей за один
	// слот разрешается на этом шаге
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.fetchSlots(txCtx, req.SlotIDs); err != nil {
			return err
		}

		var err error
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, locator=%s, price=%s",
		created.ID, created.Locator, created.Price)

	return &Response{Booking: toBookingInfo(created)}, nil
}

// fetchSlots получает слоты по идентификаторам и проверяет, что все они
// существуют, свободны и принадлежат одному дню. Возвращает слоты,
// отсортированные по позиции
func (uc *UseCase) fetchSlots(ctx context.Context, slotIDs []int64) ([]domain.Slot, error) {
	slots, err := uc.availabilityRepo.GetSlotsByIDs(ctx, slotIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get slots %v: %v", slotIDs, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}
	if len(slots) != len(slotIDs) {
		uc.logger.Warn("CreateBooking: %d of %d slots not found", len(slotIDs)-len(slots), len(slotIDs))
		return nil, ErrSlotNotFound
	}

	dayID := slots[0].DayID
	for _, slot := range slots {
		if slot.DayID != dayID {
			uc.logger.Warn("CreateBooking: slots %v span multiple days", slotIDs)
			return nil, ErrNoSameDaySlots
		}
		if slot.Booked {
			uc.logger.Warn("CreateBooking: slot id=%d is already booked", slot.ID)
			return nil, ErrSlotAlreadyBooked
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Position < slots[j].Position
	})
	return slots, nil
}

// lookupPromocode ищет действующий промокод
// Отсутствие или невалидность кода не ошибка: скидка просто не применяется
func (uc *UseCase) lookupPromocode(ctx context.Context, name string, useDay, bookingDay time.Time) (*domain.Promocode, error) {
	if name == "" {
		return nil, nil
	}

	promocode, err := uc.promocodeRepo.GetValid(ctx, name, useDay, bookingDay)
	if err != nil {
		if errors.Is(err, promocodeRepo.ErrPromocodeNotFound) {
			uc.logger.Warn("CreateBooking: promocode %q is not valid, no discount applied", name)
			return nil, nil
		}
		uc.logger.Error("CreateBooking: failed to get promocode %q: %v", name, err)
		return nil, fmt.Errorf("%w: failed to get promocode: %v", ErrInternal, err)
	}
	return promocode, nil
}
