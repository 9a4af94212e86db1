package schedule

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"service/internal/entities"
)

// Schedule - админская конфигурация, которую читает расчёт доступности:
// blackout-даты, перекрытия вместимости и машины.
type Schedule struct {
	repository Repository
	schedule   SlotSchedule
}

func New(repository Repository, schedule SlotSchedule) *Schedule {
	return &Schedule{
		repository: repository,
		schedule:   schedule,
	}
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func isValidDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func (s *Schedule) CreateBlackout(ctx context.Context, date string, slot *entities.TimeSlot, reason string) (*entities.Blackout, error) {
	if date == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidDate(date) {
		return nil, ErrInvalidDate
	}
	if slot != nil && !s.schedule.IsValidSlot(*slot) {
		return nil, ErrInvalidSlot
	}

	blackout, err := s.repository.CreateBlackout(ctx, date, slot, reason)
	if err != nil {
		return nil, fmt.Errorf("create blackout: %w", err)
	}
	return blackout, nil
}

func (s *Schedule) ListBlackouts(ctx context.Context) ([]entities.Blackout, error) {
	blackouts, err := s.repository.ListBlackouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}
	return blackouts, nil
}

func (s *Schedule) DeleteBlackout(ctx context.Context, id int64) error {
	err := s.repository.DeleteBlackout(ctx, id)
	if err != nil {
		return fmt.Errorf("delete blackout: %w", err)
	}
	return nil
}

func (s *Schedule) CreateOverride(ctx context.Context, date string, slot entities.TimeSlot, capacity int64) (*entities.CapacityOverride, error) {
	if date == "" || slot == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidDate(date) {
		return nil, ErrInvalidDate
	}
	if !s.schedule.IsValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	// capacity == 0 валиден: слот закрыт, расчёт доступности пометит его blocked
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	override, err := s.repository.CreateOverride(ctx, date, slot, capacity)
	if err != nil {
		return nil, fmt.Errorf("create capacity override: %w", err)
	}
	return override, nil
}

func (s *Schedule) ListOverrides(ctx context.Context) ([]entities.CapacityOverride, error) {
	overrides, err := s.repository.ListOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("list capacity overrides: %w", err)
	}
	return overrides, nil
}

func (s *Schedule) DeleteOverride(ctx context.Context, id int64) error {
	err := s.repository.DeleteOverride(ctx, id)
	if err != nil {
		return fmt.Errorf("delete capacity override: %w", err)
	}
	return nil
}

func (s *Schedule) CreateTruck(ctx context.Context, truckModify entities.TruckModify) (int64, error) {
	if truckModify.Name == nil || truckModify.CapacityPerSlot == nil {
		return 0, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*truckModify.Name) == "" {
		return 0, ErrInvalidTruckName
	}
	if *truckModify.CapacityPerSlot <= 0 {
		return 0, ErrInvalidCapacity
	}

	id, err := s.repository.CreateTruck(ctx, truckModify)
	if err != nil {
		return 0, fmt.Errorf("create truck: %w", err)
	}
	return id, nil
}

func (s *Schedule) UpdateTruck(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error) {
	if truckModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if truckModify.Name == nil && truckModify.CapacityPerSlot == nil && truckModify.Active == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if truckModify.Name != nil && strings.TrimSpace(*truckModify.Name) == "" {
		return nil, ErrInvalidTruckName
	}
	if truckModify.CapacityPerSlot != nil && *truckModify.CapacityPerSlot <= 0 {
		return nil, ErrInvalidCapacity
	}

	truck, err := s.repository.UpdateTruck(ctx, truckModify)
	if err != nil {
		return nil, fmt.Errorf("update truck: %w", err)
	}
	return truck, nil
}

func (s *Schedule) ListTrucks(ctx context.Context) ([]entities.Truck, error) {
	trucks, err := s.repository.ListTrucks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	return trucks, nil
}
