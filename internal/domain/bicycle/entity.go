package bicycle

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Spec carries the catalog attributes of a bicycle.
type Spec struct {
	Brand     string
	Condition Condition
	Kind      Kind
	Gears     int
	Frame     FrameType
	WheelSize int
	Color     *string
	Rates     Rates
}

func (s Spec) validate() error {
	if strings.TrimSpace(s.Brand) == "" {
		return ErrInvalidBrand
	}
	if !s.Condition.IsValid() {
		return ErrInvalidCondition
	}
	if !s.Kind.IsValid() {
		return ErrInvalidKind
	}
	if !s.Frame.IsValid() {
		return ErrInvalidFrameType
	}
	if s.Gears <= 0 {
		return ErrInvalidGears
	}
	if s.WheelSize <= 0 {
		return ErrInvalidWheelSize
	}
	return nil
}

type Bicycle struct {
	id        uuid.UUID
	spec      Spec
	available bool
	createdAt time.Time
	updatedAt time.Time
}

func NewBicycle(spec Spec, now time.Time) (*Bicycle, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	spec.Brand = strings.TrimSpace(spec.Brand)
	return &Bicycle{
		id:        uuid.New(),
		spec:      spec,
		available: true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, spec Spec, available bool, createdAt, updatedAt time.Time) *Bicycle {
	return &Bicycle{
		id:        id,
		spec:      spec,
		available: available,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Revise replaces the catalog attributes. Availability is owned by the rental lifecycle.
func (b *Bicycle) Revise(spec Spec, now time.Time) error {
	if err := spec.validate(); err != nil {
		return err
	}
	spec.Brand = strings.TrimSpace(spec.Brand)
	b.spec = spec
	b.updatedAt = now
	return nil
}

func (b *Bicycle) SetAvailable(available bool, now time.Time) {
	b.available = available
	b.updatedAt = now
}

func (b *Bicycle) ID() uuid.UUID        { return b.id }
func (b *Bicycle) Spec() Spec           { return b.spec }
func (b *Bicycle) Brand() string        { return b.spec.Brand }
func (b *Bicycle) Condition() Condition { return b.spec.Condition }
func (b *Bicycle) Kind() Kind           { return b.spec.Kind }
func (b *Bicycle) Gears() int           { return b.spec.Gears }
func (b *Bicycle) Frame() FrameType     { return b.spec.Frame }
func (b *Bicycle) WheelSize() int       { return b.spec.WheelSize }
func (b *Bicycle) Color() *string       { return b.spec.Color }
func (b *Bicycle) Rates() Rates         { return b.spec.Rates }
func (b *Bicycle) IsAvailable() bool    { return b.available }
func (b *Bicycle) CreatedAt() time.Time { return b.createdAt }
func (b *Bicycle) UpdatedAt() time.Time { return b.updatedAt }
