package registry

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/domain/ticket"
)

// Lookup is the plate-keyed read view of the DMV registry. A nil
// record with a nil error means the plate is unregistered; the registry
// is sparse and absence is a normal outcome.
type Lookup interface {
	FindByPlate(ctx context.Context, plate string) (*ticket.RegistryRecord, error)
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type Vehicle struct {
	ID                int64  `gorm:"primaryKey"`
	Plate             string `gorm:"not null;uniqueIndex"`
	Make              string
	Model             string
	Color             string
	OwnerName         string
	OwnerContact      string
	PreferredLanguage string
	Attributes        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time
}

func (r *Repository) FindByPlate(ctx context.Context, plate string) (*ticket.RegistryRecord, error) {
	var vehicle Vehicle
	err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&vehicle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ticket.RegistryRecord{
		Plate:             vehicle.Plate,
		Make:              vehicle.Make,
		Model:             vehicle.Model,
		Color:             vehicle.Color,
		OwnerName:         vehicle.OwnerName,
		OwnerContact:      vehicle.OwnerContact,
		PreferredLanguage: vehicle.PreferredLanguage,
	}, nil
}

func (r *Repository) CreateVehicle(ctx context.Context, vehicle *Vehicle) error {
	vehicle.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(vehicle).Error
}
