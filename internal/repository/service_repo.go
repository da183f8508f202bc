package repository

import (
	"context"
	"time"

	"andaman/internal/domain"
	"andaman/internal/pkg/utils"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	ProviderUserID int64  `gorm:"column:provider_user_id;uniqueIndex:idx_services_provider_name"`
	IslandID       int64  `gorm:"column:island_id"`
	Type           string `gorm:"column:type"`
	Name           string `gorm:"column:name;uniqueIndex:idx_services_provider_name"`
	Description    *string `gorm:"column:description"`
	Price          float64 `gorm:"column:price"`
	Status         string  `gorm:"column:status"`

	RentalUnit        *string `gorm:"column:rental_unit"`
	QuantityAvailable *int    `gorm:"column:quantity_available"`

	Duration     *int    `gorm:"column:duration"`
	DurationUnit *string `gorm:"column:duration_unit"`

	VehicleType        *string `gorm:"column:vehicle_type"`
	CapacityPassengers *string `gorm:"column:capacity_passengers"`

	Availability      *string `gorm:"column:availability;type:text"`
	GeneralAmenities  string  `gorm:"column:general_amenities;type:text"`
	EquipmentProvided string  `gorm:"column:equipment_provided;type:text"`
	Images            string  `gorm:"column:images;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.VendorService {
	derefS := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	derefI := func(i *int) int {
		if i == nil {
			return 0
		}
		return *i
	}

	return &domain.VendorService{
		ID:                 m.ID,
		ProviderUserID:     m.ProviderUserID,
		IslandID:           m.IslandID,
		Type:               m.Type,
		Name:               m.Name,
		Description:        derefS(m.Description),
		Price:              m.Price,
		Status:             domain.ServiceStatus(m.Status),
		RentalUnit:         derefS(m.RentalUnit),
		QuantityAvailable:  derefI(m.QuantityAvailable),
		Duration:           derefI(m.Duration),
		DurationUnit:       derefS(m.DurationUnit),
		VehicleType:        derefS(m.VehicleType),
		CapacityPassengers: derefS(m.CapacityPassengers),
		Availability:       derefS(m.Availability),
		GeneralAmenities:   utils.StringToImages(m.GeneralAmenities),
		EquipmentProvided:  utils.StringToImages(m.EquipmentProvided),
		Images:             m.Images,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toServiceModel(s *domain.VendorService) serviceModel {
	refS := func(v string) *string {
		if v == "" {
			return nil
		}
		out := v
		return &out
	}
	refI := func(v int) *int {
		if v == 0 {
			return nil
		}
		out := v
		return &out
	}

	return serviceModel{
		ID:                 s.ID,
		ProviderUserID:     s.ProviderUserID,
		IslandID:           s.IslandID,
		Type:               s.Type,
		Name:               s.Name,
		Description:        refS(s.Description),
		Price:              s.Price,
		Status:             string(s.Status),
		RentalUnit:         refS(s.RentalUnit),
		QuantityAvailable:  refI(s.QuantityAvailable),
		Duration:           refI(s.Duration),
		DurationUnit:       refS(s.DurationUnit),
		VehicleType:        refS(s.VehicleType),
		CapacityPassengers: refS(s.CapacityPassengers),
		Availability:       refS(s.Availability),
		GeneralAmenities:   utils.ImagesToString(s.GeneralAmenities),
		EquipmentProvided:  utils.ImagesToString(s.EquipmentProvided),
		Images:             s.Images,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.VendorService) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.VendorService, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) ListByProvider(ctx context.Context, providerUserID int64, limit int) ([]domain.VendorService, error) {
	var ms []serviceModel
	q := r.db.WithContext(ctx).
		Where("provider_user_id = ?", providerUserID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if tx := q.Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.VendorService, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) CountByProvider(ctx context.Context, providerUserID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&serviceModel{}).
		Where("provider_user_id = ?", providerUserID).
		Count(&cnt)
	return cnt, tx.Error
}

// UpdateImages stores the JSON-encoded image URL list for a service.
func (r *ServiceRepository) UpdateImages(ctx context.Context, id int64, images string) error {
	tx := r.db.WithContext(ctx).
		Model(&serviceModel{}).
		Where("id = ?", id).
		Update("images", images)
	return tx.Error
}
