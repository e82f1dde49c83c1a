package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/gen/ent"
	"github.com/carbux/fuel-receipts/gen/ent/station"
	"github.com/carbux/fuel-receipts/internal/entity"
)

// StationRepository resolves stations by exact identity within an owner's
// scope. Create surfaces ErrIdentityConflict when a concurrent identical
// create won the unique index; the finalizer re-fetches and proceeds.
type StationRepository interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Station, error)
	FindByIdentity(ctx context.Context, ownerID uuid.UUID, ident entity.StationIdentity) (*entity.Station, error)
	Create(ctx context.Context, ownerID uuid.UUID, ident entity.StationIdentity) (*entity.Station, error)
}

type stationRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewStationRepository(entc *ent.Client, log *slog.Logger) StationRepository {
	if log == nil {
		log = slog.Default()
	}
	return &stationRepo{ent: entc, log: log}
}

func (r *stationRepo) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Station, error) {
	row, err := r.ent.Station.Query().
		Where(station.ID(id), station.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toStation(row), nil
}

func (r *stationRepo) FindByIdentity(ctx context.Context, ownerID uuid.UUID, ident entity.StationIdentity) (*entity.Station, error) {
	row, err := r.ent.Station.Query().
		Where(
			station.OwnerID(ownerID),
			station.Name(ident.Name),
			station.StreetName(ident.StreetName),
			station.PostalCode(ident.PostalCode),
			station.City(ident.City),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toStation(row), nil
}

func (r *stationRepo) Create(ctx context.Context, ownerID uuid.UUID, ident entity.StationIdentity) (*entity.Station, error) {
	row, err := r.ent.Station.Create().
		SetOwnerID(ownerID).
		SetName(ident.Name).
		SetStreetName(ident.StreetName).
		SetPostalCode(ident.PostalCode).
		SetCity(ident.City).
		Save(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Debug("station create lost identity race", "owner_id", ownerID, "name", ident.Name)
			return nil, ErrIdentityConflict
		}
		r.log.Error("station create failed", "owner_id", ownerID, "name", ident.Name, "err", err)
		return nil, err
	}
	r.log.Info("station created", "station_id", row.ID, "owner_id", ownerID, "name", ident.Name)
	return toStation(row), nil
}

func toStation(row *ent.Station) *entity.Station {
	return &entity.Station{
		ID:      row.ID,
		OwnerID: row.OwnerID,
		StationIdentity: entity.StationIdentity{
			Name:       row.Name,
			StreetName: row.StreetName,
			PostalCode: row.PostalCode,
			City:       row.City,
		},
		CreatedAt: row.CreatedAt,
	}
}
