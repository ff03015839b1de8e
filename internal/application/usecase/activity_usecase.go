package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// Lectura del feed acotada a las entradas más recientes.
const recentActivityLimit = 10

// ActivityUseCase feed de actividad reciente (append-only).
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Recent devuelve las 10 entradas más recientes, la más nueva primero.
func (uc *ActivityUseCase) Recent() ([]*entity.Activity, error) {
	return uc.repo.Recent(recentActivityLimit)
}

// Record agrega un evento al feed. Action y type deben pertenecer a sus
// conjuntos cerrados.
func (uc *ActivityUseCase) Record(in dto.CreateActivityRequest) (*entity.Activity, error) {
	if !entity.ValidActivityAction(in.Action) || !entity.ValidActivityType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	activity := &entity.Activity{
		ID:        uuid.New().String(),
		Action:    in.Action,
		Item:      in.Item,
		Type:      in.Type,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.repo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}
