package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project y su equipo.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context, status string) ([]*entity.Project, error)
	Update(ctx context.Context, p *entity.Project) error
	Delete(ctx context.Context, id string) error

	// AddTeamMember devuelve domain.ErrDuplicate si el empleado ya está en el equipo.
	AddTeamMember(ctx context.Context, m *entity.ProjectTeamMember) error
	ListTeamMembers(ctx context.Context, projectID string) ([]*entity.ProjectTeamMember, error)
	RemoveTeamMember(ctx context.Context, id string) error
}
