package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// loadProject devuelve ErrProjectNotFound si la obra no existe.
func loadProject(ctx context.Context, repo repository.ProjectRepository, id string) (*entity.Project, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.Invalid("project_id es obligatorio")
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

// checkEmployee valida una referencia opcional a empleado.
func checkEmployee(ctx context.Context, repo repository.EmployeeRepository, id *string) error {
	if id == nil || *id == "" {
		return nil
	}
	e, err := repo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// emptyToNil normaliza "" a nil en referencias opcionales.
func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// dayOr trunca t al día (UTC) o usa hoy si es nil.
func dayOr(t *time.Time, now time.Time) time.Time {
	if t == nil {
		return now.Truncate(24 * time.Hour)
	}
	return t.UTC().Truncate(24 * time.Hour)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func orNop(n ports.Notifier) ports.Notifier {
	if n == nil {
		return ports.NopNotifier{}
	}
	return n
}
