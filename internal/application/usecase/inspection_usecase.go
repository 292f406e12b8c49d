package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// InspectionUseCase protocolos de inspección.
type InspectionUseCase struct {
	repo     repository.InspectionProtocolRepository
	projects repository.ProjectRepository
}

func NewInspectionUseCase(repo repository.InspectionProtocolRepository, projects repository.ProjectRepository) *InspectionUseCase {
	return &InspectionUseCase{repo: repo, projects: projects}
}

// Create los protocolos nacen en borrador.
func (uc *InspectionUseCase) Create(ctx context.Context, userID string, in dto.CreateInspectionRequest) (*dto.InspectionResponse, error) {
	if _, err := loadProject(ctx, uc.projects, in.ProjectID); err != nil {
		return nil, err
	}
	kind := in.InspectionType
	if kind == "" {
		kind = entity.InspectionTypeRegular
	}
	if !entity.IsValidInspectionType(kind) {
		return nil, domain.Invalid("tipo de inspección desconocido %q", kind)
	}
	findings, err := cleanFindings(in.Findings)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &entity.InspectionProtocol{
		ID:             uuid.New().String(),
		ProjectID:      in.ProjectID,
		Title:          strings.TrimSpace(in.Title),
		InspectionType: kind,
		Status:         entity.InspectionStatusDraft,
		InspectionDate: dayOr(in.InspectionDate, now),
		Inspector:      in.Inspector,
		Participants:   cleanList(in.Participants),
		Areas:          cleanList(in.Areas),
		Findings:       findings,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      userID,
	}
	if p.Title == "" {
		return nil, domain.Invalid("title es obligatorio")
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toInspectionResponse(p)
	return &out, nil
}

func (uc *InspectionUseCase) GetByID(ctx context.Context, id string) (*dto.InspectionResponse, error) {
	p, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toInspectionResponse(p)
	return &out, nil
}

func (uc *InspectionUseCase) Load(ctx context.Context, id string) (*entity.InspectionProtocol, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrInspectionNotFound
	}
	return p, nil
}

func (uc *InspectionUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.InspectionResponse, error) {
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapList(list, toInspectionResponse), nil
}

// Update un protocolo aprobado ya no se modifica.
func (uc *InspectionUseCase) Update(ctx context.Context, id string, in dto.UpdateInspectionRequest) (*dto.InspectionResponse, error) {
	p, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == entity.InspectionStatusApproved {
		return nil, domain.ErrConflict
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.Invalid("title no puede quedar vacío")
		}
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.InspectionType != nil {
		if !entity.IsValidInspectionType(*in.InspectionType) {
			return nil, domain.Invalid("tipo de inspección desconocido %q", *in.InspectionType)
		}
		p.InspectionType = *in.InspectionType
	}
	if in.Status != nil {
		if !entity.IsValidInspectionStatus(*in.Status) {
			return nil, domain.Invalid("estado de inspección desconocido %q", *in.Status)
		}
		p.Status = *in.Status
	}
	if in.InspectionDate != nil {
		p.InspectionDate = dayOr(in.InspectionDate, p.InspectionDate)
	}
	if in.Inspector != nil {
		p.Inspector = *in.Inspector
	}
	if in.Participants != nil {
		p.Participants = cleanList(in.Participants)
	}
	if in.Areas != nil {
		p.Areas = cleanList(in.Areas)
	}
	if in.Findings != nil {
		if p.Findings, err = cleanFindings(in.Findings); err != nil {
			return nil, err
		}
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toInspectionResponse(p)
	return &out, nil
}

func (uc *InspectionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// cleanFindings descarta hallazgos vacíos; severidad por defecto medium.
func cleanFindings(in []entity.InspectionFinding) ([]entity.InspectionFinding, error) {
	out := make([]entity.InspectionFinding, 0, len(in))
	for _, f := range in {
		f.Description = strings.TrimSpace(f.Description)
		if f.Description == "" {
			continue
		}
		if f.Severity == "" {
			f.Severity = entity.DefectSeverityMedium
		}
		if !entity.IsValidDefectSeverity(f.Severity) {
			return nil, domain.Invalid("severidad de hallazgo desconocida %q", f.Severity)
		}
		f.Area = strings.TrimSpace(f.Area)
		f.Photos = cleanList(f.Photos)
		out = append(out, f)
	}
	return out, nil
}
