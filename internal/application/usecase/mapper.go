package usecase

import (
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// mapList aplica f a cada elemento; nunca devuelve nil para que el JSON sea [].
func mapList[E any, R any](list []*E, f func(*E) R) []R {
	out := make([]R, 0, len(list))
	for _, e := range list {
		out = append(out, f(e))
	}
	return out
}

func strings0(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Email:          e.Email,
		Phone:          e.Phone,
		Position:       e.Position,
		Department:     e.Department,
		EmployeeNumber: e.EmployeeNumber,
		Status:         e.Status,
		HireDate:       e.HireDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toProjectResponse(p *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ClientName:       p.ClientName,
		Location:         p.Location,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Status:           p.Status,
		Budget:           p.Budget,
		ProjectManagerID: p.ProjectManagerID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toTeamMemberResponse(m *entity.ProjectTeamMember) dto.TeamMemberResponse {
	return dto.TeamMemberResponse{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Role:         m.Role,
		AddedAt:      m.AddedAt,
	}
}

func toTaskResponse(t *entity.ProjectTask) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toDocumentResponse(d *entity.ProjectDocument) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		FileKey:     d.FileKey,
		URL:         d.FileURL,
		FileSize:    d.FileSize,
		MimeType:    d.MimeType,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
	}
}

func toRFIResponse(r *entity.RFI) dto.RFIResponse {
	return dto.RFIResponse{
		ID:         r.ID,
		ProjectID:  r.ProjectID,
		RFINumber:  r.RFINumber,
		Subject:    r.Subject,
		Question:   r.Question,
		Answer:     r.Answer,
		Status:     r.Status,
		Priority:   r.Priority,
		DueDate:    r.DueDate,
		AnsweredAt: r.AnsweredAt,
		AnsweredBy: r.AnsweredBy,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toMeasurementResponse(m *entity.Measurement) dto.MeasurementResponse {
	out := dto.MeasurementResponse{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Description:  m.Description,
		Quantity:     m.Quantity,
		Unit:         m.Unit,
		UnitPrice:    m.UnitPrice,
		Location:     m.Location,
		MeasuredDate: m.MeasuredDate,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
	if m.UnitPrice != nil {
		total := m.Total()
		out.Total = &total
	}
	return out
}

func toProgressReportResponse(r *entity.ProgressReport) dto.ProgressReportResponse {
	return dto.ProgressReportResponse{
		ID:                 r.ID,
		ProjectID:          r.ProjectID,
		Title:              r.Title,
		Description:        r.Description,
		PercentageComplete: r.PercentageComplete,
		ReportDate:         r.ReportDate,
		CreatedAt:          r.CreatedAt,
	}
}

func toCapacityPlanResponse(p *entity.CapacityPlan) dto.CapacityPlanResponse {
	return dto.CapacityPlanResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		ProjectID:    p.ProjectID,
		ProjectName:  p.ProjectName,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		HoursPerDay:  p.HoursPerDay,
		TotalHours:   totalHours(p),
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toDailyReportResponse(r *entity.DailyReport) dto.DailyReportResponse {
	return dto.DailyReportResponse{
		ID:            r.ID,
		ProjectID:     r.ProjectID,
		ReportDate:    r.ReportDate,
		Weather:       r.Weather,
		Temperature:   r.Temperature,
		WorkPerformed: r.WorkPerformed,
		Attendees:     strings0(r.Attendees),
		Equipment:     r.Equipment,
		Materials:     r.Materials,
		Issues:        r.Issues,
		Photos:        strings0(r.Photos),
		Notes:         r.Notes,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toInspectionResponse(p *entity.InspectionProtocol) dto.InspectionResponse {
	findings := p.Findings
	if findings == nil {
		findings = []entity.InspectionFinding{}
	}
	return dto.InspectionResponse{
		ID:             p.ID,
		ProjectID:      p.ProjectID,
		Title:          p.Title,
		InspectionType: p.InspectionType,
		Status:         p.Status,
		InspectionDate: p.InspectionDate,
		Inspector:      p.Inspector,
		Participants:   strings0(p.Participants),
		Areas:          strings0(p.Areas),
		Findings:       findings,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toDefectResponse(d *entity.DefectProtocol) dto.DefectResponse {
	return dto.DefectResponse{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Severity:    d.Severity,
		Status:      d.Status,
		AssignedTo:  d.AssignedTo,
		DueDate:     d.DueDate,
		ResolvedAt:  d.ResolvedAt,
		Photos:      strings0(d.Photos),
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
