package api

import (
	"time"

	"postdesk/internal/core/domain"
)

func toDomainTask(item taskItem) (domain.Task, error) {
	status, err := domain.ParseTaskStatus(item.Status)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:                  item.ID,
		Title:               item.Title,
		Description:         item.Description,
		Type:                domain.ParseTaskType(item.TaskType),
		Status:              status,
		Priority:            domain.TaskPriority(item.Priority),
		AssigneeID:          item.AssigneeID,
		CustomerID:          item.CustomerID,
		ContentUnitID:       item.ContentUnitID,
		ContentUnitSequence: item.PostNumber,
		Deliverable:         toDomainFileRef(item.DeliverableFile),
	}

	if item.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *item.DueDate)
		if err != nil {
			return domain.Task{}, err
		}
		task.DueDate = &parsed
	}

	return task, nil
}

func toDomainTasks(items []taskItem) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		task, err := toDomainTask(item)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func toDomainUnit(item postItem) domain.ContentUnit {
	return domain.ContentUnit{
		ID:                item.ID,
		CustomerID:        item.CustomerID,
		Sequence:          item.PostNumber,
		ScheduledDate:     item.ScheduledDate,
		ScheduledTime:     item.ScheduledTime,
		Platform:          item.Platform,
		CopyIn:            item.CopyIn,
		CopyOut:           item.CopyOut,
		IdeaTema:          item.IdeaTema,
		Campaign:          item.Campaign,
		Pilar:             item.Pilar,
		Referencia:        item.Referencia,
		Arte:              toDomainFileRef(item.Arte),
		ArteFiles:         toDomainFileRefs(item.ArteFiles),
		ElementosUtilizar: toDomainFileRefs(item.ElementosUtilizar),
	}
}

func toDomainFileRef(payload *fileRefPayload) *domain.FileRef {
	if payload == nil {
		return nil
	}
	return &domain.FileRef{ID: payload.ID, Name: payload.Name, URL: payload.URL}
}

func toDomainFileRefs(payloads []fileRefPayload) []domain.FileRef {
	if len(payloads) == 0 {
		return nil
	}
	refs := make([]domain.FileRef, 0, len(payloads))
	for _, payload := range payloads {
		refs = append(refs, domain.FileRef{ID: payload.ID, Name: payload.Name, URL: payload.URL})
	}
	return refs
}

func toUpdatePostRequest(form domain.MetadataForm) updatePostRequest {
	return updatePostRequest{
		ScheduledDate: form.ScheduledDate,
		ScheduledTime: form.ScheduledTime,
		Platform:      form.Platform,
		CopyIn:        form.CopyIn,
		CopyOut:       form.CopyOut,
		IdeaTema:      form.IdeaTema,
		Campaign:      form.Campaign,
		Pilar:         form.Pilar,
		Referencia:    form.Referencia,
	}
}
