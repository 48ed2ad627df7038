package workorder

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/dschabow91/maintrack/internal"
)

// Service handles work-order business logic and the ownership policy.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List returns every work order with the derived overdue flag attached.
// Work orders are visible to any authenticated identity.
func (s *Service) List() ([]View, error) {
	orders, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list work orders", "error", err)
		return nil, internal.NewInternalError("failed to list work orders", err)
	}

	now := s.now()
	views := make([]View, len(orders))
	for i, wo := range orders {
		views[i] = View{WorkOrder: wo, Overdue: Overdue(wo, now)}
	}
	return views, nil
}

func (s *Service) Get(id string) (*View, error) {
	wo, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &View{WorkOrder: wo, Overdue: Overdue(wo, s.now())}, nil
}

// Create records a new work order owned by the acting identity.
func (s *Service) Create(ident *internal.Identity, dto CreateWorkOrderDTO) (*WorkOrder, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	checklist := dto.Checklist
	if checklist == nil {
		checklist = datatypes.JSON([]byte("[]"))
	}

	wo := &WorkOrder{
		ID:          uuid.NewString(),
		Title:       dto.Title,
		Description: dto.Description,
		Asset:       dto.Asset,
		Location:    dto.Location,
		Priority:    dto.Priority,
		AssignedTo:  dto.AssignedTo,
		Status:      dto.Status,
		DueDate:     dto.DueDate,
		OwnerID:     ident.ID,
		Checklist:   checklist,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(wo); err != nil {
		s.logger.Error("failed to create work order", "error", err, "user_id", ident.ID)
		return nil, internal.NewInternalError("failed to create work order", err)
	}

	s.logger.Info("work order created", "work_order_id", wo.ID, "owner_id", ident.ID, "priority", wo.Priority)
	return wo, nil
}

// Update merges the allow-listed fields after the ownership check passes.
func (s *Service) Update(ident *internal.Identity, id string, dto UpdateWorkOrderDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	wo, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if !ident.CanModify(wo.OwnerID) {
		s.logger.Warn("work order update denied", "work_order_id", id, "user_id", ident.ID, "owner_id", wo.OwnerID)
		return internal.ErrNotOwner
	}

	dto.Apply(wo)
	if err := s.repo.Update(wo); err != nil {
		s.logger.Error("failed to update work order", "error", err, "work_order_id", id)
		return internal.NewInternalError("failed to update work order", err)
	}
	return nil
}

// Delete removes a work order. Deleting an absent id is a no-op success; the
// ownership check only applies when the record exists.
func (s *Service) Delete(ident *internal.Identity, id string) error {
	wo, err := s.repo.GetByID(id)
	if err != nil {
		if err == internal.ErrResourceNotFound {
			return nil
		}
		return err
	}

	if !ident.CanModify(wo.OwnerID) {
		s.logger.Warn("work order delete denied", "work_order_id", id, "user_id", ident.ID, "owner_id", wo.OwnerID)
		return internal.ErrNotOwner
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete work order", "error", err, "work_order_id", id)
		return internal.NewInternalError("failed to delete work order", err)
	}

	s.logger.Info("work order deleted", "work_order_id", id, "user_id", ident.ID)
	return nil
}

// ListComments returns a work order's comments, newest first.
func (s *Service) ListComments(workOrderID string) ([]*Comment, error) {
	comments, err := s.repo.ListComments(workOrderID)
	if err != nil {
		s.logger.Error("failed to list comments", "error", err, "work_order_id", workOrderID)
		return nil, internal.NewInternalError("failed to list comments", err)
	}
	return comments, nil
}

// AddComment records a comment owned by its author, with the author name
// denormalized at creation time.
func (s *Service) AddComment(ident *internal.Identity, workOrderID string, dto CreateCommentDTO) (*Comment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c := &Comment{
		ID:          uuid.NewString(),
		WorkOrderID: workOrderID,
		AuthorID:    ident.ID,
		AuthorName:  ident.Name,
		Text:        dto.Text,
		CreatedAt:   s.now(),
	}

	if err := s.repo.CreateComment(c); err != nil {
		s.logger.Error("failed to create comment", "error", err, "work_order_id", workOrderID)
		return nil, internal.NewInternalError("failed to create comment", err)
	}
	return c, nil
}

// DeleteComment removes a comment if the identity is its author or an admin.
// Deleting an absent comment is a no-op success.
func (s *Service) DeleteComment(ident *internal.Identity, workOrderID, commentID string) error {
	c, err := s.repo.GetComment(workOrderID, commentID)
	if err != nil {
		if err == internal.ErrResourceNotFound {
			return nil
		}
		return err
	}

	if !ident.CanModify(c.AuthorID) {
		s.logger.Warn("comment delete denied", "comment_id", commentID, "user_id", ident.ID, "author_id", c.AuthorID)
		return internal.ErrNotOwner
	}

	if err := s.repo.DeleteComment(workOrderID, commentID); err != nil {
		s.logger.Error("failed to delete comment", "error", err, "comment_id", commentID)
		return internal.NewInternalError("failed to delete comment", err)
	}
	return nil
}
