package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// requestDateLayout matches the date formatting used by the stored blobs,
// e.g. "8/28/2026".
const requestDateLayout = "1/2/2006"

// RequestStore exposes the persistence operations needed by the request
// service. Request identifiers are globally sequential even though listings
// are filtered per owner.
type RequestStore interface {
	AppendRequest(ctx context.Context, request Request) error
	DeleteRequest(ctx context.Context, id, ownerEmail string) error
	ListRequestsByOwner(ctx context.Context, ownerEmail string) ([]Request, error)
	CountRequests(ctx context.Context) (int, error)
}

// RequestService owns the transient item list being assembled for the next
// request and the submission and deletion workflows.
type RequestService struct {
	requests RequestStore
	now      func() time.Time
	logger   *slog.Logger

	items []RequestItem
}

// NewRequestService wires dependencies for the request service.
func NewRequestService(requests RequestStore, now func() time.Time, logger *slog.Logger) *RequestService {
	if now == nil {
		now = time.Now
	}
	return &RequestService{requests: requests, now: now, logger: defaultLogger(logger)}
}

// AddItem appends a line item to the transient list after validating the name
// and the positive quantity.
func (s *RequestService) AddItem(name string, quantity int) error {
	if s == nil {
		return fmt.Errorf("RequestService is nil")
	}

	vErr := &ValidationError{}
	if name == "" {
		vErr.add("name", "item name is required")
	}
	if quantity <= 0 {
		vErr.add("quantity", "quantity must be a positive integer")
	}
	if vErr.HasErrors() {
		return vErr
	}

	s.items = append(s.items, RequestItem{Name: name, Quantity: quantity})
	return nil
}

// RemoveItem drops the item at the given position in the transient list.
func (s *RequestService) RemoveItem(index int) error {
	if s == nil {
		return fmt.Errorf("RequestService is nil")
	}
	if index < 0 || index >= len(s.items) {
		return ErrNotFound
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Items returns a copy of the transient item list.
func (s *RequestService) Items() []RequestItem {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make([]RequestItem, len(s.items))
	copy(out, s.items)
	return out
}

// Reset clears the transient item list. It runs whenever the new-request
// entry point opens and after every successful submission.
func (s *RequestService) Reset() {
	if s == nil {
		return
	}
	s.items = nil
}

// Submit validates the assembled request and persists it. The identifier is
// the zero-padded global sequence number with the REQ- prefix, the status is
// Pending, and the transient item list is cleared on success.
func (s *RequestService) Submit(ctx context.Context, params SubmitRequestParams) (request Request, err error) {
	if s == nil {
		err = fmt.Errorf("RequestService is nil")
		return
	}
	if s.requests == nil {
		err = fmt.Errorf("request store not configured")
		return
	}

	logger := serviceLogger(ctx, s.logger, "RequestService", "Submit", "type", params.Type)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "request submission failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("request_id", request.ID).InfoContext(ctx, "request submitted")
	}()

	if params.OwnerEmail == "" {
		err = ErrAnonymous
		return
	}

	vErr := &ValidationError{}
	if params.Type == "" {
		vErr.add("type", "please select a request type")
	}
	if len(s.items) == 0 {
		vErr.add("items", "please add at least one item")
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	var count int
	count, err = s.requests.CountRequests(ctx)
	if err != nil {
		return
	}

	items := make([]RequestItem, len(s.items))
	copy(items, s.items)

	request = Request{
		ID:         fmt.Sprintf("REQ-%03d", count+1),
		Type:       params.Type,
		Items:      items,
		Status:     RequestStatusPending,
		Date:       s.now().Format(requestDateLayout),
		OwnerEmail: params.OwnerEmail,
	}

	if err = s.requests.AppendRequest(ctx, request); err != nil {
		request = Request{}
		return
	}

	s.items = nil
	return
}

// ListFor returns the requests owned by the given account email, in
// submission order.
func (s *RequestService) ListFor(ctx context.Context, ownerEmail string) ([]Request, error) {
	if s == nil {
		return nil, fmt.Errorf("RequestService is nil")
	}
	if s.requests == nil {
		return nil, nil
	}
	return s.requests.ListRequestsByOwner(ctx, ownerEmail)
}

// Delete removes a request by its stable identifier, restricted to the owning
// account. Interactive confirmation is the caller's responsibility.
func (s *RequestService) Delete(ctx context.Context, ownerEmail, id string) error {
	if s == nil {
		return fmt.Errorf("RequestService is nil")
	}
	if s.requests == nil {
		return fmt.Errorf("request store not configured")
	}
	if ownerEmail == "" {
		return ErrAnonymous
	}

	if err := s.requests.DeleteRequest(ctx, id, ownerEmail); err != nil {
		return err
	}

	serviceLogger(ctx, s.logger, "RequestService", "Delete").
		InfoContext(ctx, "request deleted", "request_id", id)
	return nil
}
