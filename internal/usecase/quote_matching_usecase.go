package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"solar_quotes/internal/domain/entities"
	"solar_quotes/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuoteRequestNotFound   = errors.New("quote request not found")
	ErrQuoteResponseNotFound  = errors.New("quote response not found")
	ErrInvalidUserID          = errors.New("invalid user_id")
	ErrInvalidVendorID        = errors.New("invalid vendor_id")
	ErrInvalidQuoteRequestID  = errors.New("invalid quote request id")
	ErrInvalidQuoteResponseID = errors.New("invalid quote response id")
	ErrQuoteRequestClosed     = errors.New("quote request closed")
	ErrQuoteAlreadyAccepted   = errors.New("quote request already has an accepted quote")
	ErrDuplicateVendorQuote   = errors.New("vendor already quoted this request")
	ErrInvalidQuoteTransition = errors.New("invalid quote status transition")
	ErrInvalidSnapshot        = errors.New("invalid quote snapshot")
)

const (
	DefaultQuoteSnapshotKey = "solar-quotes"

	snapshotSaveTimeout = 5 * time.Second
)

// NewQuoteRequest carries the customer supplied fields of a quote request.
type NewQuoteRequest struct {
	UserID       string
	Contact      entities.ContactInfo
	PropertyType string
	Address      string
	City         string
	MonthlyBill  float64
	BudgetRange  string
	SystemSize   *float64
	RoofArea     *float64
	Description  string
}

// NewVendorQuote carries the vendor supplied fields of a quote response.
type NewVendorQuote struct {
	RequestID         string
	VendorID          string
	VendorName        string
	VendorEmail       string
	VendorPhone       string
	VendorRating      float64
	VendorReviewCount int

	SystemSize            float64
	TotalPrice            float64
	PricePerWatt          float64
	Financing             entities.FinancingTerms
	InstallationTimeframe string
	Equipment             entities.EquipmentInfo
	Highlights            []string
	Terms                 string
	ValidUntil            time.Time
}

// IQuoteMatchingUseCase exposes the quote request/response workflow.
//
//   - customers submit requests and accept/reject vendor quotes
//   - vendors browse requests they have not answered and submit quotes

type IQuoteMatchingUseCase interface {
	SubmitQuoteRequest(ctx context.Context, in NewQuoteRequest) (entities.QuoteRequest, error)
	GetUserQuoteRequests(ctx context.Context, userID string) ([]entities.QuoteRequestDetail, error)
	GetAvailableQuoteRequests(ctx context.Context, vendorID string) ([]entities.QuoteRequestDetail, error)
	SubmitVendorQuote(ctx context.Context, in NewVendorQuote) (entities.QuoteResponse, error)
	GetVendorQuoteResponses(ctx context.Context, vendorID string) ([]entities.QuoteResponse, error)
	GetQuoteRequestByID(ctx context.Context, id string) (entities.QuoteRequestDetail, error)
	AcceptVendorQuote(ctx context.Context, requestID, responseID string) (entities.QuoteRequestDetail, error)
	RejectVendorQuote(ctx context.Context, requestID, responseID string) (entities.QuoteRequestDetail, error)
}

// QuoteMatchingUseCase is the in-memory quote store.
//
// Responses are stored once, keyed by id; each request keeps the ordered ids
// of its responses. Every operation runs under mu, so each call is a single
// state transition. After a mutation the whole state is written as one
// snapshot blob (best effort: a failed save is logged, memory stays the
// source of truth).
type QuoteMatchingUseCase struct {
	mu            sync.RWMutex
	requests      map[string]*entities.QuoteRequest
	requestOrder  []string
	responses     map[string]*entities.QuoteResponse
	responseOrder []string

	snapshots   interfaces.IQuoteSnapshotRepository
	snapshotKey string

	now   func() time.Time
	newID func() string
}

var _ IQuoteMatchingUseCase = (*QuoteMatchingUseCase)(nil)

// NewQuoteMatchingUseCase builds an empty store. snapshots may be nil, in which
// case nothing is persisted.
func NewQuoteMatchingUseCase(snapshots interfaces.IQuoteSnapshotRepository, snapshotKey string) *QuoteMatchingUseCase {
	snapshotKey = strings.TrimSpace(snapshotKey)
	if snapshotKey == "" {
		snapshotKey = DefaultQuoteSnapshotKey
	}
	return &QuoteMatchingUseCase{
		requests:    map[string]*entities.QuoteRequest{},
		responses:   map[string]*entities.QuoteResponse{},
		snapshots:   snapshots,
		snapshotKey: snapshotKey,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

func (u *QuoteMatchingUseCase) SubmitQuoteRequest(ctx context.Context, in NewQuoteRequest) (entities.QuoteRequest, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return entities.QuoteRequest{}, ErrInvalidUserID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	r := &entities.QuoteRequest{
		ID:              u.newID(),
		UserID:          userID,
		Contact:         in.Contact,
		PropertyType:    in.PropertyType,
		Address:         in.Address,
		City:            in.City,
		MonthlyBill:     in.MonthlyBill,
		BudgetRange:     in.BudgetRange,
		SystemSize:      cloneFloat(in.SystemSize),
		RoofArea:        cloneFloat(in.RoofArea),
		Description:     in.Description,
		Status:          entities.QuoteRequestStatusPending,
		QuotesRequested: entities.DefaultQuotesRequested,
		ResponseIDs:     []string{},
		CreatedAt:       u.now(),
	}
	u.requests[r.ID] = r
	u.requestOrder = append(u.requestOrder, r.ID)
	log.Printf("[quote][usecase] request submitted request_id=%s user_id=%s urgency=%s", r.ID, r.UserID, r.Urgency())

	u.persistLocked(ctx)
	return cloneRequest(r), nil
}

func (u *QuoteMatchingUseCase) GetUserQuoteRequests(_ context.Context, userID string) ([]entities.QuoteRequestDetail, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]entities.QuoteRequestDetail, 0)
	for _, id := range u.requestOrder {
		r := u.requests[id]
		if r.UserID == userID {
			out = append(out, u.detailLocked(r))
		}
	}
	return out, nil
}

// GetAvailableQuoteRequests returns pending requests vendorID has not quoted.
// An empty vendorID returns every pending request.
func (u *QuoteMatchingUseCase) GetAvailableQuoteRequests(_ context.Context, vendorID string) ([]entities.QuoteRequestDetail, error) {
	vendorID = strings.TrimSpace(vendorID)

	u.mu.RLock()
	defer u.mu.RUnlock()

	quoted := map[string]struct{}{}
	if vendorID != "" {
		for _, id := range u.responseOrder {
			if resp := u.responses[id]; resp.VendorID == vendorID {
				quoted[resp.RequestID] = struct{}{}
			}
		}
	}

	out := make([]entities.QuoteRequestDetail, 0)
	for _, id := range u.requestOrder {
		r := u.requests[id]
		if r.Status != entities.QuoteRequestStatusPending {
			continue
		}
		if _, ok := quoted[r.ID]; ok {
			continue
		}
		out = append(out, u.detailLocked(r))
	}
	return out, nil
}

func (u *QuoteMatchingUseCase) SubmitVendorQuote(ctx context.Context, in NewVendorQuote) (entities.QuoteResponse, error) {
	requestID := strings.TrimSpace(in.RequestID)
	if requestID == "" {
		return entities.QuoteResponse{}, ErrInvalidQuoteRequestID
	}
	vendorID := strings.TrimSpace(in.VendorID)
	if vendorID == "" {
		return entities.QuoteResponse{}, ErrInvalidVendorID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	r, ok := u.requests[requestID]
	if !ok {
		return entities.QuoteResponse{}, ErrQuoteRequestNotFound
	}
	if r.Status == entities.QuoteRequestStatusCompleted {
		log.Printf("[quote][usecase] quote rejected, request closed request_id=%s vendor_id=%s", requestID, vendorID)
		return entities.QuoteResponse{}, ErrQuoteRequestClosed
	}
	for _, id := range r.ResponseIDs {
		if u.responses[id].VendorID == vendorID {
			return entities.QuoteResponse{}, ErrDuplicateVendorQuote
		}
	}

	resp := &entities.QuoteResponse{
		ID:                    u.newID(),
		RequestID:             requestID,
		VendorID:              vendorID,
		VendorName:            in.VendorName,
		VendorEmail:           in.VendorEmail,
		VendorPhone:           in.VendorPhone,
		VendorRating:          in.VendorRating,
		VendorReviewCount:     in.VendorReviewCount,
		SystemSize:            in.SystemSize,
		TotalPrice:            in.TotalPrice,
		PricePerWatt:          in.PricePerWatt,
		Financing:             in.Financing,
		InstallationTimeframe: in.InstallationTimeframe,
		Equipment:             in.Equipment,
		Highlights:            cloneStrings(in.Highlights),
		Terms:                 in.Terms,
		ValidUntil:            in.ValidUntil,
		Status:                entities.QuoteResponseStatusSubmitted,
		CreatedAt:             u.now(),
	}
	u.responses[resp.ID] = resp
	u.responseOrder = append(u.responseOrder, resp.ID)

	r.ResponseIDs = append(r.ResponseIDs, resp.ID)
	r.Status = entities.QuoteRequestStatusActive
	log.Printf("[quote][usecase] vendor quote submitted request_id=%s response_id=%s vendor_id=%s quotes_received=%d",
		requestID, resp.ID, vendorID, r.QuotesReceived())

	u.persistLocked(ctx)
	return cloneResponse(resp), nil
}

func (u *QuoteMatchingUseCase) GetVendorQuoteResponses(_ context.Context, vendorID string) ([]entities.QuoteResponse, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return nil, ErrInvalidVendorID
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]entities.QuoteResponse, 0)
	for _, id := range u.responseOrder {
		if resp := u.responses[id]; resp.VendorID == vendorID {
			out = append(out, cloneResponse(resp))
		}
	}
	return out, nil
}

func (u *QuoteMatchingUseCase) GetQuoteRequestByID(_ context.Context, id string) (entities.QuoteRequestDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequestDetail{}, ErrInvalidQuoteRequestID
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	r, ok := u.requests[id]
	if !ok {
		return entities.QuoteRequestDetail{}, ErrQuoteRequestNotFound
	}
	return u.detailLocked(r), nil
}

// AcceptVendorQuote accepts one response and rejects all of its siblings.
// A request accepts at most one quote; a second accept fails with
// ErrQuoteAlreadyAccepted.
func (u *QuoteMatchingUseCase) AcceptVendorQuote(ctx context.Context, requestID, responseID string) (entities.QuoteRequestDetail, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	r, chosen, err := u.lookupPairLocked(requestID, responseID)
	if err != nil {
		return entities.QuoteRequestDetail{}, err
	}
	if r.Status == entities.QuoteRequestStatusCompleted {
		return entities.QuoteRequestDetail{}, ErrQuoteAlreadyAccepted
	}
	if chosen.Status != entities.QuoteResponseStatusSubmitted {
		return entities.QuoteRequestDetail{}, ErrInvalidQuoteTransition
	}

	for _, id := range r.ResponseIDs {
		resp := u.responses[id]
		if id == chosen.ID {
			resp.Status = entities.QuoteResponseStatusAccepted
		} else {
			resp.Status = entities.QuoteResponseStatusRejected
		}
	}
	r.Status = entities.QuoteRequestStatusCompleted
	log.Printf("[quote][usecase] vendor quote accepted request_id=%s response_id=%s vendor_id=%s siblings_rejected=%d",
		r.ID, chosen.ID, chosen.VendorID, len(r.ResponseIDs)-1)

	u.persistLocked(ctx)
	return u.detailLocked(r), nil
}

// RejectVendorQuote rejects a single response; the request status is unchanged.
// Rejecting an already rejected response is a no-op.
func (u *QuoteMatchingUseCase) RejectVendorQuote(ctx context.Context, requestID, responseID string) (entities.QuoteRequestDetail, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	r, resp, err := u.lookupPairLocked(requestID, responseID)
	if err != nil {
		return entities.QuoteRequestDetail{}, err
	}

	switch resp.Status {
	case entities.QuoteResponseStatusRejected:
		return u.detailLocked(r), nil
	case entities.QuoteResponseStatusAccepted:
		return entities.QuoteRequestDetail{}, ErrInvalidQuoteTransition
	}

	resp.Status = entities.QuoteResponseStatusRejected
	log.Printf("[quote][usecase] vendor quote rejected request_id=%s response_id=%s vendor_id=%s", r.ID, resp.ID, resp.VendorID)

	u.persistLocked(ctx)
	return u.detailLocked(r), nil
}

// Restore replaces the in-memory state with the persisted snapshot. A snapshot
// that fails validateSnapshot is rejected and the current state is kept.
func (u *QuoteMatchingUseCase) Restore(ctx context.Context) error {
	if u.snapshots == nil {
		return nil
	}

	snap, err := u.snapshots.Load(ctx, u.snapshotKey)
	if err != nil {
		log.Printf("[quote][usecase] snapshot load failed key=%s err=%v", u.snapshotKey, err)
		return err
	}
	if err := validateSnapshot(snap); err != nil {
		log.Printf("[quote][usecase] snapshot rejected key=%s requests=%d responses=%d err=%v",
			u.snapshotKey, len(snap.Requests), len(snap.Responses), err)
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.requests = make(map[string]*entities.QuoteRequest, len(snap.Requests))
	u.requestOrder = make([]string, 0, len(snap.Requests))
	for i := range snap.Requests {
		r := cloneRequest(&snap.Requests[i])
		u.requests[r.ID] = &r
		u.requestOrder = append(u.requestOrder, r.ID)
	}

	u.responses = make(map[string]*entities.QuoteResponse, len(snap.Responses))
	u.responseOrder = make([]string, 0, len(snap.Responses))
	for i := range snap.Responses {
		resp := cloneResponse(&snap.Responses[i])
		u.responses[resp.ID] = &resp
		u.responseOrder = append(u.responseOrder, resp.ID)
	}

	log.Printf("[quote][usecase] snapshot restored key=%s requests=%d responses=%d", u.snapshotKey, len(u.requestOrder), len(u.responseOrder))
	return nil
}

// validateSnapshot checks the links between requests and responses: ids are
// unique and non-empty, every listed response exists and points back at the
// request listing it, and every response is listed exactly once.
func validateSnapshot(snap entities.QuoteSnapshot) error {
	requests := make(map[string]struct{}, len(snap.Requests))
	for _, r := range snap.Requests {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("%w: request with empty id", ErrInvalidSnapshot)
		}
		if _, dup := requests[r.ID]; dup {
			return fmt.Errorf("%w: duplicate request id %s", ErrInvalidSnapshot, r.ID)
		}
		requests[r.ID] = struct{}{}
	}

	owner := make(map[string]string, len(snap.Responses))
	for _, resp := range snap.Responses {
		if strings.TrimSpace(resp.ID) == "" {
			return fmt.Errorf("%w: response with empty id", ErrInvalidSnapshot)
		}
		if _, dup := owner[resp.ID]; dup {
			return fmt.Errorf("%w: duplicate response id %s", ErrInvalidSnapshot, resp.ID)
		}
		owner[resp.ID] = resp.RequestID
	}

	listed := make(map[string]struct{}, len(snap.Responses))
	for _, r := range snap.Requests {
		for _, id := range r.ResponseIDs {
			requestID, ok := owner[id]
			if !ok {
				return fmt.Errorf("%w: request %s lists missing response %s", ErrInvalidSnapshot, r.ID, id)
			}
			if requestID != r.ID {
				return fmt.Errorf("%w: response %s belongs to request %s, listed by %s", ErrInvalidSnapshot, id, requestID, r.ID)
			}
			if _, dup := listed[id]; dup {
				return fmt.Errorf("%w: response %s listed twice", ErrInvalidSnapshot, id)
			}
			listed[id] = struct{}{}
		}
	}
	if len(listed) != len(owner) {
		for id, requestID := range owner {
			if _, ok := listed[id]; !ok {
				return fmt.Errorf("%w: response %s not listed by request %s", ErrInvalidSnapshot, id, requestID)
			}
		}
	}
	return nil
}

// Snapshot returns a copy of the current state in insertion order.
func (u *QuoteMatchingUseCase) Snapshot() entities.QuoteSnapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshotLocked()
}

// Counts reports how many requests and responses the store holds.
func (u *QuoteMatchingUseCase) Counts() (requests, responses int) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.requestOrder), len(u.responseOrder)
}

func (u *QuoteMatchingUseCase) snapshotLocked() entities.QuoteSnapshot {
	snap := entities.QuoteSnapshot{
		Requests:  make([]entities.QuoteRequest, 0, len(u.requestOrder)),
		Responses: make([]entities.QuoteResponse, 0, len(u.responseOrder)),
		SavedAt:   u.now(),
	}
	for _, id := range u.requestOrder {
		snap.Requests = append(snap.Requests, cloneRequest(u.requests[id]))
	}
	for _, id := range u.responseOrder {
		snap.Responses = append(snap.Responses, cloneResponse(u.responses[id]))
	}
	return snap
}

// persistLocked writes the snapshot while the write lock is held so saves
// land in mutation order.
func (u *QuoteMatchingUseCase) persistLocked(ctx context.Context) {
	if u.snapshots == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotSaveTimeout)
	defer cancel()

	snap := u.snapshotLocked()
	if err := u.snapshots.Save(ctx, u.snapshotKey, snap); err != nil {
		log.Printf("[quote][usecase] snapshot save failed key=%s requests=%d responses=%d err=%v",
			u.snapshotKey, len(snap.Requests), len(snap.Responses), err)
	}
}

func (u *QuoteMatchingUseCase) lookupPairLocked(requestID, responseID string) (*entities.QuoteRequest, *entities.QuoteResponse, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, nil, ErrInvalidQuoteRequestID
	}
	responseID = strings.TrimSpace(responseID)
	if responseID == "" {
		return nil, nil, ErrInvalidQuoteResponseID
	}

	r, ok := u.requests[requestID]
	if !ok {
		return nil, nil, ErrQuoteRequestNotFound
	}
	resp, ok := u.responses[responseID]
	if !ok || !r.HasResponse(responseID) {
		return nil, nil, ErrQuoteResponseNotFound
	}
	return r, resp, nil
}

func (u *QuoteMatchingUseCase) detailLocked(r *entities.QuoteRequest) entities.QuoteRequestDetail {
	d := entities.QuoteRequestDetail{
		Request:   cloneRequest(r),
		Responses: make([]entities.QuoteResponse, 0, len(r.ResponseIDs)),
	}
	for _, id := range r.ResponseIDs {
		d.Responses = append(d.Responses, cloneResponse(u.responses[id]))
	}
	return d
}

func (u *QuoteMatchingUseCase) isEmpty() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.requestOrder) == 0 && len(u.responseOrder) == 0
}

func cloneRequest(r *entities.QuoteRequest) entities.QuoteRequest {
	out := *r
	out.SystemSize = cloneFloat(r.SystemSize)
	out.RoofArea = cloneFloat(r.RoofArea)
	out.ResponseIDs = cloneStrings(r.ResponseIDs)
	if out.ResponseIDs == nil {
		out.ResponseIDs = []string{}
	}
	return out
}

func cloneResponse(r *entities.QuoteResponse) entities.QuoteResponse {
	out := *r
	out.Highlights = cloneStrings(r.Highlights)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
