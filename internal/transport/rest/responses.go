package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type itemResponse struct {
	ID          string        `json:"id"`
	ListID      string        `json:"listId"`
	Name        string        `json:"name"`
	Quantity    float64       `json:"quantity"`
	PriceLimit  *float64      `json:"priceLimit"`
	ActualPrice *float64      `json:"actualPrice"`
	Notes       *string       `json:"notes"`
	Category    *string       `json:"category"`
	Priority    string        `json:"priority"`
	Purchased   bool          `json:"purchased"`
	PurchasedBy *userResponse `json:"purchasedBy,omitempty"`
	PurchasedAt *time.Time    `json:"purchasedAt"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func toItemResponse(it domain.Item) itemResponse {
	resp := itemResponse{
		ID:          it.ID.String(),
		ListID:      it.ListID.String(),
		Name:        it.Name,
		Quantity:    it.Quantity,
		PriceLimit:  it.PriceLimit,
		ActualPrice: it.ActualPrice,
		Notes:       it.Notes,
		Category:    it.Category,
		Priority:    it.Priority.String(),
		Purchased:   it.Purchased,
		PurchasedAt: it.PurchasedAt,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
	if it.PurchasedBy != nil {
		buyer := toUserResponse(*it.PurchasedBy)
		resp.PurchasedBy = &buyer
	}
	return resp
}

func toItemResponses(items []domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

type collaborationResponse struct {
	ID        string        `json:"id"`
	ListID    string        `json:"listId"`
	UserID    string        `json:"userId"`
	Role      string        `json:"role"`
	User      *userResponse `json:"user,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

func toCollaborationResponse(c domain.Collaboration) collaborationResponse {
	resp := collaborationResponse{
		ID:        c.ID.String(),
		ListID:    c.ListID.String(),
		UserID:    c.UserID.String(),
		Role:      c.Role.String(),
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		u := toUserResponse(*c.User)
		resp.User = &u
	}
	return resp
}

func toCollaborationResponses(collabs []domain.Collaboration) []collaborationResponse {
	out := make([]collaborationResponse, 0, len(collabs))
	for _, c := range collabs {
		out = append(out, toCollaborationResponse(c))
	}
	return out
}

type listResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toListResponse(l domain.List) listResponse {
	return listResponse{
		ID:          l.ID.String(),
		Name:        l.Name,
		Description: l.Description,
		OwnerID:     l.OwnerID.String(),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type listSummaryResponse struct {
	listResponse
	Owner             userResponse            `json:"owner"`
	Collaborators     []collaborationResponse `json:"collaborators"`
	ItemCount         int                     `json:"itemCount"`
	PendingItemCount  int                     `json:"pendingItemCount"`
	CollaboratorCount int                     `json:"collaboratorCount"`
	UserRole          string                  `json:"userRole"`
}

func toListSummaryResponse(s domain.ListSummary) listSummaryResponse {
	return listSummaryResponse{
		listResponse:      toListResponse(s.List),
		Owner:             toUserResponse(s.Owner),
		Collaborators:     toCollaborationResponses(s.Collaborations),
		ItemCount:         s.ItemCount,
		PendingItemCount:  s.PendingItemCount,
		CollaboratorCount: s.CollaboratorCount,
		UserRole:          s.UserRole.String(),
	}
}

type listDetailResponse struct {
	listResponse
	Owner         userResponse            `json:"owner"`
	Collaborators []collaborationResponse `json:"collaborators"`
	Items         []itemResponse          `json:"items"`
	UserRole      string                  `json:"userRole"`
}

func toListDetailResponse(d domain.ListDetail) listDetailResponse {
	return listDetailResponse{
		listResponse:  toListResponse(d.List),
		Owner:         toUserResponse(d.Owner),
		Collaborators: toCollaborationResponses(d.Collaborations),
		Items:         toItemResponses(d.Items),
		UserRole:      d.UserRole.String(),
	}
}

type notificationResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
