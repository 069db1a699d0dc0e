package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/service"
	apierrors "github.com/pribylovaa/ab-planner/internal/transport/http/errors"
)

type createNotificationRequest struct {
	UserID         int64          `json:"user_id"`
	Payload        models.Payload `json:"payload"`
	DeliveryStatus *string        `json:"delivery_status"`
	ReadStatus     *string        `json:"read_status"`
	Read           *bool          `json:"read"`
}

type updateNotificationRequest struct {
	Read       *bool   `json:"read"`
	ReadStatus *string `json:"read_status"`
}

type broadcastRequest struct {
	GroupIDs []int64        `json:"group_ids"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Data     map[string]any `json:"data"`
}

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	filter, err := parseNotificationFilter(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out, err := h.svc.ListNotifications(r.Context(), a, filter)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) CreateNotification(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	var in createNotificationRequest
	if err := decodeRequired(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entry, err := h.svc.CreateNotification(r.Context(), a, service.NotificationInput{
		UserID:         in.UserID,
		Payload:        in.Payload,
		DeliveryStatus: in.DeliveryStatus,
		ReadStatus:     in.ReadStatus,
		Read:           in.Read,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handlers) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateNotificationRequest
	if err := decodeRequired(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entry, err := h.svc.UpdateNotificationRead(r.Context(), a, id, in.Read, in.ReadStatus)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handlers) Broadcast(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}

	var in broadcastRequest
	if err := decodeRequired(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.BroadcastToGroups(r.Context(), a, service.BroadcastInput{
		GroupIDs: in.GroupIDs,
		Title:    in.Title,
		Content:  in.Content,
		Data:     in.Data,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func parseNotificationFilter(r *http.Request) (models.NotificationFilter, error) {
	q := r.URL.Query()
	var f models.NotificationFilter

	if v := q.Get("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return f, fmt.Errorf("%w: invalid user_id", apierrors.ErrBadRequest)
		}
		f.UserID = id
	}

	if v := q.Get("delivery_status"); v != "" {
		st := models.DeliveryStatus(v)
		f.DeliveryStatus = &st
	}
	if v := q.Get("read_status"); v != "" {
		st := models.ReadStatus(v)
		f.ReadStatus = &st
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return f, fmt.Errorf("%w: invalid limit", apierrors.ErrBadRequest)
		}
		f.Limit = n
	}

	return f, nil
}
