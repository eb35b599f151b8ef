package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads the status and failure messages of one order.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown tracking id.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var (
		trackingID      uuid.UUID
		status          int
		failureMessages pq.StringArray
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			status,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().Bytes()).Row().Scan(&trackingID, &status, &failureMessages)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.TrackingID().String())
	}
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(trackingID[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{
		TrackingID:      id,
		Status:          order.Status(status),
		FailureMessages: failureMessages,
	}, nil
}
